// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imguiov

import (
	"image"
	"testing"

	"cogentcore.org/glcube/camera"
	"cogentcore.org/glcube/events"
	"cogentcore.org/glcube/gpu"
	"cogentcore.org/glcube/overlay"
	"github.com/stretchr/testify/assert"
)

func TestMouseButton(t *testing.T) {
	assert.Equal(t, 0, mouseButton(events.Left))
	assert.Equal(t, 1, mouseButton(events.Right))
	assert.Equal(t, 2, mouseButton(events.Middle))
	assert.Equal(t, -1, mouseButton(events.NoButton))
}

// headless builds the panel without any GPU objects;
// the font atlas is built on the CPU.
func headless(t *testing.T) *Overlay {
	ov := newOverlay(image.Pt(640, 480), image.Pt(640, 480))
	ov.io.Fonts().TextureDataAlpha8()
	t.Cleanup(ov.Release)
	return ov
}

func TestUpdateUnchanged(t *testing.T) {
	ov := headless(t)
	in := overlay.Controls{State: gpu.DefaultRenderState(), Camera: camera.Default()}
	tel := overlay.Telemetry{FrameRate: 60, DisplaySize: image.Pt(640, 480)}
	for range 3 {
		assert.Equal(t, in, ov.Update(tel, in))
		ov.Render()
	}
}

func TestUpdateClampsCamera(t *testing.T) {
	ov := headless(t)
	in := overlay.Controls{Camera: camera.Camera{X: 7, Y: -9, Z: 1}}
	out := ov.Update(overlay.Telemetry{}, in)
	assert.Equal(t, camera.Camera{X: 5, Y: -5, Z: 1}, out.Camera)
}

func TestQuitNotClaimed(t *testing.T) {
	ov := headless(t)
	assert.False(t, ov.HandleEvent(events.NewQuit()))
}
