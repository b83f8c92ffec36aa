// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package overlay defines the immediate-mode control panel drawn on
// top of the scene. The panel reads the current controls by value and
// returns the edited values; it never holds references into the loop.
package overlay

import (
	"fmt"
	"image"

	"cogentcore.org/glcube/camera"
	"cogentcore.org/glcube/events"
	"cogentcore.org/glcube/gpu"
)

// Panel labels.
const (
	Title     = "Information"
	Greeting  = "Hello, World!"
	DepthTest = "Depth Test"
	Blend     = "Blend Mode"
	Wireframe = "Wireframe"
	Culling   = "Culling"
	CameraX   = "Camera X"
	CameraY   = "Camera Y"
	CameraZ   = "Camera Z"
)

// PanelSize is the panel size the first time it is shown.
var PanelSize = image.Pt(300, 300)

// Telemetry is the read-only frame information shown on the panel.
type Telemetry struct {
	FrameRate   float32
	DisplaySize image.Point
	MousePos    image.Point
}

// Lines returns the telemetry as the panel text lines.
func (tl Telemetry) Lines() []string {
	return []string{
		fmt.Sprintf("FPS: %.1f", tl.FrameRate),
		fmt.Sprintf("Display Size: (%.1f, %.1f)", float32(tl.DisplaySize.X), float32(tl.DisplaySize.Y)),
		fmt.Sprintf("Mouse Position: (%.1f, %.1f)", float32(tl.MousePos.X), float32(tl.MousePos.Y)),
	}
}

// Controls are the values bound to the panel widgets.
type Controls struct {
	State  gpu.RenderState
	Camera camera.Camera
}

// Overlay is an immediate-mode UI drawn after the scene each frame.
type Overlay interface {
	// HandleEvent passes an input event to the overlay and reports
	// whether the overlay claimed it, e.g., during a slider drag.
	// Claimed events must not be acted on by the caller.
	HandleEvent(ev events.Event) bool

	// Update builds the panel for this frame from the telemetry and
	// the current controls, and returns the controls as edited by
	// the user. Camera values are within [camera.Min, camera.Max].
	Update(tel Telemetry, in Controls) Controls

	// Render submits the panel draw lists to the current context.
	Render()
}

// Nop is an [Overlay] that shows nothing, claims nothing and
// never changes the controls.
type Nop struct{}

func (Nop) HandleEvent(ev events.Event) bool { return false }

func (Nop) Update(tel Telemetry, in Controls) Controls { return in }

func (Nop) Render() {}
