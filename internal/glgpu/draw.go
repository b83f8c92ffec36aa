// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"image"

	"cogentcore.org/glcube/gpu"

	"github.com/go-gl/gl/v3.3-core/gl"
)

func enable(cap uint32, on bool) {
	if on {
		gl.Enable(cap)
	} else {
		gl.Disable(cap)
	}
}

// DepthTest turns on / off depth testing
func (dr *Driver) DepthTest(on bool) {
	enable(gl.DEPTH_TEST, on)
}

// Blend turns on / off alpha blending
func (dr *Driver) Blend(on bool) {
	enable(gl.BLEND, on)
	if on {
		gl.BlendFunc(glBlendFactors[gpu.AlphaBlend[0]], glBlendFactors[gpu.AlphaBlend[1]])
	}
}

// Wireframe sets the rendering to lines instead of fills if on = true
func (dr *Driver) Wireframe(on bool) {
	if on {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// CullFace turns on / off back-face culling
func (dr *Driver) CullFace(on bool) {
	enable(gl.CULL_FACE, on)
	if on {
		gl.CullFace(gl.BACK)
	}
}

func (dr *Driver) Viewport(rect image.Rectangle) {
	gl.Viewport(int32(rect.Min.X), int32(rect.Min.Y), int32(rect.Dx()), int32(rect.Dy()))
}

func (dr *Driver) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

// Clear clears the given properties of the current render target
func (dr *Driver) Clear(color, depth bool) {
	bits := uint32(0)
	if color {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if depth {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(bits)
}

// Triangles uses all existing settings to draw Triangles
// (non-indexed)
func (dr *Driver) Triangles(start, count int) {
	gl.DrawArrays(gl.TRIANGLES, int32(start), int32(count))
}
