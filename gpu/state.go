// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// RenderState is the set of independent fixed-function toggles
// that the frame loop applies before drawing.
type RenderState struct {
	DepthTest bool
	Blend     bool
	Wireframe bool
	Culling   bool
}

// DefaultRenderState returns the state with every toggle on.
func DefaultRenderState() RenderState {
	return RenderState{DepthTest: true, Blend: true, Wireframe: true, Culling: true}
}

// Apply sets every toggle on d, whether or not it changed since
// the last call.
func (rs RenderState) Apply(d Drawing) {
	d.DepthTest(rs.DepthTest)
	d.Blend(rs.Blend)
	d.Wireframe(rs.Wireframe)
	d.CullFace(rs.Culling)
}
