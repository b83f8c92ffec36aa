// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu implements [gpu.Driver] on OpenGL 3.3 core.
// All calls must happen on the thread that owns the current context.
package glgpu

import (
	"fmt"
	"log/slog"

	"cogentcore.org/glcube/gpu"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Driver is the OpenGL [gpu.Driver].
type Driver struct{}

var _ gpu.Driver = (*Driver)(nil)

// New loads the OpenGL function pointers for the current context
// and returns the driver. A context must be current.
func New() (*Driver, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("glgpu: loading OpenGL: %w", err)
	}
	slog.Info("OpenGL initialized",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
		"glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))
	return &Driver{}, nil
}

var glTypes = map[gpu.Types]uint32{
	gpu.Int8:    gl.BYTE,
	gpu.Uint8:   gl.UNSIGNED_BYTE,
	gpu.Int16:   gl.SHORT,
	gpu.Uint16:  gl.UNSIGNED_SHORT,
	gpu.Int32:   gl.INT,
	gpu.Uint32:  gl.UNSIGNED_INT,
	gpu.Float32: gl.FLOAT,
	gpu.Float64: gl.DOUBLE,
}

var glUsages = map[gpu.Usage]uint32{
	gpu.StaticDraw:  gl.STATIC_DRAW,
	gpu.DynamicDraw: gl.DYNAMIC_DRAW,
	gpu.StreamDraw:  gl.STREAM_DRAW,
}

var glBlendFactors = map[gpu.BlendFactors]uint32{
	gpu.BlendZero:             gl.ZERO,
	gpu.BlendOne:              gl.ONE,
	gpu.BlendSrcAlpha:         gl.SRC_ALPHA,
	gpu.BlendOneMinusSrcAlpha: gl.ONE_MINUS_SRC_ALPHA,
}

var glShaders = map[gpu.ShaderTypes]uint32{
	gpu.VertexShader:   gl.VERTEX_SHADER,
	gpu.FragmentShader: gl.FRAGMENT_SHADER,
}
