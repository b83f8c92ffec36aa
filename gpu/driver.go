// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// Drawing provides the fixed-function state settings and draw calls
// that operate on the current context.
type Drawing interface {
	// DepthTest turns depth testing on or off.
	DepthTest(on bool)

	// Blend turns alpha blending on, with the [AlphaBlend]
	// factors, or off.
	Blend(on bool)

	// Wireframe sets the polygon mode for both faces to lines if on,
	// and to fill otherwise.
	Wireframe(on bool)

	// CullFace turns back-face culling on or off.
	CullFace(on bool)

	// Viewport sets the rendering viewport to given rectangle.
	// It is important to update this for each render -- cannot assume it.
	Viewport(rect image.Rectangle)

	// ClearColor sets the color to draw when Clear is called.
	ClearColor(r, g, b, a float32)

	// Clear clears the given buffers of the current render target.
	Clear(color, depth bool)

	// Triangles draws count vertices of the bound vertex array
	// as a triangle list, starting at start.
	Triangles(start, count int)
}

// Driver is the interface to a graphics API used by [Buffer] and [Program].
// All methods act on the current context and must be called from the
// thread that owns it.
type Driver interface {
	Drawing

	// NewVertexArray creates a vertex array object.
	NewVertexArray() (Handle, error)

	// NewBuffer creates a buffer object.
	NewBuffer() (Handle, error)

	// BindVertexArray binds the vertex array, or unbinds with [NoHandle].
	BindVertexArray(vao Handle)

	// BindArrayBuffer binds the buffer as the vertex data source,
	// or unbinds with [NoHandle].
	BindArrayBuffer(vbo Handle)

	// BufferData uploads data to the bound array buffer.
	BufferData(data []byte, usage Usage)

	// VertexAttrib enables attribute index and points it at the bound
	// array buffer with the given record stride and byte offset.
	VertexAttrib(index int, at Attrib, stride, offset int)

	DeleteVertexArray(vao Handle)
	DeleteBuffer(vbo Handle)

	// CompileShader compiles source of the given stage, returning
	// the compiler log as the error on failure.
	CompileShader(typ ShaderTypes, src string) (Handle, error)

	// LinkProgram links the compiled stages into a program,
	// returning the linker log as the error on failure.
	LinkProgram(shaders ...Handle) (Handle, error)

	DeleteShader(sh Handle)
	DeleteProgram(prog Handle)

	// UseProgram makes the program current.
	UseProgram(prog Handle)

	// UniformLocation returns the location of the named uniform in
	// the program, or -1 if the program does not declare it.
	UniformLocation(prog Handle, name string) int32

	// UniformMat4 sets the 4x4 matrix uniform at loc in the current
	// program. A location of -1 is ignored.
	UniformMat4(loc int32, m mgl32.Mat4)
}
