// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gputest provides a [gpu.Driver] that records calls and
// models pipeline state in memory, for testing without a GPU.
package gputest

import (
	"fmt"
	"image"
	"slices"

	"cogentcore.org/glcube/gpu"
	"github.com/go-gl/mathgl/mgl32"
)

// Pipeline is the fixed-function state tracked by a [Recorder].
type Pipeline struct {
	DepthTest  bool
	Blend      bool
	BlendFunc  [2]gpu.BlendFactors // source, destination; zero while blending is off
	Wireframe  bool
	CullFace   bool
	Viewport   image.Rectangle
	ClearColor [4]float32
}

// Draw is one recorded draw call, with the state it was issued under.
type Draw struct {
	VertexArray gpu.Handle
	Program     gpu.Handle
	Start       int
	Count       int
	Pipeline    Pipeline
}

// Attrib is one recorded vertex attribute binding.
type Attrib struct {
	Index  int
	Attrib gpu.Attrib
	Stride int
	Offset int
}

// Upload is one recorded buffer upload.
type Upload struct {
	Buffer gpu.Handle
	Data   []byte
	Usage  gpu.Usage
}

// Recorder implements [gpu.Driver]. The zero value is ready to use.
type Recorder struct {
	// Declared lists the uniform names that linked programs declare.
	Declared []string

	// CompileErr, LinkErr and ResourceErr, when set, make the
	// corresponding calls fail.
	CompileErr  map[gpu.ShaderTypes]error
	LinkErr     error
	ResourceErr error

	Calls    []string
	State    Pipeline
	Clears   int
	Draws    []Draw
	Attribs  []Attrib
	Uploads  []Upload
	Uniforms map[string]mgl32.Mat4

	BoundVertexArray gpu.Handle
	BoundBuffer      gpu.Handle
	CurrentProgram   gpu.Handle

	Live map[gpu.Handle]string

	next gpu.Handle
}

var _ gpu.Driver = (*Recorder)(nil)

func (rc *Recorder) call(format string, args ...any) {
	rc.Calls = append(rc.Calls, fmt.Sprintf(format, args...))
}

func (rc *Recorder) alloc(kind string) gpu.Handle {
	if rc.Live == nil {
		rc.Live = make(map[gpu.Handle]string)
	}
	rc.next++
	rc.Live[rc.next] = kind
	return rc.next
}

func (rc *Recorder) free(h gpu.Handle) {
	delete(rc.Live, h)
}

func (rc *Recorder) DepthTest(on bool) {
	rc.call("DepthTest(%v)", on)
	rc.State.DepthTest = on
}

func (rc *Recorder) Blend(on bool) {
	rc.call("Blend(%v)", on)
	rc.State.Blend = on
	rc.State.BlendFunc = [2]gpu.BlendFactors{}
	if on {
		rc.State.BlendFunc = gpu.AlphaBlend
	}
}

func (rc *Recorder) Wireframe(on bool) {
	rc.call("Wireframe(%v)", on)
	rc.State.Wireframe = on
}

func (rc *Recorder) CullFace(on bool) {
	rc.call("CullFace(%v)", on)
	rc.State.CullFace = on
}

func (rc *Recorder) Viewport(rect image.Rectangle) {
	rc.call("Viewport(%v)", rect)
	rc.State.Viewport = rect
}

func (rc *Recorder) ClearColor(r, g, b, a float32) {
	rc.call("ClearColor(%g, %g, %g, %g)", r, g, b, a)
	rc.State.ClearColor = [4]float32{r, g, b, a}
}

func (rc *Recorder) Clear(color, depth bool) {
	rc.call("Clear(%v, %v)", color, depth)
	rc.Clears++
}

func (rc *Recorder) Triangles(start, count int) {
	rc.call("Triangles(%d, %d)", start, count)
	rc.Draws = append(rc.Draws, Draw{
		VertexArray: rc.BoundVertexArray,
		Program:     rc.CurrentProgram,
		Start:       start,
		Count:       count,
		Pipeline:    rc.State,
	})
}

func (rc *Recorder) NewVertexArray() (gpu.Handle, error) {
	rc.call("NewVertexArray")
	if rc.ResourceErr != nil {
		return gpu.NoHandle, rc.ResourceErr
	}
	return rc.alloc("vertex array"), nil
}

func (rc *Recorder) NewBuffer() (gpu.Handle, error) {
	rc.call("NewBuffer")
	if rc.ResourceErr != nil {
		return gpu.NoHandle, rc.ResourceErr
	}
	return rc.alloc("buffer"), nil
}

func (rc *Recorder) BindVertexArray(vao gpu.Handle) {
	rc.call("BindVertexArray(%d)", vao)
	rc.BoundVertexArray = vao
}

func (rc *Recorder) BindArrayBuffer(vbo gpu.Handle) {
	rc.call("BindArrayBuffer(%d)", vbo)
	rc.BoundBuffer = vbo
}

func (rc *Recorder) BufferData(data []byte, usage gpu.Usage) {
	rc.call("BufferData(%d, %v)", len(data), usage)
	rc.Uploads = append(rc.Uploads, Upload{Buffer: rc.BoundBuffer, Data: slices.Clone(data), Usage: usage})
}

func (rc *Recorder) VertexAttrib(index int, at gpu.Attrib, stride, offset int) {
	rc.call("VertexAttrib(%d, %v, %d, %d)", index, at, stride, offset)
	rc.Attribs = append(rc.Attribs, Attrib{Index: index, Attrib: at, Stride: stride, Offset: offset})
}

func (rc *Recorder) DeleteVertexArray(vao gpu.Handle) {
	rc.call("DeleteVertexArray(%d)", vao)
	rc.free(vao)
}

func (rc *Recorder) DeleteBuffer(vbo gpu.Handle) {
	rc.call("DeleteBuffer(%d)", vbo)
	rc.free(vbo)
}

func (rc *Recorder) CompileShader(typ gpu.ShaderTypes, src string) (gpu.Handle, error) {
	rc.call("CompileShader(%v)", typ)
	if err := rc.CompileErr[typ]; err != nil {
		return gpu.NoHandle, err
	}
	return rc.alloc("shader"), nil
}

func (rc *Recorder) LinkProgram(shaders ...gpu.Handle) (gpu.Handle, error) {
	rc.call("LinkProgram(%v)", shaders)
	if rc.LinkErr != nil {
		return gpu.NoHandle, rc.LinkErr
	}
	return rc.alloc("program"), nil
}

func (rc *Recorder) DeleteShader(sh gpu.Handle) {
	rc.call("DeleteShader(%d)", sh)
	rc.free(sh)
}

func (rc *Recorder) DeleteProgram(prog gpu.Handle) {
	rc.call("DeleteProgram(%d)", prog)
	rc.free(prog)
}

func (rc *Recorder) UseProgram(prog gpu.Handle) {
	rc.call("UseProgram(%d)", prog)
	rc.CurrentProgram = prog
}

// UniformLocation returns the index of name in Declared, or -1.
func (rc *Recorder) UniformLocation(prog gpu.Handle, name string) int32 {
	rc.call("UniformLocation(%d, %q)", prog, name)
	return int32(slices.Index(rc.Declared, name))
}

func (rc *Recorder) UniformMat4(loc int32, m mgl32.Mat4) {
	rc.call("UniformMat4(%d)", loc)
	if loc < 0 || int(loc) >= len(rc.Declared) {
		return
	}
	if rc.Uniforms == nil {
		rc.Uniforms = make(map[string]mgl32.Mat4)
	}
	rc.Uniforms[rc.Declared[loc]] = m
}

// Reset clears the recorded calls, draws and uploads,
// keeping the pipeline state and live resources.
func (rc *Recorder) Reset() {
	rc.Calls = nil
	rc.Draws = nil
	rc.Uploads = nil
	rc.Attribs = nil
	rc.Clears = 0
}
