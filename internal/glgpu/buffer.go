// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/glcube/gpu"
	"github.com/go-gl/gl/v3.3-core/gl"
)

var errNoName = errors.New("driver returned no object name")

func (dr *Driver) NewVertexArray() (gpu.Handle, error) {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	if vao == 0 {
		return gpu.NoHandle, errNoName
	}
	return gpu.Handle(vao), nil
}

func (dr *Driver) NewBuffer() (gpu.Handle, error) {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	if vbo == 0 {
		return gpu.NoHandle, errNoName
	}
	return gpu.Handle(vbo), nil
}

func (dr *Driver) BindVertexArray(vao gpu.Handle) {
	gl.BindVertexArray(uint32(vao))
}

func (dr *Driver) BindArrayBuffer(vbo gpu.Handle) {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(vbo))
}

func (dr *Driver) BufferData(data []byte, usage gpu.Usage) {
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, glUsages[usage])
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data), gl.Ptr(data), glUsages[usage])
}

func (dr *Driver) VertexAttrib(index int, at gpu.Attrib, stride, offset int) {
	gl.EnableVertexAttribArray(uint32(index))
	gl.VertexAttribPointer(uint32(index), int32(at.Components), glTypes[at.Type], false, int32(stride), gl.PtrOffset(offset))
}

func (dr *Driver) DeleteVertexArray(vao gpu.Handle) {
	h := uint32(vao)
	gl.DeleteVertexArrays(1, &h)
}

func (dr *Driver) DeleteBuffer(vbo gpu.Handle) {
	h := uint32(vbo)
	gl.DeleteBuffers(1, &h)
}
