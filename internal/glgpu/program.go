// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/glcube/gpu"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// CompileShader compiles given source code for a shader of given type.
// Source must be GLSL version 330 core. The source does not need to be
// null terminated.
func (dr *Driver) CompileShader(typ gpu.ShaderTypes, src string) (gpu.Handle, error) {
	handle := gl.CreateShader(glShaders[typ])
	if handle == 0 {
		return gpu.NoHandle, errNoName
	}
	csources, free := gl.Strs(cString(src))
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(msg))
		gl.DeleteShader(handle)
		return gpu.NoHandle, errors.New(strings.TrimRight(msg, "\x00\n"))
	}
	return gpu.Handle(handle), nil
}

// LinkProgram links the compiled shaders into a new program.
func (dr *Driver) LinkProgram(shaders ...gpu.Handle) (gpu.Handle, error) {
	handle := gl.CreateProgram()
	if handle == 0 {
		return gpu.NoHandle, errNoName
	}
	for _, sh := range shaders {
		gl.AttachShader(handle, uint32(sh))
	}
	gl.LinkProgram(handle)
	for _, sh := range shaders {
		gl.DetachShader(handle, uint32(sh))
	}

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var lgLength int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &lgLength)
		lg := strings.Repeat("\x00", int(lgLength+1))
		gl.GetProgramInfoLog(handle, lgLength, nil, gl.Str(lg))
		gl.DeleteProgram(handle)
		return gpu.NoHandle, errors.New(strings.TrimRight(lg, "\x00\n"))
	}
	return gpu.Handle(handle), nil
}

func (dr *Driver) DeleteShader(sh gpu.Handle) {
	gl.DeleteShader(uint32(sh))
}

func (dr *Driver) DeleteProgram(prog gpu.Handle) {
	gl.DeleteProgram(uint32(prog))
}

func (dr *Driver) UseProgram(prog gpu.Handle) {
	gl.UseProgram(uint32(prog))
}

func (dr *Driver) UniformLocation(prog gpu.Handle, name string) int32 {
	return gl.GetUniformLocation(uint32(prog), gl.Str(cString(name)))
}

// UniformMat4 uploads m, which is column-major as GLSL expects.
func (dr *Driver) UniformMat4(loc int32, m mgl32.Mat4) {
	gl.UniformMatrix4fv(loc, 1, false, &m[0])
}

// cString returns s with a null terminator added if it does not already have one.
func cString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}
