// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// Program is a linked vertex and fragment shader pair.
// A Program must not be copied; it is released with [Program.Release].
type Program struct {
	_ noCopy

	drv    Driver
	handle Handle

	// uniform locations by name, -1 if not declared
	locs map[string]int32
}

// NewProgram compiles the vertex and fragment sources and links them.
// The stage objects are deleted once linking is done.
func NewProgram(drv Driver, vertexSrc, fragmentSrc string) (*Program, error) {
	vs, err := drv.CompileShader(VertexShader, vertexSrc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v: %w", ErrCompile, VertexShader, err)
	}
	fs, err := drv.CompileShader(FragmentShader, fragmentSrc)
	if err != nil {
		drv.DeleteShader(vs)
		return nil, fmt.Errorf("%w: %v: %w", ErrCompile, FragmentShader, err)
	}
	handle, err := drv.LinkProgram(vs, fs)
	drv.DeleteShader(vs)
	drv.DeleteShader(fs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLink, err)
	}
	slog.Debug("gpu program linked", "handle", handle)
	return &Program{drv: drv, handle: handle, locs: make(map[string]int32)}, nil
}

// Handle returns the driver handle of the program.
func (pr *Program) Handle() Handle {
	return pr.handle
}

// Use makes this the current program: uniform settings and draw calls
// target it until another program is used.
func (pr *Program) Use() {
	if pr.handle == NoHandle {
		return
	}
	pr.drv.UseProgram(pr.handle)
}

// SetMat4 sets the named mat4 uniform. Use must have been called first.
// A name the program does not declare is silently ignored.
func (pr *Program) SetMat4(name string, m mgl32.Mat4) {
	if pr.handle == NoHandle {
		return
	}
	pr.drv.UniformMat4(pr.location(name), m)
}

func (pr *Program) location(name string) int32 {
	loc, ok := pr.locs[name]
	if !ok {
		loc = pr.drv.UniformLocation(pr.handle, name)
		pr.locs[name] = loc
		if loc < 0 {
			slog.Debug("gpu program: uniform not declared", "name", name)
		}
	}
	return loc
}

// Release deletes the program.
func (pr *Program) Release() {
	if pr.handle == NoHandle {
		return
	}
	pr.drv.DeleteProgram(pr.handle)
	pr.handle = NoHandle
	clear(pr.locs)
}
