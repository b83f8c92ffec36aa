// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop implements [system.Surface] on glfw.
package desktop

import (
	"fmt"
	"image"
	"log/slog"

	"cogentcore.org/glcube/events"
	"cogentcore.org/glcube/system"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Surface is a fixed-size glfw window with a current OpenGL context.
type Surface struct {
	glw    *glfw.Window
	queue  events.Queue
	closed bool
}

var _ system.Surface = (*Surface)(nil)

// NewSurface initializes glfw, creates a non-resizable window with an
// OpenGL core profile context of the requested version and makes the
// context current. It must be called on the main thread, which must
// have been locked with runtime.LockOSThread.
func NewSurface(opts system.Options) (*Surface, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("desktop: glfw init: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, opts.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	slog.Info("init OpenGL", "version", fmt.Sprintf("%d.%d", opts.GLMajor, opts.GLMinor))

	glw, err := glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("desktop: creating window: %w", err)
	}
	glw.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	sf := &Surface{glw: glw}
	glw.SetCloseCallback(sf.closeEvent)
	glw.SetKeyCallback(sf.keyEvent)
	glw.SetCharModsCallback(sf.charEvent)
	glw.SetCursorPosCallback(sf.cursorPosEvent)
	glw.SetMouseButtonCallback(sf.mouseButtonEvent)
	glw.SetScrollCallback(sf.scrollEvent)
	return sf, nil
}

// PollEvents runs glfw event processing, which delivers
// callbacks into the queue, and drains the queue.
func (sf *Surface) PollEvents() []events.Event {
	if sf.closed {
		return nil
	}
	glfw.PollEvents()
	return sf.queue.Drain()
}

func (sf *Surface) SwapBuffers() {
	if sf.closed {
		return
	}
	sf.glw.SwapBuffers()
}

func (sf *Surface) Size() image.Point {
	w, h := sf.glw.GetSize()
	return image.Pt(w, h)
}

func (sf *Surface) FramebufferSize() image.Point {
	w, h := sf.glw.GetFramebufferSize()
	return image.Pt(w, h)
}

// Close destroys the window and terminates glfw.
func (sf *Surface) Close() {
	if sf.closed {
		return
	}
	sf.closed = true
	sf.glw.Destroy()
	glfw.Terminate()
}
