// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app runs the frame loop that draws the cube and the
// overlay panel at a fixed cadence until a quit is requested.
package app

import (
	"context"
	"image"
	"log/slog"
	"time"

	"cogentcore.org/glcube/camera"
	"cogentcore.org/glcube/events"
	"cogentcore.org/glcube/gpu"
	"cogentcore.org/glcube/overlay"
	"cogentcore.org/glcube/system"
)

// FrameTime is the time budget of one frame, for 60 frames per second.
const FrameTime = time.Second / 60

// WindowSize is the fixed size of the window.
var WindowSize = image.Pt(640, 480)

// Uniform names of the model, view and projection matrices.
const (
	ModelUniform      = "uModel"
	ViewUniform       = "uView"
	ProjectionUniform = "uProjection"
)

// Loop is the frame loop. All of it runs on the thread that
// owns the graphics context.
type Loop struct {
	Surface system.Surface
	Drawing gpu.Drawing
	Program *gpu.Program
	Mesh    *gpu.Buffer
	Overlay overlay.Overlay

	// RenderState and Camera are edited through the overlay.
	RenderState gpu.RenderState
	Camera      camera.Camera

	// Size is the window size used for the projection aspect.
	Size image.Point

	// Framebuffer is the size of the viewport in pixels.
	Framebuffer image.Point

	FrameTime time.Duration

	// Now and Sleep are the clock used for frame pacing.
	Now   func() time.Time
	Sleep func(time.Duration)

	state  States
	frames int
	mouse  image.Point
	meter  rateMeter
}

// NewLoop returns a [Loop] in the [Running] state with the default
// render state and camera. A nil overlay is replaced by [overlay.Nop].
func NewLoop(sf system.Surface, drw gpu.Drawing, prog *gpu.Program, mesh *gpu.Buffer, ov overlay.Overlay) *Loop {
	if ov == nil {
		ov = overlay.Nop{}
	}
	return &Loop{
		Surface:     sf,
		Drawing:     drw,
		Program:     prog,
		Mesh:        mesh,
		Overlay:     ov,
		RenderState: gpu.DefaultRenderState(),
		Camera:      camera.Default(),
		Size:        WindowSize,
		Framebuffer: WindowSize,
		FrameTime:   FrameTime,
		Now:         time.Now,
		Sleep:       time.Sleep,
	}
}

// State returns the current state.
func (lp *Loop) State() States {
	return lp.state
}

// Frames returns the number of frames drawn.
func (lp *Loop) Frames() int {
	return lp.frames
}

// Step runs one iteration and returns the resulting state.
// It does nothing once the loop is [Terminating].
func (lp *Loop) Step() States {
	if lp.state == Terminating {
		return lp.state
	}
	start := lp.Now()
	lp.meter.tick(start)

	for _, ev := range lp.Surface.PollEvents() {
		if ev.Type.IsMouse() && ev.Type != events.Scroll {
			lp.mouse = ev.Where
		}
		if lp.Overlay.HandleEvent(ev) {
			continue
		}
		if ev.IsTerminate() {
			lp.state = Terminating
			slog.Info("quit requested", "event", ev.String(), "frames", lp.frames)
			return lp.state
		}
	}

	lp.RenderState.Apply(lp.Drawing)
	lp.Drawing.Viewport(image.Rectangle{Max: lp.Framebuffer})
	lp.Drawing.ClearColor(1, 1, 1, 1)
	lp.Drawing.Clear(true, false)

	mx := camera.Compute(lp.Camera, lp.Size)
	lp.Program.Use()
	lp.Program.SetMat4(ModelUniform, mx.Model)
	lp.Program.SetMat4(ViewUniform, mx.View)
	lp.Program.SetMat4(ProjectionUniform, mx.Projection)
	lp.Mesh.Draw()

	tel := overlay.Telemetry{FrameRate: lp.meter.rate(), DisplaySize: lp.Size, MousePos: lp.mouse}
	ctl := lp.Overlay.Update(tel, overlay.Controls{State: lp.RenderState, Camera: lp.Camera})
	lp.RenderState = ctl.State
	lp.Camera = ctl.Camera.Clamped()
	lp.Overlay.Render()

	lp.Surface.SwapBuffers()
	lp.frames++

	// an overrun frame still waits a full frame time, with no catch-up
	rem := lp.FrameTime - lp.Now().Sub(start)
	if rem <= 0 {
		rem = lp.FrameTime
	}
	lp.Sleep(rem)
	return lp.state
}

// Run steps until the loop is [Terminating] or ctx is done,
// returning the context error in the latter case.
func (lp *Loop) Run(ctx context.Context) error {
	slog.Info("frame loop started", "size", lp.Size, "frameTime", lp.FrameTime)
	for lp.state == Running {
		if err := ctx.Err(); err != nil {
			lp.state = Terminating
			slog.Info("frame loop canceled", "frames", lp.frames)
			return err
		}
		lp.Step()
	}
	slog.Info("frame loop stopped", "frames", lp.frames)
	return nil
}
