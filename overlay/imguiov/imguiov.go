// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imguiov implements [overlay.Overlay] with Dear ImGui,
// rendered with OpenGL 3.
package imguiov

import (
	"image"
	"time"

	"cogentcore.org/glcube/camera"
	"cogentcore.org/glcube/events"
	"cogentcore.org/glcube/events/key"
	"cogentcore.org/glcube/overlay"
	"github.com/inkyblackness/imgui-go/v4"
)

// Overlay is the ImGui control panel.
type Overlay struct {
	ctx  *imgui.Context
	io   imgui.IO
	rend *renderer

	display     image.Point
	framebuffer image.Point
	last        time.Time
}

var _ overlay.Overlay = (*Overlay)(nil)

// New creates the ImGui context and the OpenGL objects that render it.
// display is the window size and framebuffer its size in pixels.
// An OpenGL 3.3 context must be current and loaded.
func New(display, framebuffer image.Point) (*Overlay, error) {
	ov := newOverlay(display, framebuffer)
	rend, err := newRenderer(ov.io)
	if err != nil {
		ov.ctx.Destroy()
		return nil, err
	}
	ov.rend = rend
	return ov, nil
}

// newOverlay sets up the ImGui context without any GPU objects.
func newOverlay(display, framebuffer image.Point) *Overlay {
	ov := &Overlay{ctx: imgui.CreateContext(nil), display: display, framebuffer: framebuffer}
	ov.io = imgui.CurrentIO()
	// no layout persistence
	ov.io.SetIniFilename("")
	ov.io.SetDisplaySize(imgui.Vec2{X: float32(display.X), Y: float32(display.Y)})
	setKeyMap(ov.io)
	return ov
}

// Release destroys the GPU objects and the ImGui context.
func (ov *Overlay) Release() {
	if ov.rend != nil {
		ov.rend.release()
		ov.rend = nil
	}
	if ov.ctx != nil {
		ov.ctx.Destroy()
		ov.ctx = nil
	}
}

func setKeyMap(io imgui.IO) {
	io.KeyMap(imgui.KeyTab, int(key.CodeTab))
	io.KeyMap(imgui.KeyLeftArrow, int(key.CodeLeftArrow))
	io.KeyMap(imgui.KeyRightArrow, int(key.CodeRightArrow))
	io.KeyMap(imgui.KeyUpArrow, int(key.CodeUpArrow))
	io.KeyMap(imgui.KeyDownArrow, int(key.CodeDownArrow))
	io.KeyMap(imgui.KeyPageUp, int(key.CodePageUp))
	io.KeyMap(imgui.KeyPageDown, int(key.CodePageDown))
	io.KeyMap(imgui.KeyHome, int(key.CodeHome))
	io.KeyMap(imgui.KeyEnd, int(key.CodeEnd))
	io.KeyMap(imgui.KeyInsert, int(key.CodeInsert))
	io.KeyMap(imgui.KeyDelete, int(key.CodeDeleteForward))
	io.KeyMap(imgui.KeyBackspace, int(key.CodeBackspace))
	io.KeyMap(imgui.KeySpace, int(key.CodeSpacebar))
	io.KeyMap(imgui.KeyEnter, int(key.CodeReturnEnter))
	io.KeyMap(imgui.KeyEscape, int(key.CodeEscape))
	io.KeyMap(imgui.KeyA, int(key.CodeA))
	io.KeyMap(imgui.KeyC, int(key.CodeC))
	io.KeyMap(imgui.KeyV, int(key.CodeV))
	io.KeyMap(imgui.KeyX, int(key.CodeX))
	io.KeyMap(imgui.KeyY, int(key.CodeY))
	io.KeyMap(imgui.KeyZ, int(key.CodeZ))
}

// mouseButton returns the ImGui index of a mouse button, or -1.
func mouseButton(bt events.Buttons) int {
	switch bt {
	case events.Left:
		return 0
	case events.Right:
		return 1
	case events.Middle:
		return 2
	}
	return -1
}

// HandleEvent feeds the event to ImGui. Keyboard events are claimed
// when ImGui wants the keyboard, mouse events when it wants the mouse.
func (ov *Overlay) HandleEvent(ev events.Event) bool {
	io := ov.io
	switch ev.Type {
	case events.KeyDown, events.KeyUp:
		if ev.Type == events.KeyDown {
			io.KeyPress(int(ev.Code))
		} else {
			io.KeyRelease(int(ev.Code))
		}
		io.KeyCtrl(int(key.CodeLeftControl), int(key.CodeRightControl))
		io.KeyShift(int(key.CodeLeftShift), int(key.CodeRightShift))
		io.KeyAlt(int(key.CodeLeftAlt), int(key.CodeRightAlt))
		io.KeySuper(int(key.CodeLeftMeta), int(key.CodeRightMeta))
		return io.WantCaptureKeyboard()
	case events.Char:
		io.AddInputCharacters(string(ev.Rune))
		return io.WantCaptureKeyboard()
	case events.MouseMove:
		io.SetMousePosition(imgui.Vec2{X: float32(ev.Where.X), Y: float32(ev.Where.Y)})
		return io.WantCaptureMouse()
	case events.MouseDown, events.MouseUp:
		io.SetMousePosition(imgui.Vec2{X: float32(ev.Where.X), Y: float32(ev.Where.Y)})
		if bt := mouseButton(ev.Button); bt >= 0 {
			io.SetMouseButtonDown(bt, ev.Type == events.MouseDown)
		}
		return io.WantCaptureMouse()
	case events.Scroll:
		io.AddMouseWheelDelta(ev.Delta.X(), ev.Delta.Y())
		return io.WantCaptureMouse()
	}
	return false
}

// Update builds the Information panel and returns the edited controls.
func (ov *Overlay) Update(tel overlay.Telemetry, in overlay.Controls) overlay.Controls {
	now := time.Now()
	dt := float32(1.0 / 60)
	if !ov.last.IsZero() {
		dt = max(float32(now.Sub(ov.last).Seconds()), 1e-4)
	}
	ov.last = now
	ov.io.SetDeltaTime(dt)
	ov.io.SetDisplaySize(imgui.Vec2{X: float32(ov.display.X), Y: float32(ov.display.Y)})

	out := in
	imgui.NewFrame()
	imgui.SetNextWindowSizeV(imgui.Vec2{X: float32(overlay.PanelSize.X), Y: float32(overlay.PanelSize.Y)}, imgui.ConditionFirstUseEver)
	if imgui.Begin(overlay.Title) {
		imgui.Text(overlay.Greeting)
		imgui.Separator()
		for _, ln := range tel.Lines() {
			imgui.Text(ln)
		}
		imgui.Separator()
		imgui.Checkbox(overlay.DepthTest, &out.State.DepthTest)
		imgui.Checkbox(overlay.Blend, &out.State.Blend)
		imgui.Checkbox(overlay.Wireframe, &out.State.Wireframe)
		imgui.Checkbox(overlay.Culling, &out.State.Culling)
		imgui.Separator()
		imgui.SliderFloat(overlay.CameraX, &out.Camera.X, camera.Min, camera.Max)
		imgui.SliderFloat(overlay.CameraY, &out.Camera.Y, camera.Min, camera.Max)
		imgui.SliderFloat(overlay.CameraZ, &out.Camera.Z, camera.Min, camera.Max)
	}
	imgui.End()
	imgui.Render()

	// ctrl+click text entry on a slider is not range limited
	out.Camera = out.Camera.Clamped()
	return out
}

// Render draws the panel built by the last Update.
func (ov *Overlay) Render() {
	if ov.rend == nil {
		return
	}
	ov.rend.render(ov.display, ov.framebuffer, imgui.RenderedDrawData())
}
