// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"image"

	"cogentcore.org/glcube/events"
	"cogentcore.org/glcube/events/key"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

func glfwMods(mod glfw.ModifierKey) key.Modifiers {
	var m key.Modifiers
	m.SetFlag(mod&glfw.ModShift != 0, key.Shift)
	m.SetFlag(mod&glfw.ModControl != 0, key.Control)
	m.SetFlag(mod&glfw.ModAlt != 0, key.Alt)
	m.SetFlag(mod&glfw.ModSuper != 0, key.Meta)
	return m
}

func glfwButton(button glfw.MouseButton) events.Buttons {
	switch button {
	case glfw.MouseButtonLeft:
		return events.Left
	case glfw.MouseButtonMiddle:
		return events.Middle
	case glfw.MouseButtonRight:
		return events.Right
	}
	return events.NoButton
}

// glfwKeyCodes maps the glfw keys that have a [key.Codes].
var glfwKeyCodes = map[glfw.Key]key.Codes{
	glfw.KeyEscape:       key.CodeEscape,
	glfw.KeyEnter:        key.CodeReturnEnter,
	glfw.KeyKPEnter:      key.CodeKeypadEnter,
	glfw.KeyTab:          key.CodeTab,
	glfw.KeyBackspace:    key.CodeBackspace,
	glfw.KeyDelete:       key.CodeDeleteForward,
	glfw.KeyInsert:       key.CodeInsert,
	glfw.KeySpace:        key.CodeSpacebar,
	glfw.KeyLeft:         key.CodeLeftArrow,
	glfw.KeyRight:        key.CodeRightArrow,
	glfw.KeyUp:           key.CodeUpArrow,
	glfw.KeyDown:         key.CodeDownArrow,
	glfw.KeyHome:         key.CodeHome,
	glfw.KeyEnd:          key.CodeEnd,
	glfw.KeyPageUp:       key.CodePageUp,
	glfw.KeyPageDown:     key.CodePageDown,
	glfw.KeyA:            key.CodeA,
	glfw.KeyC:            key.CodeC,
	glfw.KeyV:            key.CodeV,
	glfw.KeyX:            key.CodeX,
	glfw.KeyY:            key.CodeY,
	glfw.KeyZ:            key.CodeZ,
	glfw.KeyLeftControl:  key.CodeLeftControl,
	glfw.KeyRightControl: key.CodeRightControl,
	glfw.KeyLeftShift:    key.CodeLeftShift,
	glfw.KeyRightShift:   key.CodeRightShift,
	glfw.KeyLeftAlt:      key.CodeLeftAlt,
	glfw.KeyRightAlt:     key.CodeRightAlt,
	glfw.KeyLeftSuper:    key.CodeLeftMeta,
	glfw.KeyRightSuper:   key.CodeRightMeta,
}

func glfwKeyCode(ky glfw.Key) key.Codes {
	if kc, ok := glfwKeyCodes[ky]; ok {
		return kc
	}
	return key.CodeUnknown
}

func (sf *Surface) closeEvent(gw *glfw.Window) {
	// the loop decides when to close
	gw.SetShouldClose(false)
	sf.queue.Send(events.NewQuit())
}

// physical key
func (sf *Surface) keyEvent(gw *glfw.Window, ky glfw.Key, scancode int, action glfw.Action, mod glfw.ModifierKey) {
	typ := events.KeyDown
	if action == glfw.Release {
		typ = events.KeyUp
	}
	sf.queue.Send(events.NewKey(typ, glfwKeyCode(ky), glfwMods(mod)))
}

// char input
func (sf *Surface) charEvent(gw *glfw.Window, char rune, mod glfw.ModifierKey) {
	sf.queue.Send(events.NewChar(char, glfwMods(mod)))
}

func curMousePos(gw *glfw.Window) image.Point {
	xp, yp := gw.GetCursorPos()
	return image.Pt(int(xp), int(yp))
}

func (sf *Surface) cursorPosEvent(gw *glfw.Window, x, y float64) {
	sf.queue.Send(events.NewMouseMove(image.Pt(int(x), int(y))))
}

func (sf *Surface) mouseButtonEvent(gw *glfw.Window, button glfw.MouseButton, action glfw.Action, mod glfw.ModifierKey) {
	typ := events.MouseDown
	if action == glfw.Release {
		typ = events.MouseUp
	}
	sf.queue.Send(events.NewMouse(typ, glfwButton(button), curMousePos(gw), glfwMods(mod)))
}

func (sf *Surface) scrollEvent(gw *glfw.Window, xoff, yoff float64) {
	sf.queue.Send(events.NewScroll(curMousePos(gw), mgl32.Vec2{float32(xoff), float32(yoff)}))
}
