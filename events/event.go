// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the platform input events
// delivered by a [system.Surface].
package events

import (
	"fmt"
	"image"

	"cogentcore.org/glcube/events/key"
	"github.com/go-gl/mathgl/mgl32"
)

// Event is one platform input event. Only the fields relevant
// to its Type are set.
type Event struct {
	Type Types

	// Code is the physical key for KeyDown and KeyUp.
	Code key.Codes

	// Rune is the typed character for Char.
	Rune rune

	// Mods are the modifier keys held during the event.
	Mods key.Modifiers

	// Button is the mouse button for MouseDown and MouseUp.
	Button Buttons

	// Where is the cursor position in window pixels for mouse events.
	Where image.Point

	// Delta is the scroll amount for Scroll.
	Delta mgl32.Vec2
}

// NewQuit returns a Quit event.
func NewQuit() Event {
	return Event{Type: Quit}
}

// NewKey returns a KeyDown or KeyUp event.
func NewKey(typ Types, code key.Codes, mods key.Modifiers) Event {
	return Event{Type: typ, Code: code, Mods: mods}
}

// NewChar returns a Char event.
func NewChar(r rune, mods key.Modifiers) Event {
	return Event{Type: Char, Rune: r, Mods: mods}
}

// NewMouseMove returns a MouseMove event.
func NewMouseMove(where image.Point) Event {
	return Event{Type: MouseMove, Where: where}
}

// NewMouse returns a MouseDown or MouseUp event.
func NewMouse(typ Types, but Buttons, where image.Point, mods key.Modifiers) Event {
	return Event{Type: typ, Button: but, Where: where, Mods: mods}
}

// NewScroll returns a Scroll event.
func NewScroll(where image.Point, delta mgl32.Vec2) Event {
	return Event{Type: Scroll, Where: where, Delta: delta}
}

// IsTerminate returns true for the events that end the frame loop:
// Quit and a KeyDown of Escape.
func (ev Event) IsTerminate() bool {
	return ev.Type == Quit || (ev.Type == KeyDown && ev.Code == key.CodeEscape)
}

func (ev Event) String() string {
	switch {
	case ev.Type.IsKey():
		if ev.Type == Char {
			return fmt.Sprintf("%v{Rune: %q, Mods: %v}", ev.Type, ev.Rune, ev.Mods)
		}
		return fmt.Sprintf("%v{Code: %v, Mods: %v}", ev.Type, ev.Code, ev.Mods)
	case ev.Type == Scroll:
		return fmt.Sprintf("%v{Pos: %v, Delta: %v}", ev.Type, ev.Where, ev.Delta)
	case ev.Type.IsMouse():
		return fmt.Sprintf("%v{Button: %v, Pos: %v, Mods: %v}", ev.Type, ev.Button, ev.Where, ev.Mods)
	}
	return ev.Type.String()
}
