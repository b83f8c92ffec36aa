// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

//go:generate core generate

// Types determines the type of a platform input event.
type Types int32 //enums:enum

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// Quit is sent when the user asks to close the window.
	Quit

	// KeyDown is sent when a key is pressed or auto-repeats.
	KeyDown

	// KeyUp is sent when a key is released.
	KeyUp

	// Char is sent for each text character typed, after
	// keyboard layout and modifiers are applied.
	Char

	// MouseMove is sent when the cursor moves, whether or not
	// a button is down.
	MouseMove

	// MouseDown is sent when a mouse button is pressed.
	MouseDown

	// MouseUp is sent when a mouse button is released.
	MouseUp

	// Scroll is sent for mouse wheel or touchpad scrolling.
	Scroll
)

// IsKey returns true for keyboard and text events.
func (tp Types) IsKey() bool {
	return tp == KeyDown || tp == KeyUp || tp == Char
}

// IsMouse returns true for mouse button, motion and scroll events.
func (tp Types) IsMouse() bool {
	return tp == MouseMove || tp == MouseDown || tp == MouseUp || tp == Scroll
}

// Buttons is a mouse button.
type Buttons int32 //enums:enum

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)
