// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package system defines the platform surface the frame loop draws
// into: a window with a current graphics context and an input stream.
package system

import (
	"image"

	"cogentcore.org/glcube/events"
)

// Surface is a window with a current graphics context.
// All methods must be called on the main thread.
type Surface interface {
	// PollEvents processes pending platform input and returns
	// the resulting events in order. The slice is only valid
	// until the next call.
	PollEvents() []events.Event

	// SwapBuffers presents the frame drawn since the last swap.
	SwapBuffers()

	// Size returns the window size in screen coordinates.
	Size() image.Point

	// FramebufferSize returns the size of the drawable in pixels,
	// which differs from Size on high-DPI displays.
	FramebufferSize() image.Point

	// Close destroys the window and its graphics context.
	Close()
}

// Options configure the creation of a [Surface].
type Options struct {
	Title string

	// Size is the fixed window size.
	Size image.Point

	// GLMajor and GLMinor are the requested core profile version.
	GLMajor, GLMinor int

	// VSync synchronizes buffer swaps with the display refresh.
	VSync bool
}
