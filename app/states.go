// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

//go:generate core generate

// States are the states of a [Loop].
type States int32 //enums:enum

const (
	// Running is the initial state: every step draws a frame.
	Running States = iota

	// Terminating is entered on a quit request and never left.
	Terminating
)
