// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

// Modifiers are the modifier keys held during an event,
// as bit flags indexed by the constants below.
type Modifiers int64 //enums:bitflag

const (
	// Shift is the shift key.
	Shift Modifiers = iota

	// Control is the control key.
	Control

	// Alt is the alt or option key.
	Alt

	// Meta is the super, command or windows key.
	Meta
)
