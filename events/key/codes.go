// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines physical key codes and modifier flags.
package key

//go:generate core generate

// Codes is the identity of a physical key, independent of keyboard
// layout. Only the keys the application and its overlay react to
// have codes; everything else is CodeUnknown.
type Codes int32 //enums:enum -trim-prefix Code

const (
	CodeUnknown Codes = iota
	CodeEscape
	CodeReturnEnter
	CodeKeypadEnter
	CodeTab
	CodeBackspace
	CodeDeleteForward
	CodeInsert
	CodeSpacebar
	CodeLeftArrow
	CodeRightArrow
	CodeUpArrow
	CodeDownArrow
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown
	CodeA
	CodeC
	CodeV
	CodeX
	CodeY
	CodeZ
	CodeLeftControl
	CodeRightControl
	CodeLeftShift
	CodeRightShift
	CodeLeftAlt
	CodeRightAlt
	CodeLeftMeta
	CodeRightMeta
)
