// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"image"
	"testing"

	"cogentcore.org/glcube/events/key"
	"github.com/stretchr/testify/assert"
)

func TestIsTerminate(t *testing.T) {
	var shift key.Modifiers
	shift.SetFlag(true, key.Shift)
	tests := []struct {
		ev   Event
		want bool
	}{
		{NewQuit(), true},
		{NewKey(KeyDown, key.CodeEscape, 0), true},
		{NewKey(KeyDown, key.CodeEscape, shift), true},
		{NewKey(KeyUp, key.CodeEscape, 0), false},
		{NewKey(KeyDown, key.CodeA, 0), false},
		{NewChar(27, 0), false},
		{NewMouseMove(image.Pt(3, 4)), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.ev.IsTerminate(), tt.ev.String())
	}
}

func TestTypesCategories(t *testing.T) {
	for _, tp := range []Types{KeyDown, KeyUp, Char} {
		assert.True(t, tp.IsKey(), tp.String())
		assert.False(t, tp.IsMouse(), tp.String())
	}
	for _, tp := range []Types{MouseMove, MouseDown, MouseUp, Scroll} {
		assert.True(t, tp.IsMouse(), tp.String())
		assert.False(t, tp.IsKey(), tp.String())
	}
	assert.False(t, Quit.IsKey())
	assert.False(t, Quit.IsMouse())
	assert.Equal(t, "42", Types(42).String())
	assert.Equal(t, "MouseMove", MouseMove.String())
	assert.Equal(t, int(TypesN), len(TypesValues()))
}

func TestQueue(t *testing.T) {
	var q Queue
	assert.Empty(t, q.Drain())

	q.Send(NewMouseMove(image.Pt(1, 1)))
	q.Send(NewQuit())
	assert.Equal(t, 2, q.Len())

	evs := q.Drain()
	assert.Equal(t, []Event{NewMouseMove(image.Pt(1, 1)), NewQuit()}, evs)
	assert.Equal(t, 0, q.Len())

	q.Send(NewKey(KeyDown, key.CodeEscape, 0))
	assert.Equal(t, []Event{NewKey(KeyDown, key.CodeEscape, 0)}, q.Drain())
}

func TestModifiers(t *testing.T) {
	var mo key.Modifiers
	mo.SetFlag(true, key.Shift)
	mo.SetFlag(true, key.Meta)
	assert.True(t, mo.HasFlag(key.Shift))
	assert.False(t, mo.HasFlag(key.Control))
	assert.Equal(t, "Shift|Meta", mo.String())
	mo.SetFlag(false, key.Shift)
	assert.Equal(t, "Meta", mo.String())
	assert.Equal(t, key.Modifiers(1<<key.Meta), mo)

	var parsed key.Modifiers
	assert.NoError(t, parsed.SetString("Control|Alt"))
	assert.True(t, parsed.HasFlag(key.Control))
	assert.True(t, parsed.HasFlag(key.Alt))
	assert.False(t, parsed.HasFlag(key.Shift))
}

func TestCodes(t *testing.T) {
	assert.Equal(t, "Escape", key.CodeEscape.String())
	assert.Equal(t, "Unknown", key.CodeUnknown.String())
	var kc key.Codes
	assert.NoError(t, kc.SetString("Spacebar"))
	assert.Equal(t, key.CodeSpacebar, kc)
	assert.Error(t, kc.SetString("F13"))
}
