// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "fmt"

// Attrib describes one vertex attribute: the number of components
// and their element type, e.g., {3, Float32} for a position.
type Attrib struct {
	Components int
	Type       Types
}

// Bytes returns the size of the attribute in bytes.
func (at Attrib) Bytes() int {
	return at.Components * TypeBytes(at.Type)
}

func (at Attrib) String() string {
	return fmt.Sprintf("%dx%v", at.Components, at.Type)
}

// Layout is the ordered list of attributes in one interleaved vertex record.
// Attribute i is bound to shader location i, and attributes are tightly
// packed in declaration order.
type Layout []Attrib

// Size returns the number of bytes of one tightly packed record.
func (ly Layout) Size() int {
	sz := 0
	for _, at := range ly {
		sz += at.Bytes()
	}
	return sz
}

// Offsets returns the byte offset of each attribute within a record.
func (ly Layout) Offsets() []int {
	offs := make([]int, len(ly))
	off := 0
	for i, at := range ly {
		offs[i] = off
		off += at.Bytes()
	}
	return offs
}

// Validate returns an error wrapping [ErrInvalidLayout] if the layout
// is empty or has an attribute the driver cannot bind.
func (ly Layout) Validate() error {
	if len(ly) == 0 {
		return fmt.Errorf("%w: no attributes", ErrInvalidLayout)
	}
	for i, at := range ly {
		if at.Components < 1 || at.Components > 4 {
			return fmt.Errorf("%w: attribute %d has %d components", ErrInvalidLayout, i, at.Components)
		}
		if TypeBytes(at.Type) == 0 {
			return fmt.Errorf("%w: attribute %d has type %v", ErrInvalidLayout, i, at.Type)
		}
	}
	return nil
}
