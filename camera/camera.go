// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides the viewer position and the per-frame
// model, view and projection matrices derived from it.
package camera

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// Min and Max bound each camera coordinate.
	Min float32 = -5
	Max float32 = 5
)

var (
	// Target is the point the camera looks at, the center of the unit cube.
	Target = mgl32.Vec3{0.5, 0.5, 0.5}

	// Up is the camera up direction.
	Up = mgl32.Vec3{0, 0, 1}
)

// Camera is the eye position in world coordinates.
type Camera struct {
	X, Y, Z float32
}

// Default returns the starting camera position.
func Default() Camera {
	return Camera{X: 5, Y: -5, Z: 5}
}

// Clamp limits v to [Min, Max]. NaN maps to 0.
func Clamp(v float32) float32 {
	if math32.IsNaN(v) {
		return 0
	}
	return math32.Min(math32.Max(v, Min), Max)
}

// Clamped returns the camera with each coordinate clamped to [Min, Max].
func (c Camera) Clamped() Camera {
	return Camera{X: Clamp(c.X), Y: Clamp(c.Y), Z: Clamp(c.Z)}
}

// Eye returns the position as a vector.
func (c Camera) Eye() mgl32.Vec3 {
	return mgl32.Vec3{c.X, c.Y, c.Z}
}

func (c Camera) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", c.X, c.Y, c.Z)
}
