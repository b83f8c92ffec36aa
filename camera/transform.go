// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// FieldOfView is the vertical field of view in degrees.
	FieldOfView float32 = 45

	// Near and Far are the clip plane distances.
	Near float32 = 0.1
	Far  float32 = 100
)

// Matrices are the transforms uploaded to the shader each frame.
type Matrices struct {
	Model      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4
}

// Model returns the model matrix; the cube is never moved.
func Model() mgl32.Mat4 {
	return mgl32.Ident4()
}

// View returns the right-handed look-at matrix from the camera
// toward [Target] with [Up]. The matrix has NaN elements when the eye
// is on the vertical line through the target (X = Y = 0.5), where the
// view direction is parallel to Up.
func View(c Camera) mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye(), Target, Up)
}

// Projection returns the perspective matrix for a viewport of the given
// size, mapping depth in [Near, Far] to clip z in [-1, 1].
func Projection(size image.Point) mgl32.Mat4 {
	aspect := float32(1)
	if size.Y > 0 {
		aspect = float32(size.X) / float32(size.Y)
	}
	return mgl32.Perspective(mgl32.DegToRad(FieldOfView), aspect, Near, Far)
}

// Compute returns all three matrices for the camera and viewport size.
// Nothing is cached.
func Compute(c Camera, size image.Point) Matrices {
	return Matrices{
		Model:      Model(),
		View:       View(c),
		Projection: Projection(size),
	}
}
