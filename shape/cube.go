// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape provides the vertex data of the unit cube
// and its encoding for upload to a [gpu.Buffer].
package shape

import (
	"encoding/binary"
	"math"

	"cogentcore.org/glcube/gpu"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// CubeFaces is the number of faces of the cube.
	CubeFaces = 6

	// CubeTriangles is the number of triangles, two per face.
	CubeTriangles = 2 * CubeFaces

	// CubeVertices is the number of vertices, three per triangle.
	CubeVertices = 3 * CubeTriangles
)

// PositionLayout is the layout of a vertex holding only a position.
var PositionLayout = gpu.Layout{{Components: 3, Type: gpu.Float32}}

// cube lists two triangles per face of the unit cube, faces in the
// order z=0, y=0, z=1, y=1, x=1, x=0.
var cube = [CubeVertices]mgl32.Vec3{
	{0, 0, 0}, {0, 1, 0}, {1, 1, 0},
	{0, 0, 0}, {1, 1, 0}, {1, 0, 0},

	{0, 0, 1}, {0, 0, 0}, {1, 0, 0},
	{0, 0, 1}, {1, 0, 0}, {1, 0, 1},

	{0, 1, 1}, {0, 0, 1}, {1, 0, 1},
	{0, 1, 1}, {1, 0, 1}, {1, 1, 1},

	{0, 1, 0}, {0, 1, 1}, {1, 1, 1},
	{0, 1, 0}, {1, 1, 1}, {1, 1, 0},

	{1, 0, 1}, {1, 0, 0}, {1, 1, 0},
	{1, 0, 1}, {1, 1, 0}, {1, 1, 1},

	{0, 1, 1}, {0, 1, 0}, {0, 0, 0},
	{0, 1, 1}, {0, 0, 0}, {0, 0, 1},
}

// Cube returns the 36 vertices of the unit cube [0,1]^3
// as a triangle list.
func Cube() []mgl32.Vec3 {
	vs := make([]mgl32.Vec3, CubeVertices)
	copy(vs, cube[:])
	return vs
}

// Bytes encodes the positions as tightly packed float32 triples in
// little-endian byte order, matching [PositionLayout].
func Bytes(vs []mgl32.Vec3) []byte {
	b := make([]byte, 0, len(vs)*PositionLayout.Size())
	for _, v := range vs {
		for _, c := range v {
			b = binary.LittleEndian.AppendUint32(b, math.Float32bits(c))
		}
	}
	return b
}

// NewCube uploads the cube to a static [gpu.Buffer] on drv.
func NewCube(drv gpu.Driver) (*gpu.Buffer, error) {
	return gpu.NewBuffer(drv, Bytes(Cube()), gpu.StaticDraw, PositionLayout, PositionLayout.Size(), CubeVertices)
}
