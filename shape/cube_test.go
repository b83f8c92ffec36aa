// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"encoding/binary"
	"math"
	"testing"

	"cogentcore.org/glcube/gpu"
	"cogentcore.org/glcube/gpu/gputest"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCubeCoordinates(t *testing.T) {
	vs := Cube()
	require.Len(t, vs, 36)
	for i, v := range vs {
		for _, c := range v {
			assert.True(t, c == 0 || c == 1, "vertex %d: %v", i, v)
		}
	}
}

// face identifies an axis-aligned face of the unit cube.
type face struct {
	axis  int
	value float32
}

func triangleFace(t *testing.T, tri []mgl32.Vec3) face {
	t.Helper()
	var found []face
	for axis := range 3 {
		if tri[0][axis] == tri[1][axis] && tri[1][axis] == tri[2][axis] {
			found = append(found, face{axis, tri[0][axis]})
		}
	}
	require.Len(t, found, 1, "triangle %v must lie on exactly one face", tri)
	return found[0]
}

func TestCubeFaces(t *testing.T) {
	vs := Cube()
	counts := map[face]int{}
	for i := 0; i < len(vs); i += 3 {
		tri := vs[i : i+3]
		counts[triangleFace(t, tri)]++

		e1 := tri[1].Sub(tri[0])
		e2 := tri[2].Sub(tri[0])
		assert.InDelta(t, 0.5, e1.Cross(e2).Len()/2, 1e-6, "triangle %d is a half face", i/3)
	}
	assert.Len(t, counts, CubeFaces)
	for f, n := range counts {
		assert.Equal(t, 2, n, "face %+v", f)
	}
}

func TestCubeFacesCovered(t *testing.T) {
	vs := Cube()
	for i := 0; i < len(vs); i += 6 {
		corners := map[mgl32.Vec3]bool{}
		for _, v := range vs[i : i+6] {
			corners[v] = true
		}
		assert.Len(t, corners, 4, "face %d spans all four corners", i/6)
	}
}

func TestCubeIsCopy(t *testing.T) {
	vs := Cube()
	vs[0] = mgl32.Vec3{9, 9, 9}
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, Cube()[0])
}

func TestBytes(t *testing.T) {
	vs := []mgl32.Vec3{{1, 0, 0.5}}
	b := Bytes(vs)
	require.Len(t, b, 12)
	assert.Equal(t, float32(1), math.Float32frombits(binary.LittleEndian.Uint32(b[0:])))
	assert.Equal(t, float32(0), math.Float32frombits(binary.LittleEndian.Uint32(b[4:])))
	assert.Equal(t, float32(0.5), math.Float32frombits(binary.LittleEndian.Uint32(b[8:])))
	assert.Len(t, Bytes(Cube()), 36*12)
}

func TestNewCube(t *testing.T) {
	rc := &gputest.Recorder{}
	bf, err := NewCube(rc)
	require.NoError(t, err)
	assert.Equal(t, 36, bf.Len())
	assert.Equal(t, 12, bf.Stride())
	require.Len(t, rc.Uploads, 1)
	assert.Equal(t, gpu.StaticDraw, rc.Uploads[0].Usage)
	assert.Equal(t, Bytes(Cube()), rc.Uploads[0].Data)
}
