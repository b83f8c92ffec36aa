// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"image"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-4

func TestClamp(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{-5, -5},
		{5, 5},
		{4.99, 4.99},
		{5.01, 5},
		{-12, -5},
		{1e9, 5},
		{math32.Inf(1), 5},
		{math32.Inf(-1), -5},
		{math32.NaN(), 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clamp(tt.in), "Clamp(%v)", tt.in)
	}
}

func TestClamped(t *testing.T) {
	for x := float32(-20); x <= 20; x += 0.75 {
		c := Camera{X: x, Y: -x, Z: x * 3}.Clamped()
		for _, v := range []float32{c.X, c.Y, c.Z} {
			assert.GreaterOrEqual(t, v, Min)
			assert.LessOrEqual(t, v, Max)
		}
	}
	assert.Equal(t, Default(), Default().Clamped())
}

func TestModel(t *testing.T) {
	assert.Equal(t, mgl32.Ident4(), Model())
}

var eyes = []Camera{
	Default(),
	{X: -5, Y: -5, Z: -5},
	{X: 0, Y: 3, Z: 1},
	{X: 2.5, Y: 0.5, Z: 0.5},
	{X: 0.1, Y: -4, Z: 2},
}

// inDelta asserts that got matches want element-wise within tol.
func inDelta(t *testing.T, want, got []float32, msgAndArgs ...any) {
	t.Helper()
	if assert.Len(t, got, len(want), msgAndArgs...) {
		for i := range want {
			assert.InDelta(t, want[i], got[i], tol, msgAndArgs...)
		}
	}
}

func TestViewRigid(t *testing.T) {
	for _, c := range eyes {
		v := View(c)
		rot := v.Mat3()
		rrt := rot.Mul3(rot.Transpose())
		ident := mgl32.Ident3()
		inDelta(t, ident[:], rrt[:], "orthonormal rotation for %v", c)
		assert.InDelta(t, 1, rot.Det(), tol)

		trans := v.Col(3).Vec3()
		want := rot.Mul3x1(c.Eye()).Mul(-1)
		inDelta(t, want[:], trans[:], "translation is -R*P for %v", c)
	}
}

func TestViewTarget(t *testing.T) {
	for _, c := range eyes {
		v := View(c)
		dist := c.Eye().Sub(Target).Len()
		got := mgl32.TransformCoordinate(Target, v)
		inDelta(t, []float32{0, 0, -dist}, got[:], "target for %v", c)

		eye := mgl32.TransformCoordinate(c.Eye(), v)
		inDelta(t, []float32{0, 0, 0}, eye[:], "eye at origin for %v", c)
	}
}

func TestViewNearZero(t *testing.T) {
	v := View(Default())
	rot := v.Mat3()
	rrt := rot.Mul3(rot.Transpose())
	for i := range 3 {
		for j := range 3 {
			if i != j {
				assert.InDelta(t, 0, rrt.At(i, j), tol)
			}
		}
	}
	got := mgl32.TransformCoordinate(Target, v)
	assert.InDelta(t, 0, got.X(), tol)
	assert.InDelta(t, 0, got.Y(), tol)
}

func TestViewDegenerate(t *testing.T) {
	for _, z := range []float32{-5, 0, 3} {
		v := View(Camera{X: 0.5, Y: 0.5, Z: z})
		assert.True(t, math32.IsNaN(v.At(0, 0)), "eye above target at z=%v", z)
	}
	assert.False(t, math32.IsNaN(View(Camera{X: 0.5, Y: 0.6, Z: 3}).At(0, 0)))
}

func TestProjectionDepth(t *testing.T) {
	p := Projection(image.Pt(640, 480))

	near := p.Mul4x1(mgl32.Vec4{0, 0, -Near, 1})
	assert.InDelta(t, -1, near.Z()/near.W(), tol)
	assert.InDelta(t, Near, near.W(), tol)

	far := p.Mul4x1(mgl32.Vec4{0, 0, -Far, 1})
	assert.InDelta(t, 1, far.Z()/far.W(), tol)
	assert.InDelta(t, Far, far.W(), tol)

	f := 1 / math32.Tan(mgl32.DegToRad(FieldOfView)/2)
	assert.InDelta(t, f, p.At(1, 1), tol)
	assert.InDelta(t, f/(640.0/480.0), p.At(0, 0), tol)
}

func TestCompute(t *testing.T) {
	size := image.Pt(640, 480)
	m := Compute(Default(), size)
	assert.Equal(t, Model(), m.Model)
	assert.Equal(t, View(Default()), m.View)
	assert.Equal(t, Projection(size), m.Projection)
}
