// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestVector2Ops(t *testing.T) {
	a := Vec2(3, 4)
	b := Vec2(1, 2)

	assert.Equal(t, Vec2(4, 6), a.Add(b))
	assert.Equal(t, Vec2(2, 2), a.Sub(b))
	assert.Equal(t, Vec2(3, 8), a.Mul(b))
	assert.Equal(t, Vec2(6, 8), a.MulScalar(2))
	assert.Equal(t, Vec2(-3, -4), a.Negate())
	assert.Equal(t, float32(5), a.Length())
	assert.Equal(t, float32(11), a.Dot(b))

	n := a.Normal()
	assert.InDelta(t, 1, float64(n.Length()), 1e-6)
	assert.Equal(t, Vector2{}, Vector2{}.Normal())
}

func TestVector2Conversions(t *testing.T) {
	assert.Equal(t, Vec2(3, 4), Vector2FromPoint(image.Pt(3, 4)))
	assert.Equal(t, image.Pt(3, 4), Vec2(3.7, 4.2).ToPoint())

	// 26.6 fixed point carries 64 units per pixel.
	assert.Equal(t, Vec2(1, 2), Vector2FromFixed(fixed.P(1, 2)))
	assert.Equal(t, Vec2(0.5, -0.25), Vector2FromFixed(fixed.Point26_6{X: 32, Y: -16}))
}

func TestVector3Ops(t *testing.T) {
	a := Vec3(1, 0, 0)
	b := Vec3(0, 1, 0)

	assert.Equal(t, Vec3(0, 0, 1), a.Cross(b))
	assert.Equal(t, float32(0), a.Dot(b))
	assert.InDelta(t, 3.1415926/2, float64(a.AngleTo(b)), 1e-5)
	assert.Equal(t, float32(5), Vec3(0, 3, 4).Length())
	assert.InDelta(t, 5, float64(Vec3(1, 1, 1).DistanceTo(Vec3(1, 4, 5))), 1e-6)
}

func TestRotateAxisAngle(t *testing.T) {
	// Rotating x by 90 degrees around z gives y.
	got := Vec3(1, 0, 0).RotateAxisAngle(Vec3(0, 0, 1), DegToRad(90))
	assert.InDelta(t, 0, float64(got.X), 1e-6)
	assert.InDelta(t, 1, float64(got.Y), 1e-6)
	assert.InDelta(t, 0, float64(got.Z), 1e-6)

	// A full turn is the identity.
	got = Vec3(1, 2, 3).RotateAxisAngle(Vec3(0, 1, 0), DegToRad(360))
	assert.InDelta(t, 1, float64(got.X), 1e-5)
	assert.InDelta(t, 2, float64(got.Y), 1e-5)
	assert.InDelta(t, 3, float64(got.Z), 1e-5)
}

func TestMatrix4Identity(t *testing.T) {
	id := Identity4()
	m := NewAxisAngleRotation(Vec3(0, 1, 0), DegToRad(45))

	assert.Equal(t, m, id.Mul(m))
	assert.Equal(t, m, m.Mul(id))
	assert.Equal(t, Vec3(1, 2, 3), Vec3(1, 2, 3).MulMatrix4(id))
}

func TestAxisAngleRotationMatrix(t *testing.T) {
	m := NewAxisAngleRotation(Vec3(0, 0, 1), DegToRad(90))
	got := Vec3(1, 0, 0).MulMatrix4(m)
	assert.InDelta(t, 0, float64(got.X), 1e-6)
	assert.InDelta(t, 1, float64(got.Y), 1e-6)
}

func TestLookAt(t *testing.T) {
	// A camera at origin looking down -z with y up is the identity view.
	m := NewLookAt(Vec3(0, 0, 0), Vec3(0, 0, -1), Vec3(0, 1, 0))
	assert.InDelta(t, 1, float64(m[0]), 1e-6)
	assert.InDelta(t, 1, float64(m[5]), 1e-6)
	assert.InDelta(t, 1, float64(m[10]), 1e-6)
	assert.InDelta(t, 0, float64(m[12]), 1e-6)

	// Translation moves into view space.
	m = NewLookAt(Vec3(0, 0, 5), Vec3(0, 0, 0), Vec3(0, 1, 0))
	p := Vec3(0, 0, 0).MulMatrix4(m)
	assert.InDelta(t, -5, float64(p.Z), 1e-6)
}

func TestPerspective(t *testing.T) {
	m := NewPerspective(DegToRad(90), 1, 1, 100)
	// At 90 degree fovy and aspect 1 the focal terms are 1.
	assert.InDelta(t, 1, float64(m[0]), 1e-5)
	assert.InDelta(t, 1, float64(m[5]), 1e-5)
	assert.Equal(t, float32(-1), m[11])
}

func TestOrtho(t *testing.T) {
	m := NewOrtho(-2, 2, -1, 1, 0.1, 10)
	assert.InDelta(t, 0.5, float64(m[0]), 1e-6)
	assert.InDelta(t, 1, float64(m[5]), 1e-6)
}

func TestScalars(t *testing.T) {
	assert.Equal(t, float32(2), Abs(-2))
	assert.InDelta(t, 180, float64(RadToDeg(DegToRad(180))), 1e-4)
	assert.Equal(t, float32(1), Clamp(5, 0, 1))
	assert.Equal(t, float32(0), Clamp(-5, 0, 1))
	assert.Equal(t, float32(0.5), Clamp(0.5, 0, 1))
}
