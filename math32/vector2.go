// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"

	"golang.org/x/image/math/fixed"
)

// Vector2 is a 2D vector with X and Y components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// Vector2Scalar returns a new [Vector2] with all components set to the
// given scalar value.
func Vector2Scalar(s float32) Vector2 {
	return Vector2{s, s}
}

// Vector2FromPoint returns a new [Vector2] from the given [image.Point].
func Vector2FromPoint(pt image.Point) Vector2 {
	return Vector2{float32(pt.X), float32(pt.Y)}
}

// Vector2FromFixed returns a new [Vector2] from the given [fixed.Point26_6].
func Vector2FromFixed(pt fixed.Point26_6) Vector2 {
	return Vector2{float32(pt.X) / 64, float32(pt.Y) / 64}
}

// ToPoint returns the vector as an [image.Point], with components truncated.
func (v Vector2) ToPoint() image.Point {
	return image.Pt(int(v.X), int(v.Y))
}

// Add adds the other given vector to this one and returns the result.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{v.X + other.X, v.Y + other.Y}
}

// Sub subtracts the other given vector from this one and returns the result.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{v.X - other.X, v.Y - other.Y}
}

// Mul multiplies this vector by the other given vector component-wise
// and returns the result.
func (v Vector2) Mul(other Vector2) Vector2 {
	return Vector2{v.X * other.X, v.Y * other.Y}
}

// MulScalar multiplies each component of this vector by the given
// scalar and returns the result.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// Negate returns the vector with each component negated.
func (v Vector2) Negate() Vector2 {
	return Vector2{-v.X, -v.Y}
}

// Length returns the length (magnitude) of the vector.
func (v Vector2) Length() float32 {
	return Sqrt(v.X*v.X + v.Y*v.Y)
}

// Dot returns the dot product of this vector with the other given vector.
func (v Vector2) Dot(other Vector2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Normal returns the vector normalized to unit length, or the zero
// vector if its length is zero.
func (v Vector2) Normal() Vector2 {
	l := v.Length()
	if l == 0 {
		return Vector2{}
	}
	return v.MulScalar(1 / l)
}
