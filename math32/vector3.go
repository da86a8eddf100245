// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Vector3 is a 3D vector with X, Y and Z components.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3(x, y, z float32) Vector3 {
	return Vector3{x, y, z}
}

// Add adds the other given vector to this one and returns the result.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub subtracts the other given vector from this one and returns the result.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// MulScalar multiplies each component of this vector by the given
// scalar and returns the result.
func (v Vector3) MulScalar(s float32) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Negate returns the vector with each component negated.
func (v Vector3) Negate() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// Length returns the length (magnitude) of the vector.
func (v Vector3) Length() float32 {
	return Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// DistanceTo returns the distance from this vector to the other given vector.
func (v Vector3) DistanceTo(other Vector3) float32 {
	return other.Sub(v).Length()
}

// Dot returns the dot product of this vector with the other given vector.
func (v Vector3) Dot(other Vector3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of this vector with the other given vector.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Normal returns the vector normalized to unit length, or the zero
// vector if its length is zero.
func (v Vector3) Normal() Vector3 {
	l := v.Length()
	if l == 0 {
		return Vector3{}
	}
	return v.MulScalar(1 / l)
}

// AngleTo returns the angle in radians between this vector and the
// other given vector.
func (v Vector3) AngleTo(other Vector3) float32 {
	cross := v.Cross(other).Length()
	dot := v.Dot(other)
	return Atan2(cross, dot)
}

// RotateAxisAngle returns this vector rotated by the given angle in
// radians around the given axis, which need not be normalized.
// It uses the Euler-Rodrigues rotation formula.
func (v Vector3) RotateAxisAngle(axis Vector3, angle float32) Vector3 {
	axis = axis.Normal()

	angle /= 2
	a := Sin(angle)
	b := axis.X * a
	c := axis.Y * a
	d := axis.Z * a
	a = Cos(angle)
	w := Vector3{b, c, d}

	wv := w.Cross(v)
	wwv := w.Cross(wv)

	wv = wv.MulScalar(2 * a)
	wwv = wwv.MulScalar(2)

	return v.Add(wv).Add(wwv)
}

// MulMatrix4 returns this vector transformed by the given matrix
// (applied to the vector as a point, with w = 1).
func (v Vector3) MulMatrix4(m Matrix4) Vector3 {
	return Vector3{
		m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12],
		m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13],
		m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14],
	}
}
