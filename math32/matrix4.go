// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix4 is a 4x4 matrix stored in column-major order, as expected by
// graphics APIs.
type Matrix4 [16]float32

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// NewLookAt returns a view matrix for a camera at eye, looking at
// target, with the given up direction.
func NewLookAt(eye, target, up Vector3) Matrix4 {
	vz := eye.Sub(target).Normal()
	vx := up.Cross(vz).Normal()
	vy := vz.Cross(vx)

	return Matrix4{
		vx.X, vy.X, vz.X, 0,
		vx.Y, vy.Y, vz.Y, 0,
		vx.Z, vy.Z, vz.Z, 0,
		-vx.Dot(eye), -vy.Dot(eye), -vz.Dot(eye), 1,
	}
}

// NewPerspective returns a perspective projection matrix for the given
// vertical field of view in radians, aspect ratio, and near and far
// clipping planes.
func NewPerspective(fovy, aspect, near, far float32) Matrix4 {
	top := near * Tan(fovy/2)
	right := top * aspect
	rl := 2 * right
	tb := 2 * top
	fn := far - near

	return Matrix4{
		2 * near / rl, 0, 0, 0,
		0, 2 * near / tb, 0, 0,
		0, 0, -(far + near) / fn, -1,
		0, 0, -2 * far * near / fn, 0,
	}
}

// NewOrtho returns an orthographic projection matrix for the given
// clipping extents.
func NewOrtho(left, right, bottom, top, near, far float32) Matrix4 {
	rl := right - left
	tb := top - bottom
	fn := far - near

	return Matrix4{
		2 / rl, 0, 0, 0,
		0, 2 / tb, 0, 0,
		0, 0, -2 / fn, 0,
		-(right + left) / rl, -(top + bottom) / tb, -(far + near) / fn, 1,
	}
}

// NewAxisAngleRotation returns a rotation matrix around the given axis
// by the given angle in radians. The axis need not be normalized.
func NewAxisAngleRotation(axis Vector3, angle float32) Matrix4 {
	axis = axis.Normal()
	s := Sin(angle)
	c := Cos(angle)
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z

	return Matrix4{
		t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0,
		t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0,
		t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}
}

// Mul returns the matrix product of this matrix with the other given
// matrix (this * other).
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var out Matrix4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * other[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}
