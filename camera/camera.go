// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides a basic 3D camera with free, orbital,
// first-person and third-person control modes driven by the platform
// input state.
package camera

import (
	"github.com/lumen-gfx/lumen/math32"
)

// Movement and rotation speeds, in units and radians per second, tuned
// to feel right at typical scene scales.
const (
	moveSpeed            = 5.4
	rotationSpeed        = 0.03
	panSpeed             = 0.2
	mouseMoveSensitivity = 0.003
	orbitalSpeed         = 0.5

	cullDistanceNear = 0.05
	cullDistanceFar  = 4000.0
)

// Projections are the camera projection types.
type Projections int32

const (
	// Perspective projection with the configured field of view.
	Perspective Projections = iota

	// Orthographic projection; [Camera.FOVY] is the vertical extent.
	Orthographic
)

// Modes are the built-in camera control modes applied by
// [Camera.Update].
type Modes int32

const (
	// Custom leaves the camera untouched; the program moves it.
	Custom Modes = iota

	// Free allows full keyboard and mouse movement with middle-button
	// panning.
	Free

	// Orbital circles the camera around its target automatically.
	Orbital

	// FirstPerson moves in the world plane, rotating around the
	// camera position.
	FirstPerson

	// ThirdPerson moves in the world plane, rotating around the
	// target.
	ThirdPerson
)

// Camera is a 3D camera defined by position, target and up direction.
type Camera struct {

	// Position is the camera position in world space.
	Position math32.Vector3

	// Target is the point the camera looks at.
	Target math32.Vector3

	// Up is the camera up direction, not necessarily perpendicular to
	// the view direction.
	Up math32.Vector3

	// FOVY is the vertical field of view in degrees for perspective
	// projection, or the vertical extent for orthographic.
	FOVY float32

	// Projection is the projection type.
	Projection Projections
}

// Forward returns the normalized view direction.
func (c *Camera) Forward() math32.Vector3 {
	return c.Target.Sub(c.Position).Normal()
}

// UpNormal returns the normalized up direction.
func (c *Camera) UpNormal() math32.Vector3 {
	return c.Up.Normal()
}

// Right returns the normalized right direction.
func (c *Camera) Right() math32.Vector3 {
	return c.Forward().Cross(c.UpNormal()).Normal()
}

// MoveForward moves the camera along its view direction. With
// worldPlane set, movement is projected onto the plane defined by the
// up direction, so the camera does not gain height while walking.
func (c *Camera) MoveForward(distance float32, worldPlane bool) {
	forward := c.Forward()
	if worldPlane {
		forward = c.projectToWorldPlane(forward)
	}
	forward = forward.MulScalar(distance)
	c.Position = c.Position.Add(forward)
	c.Target = c.Target.Add(forward)
}

// MoveUp moves the camera along its up direction.
func (c *Camera) MoveUp(distance float32) {
	up := c.UpNormal().MulScalar(distance)
	c.Position = c.Position.Add(up)
	c.Target = c.Target.Add(up)
}

// MoveRight moves the camera along its right direction, optionally
// projected onto the world plane as for [Camera.MoveForward].
func (c *Camera) MoveRight(distance float32, worldPlane bool) {
	right := c.Right()
	if worldPlane {
		right = c.projectToWorldPlane(right)
	}
	right = right.MulScalar(distance)
	c.Position = c.Position.Add(right)
	c.Target = c.Target.Add(right)
}

func (c *Camera) projectToWorldPlane(v math32.Vector3) math32.Vector3 {
	switch {
	case math32.Abs(c.Up.Z) > 0.7071:
		v.Z = 0
	case math32.Abs(c.Up.X) > 0.7071:
		v.X = 0
	default:
		v.Y = 0
	}
	return v.Normal()
}

// MoveToTarget moves the camera position closer to or farther from the
// target by delta, never crossing through it.
func (c *Camera) MoveToTarget(delta float32) {
	distance := c.Position.DistanceTo(c.Target) + delta
	if distance <= 0 {
		distance = 0.001
	}
	c.Position = c.Target.Add(c.Forward().MulScalar(-distance))
}

// Yaw rotates the camera around its up direction by the given angle in
// radians: looking left and right. With aroundTarget set, the position
// orbits the target; otherwise the target swings around the position.
func (c *Camera) Yaw(angle float32, aroundTarget bool) {
	up := c.UpNormal()
	view := c.Target.Sub(c.Position).RotateAxisAngle(up, angle)
	if aroundTarget {
		c.Position = c.Target.Sub(view)
	} else {
		c.Target = c.Position.Add(view)
	}
}

// Pitch rotates the camera around its right direction by the given
// angle in radians: looking up and down. With lockView set, the angle
// is clamped so the view cannot flip over the vertical. With rotateUp
// set, the up direction rotates too, which only makes sense in free
// mode.
func (c *Camera) Pitch(angle float32, lockView, aroundTarget, rotateUp bool) {
	up := c.UpNormal()
	view := c.Target.Sub(c.Position)

	if lockView {
		maxUp := up.AngleTo(view) - 0.001
		if angle > maxUp {
			angle = maxUp
		}
		maxDown := -up.Negate().AngleTo(view) + 0.001
		if angle < maxDown {
			angle = maxDown
		}
	}

	right := c.Right()
	view = view.RotateAxisAngle(right, angle)
	if aroundTarget {
		c.Position = c.Target.Sub(view)
	} else {
		c.Target = c.Position.Add(view)
	}
	if rotateUp {
		c.Up = c.Up.RotateAxisAngle(right, angle)
	}
}

// Roll rotates the up direction around the view direction by the given
// angle in radians: tilting the head sideways.
func (c *Camera) Roll(angle float32) {
	c.Up = c.Up.RotateAxisAngle(c.Forward(), angle)
}

// ViewMatrix returns the camera view matrix.
func (c *Camera) ViewMatrix() math32.Matrix4 {
	return math32.NewLookAt(c.Position, c.Target, c.Up)
}

// ProjectionMatrix returns the camera projection matrix for the given
// aspect ratio.
func (c *Camera) ProjectionMatrix(aspect float32) math32.Matrix4 {
	switch c.Projection {
	case Perspective:
		return math32.NewPerspective(math32.DegToRad(c.FOVY), aspect, cullDistanceNear, cullDistanceFar)
	case Orthographic:
		top := c.FOVY / 2
		right := top * aspect
		return math32.NewOrtho(-right, right, -top, top, cullDistanceNear, cullDistanceFar)
	}
	return math32.Identity4()
}
