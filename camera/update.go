// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"github.com/lumen-gfx/lumen/core"
	"github.com/lumen-gfx/lumen/events"
	"github.com/lumen-gfx/lumen/key"
	"github.com/lumen-gfx/lumen/math32"
)

// Update applies one frame of the given control mode, reading keyboard,
// mouse and gamepad state from the context. Call it once per frame
// after [core.Context.PollInputEvents]. [Custom] mode does nothing.
func (c *Camera) Update(ctx *core.Context, mode Modes) {
	mouseDelta := ctx.GetMouseDelta()

	worldPlane := mode == FirstPerson || mode == ThirdPerson
	aroundTarget := mode == ThirdPerson || mode == Orbital
	lockView := mode == Free || mode == FirstPerson || mode == ThirdPerson || mode == Orbital

	dt := ctx.GetFrameTime()
	move := moveSpeed * dt
	rotate := rotationSpeed * dt
	pan := panSpeed * dt

	switch mode {
	case Custom:
		return
	case Orbital:
		rotation := math32.NewAxisAngleRotation(c.UpNormal(), orbitalSpeed*dt)
		view := c.Position.Sub(c.Target).MulMatrix4(rotation)
		c.Position = c.Target.Add(view)
	default:
		if ctx.IsKeyDown(key.CodeDownArrow) {
			c.Pitch(-rotate, lockView, aroundTarget, false)
		}
		if ctx.IsKeyDown(key.CodeUpArrow) {
			c.Pitch(rotate, lockView, aroundTarget, false)
		}
		if ctx.IsKeyDown(key.CodeRightArrow) {
			c.Yaw(-rotate, aroundTarget)
		}
		if ctx.IsKeyDown(key.CodeLeftArrow) {
			c.Yaw(rotate, aroundTarget)
		}
		if ctx.IsKeyDown(key.CodeQ) {
			c.Roll(-rotate)
		}
		if ctx.IsKeyDown(key.CodeE) {
			c.Roll(rotate)
		}

		if mode == Free && ctx.IsMouseButtonDown(events.Middle) {
			if mouseDelta.X > 0 {
				c.MoveRight(pan, worldPlane)
			}
			if mouseDelta.X < 0 {
				c.MoveRight(-pan, worldPlane)
			}
			if mouseDelta.Y > 0 {
				c.MoveUp(-pan)
			}
			if mouseDelta.Y < 0 {
				c.MoveUp(pan)
			}
		} else {
			c.Yaw(-mouseDelta.X*mouseMoveSensitivity, aroundTarget)
			c.Pitch(-mouseDelta.Y*mouseMoveSensitivity, lockView, aroundTarget, false)
		}

		if ctx.IsKeyDown(key.CodeW) {
			c.MoveForward(move, worldPlane)
		}
		if ctx.IsKeyDown(key.CodeA) {
			c.MoveRight(-move, worldPlane)
		}
		if ctx.IsKeyDown(key.CodeS) {
			c.MoveForward(-move, worldPlane)
		}
		if ctx.IsKeyDown(key.CodeD) {
			c.MoveRight(move, worldPlane)
		}

		if ctx.IsGamepadAvailable(0) {
			c.Yaw(-ctx.GetGamepadAxisMovement(0, core.GamepadAxisRightX)*2*mouseMoveSensitivity, aroundTarget)
			c.Pitch(-ctx.GetGamepadAxisMovement(0, core.GamepadAxisRightY)*2*mouseMoveSensitivity, lockView, aroundTarget, false)

			if ctx.GetGamepadAxisMovement(0, core.GamepadAxisLeftY) <= -0.25 {
				c.MoveForward(move, worldPlane)
			}
			if ctx.GetGamepadAxisMovement(0, core.GamepadAxisLeftX) <= -0.25 {
				c.MoveRight(-move, worldPlane)
			}
			if ctx.GetGamepadAxisMovement(0, core.GamepadAxisLeftY) >= 0.25 {
				c.MoveForward(-move, worldPlane)
			}
			if ctx.GetGamepadAxisMovement(0, core.GamepadAxisLeftX) >= 0.25 {
				c.MoveRight(move, worldPlane)
			}
		}

		if mode == Free {
			if ctx.IsKeyDown(key.CodeSpace) {
				c.MoveUp(move)
			}
			if ctx.IsKeyDown(key.CodeLeftControl) {
				c.MoveUp(-move)
			}
		}
	}

	if mode == ThirdPerson || mode == Orbital || mode == Free {
		c.MoveToTarget(-ctx.GetMouseWheelMove())
		if ctx.IsKeyPressed(key.CodeKeypadSubtract) {
			c.MoveToTarget(2)
		}
		if ctx.IsKeyPressed(key.CodeKeypadAdd) {
			c.MoveToTarget(-2)
		}
	}
}

// UpdatePro applies user-provided movement and rotation for one frame,
// for programs implementing their own camera controls. Movement is
// forward/right/up in world-plane units; rotation is yaw/pitch/roll in
// degrees; zoom moves toward the target.
func (c *Camera) UpdatePro(movement, rotation math32.Vector3, zoom float32) {
	c.Pitch(-math32.DegToRad(rotation.Y), true, false, false)
	c.Yaw(-math32.DegToRad(rotation.X), false)
	c.Roll(math32.DegToRad(rotation.Z))

	c.MoveForward(movement.X, true)
	c.MoveRight(movement.Y, true)
	c.MoveUp(movement.Z)

	c.MoveToTarget(zoom)
}
