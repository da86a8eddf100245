// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image"

	"github.com/lumen-gfx/lumen/events"
	"github.com/lumen-gfx/lumen/key"
	"github.com/lumen-gfx/lumen/math32"
)

// Input system limits. Queue overflow is dropped silently; it is not
// an error.
const (
	// MaxKeyPressedQueue is the capacity of the per-frame pressed-key
	// FIFO read by [Context.GetKeyPressed].
	MaxKeyPressedQueue = 16

	// MaxCharPressedQueue is the capacity of the per-frame character
	// FIFO read by [Context.GetCharPressed].
	MaxCharPressedQueue = 16

	// MaxTouchPoints is the number of tracked touch points.
	MaxTouchPoints = 8

	// MaxGamepads is the number of tracked gamepads.
	MaxGamepads = 4
)

// GamepadButtons is a gamepad button, in the standard dual-stick
// controller layout.
type GamepadButtons int32

const (
	// GamepadButtonUnknown is the "no button" sentinel that
	// [GamepadState.LastButtonPressed] resets to every frame.
	GamepadButtonUnknown GamepadButtons = -1
)

const (
	GamepadA GamepadButtons = iota
	GamepadB
	GamepadX
	GamepadY
	GamepadLeftBumper
	GamepadRightBumper
	GamepadBack
	GamepadStart
	GamepadGuide
	GamepadLeftThumb
	GamepadRightThumb
	GamepadDpadUp
	GamepadDpadRight
	GamepadDpadDown
	GamepadDpadLeft

	// GamepadButtonsN is the size of per-button snapshot arrays.
	GamepadButtonsN
)

// GamepadAxes is a gamepad analog axis.
type GamepadAxes int32

const (
	GamepadAxisLeftX GamepadAxes = iota
	GamepadAxisLeftY
	GamepadAxisRightX
	GamepadAxisRightY
	GamepadAxisLeftTrigger
	GamepadAxisRightTrigger

	// GamepadAxesN is the size of per-axis value arrays.
	GamepadAxesN
)

// InputState is the input sub-state of a [Context], one snapshot pair
// per device class. For every device array, the Previous state at
// frame N equals the Current state at frame N-1: the poll rotates
// current into previous before the backend ingests new events.
type InputState struct {
	Keyboard KeyboardState
	Mouse    MouseState
	Touch    TouchState
	Gamepad  GamepadState
}

// KeyboardState is the keyboard snapshot state.
type KeyboardState struct {

	// Current and Previous are the per-key down states for this frame
	// and the immediately preceding one.
	Current  [key.CodesN]bool
	Previous [key.CodesN]bool

	// RepeatInFrame marks keys that fired an OS auto-repeat this
	// frame, distinct from a fresh press.
	RepeatInFrame [key.CodesN]bool

	// PressedQueue is the bounded FIFO of keys pressed this frame.
	PressedQueue []key.Codes

	// CharQueue is the bounded FIFO of characters typed this frame.
	CharQueue []rune

	// ExitKey, when pressed, requests window close. CodeNull disables
	// the exit key.
	ExitKey key.Codes
}

// MouseState is the mouse snapshot state.
type MouseState struct {

	// CurrentPosition and PreviousPosition are the raw positions for
	// this frame and the immediately preceding one.
	CurrentPosition  math32.Vector2
	PreviousPosition math32.Vector2

	// Offset and Scale adjust positions reported by
	// [Context.GetMousePosition].
	Offset math32.Vector2
	Scale  math32.Vector2

	// CursorHidden reports whether the cursor is currently invisible.
	CursorHidden bool

	// Cursor is the current cursor shape.
	Cursor Cursors

	// CurrentButtons and PreviousButtons are the per-button down
	// states for this frame and the immediately preceding one.
	CurrentButtons  [events.ButtonsN]bool
	PreviousButtons [events.ButtonsN]bool

	// WheelMove is this frame's wheel movement.
	WheelMove math32.Vector2
}

// TouchState is the touch snapshot state.
type TouchState struct {

	// Current and Previous are the per-point contact states for this
	// frame and the immediately preceding one.
	Current  [MaxTouchPoints]bool
	Previous [MaxTouchPoints]bool

	// Positions are the last known positions per point. Positions are
	// not reset by the poll: an idle point keeps its last known
	// position until a move event refreshes it.
	Positions [MaxTouchPoints]math32.Vector2

	// PointCount is the number of points currently in contact.
	PointCount int
}

// GamepadState is the gamepad snapshot state.
type GamepadState struct {

	// Ready reports which gamepad slots have a connected device.
	Ready [MaxGamepads]bool

	// Names are the device names of connected gamepads.
	Names [MaxGamepads]string

	// CurrentButtons and PreviousButtons are the per-pad button down
	// states for this frame and the immediately preceding one.
	CurrentButtons  [MaxGamepads][GamepadButtonsN]bool
	PreviousButtons [MaxGamepads][GamepadButtonsN]bool

	// Axes are the current analog axis values per pad.
	Axes [MaxGamepads][GamepadAxesN]float32

	// AxisCounts are the number of valid axes per pad.
	AxisCounts [MaxGamepads]int

	// LastButtonPressed is the most recent button press seen this
	// frame, or [GamepadButtonUnknown].
	LastButtonPressed GamepadButtons
}

// PollInputEvents refreshes the input snapshot state for a new frame.
// It must be called exactly once per frame, before any draw calls.
//
// The ordering is the load-bearing invariant of the input system:
// transient queues are reset, snapshot state is rotated current into
// previous, and only then does the backend ingest this frame's events
// into the current state. Edge queries compare current against the
// previous frame's state captured here.
func (ctx *Context) PollInputEvents() {
	if ctx.UpdateGestures != nil {
		ctx.UpdateGestures()
	}

	kb := &ctx.Input.Keyboard
	kb.PressedQueue = kb.PressedQueue[:0]
	kb.CharQueue = kb.CharQueue[:0]
	kb.RepeatInFrame = [key.CodesN]bool{}

	ctx.Input.Gamepad.LastButtonPressed = GamepadButtonUnknown

	tc := &ctx.Input.Touch
	tc.Previous = tc.Current
	// Touch positions are deliberately not reset here: zeroing them
	// would lose the position of idle points until the next move event.

	kb.Previous = kb.Current

	m := &ctx.Input.Mouse
	m.PreviousPosition = m.CurrentPosition
	m.PreviousButtons = m.CurrentButtons
	m.WheelMove = math32.Vector2{}

	g := &ctx.Input.Gamepad
	g.PreviousButtons = g.CurrentButtons

	ctx.Window.ResizedLastFrame = false

	if ctx.platform != nil {
		ctx.platform.PollEvents()
	}
}

// ProcessEvent applies a single backend event to the current input
// state. Backends call this (usually via their event queue) during
// [Platform.PollEvents].
func (ctx *Context) ProcessEvent(ev events.Event) {
	switch ev.Type {
	case events.KeyDown:
		ctx.keyDown(ev.Key, ev.Repeat)
	case events.KeyUp:
		ctx.keyUp(ev.Key)
	case events.KeyChar:
		ctx.keyChar(ev.Rune)
	case events.MouseDown:
		ctx.mouseButton(ev.Button, true)
	case events.MouseUp:
		ctx.mouseButton(ev.Button, false)
	case events.MouseMove:
		ctx.mouseMove(ev.Pos)
	case events.MouseScroll:
		ctx.Input.Mouse.WheelMove = ev.Delta
	case events.TouchDown:
		ctx.touch(ev.Touch, true, ev.Pos)
	case events.TouchUp:
		ctx.touch(ev.Touch, false, ev.Pos)
	case events.TouchMove:
		ctx.touchMove(ev.Touch, ev.Pos)
	case events.WindowClose:
		ctx.Window.ShouldClose = true
	case events.WindowResize:
		ctx.resize(ev.Size)
	case events.WindowFocus:
		if ev.Focused {
			ctx.Window.Flags.Clear(FlagUnfocused)
		} else {
			ctx.Window.Flags.Set(FlagUnfocused)
		}
	}
}

func (ctx *Context) keyDown(k key.Codes, repeat bool) {
	if !k.IsValid() {
		return
	}
	kb := &ctx.Input.Keyboard
	kb.Current[k] = true
	if repeat {
		kb.RepeatInFrame[k] = true
		return
	}
	if len(kb.PressedQueue) < MaxKeyPressedQueue {
		kb.PressedQueue = append(kb.PressedQueue, k)
	}
	if k == kb.ExitKey {
		ctx.Window.ShouldClose = true
	}
}

func (ctx *Context) keyUp(k key.Codes) {
	if !k.IsValid() {
		return
	}
	ctx.Input.Keyboard.Current[k] = false
}

func (ctx *Context) keyChar(r rune) {
	kb := &ctx.Input.Keyboard
	if r > 0 && len(kb.CharQueue) < MaxCharPressedQueue {
		kb.CharQueue = append(kb.CharQueue, r)
	}
}

func (ctx *Context) mouseButton(b events.Buttons, down bool) {
	if b < 0 || b >= events.ButtonsN {
		return
	}
	ctx.Input.Mouse.CurrentButtons[b] = down
	// A mouse press also acts as touch point 0 for touch-unaware code.
	if b == events.Left {
		ctx.Input.Touch.Current[0] = down
		ctx.Input.Touch.Positions[0] = ctx.Input.Mouse.CurrentPosition
	}
}

func (ctx *Context) mouseMove(pos math32.Vector2) {
	ctx.Input.Mouse.CurrentPosition = pos
	ctx.Input.Touch.Positions[0] = pos
}

func (ctx *Context) touch(point int, down bool, pos math32.Vector2) {
	if point < 0 || point >= MaxTouchPoints {
		return
	}
	tc := &ctx.Input.Touch
	tc.Current[point] = down
	tc.Positions[point] = pos
	n := 0
	for _, d := range tc.Current {
		if d {
			n++
		}
	}
	tc.PointCount = n
}

func (ctx *Context) touchMove(point int, pos math32.Vector2) {
	if point < 0 || point >= MaxTouchPoints {
		return
	}
	ctx.Input.Touch.Positions[point] = pos
}

func (ctx *Context) resize(size image.Point) {
	w := &ctx.Window
	w.Screen = size
	w.Render = image.Pt(
		int(float32(size.X)*w.ScreenScale.X),
		int(float32(size.Y)*w.ScreenScale.Y),
	)
	w.CurrentFBO = w.Render
	w.ResizedLastFrame = true
}

// GamepadConnectionEvent records a gamepad arriving or leaving.
func (ctx *Context) GamepadConnectionEvent(pad int, connected bool, name string) {
	if pad < 0 || pad >= MaxGamepads {
		return
	}
	g := &ctx.Input.Gamepad
	g.Ready[pad] = connected
	if connected {
		g.Names[pad] = name
	} else {
		g.Names[pad] = ""
		g.CurrentButtons[pad] = [GamepadButtonsN]bool{}
		g.Axes[pad] = [GamepadAxesN]float32{}
		g.AxisCounts[pad] = 0
	}
}

// GamepadButtonEvent records a gamepad button state change.
func (ctx *Context) GamepadButtonEvent(pad int, b GamepadButtons, down bool) {
	if pad < 0 || pad >= MaxGamepads || b < 0 || b >= GamepadButtonsN {
		return
	}
	g := &ctx.Input.Gamepad
	g.CurrentButtons[pad][b] = down
	if down {
		g.LastButtonPressed = b
	}
}

// GamepadAxisEvent records a gamepad axis value.
func (ctx *Context) GamepadAxisEvent(pad int, axis GamepadAxes, value float32) {
	if pad < 0 || pad >= MaxGamepads || axis < 0 || axis >= GamepadAxesN {
		return
	}
	g := &ctx.Input.Gamepad
	g.Axes[pad][axis] = value
	if int(axis)+1 > g.AxisCounts[pad] {
		g.AxisCounts[pad] = int(axis) + 1
	}
}

// RequestClose asks the frame loop to exit; [Context.WindowShouldClose]
// returns true from now on.
func (ctx *Context) RequestClose() {
	ctx.Window.ShouldClose = true
}

// IsKeyDown reports whether the given key is currently down.
func (ctx *Context) IsKeyDown(k key.Codes) bool {
	if !k.IsValid() {
		return false
	}
	return ctx.Input.Keyboard.Current[k]
}

// IsKeyUp reports whether the given key is currently up.
func (ctx *Context) IsKeyUp(k key.Codes) bool {
	return !ctx.IsKeyDown(k)
}

// IsKeyPressed reports whether the given key went down this frame.
func (ctx *Context) IsKeyPressed(k key.Codes) bool {
	if !k.IsValid() {
		return false
	}
	kb := &ctx.Input.Keyboard
	return kb.Current[k] && !kb.Previous[k]
}

// IsKeyPressedRepeat reports whether the given key fired an OS
// auto-repeat this frame.
func (ctx *Context) IsKeyPressedRepeat(k key.Codes) bool {
	if !k.IsValid() {
		return false
	}
	return ctx.Input.Keyboard.RepeatInFrame[k]
}

// IsKeyReleased reports whether the given key went up this frame.
func (ctx *Context) IsKeyReleased(k key.Codes) bool {
	if !k.IsValid() {
		return false
	}
	kb := &ctx.Input.Keyboard
	return !kb.Current[k] && kb.Previous[k]
}

// GetKeyPressed dequeues and returns the next key pressed this frame,
// or [key.CodeNull] when the queue is empty.
func (ctx *Context) GetKeyPressed() key.Codes {
	kb := &ctx.Input.Keyboard
	if len(kb.PressedQueue) == 0 {
		return key.CodeNull
	}
	k := kb.PressedQueue[0]
	kb.PressedQueue = append(kb.PressedQueue[:0], kb.PressedQueue[1:]...)
	return k
}

// GetCharPressed dequeues and returns the next character typed this
// frame, or 0 when the queue is empty.
func (ctx *Context) GetCharPressed() rune {
	kb := &ctx.Input.Keyboard
	if len(kb.CharQueue) == 0 {
		return 0
	}
	r := kb.CharQueue[0]
	kb.CharQueue = append(kb.CharQueue[:0], kb.CharQueue[1:]...)
	return r
}

// SetExitKey sets the key that requests window close when pressed.
// [key.CodeNull] disables it.
func (ctx *Context) SetExitKey(k key.Codes) {
	ctx.Input.Keyboard.ExitKey = k
}

// GetKeyName returns the OS name for the given key, or an empty
// string on backends without key name reporting.
func (ctx *Context) GetKeyName(k key.Codes) string {
	if ctx.platform == nil {
		return ""
	}
	return ctx.platform.KeyName(k)
}

// IsMouseButtonDown reports whether the given mouse button is
// currently down.
func (ctx *Context) IsMouseButtonDown(b events.Buttons) bool {
	if b < 0 || b >= events.ButtonsN {
		return false
	}
	return ctx.Input.Mouse.CurrentButtons[b]
}

// IsMouseButtonUp reports whether the given mouse button is currently up.
func (ctx *Context) IsMouseButtonUp(b events.Buttons) bool {
	return !ctx.IsMouseButtonDown(b)
}

// IsMouseButtonPressed reports whether the given mouse button went
// down this frame.
func (ctx *Context) IsMouseButtonPressed(b events.Buttons) bool {
	if b < 0 || b >= events.ButtonsN {
		return false
	}
	m := &ctx.Input.Mouse
	return m.CurrentButtons[b] && !m.PreviousButtons[b]
}

// IsMouseButtonReleased reports whether the given mouse button went
// up this frame.
func (ctx *Context) IsMouseButtonReleased(b events.Buttons) bool {
	if b < 0 || b >= events.ButtonsN {
		return false
	}
	m := &ctx.Input.Mouse
	return !m.CurrentButtons[b] && m.PreviousButtons[b]
}

// GetMousePosition returns the mouse position, adjusted by the
// configured offset and scale.
func (ctx *Context) GetMousePosition() math32.Vector2 {
	m := &ctx.Input.Mouse
	return m.CurrentPosition.Add(m.Offset).Mul(m.Scale)
}

// GetMouseX returns the adjusted mouse x position.
func (ctx *Context) GetMouseX() int {
	return int(ctx.GetMousePosition().X)
}

// GetMouseY returns the adjusted mouse y position.
func (ctx *Context) GetMouseY() int {
	return int(ctx.GetMousePosition().Y)
}

// GetMouseDelta returns the raw mouse movement between the previous
// frame and this one.
func (ctx *Context) GetMouseDelta() math32.Vector2 {
	m := &ctx.Input.Mouse
	return m.CurrentPosition.Sub(m.PreviousPosition)
}

// SetMousePosition moves the mouse to the given position. Both the
// current and previous positions are set, so the warp produces no
// movement delta.
func (ctx *Context) SetMousePosition(x, y int) {
	m := &ctx.Input.Mouse
	m.CurrentPosition = math32.Vec2(float32(x), float32(y))
	m.PreviousPosition = m.CurrentPosition
	if ctx.platform != nil {
		ctx.platform.WarpMousePosition(x, y)
	}
}

// SetMouseOffset sets the offset applied to reported mouse positions.
func (ctx *Context) SetMouseOffset(x, y int) {
	ctx.Input.Mouse.Offset = math32.Vec2(float32(x), float32(y))
}

// SetMouseScale sets the scale applied to reported mouse positions.
func (ctx *Context) SetMouseScale(sx, sy float32) {
	ctx.Input.Mouse.Scale = math32.Vec2(sx, sy)
}

// GetMouseWheelMove returns this frame's wheel movement on the
// dominant axis.
func (ctx *Context) GetMouseWheelMove() float32 {
	w := ctx.Input.Mouse.WheelMove
	if math32.Abs(w.X) > math32.Abs(w.Y) {
		return w.X
	}
	return w.Y
}

// GetMouseWheelMoveV returns this frame's wheel movement on both axes.
func (ctx *Context) GetMouseWheelMoveV() math32.Vector2 {
	return ctx.Input.Mouse.WheelMove
}

// GetTouchPosition returns the last known position of the given touch
// point. Idle points retain their position from previous frames.
func (ctx *Context) GetTouchPosition(point int) math32.Vector2 {
	if point < 0 || point >= MaxTouchPoints {
		return math32.Vector2{}
	}
	return ctx.Input.Touch.Positions[point]
}

// GetTouchX returns the x position of touch point 0.
func (ctx *Context) GetTouchX() int {
	return int(ctx.Input.Touch.Positions[0].X)
}

// GetTouchY returns the y position of touch point 0.
func (ctx *Context) GetTouchY() int {
	return int(ctx.Input.Touch.Positions[0].Y)
}

// GetTouchPointCount returns the number of touch points currently in
// contact.
func (ctx *Context) GetTouchPointCount() int {
	return ctx.Input.Touch.PointCount
}

// IsGamepadAvailable reports whether a gamepad is connected in the
// given slot.
func (ctx *Context) IsGamepadAvailable(pad int) bool {
	if pad < 0 || pad >= MaxGamepads {
		return false
	}
	return ctx.Input.Gamepad.Ready[pad]
}

// GetGamepadName returns the device name of the gamepad in the given
// slot, or an empty string.
func (ctx *Context) GetGamepadName(pad int) string {
	if pad < 0 || pad >= MaxGamepads {
		return ""
	}
	return ctx.Input.Gamepad.Names[pad]
}

// IsGamepadButtonDown reports whether the given gamepad button is
// currently down.
func (ctx *Context) IsGamepadButtonDown(pad int, b GamepadButtons) bool {
	if pad < 0 || pad >= MaxGamepads || b < 0 || b >= GamepadButtonsN {
		return false
	}
	return ctx.Input.Gamepad.CurrentButtons[pad][b]
}

// IsGamepadButtonUp reports whether the given gamepad button is
// currently up.
func (ctx *Context) IsGamepadButtonUp(pad int, b GamepadButtons) bool {
	return !ctx.IsGamepadButtonDown(pad, b)
}

// IsGamepadButtonPressed reports whether the given gamepad button
// went down this frame.
func (ctx *Context) IsGamepadButtonPressed(pad int, b GamepadButtons) bool {
	if pad < 0 || pad >= MaxGamepads || b < 0 || b >= GamepadButtonsN {
		return false
	}
	g := &ctx.Input.Gamepad
	return g.CurrentButtons[pad][b] && !g.PreviousButtons[pad][b]
}

// IsGamepadButtonReleased reports whether the given gamepad button
// went up this frame.
func (ctx *Context) IsGamepadButtonReleased(pad int, b GamepadButtons) bool {
	if pad < 0 || pad >= MaxGamepads || b < 0 || b >= GamepadButtonsN {
		return false
	}
	g := &ctx.Input.Gamepad
	return !g.CurrentButtons[pad][b] && g.PreviousButtons[pad][b]
}

// GetGamepadButtonPressed returns the most recent gamepad button
// press seen this frame, or [GamepadButtonUnknown].
func (ctx *Context) GetGamepadButtonPressed() GamepadButtons {
	return ctx.Input.Gamepad.LastButtonPressed
}

// GetGamepadAxisCount returns the number of valid axes for the
// gamepad in the given slot.
func (ctx *Context) GetGamepadAxisCount(pad int) int {
	if pad < 0 || pad >= MaxGamepads {
		return 0
	}
	return ctx.Input.Gamepad.AxisCounts[pad]
}

// GetGamepadAxisMovement returns the current value of the given axis,
// in [-1, 1] for sticks and [0, 1] for triggers.
func (ctx *Context) GetGamepadAxisMovement(pad int, axis GamepadAxes) float32 {
	if pad < 0 || pad >= MaxGamepads || axis < 0 || axis >= GamepadAxesN {
		return 0
	}
	return ctx.Input.Gamepad.Axes[pad][axis]
}

// SetGamepadMappings feeds controller mapping data to the backend,
// returning a nonzero value on success.
func (ctx *Context) SetGamepadMappings(mappings string) int {
	if ctx.platform == nil {
		return 0
	}
	return ctx.platform.SetGamepadMappings(mappings)
}

// SetGamepadVibration starts vibration on the given gamepad, where
// supported.
func (ctx *Context) SetGamepadVibration(pad int, leftMotor, rightMotor, duration float32) {
	if ctx.platform == nil {
		return
	}
	ctx.platform.SetGamepadVibration(pad, leftMotor, rightMotor, duration)
}
