// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the input and window events that platform
// backends produce, and a queue for delivering them to the per-frame
// input poll.
package events

import (
	"image"

	"github.com/lumen-gfx/lumen/key"
	"github.com/lumen-gfx/lumen/math32"
)

// Types is the type of an [Event].
type Types int32

const (
	// Unknown is an unrecognized event, discarded by the poll.
	Unknown Types = iota

	// KeyDown is a key press, including OS auto-repeats, which are
	// distinguished by [Event.Repeat].
	KeyDown

	// KeyUp is a key release.
	KeyUp

	// KeyChar is a Unicode character produced by text input.
	KeyChar

	// MouseDown is a mouse button press.
	MouseDown

	// MouseUp is a mouse button release.
	MouseUp

	// MouseMove is a change in mouse position.
	MouseMove

	// MouseScroll is a mouse wheel movement.
	MouseScroll

	// TouchDown is a touch point making contact.
	TouchDown

	// TouchUp is a touch point breaking contact.
	TouchUp

	// TouchMove is a touch point moving.
	TouchMove

	// WindowClose is an OS request to close the window.
	WindowClose

	// WindowResize is a change in window screen size.
	WindowResize

	// WindowFocus is a change in window focus state.
	WindowFocus
)

// Buttons is a mouse button.
type Buttons int32

const (
	Left Buttons = iota
	Right
	Middle
	Side
	Extra
	Forward
	Back

	// ButtonsN is the size of per-button snapshot arrays.
	ButtonsN
)

// Event is a single input or window event produced by a platform
// backend. Only the fields relevant to its [Types] are set.
type Event struct {

	// Type is the type of the event.
	Type Types

	// Key is the physical key code for KeyDown and KeyUp events.
	Key key.Codes

	// Rune is the character for KeyChar events.
	Rune rune

	// Repeat marks a KeyDown produced by OS auto-repeat rather than a
	// fresh press.
	Repeat bool

	// Button is the mouse button for MouseDown and MouseUp events.
	Button Buttons

	// Pos is the position for mouse and touch events, in screen
	// coordinates.
	Pos math32.Vector2

	// Delta is the scroll amount for MouseScroll events.
	Delta math32.Vector2

	// Touch is the touch point index for touch events.
	Touch int

	// Size is the new screen size for WindowResize events.
	Size image.Point

	// Focused is the new focus state for WindowFocus events.
	Focused bool
}
