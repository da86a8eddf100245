// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-gfx/lumen/core"
	"github.com/lumen-gfx/lumen/core/driver/base"
	"github.com/lumen-gfx/lumen/events"
	"github.com/lumen-gfx/lumen/key"
	"github.com/lumen-gfx/lumen/math32"
)

// start returns a context running on the template backend, whose event
// queue tests can feed directly.
func start(t *testing.T, opts *core.Options) (*core.Context, *base.PlatformBase) {
	t.Helper()
	ctx := core.NewContext(opts)
	p := base.NewPlatformBase(ctx)
	require.NoError(t, ctx.Start(&p))
	t.Cleanup(ctx.Shutdown)
	return ctx, &p
}

func TestKeyPressEdges(t *testing.T) {
	ctx, p := start(t, nil)

	p.Events.Send(events.Event{Type: events.KeyDown, Key: key.CodeA})
	ctx.PollInputEvents()
	assert.True(t, ctx.IsKeyDown(key.CodeA))
	assert.True(t, ctx.IsKeyPressed(key.CodeA))
	assert.False(t, ctx.IsKeyReleased(key.CodeA))

	// Held across the next frame: down but no longer an edge.
	ctx.PollInputEvents()
	assert.True(t, ctx.IsKeyDown(key.CodeA))
	assert.False(t, ctx.IsKeyPressed(key.CodeA))

	p.Events.Send(events.Event{Type: events.KeyUp, Key: key.CodeA})
	ctx.PollInputEvents()
	assert.True(t, ctx.IsKeyUp(key.CodeA))
	assert.True(t, ctx.IsKeyReleased(key.CodeA))
	assert.False(t, ctx.IsKeyPressed(key.CodeA))
}

func TestKeyRepeat(t *testing.T) {
	ctx, p := start(t, nil)

	p.Events.Send(events.Event{Type: events.KeyDown, Key: key.CodeB, Repeat: true})
	ctx.PollInputEvents()
	assert.True(t, ctx.IsKeyPressedRepeat(key.CodeB))
	// Auto-repeats do not enter the pressed-key queue.
	assert.Equal(t, key.CodeNull, ctx.GetKeyPressed())

	ctx.PollInputEvents()
	assert.False(t, ctx.IsKeyPressedRepeat(key.CodeB))
}

func TestKeyPressedQueue(t *testing.T) {
	ctx, p := start(t, nil)

	for k := key.CodeA; k < key.CodeA+20; k++ {
		p.Events.Send(events.Event{Type: events.KeyDown, Key: k})
	}
	ctx.PollInputEvents()

	// Overflow past the queue capacity is dropped silently.
	for i := 0; i < core.MaxKeyPressedQueue; i++ {
		assert.Equal(t, key.CodeA+key.Codes(i), ctx.GetKeyPressed())
	}
	assert.Equal(t, key.CodeNull, ctx.GetKeyPressed())

	// The queue resets on the next poll.
	ctx.PollInputEvents()
	assert.Equal(t, key.CodeNull, ctx.GetKeyPressed())
}

func TestCharQueue(t *testing.T) {
	ctx, p := start(t, nil)

	for _, r := range "hé!" {
		p.Events.Send(events.Event{Type: events.KeyChar, Rune: r})
	}
	ctx.PollInputEvents()
	assert.Equal(t, 'h', ctx.GetCharPressed())
	assert.Equal(t, 'é', ctx.GetCharPressed())
	assert.Equal(t, '!', ctx.GetCharPressed())
	assert.Equal(t, rune(0), ctx.GetCharPressed())
}

func TestExitKey(t *testing.T) {
	ctx, p := start(t, nil)

	p.Events.Send(events.Event{Type: events.KeyDown, Key: key.CodeEscape})
	ctx.PollInputEvents()
	assert.True(t, ctx.WindowShouldClose())
}

func TestExitKeyDisabled(t *testing.T) {
	ctx, p := start(t, &core.Options{ExitKey: "Null"})

	p.Events.Send(events.Event{Type: events.KeyDown, Key: key.CodeEscape})
	ctx.PollInputEvents()
	assert.False(t, ctx.WindowShouldClose())
}

func TestInvalidKeyIgnored(t *testing.T) {
	ctx, p := start(t, nil)

	p.Events.Send(events.Event{Type: events.KeyDown, Key: key.Codes(9999)})
	p.Events.Send(events.Event{Type: events.KeyDown, Key: key.Codes(-1)})
	ctx.PollInputEvents()
	assert.Equal(t, key.CodeNull, ctx.GetKeyPressed())
	assert.False(t, ctx.IsKeyDown(key.Codes(9999)))
}

func TestMouseButtonEdges(t *testing.T) {
	ctx, p := start(t, nil)

	p.Events.Send(events.Event{Type: events.MouseDown, Button: events.Left})
	ctx.PollInputEvents()
	assert.True(t, ctx.IsMouseButtonDown(events.Left))
	assert.True(t, ctx.IsMouseButtonPressed(events.Left))

	ctx.PollInputEvents()
	assert.True(t, ctx.IsMouseButtonDown(events.Left))
	assert.False(t, ctx.IsMouseButtonPressed(events.Left))

	p.Events.Send(events.Event{Type: events.MouseUp, Button: events.Left})
	ctx.PollInputEvents()
	assert.True(t, ctx.IsMouseButtonReleased(events.Left))
	assert.True(t, ctx.IsMouseButtonUp(events.Left))
}

func TestMousePositionAndDelta(t *testing.T) {
	ctx, p := start(t, nil)

	p.Events.Send(events.Event{Type: events.MouseMove, Pos: math32.Vec2(10, 20)})
	ctx.PollInputEvents()
	p.Events.Send(events.Event{Type: events.MouseMove, Pos: math32.Vec2(13, 24)})
	ctx.PollInputEvents()

	assert.Equal(t, math32.Vec2(13, 24), ctx.GetMousePosition())
	assert.Equal(t, math32.Vec2(3, 4), ctx.GetMouseDelta())
	assert.Equal(t, 13, ctx.GetMouseX())
	assert.Equal(t, 24, ctx.GetMouseY())
}

func TestMouseOffsetScale(t *testing.T) {
	ctx, p := start(t, nil)

	p.Events.Send(events.Event{Type: events.MouseMove, Pos: math32.Vec2(10, 20)})
	ctx.PollInputEvents()
	ctx.SetMouseOffset(5, 5)
	ctx.SetMouseScale(2, 2)

	// Offset and scale adjust reported positions, not the raw delta.
	assert.Equal(t, math32.Vec2(30, 50), ctx.GetMousePosition())
}

func TestSetMousePositionNoDelta(t *testing.T) {
	ctx, _ := start(t, nil)

	ctx.SetMousePosition(100, 100)
	assert.Equal(t, math32.Vector2{}, ctx.GetMouseDelta())
	assert.Equal(t, math32.Vec2(100, 100), ctx.GetMousePosition())
}

func TestMouseWheel(t *testing.T) {
	ctx, p := start(t, nil)

	p.Events.Send(events.Event{Type: events.MouseScroll, Delta: math32.Vec2(0.5, -2)})
	ctx.PollInputEvents()
	assert.Equal(t, float32(-2), ctx.GetMouseWheelMove())
	assert.Equal(t, math32.Vec2(0.5, -2), ctx.GetMouseWheelMoveV())

	// Wheel state is per-frame.
	ctx.PollInputEvents()
	assert.Equal(t, float32(0), ctx.GetMouseWheelMove())
}

func TestTouchStickyPositions(t *testing.T) {
	ctx, p := start(t, nil)

	p.Events.Send(events.Event{Type: events.TouchDown, Touch: 1, Pos: math32.Vec2(50, 60)})
	ctx.PollInputEvents()
	assert.Equal(t, 1, ctx.GetTouchPointCount())
	assert.Equal(t, math32.Vec2(50, 60), ctx.GetTouchPosition(1))

	p.Events.Send(events.Event{Type: events.TouchUp, Touch: 1, Pos: math32.Vec2(55, 65)})
	ctx.PollInputEvents()
	assert.Equal(t, 0, ctx.GetTouchPointCount())

	// An idle point keeps its last known position across frames.
	ctx.PollInputEvents()
	ctx.PollInputEvents()
	assert.Equal(t, math32.Vec2(55, 65), ctx.GetTouchPosition(1))
}

func TestMouseActsAsTouchPointZero(t *testing.T) {
	ctx, p := start(t, nil)

	p.Events.Send(events.Event{Type: events.MouseMove, Pos: math32.Vec2(7, 9)})
	p.Events.Send(events.Event{Type: events.MouseDown, Button: events.Left})
	ctx.PollInputEvents()
	assert.Equal(t, 7, ctx.GetTouchX())
	assert.Equal(t, 9, ctx.GetTouchY())
}

func TestGamepadEdges(t *testing.T) {
	ctx, _ := start(t, nil)

	assert.False(t, ctx.IsGamepadAvailable(0))
	ctx.GamepadConnectionEvent(0, true, "Test Pad")
	assert.True(t, ctx.IsGamepadAvailable(0))
	assert.Equal(t, "Test Pad", ctx.GetGamepadName(0))

	ctx.PollInputEvents()
	ctx.GamepadButtonEvent(0, core.GamepadA, true)
	assert.True(t, ctx.IsGamepadButtonPressed(0, core.GamepadA))
	assert.Equal(t, core.GamepadA, ctx.GetGamepadButtonPressed())

	ctx.PollInputEvents()
	ctx.GamepadButtonEvent(0, core.GamepadA, true)
	assert.False(t, ctx.IsGamepadButtonPressed(0, core.GamepadA))
	assert.True(t, ctx.IsGamepadButtonDown(0, core.GamepadA))
	// LastButtonPressed resets each poll; a held button re-reports it.
	assert.Equal(t, core.GamepadA, ctx.GetGamepadButtonPressed())

	ctx.GamepadAxisEvent(0, core.GamepadAxisLeftX, -0.5)
	assert.Equal(t, float32(-0.5), ctx.GetGamepadAxisMovement(0, core.GamepadAxisLeftX))
	assert.Equal(t, 1, ctx.GetGamepadAxisCount(0))

	ctx.GamepadConnectionEvent(0, false, "")
	assert.False(t, ctx.IsGamepadAvailable(0))
	assert.False(t, ctx.IsGamepadButtonDown(0, core.GamepadA))
}

func TestLastButtonPressedResets(t *testing.T) {
	ctx, _ := start(t, nil)

	ctx.GamepadButtonEvent(0, core.GamepadB, true)
	assert.Equal(t, core.GamepadB, ctx.GetGamepadButtonPressed())
	ctx.PollInputEvents()
	assert.Equal(t, core.GamepadButtonUnknown, ctx.GetGamepadButtonPressed())
}

func TestWindowResizeEvent(t *testing.T) {
	ctx, p := start(t, nil)

	p.Events.Send(events.Event{Type: events.WindowResize, Size: image.Pt(1024, 768)})
	ctx.PollInputEvents()
	assert.True(t, ctx.IsWindowResized())
	assert.Equal(t, 1024, ctx.GetScreenWidth())
	assert.Equal(t, 768, ctx.GetScreenHeight())
	assert.Equal(t, 1024, ctx.GetRenderWidth())

	ctx.PollInputEvents()
	assert.False(t, ctx.IsWindowResized())
}

func TestWindowCloseEvent(t *testing.T) {
	ctx, p := start(t, nil)

	p.Events.Send(events.Event{Type: events.WindowClose})
	ctx.PollInputEvents()
	assert.True(t, ctx.WindowShouldClose())
}

func TestFocusEvent(t *testing.T) {
	ctx, p := start(t, nil)

	assert.True(t, ctx.IsWindowFocused())
	p.Events.Send(events.Event{Type: events.WindowFocus, Focused: false})
	ctx.PollInputEvents()
	assert.False(t, ctx.IsWindowFocused())
	p.Events.Send(events.Event{Type: events.WindowFocus, Focused: true})
	ctx.PollInputEvents()
	assert.True(t, ctx.IsWindowFocused())
}

func TestUpdateGesturesHook(t *testing.T) {
	ctx, _ := start(t, nil)

	calls := 0
	ctx.UpdateGestures = func() { calls++ }
	ctx.PollInputEvents()
	ctx.PollInputEvents()
	assert.Equal(t, 2, calls)
}
