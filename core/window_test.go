// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumen-gfx/lumen/core"
	"github.com/lumen-gfx/lumen/key"
	"github.com/lumen-gfx/lumen/math32"
)

func TestNotReadyShouldClose(t *testing.T) {
	ctx := core.NewContext(nil)
	assert.False(t, ctx.IsWindowReady())
	assert.True(t, ctx.WindowShouldClose())
}

// A context that was never started has no backend bound; every
// operation must degrade to a harmless default instead of crashing.
func TestNotReadyDegrades(t *testing.T) {
	ctx := core.NewContext(nil)

	assert.Equal(t, 1, ctx.GetMonitorCount())
	assert.Equal(t, 0, ctx.GetCurrentMonitor())
	assert.Equal(t, image.Point{}, ctx.GetMonitorPosition(0))
	assert.Equal(t, 0, ctx.GetMonitorWidth(0))
	assert.Equal(t, 0, ctx.GetMonitorHeight(0))
	assert.Equal(t, 0, ctx.GetMonitorPhysicalWidth(0))
	assert.Equal(t, 0, ctx.GetMonitorPhysicalHeight(0))
	assert.Equal(t, 0, ctx.GetMonitorRefreshRate(0))
	assert.Equal(t, "", ctx.GetMonitorName(0))

	assert.Nil(t, ctx.GetWindowHandle())
	assert.Equal(t, image.Point{}, ctx.GetWindowPosition())
	assert.Equal(t, math32.Vec2(1, 1), ctx.GetWindowScaleDPI())

	assert.Equal(t, "", ctx.GetKeyName(key.CodeA))
	assert.Equal(t, 0, ctx.SetGamepadMappings("mapping data"))
	assert.Equal(t, "", ctx.GetClipboardText())
	assert.Nil(t, ctx.GetClipboardImage())

	// State-only setters still record into the context.
	ctx.SetWindowTitle("x")
	assert.Equal(t, "x", ctx.Window.Title)
	ctx.SetWindowMinSize(100, 100)
	assert.Equal(t, image.Pt(100, 100), ctx.Window.ScreenMin)
	ctx.HideCursor()
	assert.True(t, ctx.IsCursorHidden())

	assert.NotPanics(t, func() {
		ctx.SetWindowState(core.FlagTopmost)
		ctx.ClearWindowState(core.FlagTopmost)
		ctx.ToggleFullscreen()
		ctx.ToggleBorderlessWindowed()
		ctx.MaximizeWindow()
		ctx.MinimizeWindow()
		ctx.RestoreWindow()
		ctx.SetWindowIcon(nil)
		ctx.SetWindowIcons(nil)
		ctx.SetWindowPosition(10, 10)
		ctx.SetWindowMonitor(0)
		ctx.SetWindowMaxSize(200, 200)
		ctx.SetWindowSize(640, 360)
		ctx.SetWindowOpacity(0.5)
		ctx.SetWindowFocused()
		ctx.ShowCursor()
		ctx.EnableCursor()
		ctx.DisableCursor()
		ctx.SetMouseCursor(core.CursorIBeam)
		ctx.SetClipboardText("x")
		ctx.SetGamepadVibration(0, 1, 1, 0.5)
		ctx.PollInputEvents()
	})
}

func TestStartMakesReady(t *testing.T) {
	ctx, _ := start(t, nil)
	assert.True(t, ctx.IsWindowReady())
	assert.False(t, ctx.WindowShouldClose())

	ctx.Shutdown()
	assert.False(t, ctx.IsWindowReady())
	assert.True(t, ctx.WindowShouldClose())
	// Shutdown is idempotent.
	ctx.Shutdown()
}

func TestDefaultDimensions(t *testing.T) {
	ctx, _ := start(t, nil)
	assert.Equal(t, 800, ctx.GetScreenWidth())
	assert.Equal(t, 450, ctx.GetScreenHeight())
	assert.Equal(t, 800, ctx.GetRenderWidth())
	assert.Equal(t, 450, ctx.GetRenderHeight())
}

func TestTitleStored(t *testing.T) {
	ctx, _ := start(t, &core.Options{Title: "one"})
	assert.Equal(t, "one", ctx.Window.Title)
	// The title is stored even on backends with no OS title bar.
	ctx.SetWindowTitle("two")
	assert.Equal(t, "two", ctx.Window.Title)
}

func TestSizeConstraintsStored(t *testing.T) {
	ctx, _ := start(t, nil)
	ctx.SetWindowMinSize(320, 240)
	ctx.SetWindowMaxSize(1920, 1080)
	assert.Equal(t, image.Pt(320, 240), ctx.Window.ScreenMin)
	assert.Equal(t, image.Pt(1920, 1080), ctx.Window.ScreenMax)
}

func TestOptionFlags(t *testing.T) {
	ctx, _ := start(t, &core.Options{Resizable: true, VSync: true})
	assert.True(t, ctx.IsWindowState(core.FlagResizable))
	assert.True(t, ctx.IsWindowState(core.FlagVSyncHint))
	assert.False(t, ctx.IsWindowState(core.FlagFullscreen))
	assert.False(t, ctx.IsWindowFullscreen())
}

func TestCursorToggleRecenters(t *testing.T) {
	ctx, _ := start(t, nil)

	ctx.SetMousePosition(10, 10)
	ctx.DisableCursor()
	assert.True(t, ctx.IsCursorHidden())
	// Capture recenters the cursor with no movement delta.
	assert.Equal(t, math32.Vec2(400, 225), ctx.GetMousePosition())
	assert.Equal(t, math32.Vector2{}, ctx.GetMouseDelta())

	ctx.EnableCursor()
	assert.False(t, ctx.IsCursorHidden())
	assert.Equal(t, math32.Vector2{}, ctx.GetMouseDelta())
}

func TestHideShowCursor(t *testing.T) {
	ctx, _ := start(t, nil)
	ctx.HideCursor()
	assert.True(t, ctx.IsCursorHidden())
	ctx.ShowCursor()
	assert.False(t, ctx.IsCursorHidden())
}

func TestIsCursorOnScreen(t *testing.T) {
	ctx, _ := start(t, nil)
	ctx.SetMousePosition(100, 100)
	assert.True(t, ctx.IsCursorOnScreen())
	ctx.SetMousePosition(-1, 100)
	assert.False(t, ctx.IsCursorOnScreen())
	ctx.SetMousePosition(100, 450)
	assert.False(t, ctx.IsCursorOnScreen())
}

func TestWindowFlagsString(t *testing.T) {
	f := core.FlagResizable | core.FlagVSyncHint
	assert.Equal(t, "VSyncHint|Resizable", f.String())
	assert.Empty(t, core.WindowFlags(0).String())

	f.Clear(core.FlagVSyncHint)
	assert.Equal(t, "Resizable", f.String())
	assert.True(t, f.Has(core.FlagResizable))
	assert.False(t, f.Has(core.FlagVSyncHint))
}

func TestRequestClose(t *testing.T) {
	ctx, _ := start(t, nil)
	ctx.RequestClose()
	assert.True(t, ctx.WindowShouldClose())
}
