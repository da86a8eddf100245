// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package base

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-gfx/lumen/core"
	"github.com/lumen-gfx/lumen/events"
	"github.com/lumen-gfx/lumen/key"
	"github.com/lumen-gfx/lumen/math32"
)

func TestLifecycle(t *testing.T) {
	ctx := core.NewContext(nil)
	p := NewPlatformBase(ctx)

	assert.Equal(t, core.Template, p.Platform())
	assert.Equal(t, float64(0), p.Time())

	require.NoError(t, p.Init())
	assert.GreaterOrEqual(t, p.Time(), float64(0))

	// Close is a no-op and safe to repeat.
	p.Close()
	p.Close()
}

func TestDrainEvents(t *testing.T) {
	ctx := core.NewContext(nil)
	p := NewPlatformBase(ctx)
	require.NoError(t, ctx.Start(&p))

	p.Events.Send(events.Event{Type: events.KeyDown, Key: key.CodeZ})
	p.Events.Send(events.Event{Type: events.WindowClose})
	assert.Equal(t, uint64(2), p.Events.Len())

	ctx.PollInputEvents()
	assert.Equal(t, uint64(0), p.Events.Len())
	assert.True(t, ctx.IsKeyDown(key.CodeZ))
	assert.True(t, ctx.WindowShouldClose())
}

// Every capability operation must degrade to a harmless default, never
// panic.
func TestDegradedDefaults(t *testing.T) {
	ctx := core.NewContext(nil)
	p := NewPlatformBase(ctx)
	require.NoError(t, p.Init())

	p.ToggleFullscreen()
	p.ToggleBorderlessWindowed()
	p.MaximizeWindow()
	p.MinimizeWindow()
	p.RestoreWindow()
	p.SetWindowState(core.FlagResizable)
	p.ClearWindowState(core.FlagResizable)
	p.SetWindowTitle("x")
	p.SetWindowPosition(1, 2)
	p.SetWindowMonitor(0)
	p.SetWindowMinSize(1, 1)
	p.SetWindowMaxSize(2, 2)
	p.SetWindowSize(3, 3)
	p.SetWindowOpacity(0.5)
	p.SetWindowFocused()
	p.SetWindowIcons(nil)
	p.ShowCursor()
	p.HideCursor()
	p.EnableCursor()
	p.DisableCursor()
	p.SetMouseCursor(core.CursorArrow)
	p.WarpMousePosition(0, 0)
	p.SetGamepadVibration(0, 1, 1, 0.1)
	p.SwapBuffers()

	assert.Nil(t, p.WindowHandle())
	assert.Equal(t, image.Point{}, p.WindowPosition())
	assert.Equal(t, math32.Vec2(1, 1), p.WindowScaleDPI())
	assert.Equal(t, 1, p.MonitorCount())
	assert.Equal(t, 0, p.CurrentMonitor())
	assert.Equal(t, image.Point{}, p.MonitorPosition(0))
	assert.Equal(t, image.Point{}, p.MonitorSize(0))
	assert.Equal(t, image.Point{}, p.MonitorPhysicalSize(0))
	assert.Equal(t, 0, p.MonitorRefreshRate(0))
	assert.Empty(t, p.MonitorName(0))
	assert.Empty(t, p.KeyName(key.CodeA))
	assert.Equal(t, 0, p.SetGamepadMappings(""))
}

func TestClipboardUnavailable(t *testing.T) {
	ctx := core.NewContext(nil)
	p := NewPlatformBase(ctx)

	clip := p.Clipboard()
	assert.Empty(t, clip.Text())
	clip.SetText("ignored")
	assert.Nil(t, clip.Image())
}

func TestOpenURLRejectsQuote(t *testing.T) {
	ctx := core.NewContext(nil)
	p := NewPlatformBase(ctx)
	// Must refuse without attempting to run anything.
	p.OpenURL("https://example.com/'; rm -rf /'")
}
