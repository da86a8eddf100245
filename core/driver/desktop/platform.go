// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package desktop provides the OS-windowed desktop backend, built on
// GLFW. It is the full-capability backend: real window chrome,
// monitors, cursors, clipboard, and gamepads.
package desktop

import (
	"fmt"
	"image"

	"github.com/go-gl/glfw/v3.3/glfw"
	xclip "golang.design/x/clipboard"

	"github.com/lumen-gfx/lumen/core"
	"github.com/lumen-gfx/lumen/core/driver/base"
	"github.com/lumen-gfx/lumen/events"
	"github.com/lumen-gfx/lumen/key"
	"github.com/lumen-gfx/lumen/logx"
	"github.com/lumen-gfx/lumen/math32"
)

// Platform is the GLFW desktop implementation of [core.Platform].
// All methods must be called from the main OS thread; callers are
// expected to have locked it with [runtime.LockOSThread].
type Platform struct {
	base.PlatformBase

	window *glfw.Window

	// prevPos and prevSize remember the windowed geometry across
	// fullscreen and borderless toggles.
	prevPos  image.Point
	prevSize image.Point

	// imageClip reports whether the image clipboard initialized; text
	// clipboard goes through GLFW and is always available.
	imageClip bool

	cursors [core.CursorsN]*glfw.Cursor
}

var _ core.Platform = &Platform{}

// NewPlatform returns a new desktop backend for the given context.
func NewPlatform(ctx *core.Context) *Platform {
	return &Platform{PlatformBase: base.NewPlatformBase(ctx)}
}

func (p *Platform) Platform() core.Platforms {
	return core.Desktop
}

// Init initializes GLFW, creates the window with hints derived from
// the configured flags, and installs the event callbacks.
func (p *Platform) Init() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("desktop: glfw init: %w", err)
	}
	if err := p.PlatformBase.Init(); err != nil {
		return err
	}

	w := &p.Ctx.Window
	monitor := glfw.GetPrimaryMonitor()
	mode := monitor.GetVideoMode()
	w.Display = image.Pt(mode.Width, mode.Height)
	if w.Screen == (image.Point{}) {
		w.Screen = w.Display
	}

	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, hint(w.Flags.Has(core.FlagResizable)))
	glfw.WindowHint(glfw.Decorated, hint(!w.Flags.Has(core.FlagUndecorated)))
	glfw.WindowHint(glfw.Visible, hint(!w.Flags.Has(core.FlagHidden)))
	glfw.WindowHint(glfw.Floating, hint(w.Flags.Has(core.FlagTopmost)))
	glfw.WindowHint(glfw.Maximized, hint(w.Flags.Has(core.FlagMaximized)))
	glfw.WindowHint(glfw.TransparentFramebuffer, hint(w.Flags.Has(core.FlagTransparent)))
	glfw.WindowHint(glfw.ScaleToMonitor, hint(w.Flags.Has(core.FlagHighDPI)))

	var fullOn *glfw.Monitor
	if w.Flags.Has(core.FlagFullscreen) {
		fullOn = monitor
	}
	win, err := glfw.CreateWindow(w.Screen.X, w.Screen.Y, w.Title, fullOn, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("desktop: create window: %w", err)
	}
	p.window = win
	win.MakeContextCurrent()
	if w.Flags.Has(core.FlagVSyncHint) {
		glfw.SwapInterval(1)
	}

	fbw, fbh := win.GetFramebufferSize()
	w.Render = image.Pt(fbw, fbh)
	sx, sy := win.GetContentScale()
	w.ScreenScale = math32.Vec2(sx, sy)

	p.installCallbacks()

	if err := xclip.Init(); err == nil {
		p.imageClip = true
	} else {
		logx.Warn("SYSTEM: Image clipboard unavailable: %v", err)
	}
	return nil
}

// Close destroys the window and terminates GLFW. It is safe to call
// after a failed Init and more than once.
func (p *Platform) Close() {
	if p.window != nil {
		p.window.Destroy()
		p.window = nil
		glfw.Terminate()
	}
}

// PollEvents pumps the OS event loop, which fires the installed
// callbacks into the event queue, polls gamepads, and drains the queue
// into the context.
func (p *Platform) PollEvents() {
	glfw.PollEvents()
	p.pollGamepads()
	p.DrainEvents()
}

// SwapBuffers presents the completed frame on the window surface.
func (p *Platform) SwapBuffers() {
	p.window.SwapBuffers()
}

func (p *Platform) installCallbacks() {
	win := p.window

	win.SetKeyCallback(func(_ *glfw.Window, gk glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		k := keyFromGLFW(gk)
		if k == key.CodeNull {
			return
		}
		switch action {
		case glfw.Press:
			p.Events.Send(events.Event{Type: events.KeyDown, Key: k})
		case glfw.Repeat:
			p.Events.Send(events.Event{Type: events.KeyDown, Key: k, Repeat: true})
		case glfw.Release:
			p.Events.Send(events.Event{Type: events.KeyUp, Key: k})
		}
	})

	win.SetCharCallback(func(_ *glfw.Window, r rune) {
		p.Events.Send(events.Event{Type: events.KeyChar, Rune: r})
	})

	win.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button < 0 || int(button) >= int(events.ButtonsN) {
			return
		}
		t := events.MouseUp
		if action == glfw.Press {
			t = events.MouseDown
		}
		p.Events.Send(events.Event{Type: t, Button: events.Buttons(button)})
	})

	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		p.Events.Send(events.Event{Type: events.MouseMove, Pos: math32.Vec2(float32(x), float32(y))})
	})

	win.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		p.Events.Send(events.Event{Type: events.MouseScroll, Delta: math32.Vec2(float32(dx), float32(dy))})
	})

	win.SetCloseCallback(func(_ *glfw.Window) {
		p.Events.Send(events.Event{Type: events.WindowClose})
	})

	win.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		p.Events.Send(events.Event{Type: events.WindowResize, Size: image.Pt(width, height)})
	})

	win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		p.Events.Send(events.Event{Type: events.WindowFocus, Focused: focused})
	})

	// Scale and iconify state go straight to the context: they are
	// window attributes, not per-frame input.
	win.SetContentScaleCallback(func(_ *glfw.Window, x, y float32) {
		p.Ctx.Window.ScreenScale = math32.Vec2(x, y)
	})
	win.SetIconifyCallback(func(_ *glfw.Window, iconified bool) {
		if iconified {
			p.Ctx.Window.Flags.Set(core.FlagMinimized)
		} else {
			p.Ctx.Window.Flags.Clear(core.FlagMinimized)
		}
	})
	win.SetMaximizeCallback(func(_ *glfw.Window, maximized bool) {
		if maximized {
			p.Ctx.Window.Flags.Set(core.FlagMaximized)
		} else {
			p.Ctx.Window.Flags.Clear(core.FlagMaximized)
		}
	})
}

// keyFromGLFW converts a GLFW key to a key code. The numeric values
// already agree, so this is a bounds check, not a table.
func keyFromGLFW(gk glfw.Key) key.Codes {
	if gk <= glfw.KeyUnknown || int(gk) >= key.CodesN {
		return key.CodeNull
	}
	return key.Codes(gk)
}

func hint(on bool) int {
	if on {
		return glfw.True
	}
	return glfw.False
}
