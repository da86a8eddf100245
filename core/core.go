// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package core provides the shared platform context for lumen: window
// configuration, input snapshot state, the frame clock, and the
// [Platform] contract that every backend implements.
//
// A program creates one [Context], starts it on a backend, and then
// runs a fixed per-frame sequence from a single goroutine:
//
//	ctx := core.NewContext(opts)
//	if err := ctx.Start(platform); err != nil { ... }
//	defer ctx.Shutdown()
//	for !ctx.WindowShouldClose() {
//		ctx.PollInputEvents()
//		// ... draw calls against the renderer ...
//		ctx.EndFrame()
//	}
//
// The whole API assumes this single-threaded, poll-draw-swap contract;
// no locking is done on Context state.
package core

import (
	"errors"
	"image"
	"os"

	"github.com/jeandeaual/go-locale"
	"github.com/lumen-gfx/lumen/key"
	"github.com/lumen-gfx/lumen/logx"
	"github.com/lumen-gfx/lumen/math32"
)

// ErrRendererVariant is returned from [Context.Start] when the backend
// has a hard requirement on a renderer variant that the configured
// renderer does not satisfy (for example, the offscreen backend
// requires the software variant). This is the only fatal init
// condition; every other missing capability degrades to a logged
// warning and a default return value.
var ErrRendererVariant = errors.New("renderer variant not supported by platform")

// Context is the single shared state object consumed by the whole
// library: window sub-state, input snapshots, frame timing, and
// storage paths. Exactly one Context exists per program; it is created
// with [NewContext], bound to a backend with [Context.Start], and
// never reallocated. All access must come from the one goroutine
// driving the frame loop.
type Context struct {

	// Window is the window configuration and dimension state.
	Window WindowState

	// Input is the per-device input snapshot state.
	Input InputState

	// Time is the frame pacing state. Elapsed time itself comes from
	// the backend's monotonic clock via [Context.GetTime].
	Time TimeState

	// Storage is the storage path state captured at Start.
	Storage StorageState

	// UpdateGestures, if set, is invoked at the top of every
	// [Context.PollInputEvents] so a gesture recognizer can reset its
	// per-frame state.
	UpdateGestures func()

	platform Platform
}

// StorageState is the storage sub-state of a [Context].
type StorageState struct {

	// BasePath is the working directory captured at [Context.Start].
	BasePath string
}

// NewContext returns a new [Context] configured from the given
// options. A nil opts is valid and means the default option values.
// The context is not usable for platform operations until
// [Context.Start] succeeds.
func NewContext(opts *Options) *Context {
	if opts == nil {
		opts = &Options{}
	}
	opts.defaults()

	ctx := &Context{}
	ctx.Window.Title = opts.Title
	ctx.Window.Screen = image.Pt(opts.Width, opts.Height)
	ctx.Window.Flags = opts.flags()
	ctx.Input.Keyboard.ExitKey = opts.exitKey()
	ctx.Input.Keyboard.PressedQueue = make([]key.Codes, 0, MaxKeyPressedQueue)
	ctx.Input.Keyboard.CharQueue = make([]rune, 0, MaxCharPressedQueue)
	ctx.Input.Mouse.Scale = math32.Vec2(1, 1)
	ctx.Input.Gamepad.LastButtonPressed = GamepadButtonUnknown
	if opts.TargetFPS > 0 {
		ctx.Time.Target = 1 / float64(opts.TargetFPS)
	}
	return ctx
}

// Platform returns the backend this context was started on, or nil
// before [Context.Start].
func (ctx *Context) Platform() Platform {
	return ctx.platform
}

// Start binds the context to the given backend and initializes it.
// On success the window is flagged ready, render dimensions are
// derived from the screen dimensions (unless the backend already set
// them, for example under HiDPI scaling), the frame clock base is
// captured, and the storage base path is recorded. On failure the
// window stays not-ready and only [Context.Shutdown] remains
// well-defined.
func (ctx *Context) Start(p Platform) error {
	ctx.platform = p
	if err := p.Init(); err != nil {
		return err
	}

	if ctx.Window.Render == (image.Point{}) {
		ctx.Window.Render = ctx.Window.Screen
	}
	ctx.Window.CurrentFBO = ctx.Window.Render
	if ctx.Window.ScreenScale == (math32.Vector2{}) {
		ctx.Window.ScreenScale = math32.Vec2(1, 1)
	}

	if wd, err := os.Getwd(); err == nil {
		ctx.Storage.BasePath = wd
	}
	if loc, err := locale.GetLocale(); err == nil {
		logx.Info("SYSTEM: Locale: %s", loc)
	}

	logx.Info("DISPLAY: Device initialized successfully")
	logx.Info("    > Display size: %d x %d", ctx.Window.Display.X, ctx.Window.Display.Y)
	logx.Info("    > Screen size:  %d x %d", ctx.Window.Screen.X, ctx.Window.Screen.Y)
	logx.Info("    > Render size:  %d x %d", ctx.Window.Render.X, ctx.Window.Render.Y)

	ctx.Window.Ready = true
	ctx.Time.Previous = p.Time()
	return nil
}

// Shutdown releases the backend's resources and flags the window
// not-ready. It is safe to call even if [Context.Start] failed, and
// safe to call more than once.
func (ctx *Context) Shutdown() {
	if ctx.platform != nil {
		ctx.platform.Close()
	}
	ctx.Window.Ready = false
}

// OpenURL opens the given URL in the user's default browser, if the
// backend supports it. Only call this with URLs you control: the
// string is handed to an OS command.
func (ctx *Context) OpenURL(url string) {
	if ctx.platform == nil {
		return
	}
	ctx.platform.OpenURL(url)
}
