// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image"
	"strings"

	"github.com/lumen-gfx/lumen/math32"
)

// WindowFlags is a bitset of window configuration flags.
type WindowFlags uint32

const (
	// FlagVSyncHint requests vertical sync on the buffer swap.
	FlagVSyncHint WindowFlags = 1 << iota

	// FlagFullscreen runs the window fullscreen on its monitor.
	FlagFullscreen

	// FlagResizable allows the user to resize the window.
	FlagResizable

	// FlagUndecorated removes the window border and title bar.
	FlagUndecorated

	// FlagHidden keeps the window invisible.
	FlagHidden

	// FlagMinimized starts or marks the window minimized.
	FlagMinimized

	// FlagMaximized starts or marks the window maximized.
	FlagMaximized

	// FlagUnfocused marks the window as not having input focus.
	FlagUnfocused

	// FlagTopmost keeps the window above all others.
	FlagTopmost

	// FlagTransparent requests an alpha-enabled framebuffer.
	FlagTransparent

	// FlagHighDPI requests HiDPI-aware framebuffer scaling.
	FlagHighDPI

	// FlagBorderless runs the window as borderless fullscreen.
	FlagBorderless
)

var flagNames = map[WindowFlags]string{
	FlagVSyncHint:   "VSyncHint",
	FlagFullscreen:  "Fullscreen",
	FlagResizable:   "Resizable",
	FlagUndecorated: "Undecorated",
	FlagHidden:      "Hidden",
	FlagMinimized:   "Minimized",
	FlagMaximized:   "Maximized",
	FlagUnfocused:   "Unfocused",
	FlagTopmost:     "Topmost",
	FlagTransparent: "Transparent",
	FlagHighDPI:     "HighDPI",
	FlagBorderless:  "Borderless",
}

// Has returns whether all of the given flags are set.
func (f WindowFlags) Has(flags WindowFlags) bool {
	return f&flags == flags
}

// Set sets the given flags.
func (f *WindowFlags) Set(flags WindowFlags) {
	*f |= flags
}

// Clear clears the given flags.
func (f *WindowFlags) Clear(flags WindowFlags) {
	*f &^= flags
}

func (f WindowFlags) String() string {
	var names []string
	for bit := WindowFlags(1); bit != 0 && bit <= FlagBorderless; bit <<= 1 {
		if f.Has(bit) {
			names = append(names, flagNames[bit])
		}
	}
	return strings.Join(names, "|")
}

// WindowState is the window sub-state of a [Context].
//
// Screen dimensions are the logical window size; Render dimensions are
// the physical framebuffer size, which differs from Screen under HiDPI
// scaling and is recomputed whenever the backend reports a resize or
// scale change.
type WindowState struct {

	// Ready becomes true only after backend init fully succeeds.
	// Every query treats not-ready as closed/unavailable.
	Ready bool

	// ShouldClose is set by the backend on an OS close request or a
	// recognized exit keypress.
	ShouldClose bool

	// Title is the window title. It is stored even on backends with
	// no OS title bar.
	Title string

	// Flags is the current window configuration.
	Flags WindowFlags

	// Screen is the logical window size.
	Screen image.Point

	// Display is the physical size of the display the window is on.
	Display image.Point

	// Render is the framebuffer size used for rendering.
	Render image.Point

	// CurrentFBO is the size of the framebuffer currently bound.
	CurrentFBO image.Point

	// RenderOffset is the viewport letterboxing offset.
	RenderOffset image.Point

	// ScreenMin and ScreenMax are the window size constraints, used
	// when [FlagResizable] is set. Zero means unconstrained.
	ScreenMin image.Point
	ScreenMax image.Point

	// ScreenScale is the device pixel ratio relating Screen to Render.
	ScreenScale math32.Vector2

	// ResizedLastFrame reports whether the window was resized during
	// the last input poll.
	ResizedLastFrame bool
}

// WindowShouldClose reports whether the program should exit its frame
// loop. It returns true unconditionally when the window is not ready.
func (ctx *Context) WindowShouldClose() bool {
	if !ctx.Window.Ready {
		return true
	}
	return ctx.Window.ShouldClose
}

// IsWindowReady reports whether the window has been initialized
// successfully.
func (ctx *Context) IsWindowReady() bool {
	return ctx.Window.Ready
}

// IsWindowFullscreen reports whether the window is currently fullscreen.
func (ctx *Context) IsWindowFullscreen() bool {
	return ctx.Window.Flags.Has(FlagFullscreen)
}

// IsWindowHidden reports whether the window is currently hidden.
func (ctx *Context) IsWindowHidden() bool {
	return ctx.Window.Flags.Has(FlagHidden)
}

// IsWindowMinimized reports whether the window is currently minimized.
func (ctx *Context) IsWindowMinimized() bool {
	return ctx.Window.Flags.Has(FlagMinimized)
}

// IsWindowMaximized reports whether the window is currently maximized.
func (ctx *Context) IsWindowMaximized() bool {
	return ctx.Window.Flags.Has(FlagMaximized)
}

// IsWindowFocused reports whether the window currently has input focus.
func (ctx *Context) IsWindowFocused() bool {
	return !ctx.Window.Flags.Has(FlagUnfocused)
}

// IsWindowResized reports whether the window was resized during the
// last input poll.
func (ctx *Context) IsWindowResized() bool {
	return ctx.Window.ResizedLastFrame
}

// IsWindowState reports whether all of the given flags are set.
func (ctx *Context) IsWindowState(flags WindowFlags) bool {
	return ctx.Window.Flags.Has(flags)
}

// SetWindowState sets the given configuration flags, applying the OS
// side effects on backends that support them.
func (ctx *Context) SetWindowState(flags WindowFlags) {
	if ctx.platform == nil {
		return
	}
	ctx.platform.SetWindowState(flags)
}

// ClearWindowState clears the given configuration flags, applying the
// OS side effects on backends that support them.
func (ctx *Context) ClearWindowState(flags WindowFlags) {
	if ctx.platform == nil {
		return
	}
	ctx.platform.ClearWindowState(flags)
}

// ToggleFullscreen toggles fullscreen mode on backends with window
// chrome.
func (ctx *Context) ToggleFullscreen() {
	if ctx.platform == nil {
		return
	}
	ctx.platform.ToggleFullscreen()
}

// ToggleBorderlessWindowed toggles borderless fullscreen-windowed mode.
func (ctx *Context) ToggleBorderlessWindowed() {
	if ctx.platform == nil {
		return
	}
	ctx.platform.ToggleBorderlessWindowed()
}

// MaximizeWindow maximizes the window, if resizable.
func (ctx *Context) MaximizeWindow() {
	if ctx.platform == nil {
		return
	}
	ctx.platform.MaximizeWindow()
}

// MinimizeWindow minimizes the window.
func (ctx *Context) MinimizeWindow() {
	if ctx.platform == nil {
		return
	}
	ctx.platform.MinimizeWindow()
}

// RestoreWindow restores the window from a minimized or maximized state.
func (ctx *Context) RestoreWindow() {
	if ctx.platform == nil {
		return
	}
	ctx.platform.RestoreWindow()
}

// SetWindowTitle sets the window title. The title is stored in the
// context on every backend; the OS side effect is backend-dependent.
func (ctx *Context) SetWindowTitle(title string) {
	ctx.Window.Title = title
	if ctx.platform == nil {
		return
	}
	ctx.platform.SetWindowTitle(title)
}

// SetWindowIcon sets the window icon to the given image.
func (ctx *Context) SetWindowIcon(icon image.Image) {
	ctx.SetWindowIcons([]image.Image{icon})
}

// SetWindowIcons sets the window icon candidates, from which the OS
// picks the closest sizes it needs.
func (ctx *Context) SetWindowIcons(icons []image.Image) {
	if ctx.platform == nil {
		return
	}
	ctx.platform.SetWindowIcons(icons)
}

// SetWindowPosition sets the window position on screen, in windowed mode.
func (ctx *Context) SetWindowPosition(x, y int) {
	if ctx.platform == nil {
		return
	}
	ctx.platform.SetWindowPosition(x, y)
}

// SetWindowMonitor moves the window to the given monitor.
func (ctx *Context) SetWindowMonitor(monitor int) {
	if ctx.platform == nil {
		return
	}
	ctx.platform.SetWindowMonitor(monitor)
}

// SetWindowMinSize sets the minimum window dimensions, used when
// [FlagResizable] is set. The constraint is stored on every backend.
func (ctx *Context) SetWindowMinSize(w, h int) {
	ctx.Window.ScreenMin = image.Pt(w, h)
	if ctx.platform == nil {
		return
	}
	ctx.platform.SetWindowMinSize(w, h)
}

// SetWindowMaxSize sets the maximum window dimensions, used when
// [FlagResizable] is set. The constraint is stored on every backend.
func (ctx *Context) SetWindowMaxSize(w, h int) {
	ctx.Window.ScreenMax = image.Pt(w, h)
	if ctx.platform == nil {
		return
	}
	ctx.platform.SetWindowMaxSize(w, h)
}

// SetWindowSize sets the window dimensions.
func (ctx *Context) SetWindowSize(w, h int) {
	if ctx.platform == nil {
		return
	}
	ctx.platform.SetWindowSize(w, h)
}

// SetWindowOpacity sets the window opacity, between 0 and 1.
func (ctx *Context) SetWindowOpacity(opacity float32) {
	if ctx.platform == nil {
		return
	}
	ctx.platform.SetWindowOpacity(opacity)
}

// SetWindowFocused gives the window input focus.
func (ctx *Context) SetWindowFocused() {
	if ctx.platform == nil {
		return
	}
	ctx.platform.SetWindowFocused()
}

// GetWindowHandle returns the native window handle, or nil on
// backends with no OS window.
func (ctx *Context) GetWindowHandle() any {
	if ctx.platform == nil {
		return nil
	}
	return ctx.platform.WindowHandle()
}

// GetScreenWidth returns the logical window width.
func (ctx *Context) GetScreenWidth() int {
	return ctx.Window.Screen.X
}

// GetScreenHeight returns the logical window height.
func (ctx *Context) GetScreenHeight() int {
	return ctx.Window.Screen.Y
}

// GetRenderWidth returns the framebuffer width used for rendering.
func (ctx *Context) GetRenderWidth() int {
	return ctx.Window.Render.X
}

// GetRenderHeight returns the framebuffer height used for rendering.
func (ctx *Context) GetRenderHeight() int {
	return ctx.Window.Render.Y
}

// GetWindowPosition returns the window position on its monitor.
func (ctx *Context) GetWindowPosition() image.Point {
	if ctx.platform == nil {
		return image.Point{}
	}
	return ctx.platform.WindowPosition()
}

// GetWindowScaleDPI returns the window DPI scale factor.
func (ctx *Context) GetWindowScaleDPI() math32.Vector2 {
	if ctx.platform == nil {
		return math32.Vec2(1, 1)
	}
	return ctx.platform.WindowScaleDPI()
}

// GetMonitorCount returns the number of connected monitors.
func (ctx *Context) GetMonitorCount() int {
	if ctx.platform == nil {
		return 1
	}
	return ctx.platform.MonitorCount()
}

// GetCurrentMonitor returns the monitor the window is on.
func (ctx *Context) GetCurrentMonitor() int {
	if ctx.platform == nil {
		return 0
	}
	return ctx.platform.CurrentMonitor()
}

// GetMonitorPosition returns the position of the given monitor in the
// virtual desktop.
func (ctx *Context) GetMonitorPosition(monitor int) image.Point {
	if ctx.platform == nil {
		return image.Point{}
	}
	return ctx.platform.MonitorPosition(monitor)
}

// GetMonitorWidth returns the current width of the given monitor.
func (ctx *Context) GetMonitorWidth(monitor int) int {
	if ctx.platform == nil {
		return 0
	}
	return ctx.platform.MonitorSize(monitor).X
}

// GetMonitorHeight returns the current height of the given monitor.
func (ctx *Context) GetMonitorHeight(monitor int) int {
	if ctx.platform == nil {
		return 0
	}
	return ctx.platform.MonitorSize(monitor).Y
}

// GetMonitorPhysicalWidth returns the physical width of the given
// monitor in millimetres.
func (ctx *Context) GetMonitorPhysicalWidth(monitor int) int {
	if ctx.platform == nil {
		return 0
	}
	return ctx.platform.MonitorPhysicalSize(monitor).X
}

// GetMonitorPhysicalHeight returns the physical height of the given
// monitor in millimetres.
func (ctx *Context) GetMonitorPhysicalHeight(monitor int) int {
	if ctx.platform == nil {
		return 0
	}
	return ctx.platform.MonitorPhysicalSize(monitor).Y
}

// GetMonitorRefreshRate returns the refresh rate of the given monitor.
func (ctx *Context) GetMonitorRefreshRate(monitor int) int {
	if ctx.platform == nil {
		return 0
	}
	return ctx.platform.MonitorRefreshRate(monitor)
}

// GetMonitorName returns the human-readable name of the given monitor.
func (ctx *Context) GetMonitorName(monitor int) string {
	if ctx.platform == nil {
		return ""
	}
	return ctx.platform.MonitorName(monitor)
}

// ShowCursor makes the mouse cursor visible.
func (ctx *Context) ShowCursor() {
	ctx.Input.Mouse.CursorHidden = false
	if ctx.platform == nil {
		return
	}
	ctx.platform.ShowCursor()
}

// HideCursor makes the mouse cursor invisible.
func (ctx *Context) HideCursor() {
	ctx.Input.Mouse.CursorHidden = true
	if ctx.platform == nil {
		return
	}
	ctx.platform.HideCursor()
}

// IsCursorHidden reports whether the mouse cursor is invisible.
func (ctx *Context) IsCursorHidden() bool {
	return ctx.Input.Mouse.CursorHidden
}

// EnableCursor unlocks the cursor from capture mode and makes it
// visible. The mouse position is recentered on the screen so the
// toggle does not produce a spurious movement delta.
func (ctx *Context) EnableCursor() {
	ctx.SetMousePosition(ctx.Window.Screen.X/2, ctx.Window.Screen.Y/2)
	ctx.Input.Mouse.CursorHidden = false
	if ctx.platform == nil {
		return
	}
	ctx.platform.EnableCursor()
}

// DisableCursor locks the cursor into capture mode and hides it. The
// mouse position is recentered on the screen so the toggle does not
// produce a spurious movement delta.
func (ctx *Context) DisableCursor() {
	ctx.SetMousePosition(ctx.Window.Screen.X/2, ctx.Window.Screen.Y/2)
	ctx.Input.Mouse.CursorHidden = true
	if ctx.platform == nil {
		return
	}
	ctx.platform.DisableCursor()
}

// IsCursorOnScreen reports whether the cursor is within the window
// screen bounds.
func (ctx *Context) IsCursorOnScreen() bool {
	pos := ctx.GetMousePosition()
	return pos.X >= 0 && pos.Y >= 0 &&
		pos.X < float32(ctx.Window.Screen.X) && pos.Y < float32(ctx.Window.Screen.Y)
}

// SetMouseCursor sets the mouse cursor shape.
func (ctx *Context) SetMouseCursor(cursor Cursors) {
	ctx.Input.Mouse.Cursor = cursor
	if ctx.platform == nil {
		return
	}
	ctx.platform.SetMouseCursor(cursor)
}

// GetClipboardText returns the clipboard text content. An empty
// string means the clipboard is empty or unavailable on this backend.
func (ctx *Context) GetClipboardText() string {
	if ctx.platform == nil {
		return ""
	}
	return ctx.platform.Clipboard().Text()
}

// SetClipboardText sets the clipboard text content, where supported.
func (ctx *Context) SetClipboardText(text string) {
	if ctx.platform == nil {
		return
	}
	ctx.platform.Clipboard().SetText(text)
}

// GetClipboardImage returns the clipboard image content, or nil where
// unavailable.
func (ctx *Context) GetClipboardImage() image.Image {
	if ctx.platform == nil {
		return nil
	}
	return ctx.platform.Clipboard().Image()
}
