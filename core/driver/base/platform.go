// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package base provides [PlatformBase], the shared implementation of
// [core.Platform] that concrete backends embed. Every capability
// operation is implemented as its documented fallback: a logged
// warning plus a harmless default, never a panic. Used on its own,
// PlatformBase is the template backend, which also serves as the
// reference implementation for contract tests and the starting point
// for new ports.
package base

import (
	"image"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/lumen-gfx/lumen/core"
	"github.com/lumen-gfx/lumen/events"
	"github.com/lumen-gfx/lumen/key"
	"github.com/lumen-gfx/lumen/logx"
	"github.com/lumen-gfx/lumen/math32"
)

// PlatformBase contains the data and logic common to all
// implementations of [core.Platform].
type PlatformBase struct {

	// Ctx is the context this backend reads and writes.
	Ctx *core.Context

	// Events is the queue OS callbacks enqueue into; the per-frame
	// poll drains it into the context.
	Events events.Queue

	// StartTime is the monotonic frame clock base, captured at Init.
	StartTime time.Time
}

var _ core.Platform = &PlatformBase{}

// NewPlatformBase returns a new [PlatformBase] for the given context.
func NewPlatformBase(ctx *core.Context) PlatformBase {
	p := PlatformBase{Ctx: ctx}
	p.Events.Init()
	return p
}

func (p *PlatformBase) Platform() core.Platforms {
	return core.Template
}

// Init anchors the frame clock. The template backend has no surface
// to validate.
func (p *PlatformBase) Init() error {
	p.StartTime = time.Now()
	return nil
}

func (p *PlatformBase) Close() {}

// PollEvents drains the event queue into the context. Backends with
// callback-driven OS event delivery usually pump the OS first and
// then call this.
func (p *PlatformBase) PollEvents() {
	p.DrainEvents()
}

// DrainEvents applies all queued events to the context.
func (p *PlatformBase) DrainEvents() {
	for {
		ev, ok := p.Events.NextEvent()
		if !ok {
			return
		}
		p.Ctx.ProcessEvent(ev)
	}
}

// SwapBuffers is a no-op: the template backend has nothing to present.
func (p *PlatformBase) SwapBuffers() {}

// Time returns the elapsed seconds since Init, from the monotonic
// clock reading carried by [time.Time].
func (p *PlatformBase) Time() float64 {
	if p.StartTime.IsZero() {
		return 0
	}
	return time.Since(p.StartTime).Seconds()
}

func (p *PlatformBase) ToggleFullscreen() {
	logx.Warn("ToggleFullscreen not available on this platform")
}

func (p *PlatformBase) ToggleBorderlessWindowed() {
	logx.Warn("ToggleBorderlessWindowed not available on this platform")
}

func (p *PlatformBase) MaximizeWindow() {
	logx.Warn("MaximizeWindow not available on this platform")
}

func (p *PlatformBase) MinimizeWindow() {
	logx.Warn("MinimizeWindow not available on this platform")
}

func (p *PlatformBase) RestoreWindow() {
	logx.Warn("RestoreWindow not available on this platform")
}

func (p *PlatformBase) SetWindowState(flags core.WindowFlags) {
	logx.Warn("SetWindowState not available on this platform")
}

func (p *PlatformBase) ClearWindowState(flags core.WindowFlags) {
	logx.Warn("ClearWindowState not available on this platform")
}

// SetWindowTitle is a no-op: the context stores the title, and there
// is no OS title bar here.
func (p *PlatformBase) SetWindowTitle(title string) {}

func (p *PlatformBase) SetWindowPosition(x, y int) {
	logx.Warn("SetWindowPosition not available on this platform")
}

func (p *PlatformBase) SetWindowMonitor(monitor int) {
	logx.Warn("SetWindowMonitor not available on this platform")
}

// SetWindowMinSize is a no-op: the constraint is stored by the
// context, and nothing enforces it without window chrome.
func (p *PlatformBase) SetWindowMinSize(w, h int) {}

// SetWindowMaxSize is a no-op, as for SetWindowMinSize.
func (p *PlatformBase) SetWindowMaxSize(w, h int) {}

func (p *PlatformBase) SetWindowSize(w, h int) {
	logx.Warn("SetWindowSize not available on this platform")
}

func (p *PlatformBase) SetWindowOpacity(opacity float32) {
	logx.Warn("SetWindowOpacity not available on this platform")
}

func (p *PlatformBase) SetWindowFocused() {
	logx.Warn("SetWindowFocused not available on this platform")
}

func (p *PlatformBase) SetWindowIcons(icons []image.Image) {
	logx.Warn("SetWindowIcons not available on this platform")
}

func (p *PlatformBase) WindowHandle() any {
	logx.Warn("GetWindowHandle not implemented on this platform")
	return nil
}

func (p *PlatformBase) WindowPosition() image.Point {
	logx.Warn("GetWindowPosition not implemented on this platform")
	return image.Point{}
}

func (p *PlatformBase) WindowScaleDPI() math32.Vector2 {
	return math32.Vec2(1, 1)
}

func (p *PlatformBase) MonitorCount() int {
	logx.Warn("GetMonitorCount not implemented on this platform")
	return 1
}

func (p *PlatformBase) CurrentMonitor() int {
	logx.Warn("GetCurrentMonitor not implemented on this platform")
	return 0
}

func (p *PlatformBase) MonitorPosition(monitor int) image.Point {
	logx.Warn("GetMonitorPosition not implemented on this platform")
	return image.Point{}
}

func (p *PlatformBase) MonitorSize(monitor int) image.Point {
	logx.Warn("GetMonitorSize not implemented on this platform")
	return image.Point{}
}

func (p *PlatformBase) MonitorPhysicalSize(monitor int) image.Point {
	logx.Warn("GetMonitorPhysicalSize not implemented on this platform")
	return image.Point{}
}

func (p *PlatformBase) MonitorRefreshRate(monitor int) int {
	logx.Warn("GetMonitorRefreshRate not implemented on this platform")
	return 0
}

func (p *PlatformBase) MonitorName(monitor int) string {
	logx.Warn("GetMonitorName not implemented on this platform")
	return ""
}

// Cursor hooks are no-ops: the context maintains the shared cursor
// state, and there is no OS cursor here.

func (p *PlatformBase) ShowCursor()    {}
func (p *PlatformBase) HideCursor()    {}
func (p *PlatformBase) EnableCursor()  {}
func (p *PlatformBase) DisableCursor() {}

func (p *PlatformBase) SetMouseCursor(cursor core.Cursors) {
	logx.Warn("SetMouseCursor not implemented on this platform")
}

// WarpMousePosition is a no-op: the context position is already set,
// and there is no OS cursor to move.
func (p *PlatformBase) WarpMousePosition(x, y int) {}

func (p *PlatformBase) Clipboard() core.Clipboard {
	return core.ClipboardBase{}
}

// OpenURL opens the given URL with the default system browser, which
// works on any OS with a desktop session. The quote check partially
// guards against command injection through crafted URLs; callers must
// still only pass URLs they control.
func (p *PlatformBase) OpenURL(url string) {
	if strings.ContainsRune(url, '\'') {
		logx.Warn("SYSTEM: Provided URL could be potentially malicious, avoid ['] character")
		return
	}
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		logx.Warn("OpenURL could not start browser: %v", err)
	}
}

func (p *PlatformBase) KeyName(k key.Codes) string {
	logx.Warn("GetKeyName not implemented on this platform")
	return ""
}

func (p *PlatformBase) SetGamepadMappings(mappings string) int {
	logx.Warn("SetGamepadMappings not implemented on this platform")
	return 0
}

func (p *PlatformBase) SetGamepadVibration(pad int, leftMotor, rightMotor, duration float32) {
	logx.Warn("SetGamepadVibration not implemented on this platform")
}
