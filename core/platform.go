// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image"

	"github.com/lumen-gfx/lumen/key"
	"github.com/lumen-gfx/lumen/math32"
)

// Platform is the contract between the shared [Context] and a
// platform backend. One concrete implementation exists per platform
// (desktop windowing, headless memory framebuffer, and so on); the
// driver/base package provides the degraded-capability defaults that
// concrete backends override where the OS supports the operation.
//
// Capability ops never fail: a backend lacking an operation logs a
// warning and returns a harmless default. The only error crosses the
// boundary at [Platform.Init], for hard platform preconditions.
type Platform interface {

	// Platform returns the platform type, which can be used for
	// conditionalizing behavior.
	Platform() Platforms

	// Init allocates and validates the rendering surface, sets the
	// backend-derived window dimensions on the context, and anchors
	// the frame clock. A non-nil error is fatal: the caller must not
	// enter the frame loop, and only Close remains well-defined.
	Init() error

	// Close releases all backend-owned resources. It must be safe to
	// call after a failed or partial Init, and more than once.
	Close()

	// PollEvents ingests pending OS events into the context input
	// state. The context has already rotated the snapshot buffers for
	// this frame when PollEvents is called.
	PollEvents()

	// SwapBuffers presents the completed frame.
	SwapBuffers()

	// Time returns the elapsed seconds since Init, from a monotonic
	// source. It never decreases within a run and is re-anchored only
	// by Init.
	Time() float64

	// Window control.

	ToggleFullscreen()
	ToggleBorderlessWindowed()
	MaximizeWindow()
	MinimizeWindow()
	RestoreWindow()
	SetWindowState(flags WindowFlags)
	ClearWindowState(flags WindowFlags)
	SetWindowTitle(title string)
	SetWindowPosition(x, y int)
	SetWindowMonitor(monitor int)
	SetWindowMinSize(w, h int)
	SetWindowMaxSize(w, h int)
	SetWindowSize(w, h int)
	SetWindowOpacity(opacity float32)
	SetWindowFocused()
	SetWindowIcons(icons []image.Image)
	WindowHandle() any
	WindowPosition() image.Point
	WindowScaleDPI() math32.Vector2

	// Monitor queries. Capability-less backends report one monitor of
	// unknown (zero) geometry.

	MonitorCount() int
	CurrentMonitor() int
	MonitorPosition(monitor int) image.Point
	MonitorSize(monitor int) image.Point
	MonitorPhysicalSize(monitor int) image.Point
	MonitorRefreshRate(monitor int) int
	MonitorName(monitor int) string

	// Cursor control. The shared cursor state (hidden flag, recenter
	// on capture toggle) is maintained by the context; these hooks
	// perform only the OS side effect.

	ShowCursor()
	HideCursor()
	EnableCursor()
	DisableCursor()
	SetMouseCursor(cursor Cursors)
	WarpMousePosition(x, y int)

	// Clipboard returns the clipboard handler for this backend.
	Clipboard() Clipboard

	// Misc.

	OpenURL(url string)
	KeyName(k key.Codes) string
	SetGamepadMappings(mappings string) int
	SetGamepadVibration(pad int, leftMotor, rightMotor, duration float32)
}

// Platforms are the supported platform backend types.
type Platforms int32

const (
	// Desktop is an OS-windowed desktop backend.
	Desktop Platforms = iota

	// Offscreen is the headless memory-framebuffer backend, typically
	// used for testing and for embedding rendered output.
	Offscreen

	// Web is a browser backend running through WASM.
	Web

	// Template is the reference backend implementing every operation
	// as its documented fallback; the starting point for new ports.
	Template
)

func (p Platforms) String() string {
	switch p {
	case Desktop:
		return "Desktop"
	case Offscreen:
		return "Offscreen"
	case Web:
		return "Web"
	case Template:
		return "Template"
	}
	return "Unknown"
}

// RendererVariants are the variants of the rendering collaborator
// that a backend can require or reject at init time.
type RendererVariants int32

const (
	// RendererHardware is a GPU-backed renderer presenting through an
	// OS surface.
	RendererHardware RendererVariants = iota

	// RendererSoftware is a CPU rasterizer whose framebuffer can be
	// copied out to memory.
	RendererSoftware
)

func (r RendererVariants) String() string {
	switch r {
	case RendererHardware:
		return "Hardware"
	case RendererSoftware:
		return "Software"
	}
	return "Unknown"
}

// Renderer is the interface to the rendering collaborator, which is
// outside the platform layer. The offscreen backend uses
// CopyFramebuffer to pull the completed frame into its CPU pixel
// buffer at swap time.
type Renderer interface {

	// Variant returns which renderer variant this is.
	Variant() RendererVariants

	// CopyFramebuffer copies the given region of the rendered
	// framebuffer into dst as packed RGBA, one uint32 per pixel.
	// dst must hold width*height elements.
	CopyFramebuffer(x, y, width, height int, dst []uint32)
}

// Cursors are the standard mouse cursor shapes.
type Cursors int32

const (
	CursorDefault Cursors = iota
	CursorArrow
	CursorIBeam
	CursorCrosshair
	CursorPointingHand
	CursorResizeEW
	CursorResizeNS
	CursorResizeNWSE
	CursorResizeNESW
	CursorResizeAll
	CursorNotAllowed

	CursorsN
)
