// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desktop

import (
	"bytes"
	"image"
	"image/png"

	"github.com/go-gl/glfw/v3.3/glfw"
	xclip "golang.design/x/clipboard"

	"github.com/lumen-gfx/lumen/core"
	"github.com/lumen-gfx/lumen/key"
	"github.com/lumen-gfx/lumen/logx"
)

func (p *Platform) ShowCursor() {
	p.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
}

func (p *Platform) HideCursor() {
	p.window.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
}

func (p *Platform) EnableCursor() {
	p.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
}

func (p *Platform) DisableCursor() {
	p.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
}

// SetMouseCursor sets the cursor to one of the standard shapes,
// creating it on first use. Shapes without a standard cursor on this
// GLFW version fall back to the arrow.
func (p *Platform) SetMouseCursor(cursor core.Cursors) {
	if cursor < 0 || cursor >= core.CursorsN {
		return
	}
	if p.cursors[cursor] == nil {
		p.cursors[cursor] = glfw.CreateStandardCursor(standardCursorShape(cursor))
	}
	p.window.SetCursor(p.cursors[cursor])
}

func standardCursorShape(cursor core.Cursors) glfw.StandardCursor {
	switch cursor {
	case core.CursorIBeam:
		return glfw.IBeamCursor
	case core.CursorCrosshair:
		return glfw.CrosshairCursor
	case core.CursorPointingHand:
		return glfw.HandCursor
	case core.CursorResizeEW:
		return glfw.HResizeCursor
	case core.CursorResizeNS:
		return glfw.VResizeCursor
	}
	return glfw.ArrowCursor
}

func (p *Platform) WarpMousePosition(x, y int) {
	p.window.SetCursorPos(float64(x), float64(y))
}

func (p *Platform) Clipboard() core.Clipboard {
	return desktopClipboard{p}
}

// desktopClipboard reads and writes text through GLFW and images
// through the system image clipboard, when the latter initialized.
type desktopClipboard struct {
	p *Platform
}

func (c desktopClipboard) Text() string {
	return glfw.GetClipboardString()
}

func (c desktopClipboard) SetText(text string) {
	glfw.SetClipboardString(text)
}

func (c desktopClipboard) Image() image.Image {
	if !c.p.imageClip {
		logx.Warn("GetClipboardImage not available on this platform")
		return nil
	}
	data := xclip.Read(xclip.FmtImage)
	if len(data) == 0 {
		return nil
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		logx.Warn("GetClipboardImage: decode failed: %v", err)
		return nil
	}
	return img
}

// KeyName returns the OS keyboard-layout name for the given key, or
// an empty string for keys with no printable name.
func (p *Platform) KeyName(k key.Codes) string {
	if !k.IsValid() {
		return ""
	}
	return glfw.GetKeyName(glfw.Key(k), 0)
}

func (p *Platform) SetGamepadMappings(mappings string) int {
	if glfw.UpdateGamepadMappings(mappings) {
		return 1
	}
	return 0
}

// pollGamepads samples every gamepad slot and feeds changes to the
// context. GLFW's gamepad layout matches the button and axis
// enumerations one to one.
func (p *Platform) pollGamepads() {
	for pad := 0; pad < core.MaxGamepads; pad++ {
		js := glfw.Joystick(pad)
		present := js.Present() && js.IsGamepad()
		if present != p.Ctx.Input.Gamepad.Ready[pad] {
			name := ""
			if present {
				name = js.GetGamepadName()
			}
			p.Ctx.GamepadConnectionEvent(pad, present, name)
		}
		if !present {
			continue
		}
		state := js.GetGamepadState()
		if state == nil {
			continue
		}
		for b := core.GamepadButtons(0); b < core.GamepadButtonsN; b++ {
			p.Ctx.GamepadButtonEvent(pad, b, state.Buttons[b] == glfw.Press)
		}
		for a := core.GamepadAxes(0); a < core.GamepadAxesN; a++ {
			p.Ctx.GamepadAxisEvent(pad, a, state.Axes[a])
		}
	}
}
