// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package offscreen provides the headless backend: frames are rendered
// into an in-memory pixel buffer instead of an OS window. It is used
// for tests, server-side rendering, and any environment without a
// display. The backend requires a software renderer, because there is
// no GPU surface to present to; everything else degrades to the shared
// warn-and-default behavior.
//
// When standard input is a terminal, it is switched to raw
// non-blocking mode so the exit key still works without a window; the
// terminal is restored on Close.
package offscreen

import (
	"fmt"
	"image"

	"github.com/atotto/clipboard"

	"github.com/lumen-gfx/lumen/core"
	"github.com/lumen-gfx/lumen/core/driver/base"
	"github.com/lumen-gfx/lumen/events"
	"github.com/lumen-gfx/lumen/key"
	"github.com/lumen-gfx/lumen/logx"
)

// Platform is the headless memory-framebuffer implementation of
// [core.Platform].
type Platform struct {
	base.PlatformBase

	// Renderer is the software renderer frames are pulled from.
	Renderer core.Renderer

	// Pixels is the memory framebuffer, packed RGBA with one uint32
	// per pixel, row-major at the render size. It is allocated by Init
	// and released by Close.
	Pixels []uint32

	term    terminalInput
	lastKey key.Codes
}

var _ core.Platform = &Platform{}

// NewPlatform returns a new offscreen backend rendering through r,
// which must be a software-variant [core.Renderer].
func NewPlatform(ctx *core.Context, r core.Renderer) *Platform {
	return &Platform{PlatformBase: base.NewPlatformBase(ctx), Renderer: r}
}

func (p *Platform) Platform() core.Platforms {
	return core.Offscreen
}

// Init validates the renderer variant and allocates the memory
// framebuffer at the configured screen size. A renderer that is not
// the software variant is a hard error: without an OS surface there is
// nowhere else for pixels to go.
func (p *Platform) Init() error {
	if p.Renderer == nil {
		return fmt.Errorf("offscreen: no renderer configured: %w", core.ErrRendererVariant)
	}
	if v := p.Renderer.Variant(); v != core.RendererSoftware {
		return fmt.Errorf("offscreen: renderer variant %v: %w", v, core.ErrRendererVariant)
	}
	if err := p.PlatformBase.Init(); err != nil {
		return err
	}

	w := &p.Ctx.Window
	w.Display = w.Screen
	w.Render = w.Screen
	w.CurrentFBO = w.Render
	p.Pixels = make([]uint32, w.Render.X*w.Render.Y)
	logx.Info("PLATFORM: Memory framebuffer: %d x %d", w.Render.X, w.Render.Y)

	if err := p.term.start(); err != nil {
		logx.Warn("PLATFORM: Terminal input unavailable, exit key disabled: %v", err)
	}
	return nil
}

// Close restores the terminal and releases the framebuffer. It is
// safe to call more than once and after a failed Init.
func (p *Platform) Close() {
	p.term.stop()
	p.Pixels = nil
}

// PollEvents reads the terminal exit-key input and drains the event
// queue. A terminal keypress is reported as a one-frame press: the
// key-up is synthesized on the following poll, so edge queries see a
// clean press and release.
func (p *Platform) PollEvents() {
	if p.lastKey != key.CodeNull {
		p.Events.Send(events.Event{Type: events.KeyUp, Key: p.lastKey})
		p.lastKey = key.CodeNull
	}
	if k := p.term.readKey(); k != key.CodeNull {
		p.Events.Send(events.Event{Type: events.KeyDown, Key: k})
		p.lastKey = k
	}
	p.DrainEvents()
}

// SwapBuffers pulls the completed frame from the software renderer
// into the memory framebuffer.
func (p *Platform) SwapBuffers() {
	if p.Pixels == nil {
		return
	}
	r := p.Ctx.Window.Render
	p.Renderer.CopyFramebuffer(0, 0, r.X, r.Y, p.Pixels)
}

// Image returns a copy of the last swapped frame as an RGBA image.
func (p *Platform) Image() *image.RGBA {
	r := p.Ctx.Window.Render
	img := image.NewRGBA(image.Rect(0, 0, r.X, r.Y))
	for i, px := range p.Pixels {
		img.Pix[4*i+0] = uint8(px >> 24)
		img.Pix[4*i+1] = uint8(px >> 16)
		img.Pix[4*i+2] = uint8(px >> 8)
		img.Pix[4*i+3] = uint8(px)
	}
	return img
}

// WindowHandle returns the memory framebuffer, the closest thing this
// backend has to a native handle.
func (p *Platform) WindowHandle() any {
	return p.Pixels
}

func (p *Platform) Clipboard() core.Clipboard {
	return textClipboard{}
}

// textClipboard uses the OS text clipboard through its command line
// tools, which work without a window. Images are not supported.
type textClipboard struct{}

func (textClipboard) Text() string {
	s, err := clipboard.ReadAll()
	if err != nil {
		logx.Warn("GetClipboardText failed: %v", err)
		return ""
	}
	return s
}

func (textClipboard) SetText(text string) {
	if err := clipboard.WriteAll(text); err != nil {
		logx.Warn("SetClipboardText failed: %v", err)
	}
}

func (textClipboard) Image() image.Image {
	logx.Warn("GetClipboardImage not available on this platform")
	return nil
}

// keyFromByte maps a raw terminal byte to a key code. Letters map to
// their uppercase codes; bytes with no corresponding code map to
// [key.CodeNull].
func keyFromByte(b byte) key.Codes {
	switch b {
	case 27:
		return key.CodeEscape
	case '\r', '\n':
		return key.CodeEnter
	case '\t':
		return key.CodeTab
	case 127, 8:
		return key.CodeBackspace
	}
	if b >= 'a' && b <= 'z' {
		b -= 'a' - 'A'
	}
	k := key.Codes(b)
	if k.IsValid() && k.String() != "Unknown" {
		return k
	}
	return key.CodeNull
}
