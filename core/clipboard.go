// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image"

	"github.com/lumen-gfx/lumen/logx"
)

// Clipboard is the interface to a backend's system clipboard. Callers
// must treat empty and nil returns as "unavailable", not as an empty
// clipboard: capability-less backends log a warning and return them.
type Clipboard interface {

	// Text returns the clipboard text content, or an empty string.
	Text() string

	// SetText sets the clipboard text content.
	SetText(text string)

	// Image returns the clipboard image content, or nil.
	Image() image.Image
}

// ClipboardBase is the [Clipboard] for backends without clipboard
// access: every operation warns and returns the empty default.
type ClipboardBase struct{}

var _ Clipboard = ClipboardBase{}

func (ClipboardBase) Text() string {
	logx.Warn("GetClipboardText not available on this platform")
	return ""
}

func (ClipboardBase) SetText(text string) {
	logx.Warn("SetClipboardText not available on this platform")
}

func (ClipboardBase) Image() image.Image {
	logx.Warn("GetClipboardImage not available on this platform")
	return nil
}
