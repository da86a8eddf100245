// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen

package driver

import (
	"os"
	"slices"
	"testing"

	"github.com/lumen-gfx/lumen/core"
	"github.com/lumen-gfx/lumen/core/driver/desktop"
	"github.com/lumen-gfx/lumen/core/driver/offscreen"
)

// New returns the platform backend for this build. Tests and the
// -nogui flag get the offscreen backend so programs run headless
// without a rebuild; everything else gets the desktop backend, which
// ignores r and presents through its own OS surface.
func New(ctx *core.Context, r core.Renderer) core.Platform {
	if testing.Testing() || slices.Contains(os.Args, "-nogui") {
		return offscreen.NewPlatform(ctx, r)
	}
	return desktop.NewPlatform(ctx)
}
