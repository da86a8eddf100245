// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build offscreen

package driver

import (
	"github.com/lumen-gfx/lumen/core"
	"github.com/lumen-gfx/lumen/core/driver/offscreen"
)

// New returns the offscreen backend rendering through r.
func New(ctx *core.Context, r core.Renderer) core.Platform {
	return offscreen.NewPlatform(ctx, r)
}
