// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package offscreen

import (
	"errors"

	"github.com/lumen-gfx/lumen/key"
)

// terminalInput is a stub on platforms without raw terminal support;
// the exit key is simply unavailable there.
type terminalInput struct{}

func (t *terminalInput) start() error {
	return errors.New("raw terminal input not supported on this OS")
}

func (t *terminalInput) stop() {}

func (t *terminalInput) readKey() key.Codes {
	return key.CodeNull
}
