// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux || darwin || freebsd || netbsd || openbsd

package offscreen

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/lumen-gfx/lumen/key"
)

var errNotTerminal = errors.New("stdin is not a terminal")

// terminalInput holds the raw-mode terminal state used for the
// windowless exit key. The terminal is put into raw non-blocking mode
// on start and restored on stop.
type terminalInput struct {
	fd    int
	state *term.State
}

func (t *terminalInput) start() error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errNotTerminal
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	if err := unix.SetNonblock(fd, true); err != nil {
		term.Restore(fd, state)
		return err
	}
	t.fd = fd
	t.state = state
	return nil
}

func (t *terminalInput) stop() {
	if t.state == nil {
		return
	}
	unix.SetNonblock(t.fd, false)
	term.Restore(t.fd, t.state)
	t.state = nil
}

// readKey returns the next key pressed on the terminal, or
// [key.CodeNull] when no input is pending.
func (t *terminalInput) readKey() key.Codes {
	if t.state == nil {
		return key.CodeNull
	}
	var buf [1]byte
	n, err := unix.Read(t.fd, buf[:])
	if err != nil || n == 0 {
		return key.CodeNull
	}
	return keyFromByte(buf[0])
}
