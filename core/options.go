// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/lumen-gfx/lumen/key"
)

// Options are the startup options for a [Context]. The zero value is
// valid; missing fields are filled in with defaults. Options can be
// loaded from a TOML file with [OpenOptions].
type Options struct {

	// Title is the initial window title.
	Title string `toml:"title"`

	// Width and Height are the initial logical window size.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Window configuration flags.
	Resizable   bool `toml:"resizable"`
	Fullscreen  bool `toml:"fullscreen"`
	Undecorated bool `toml:"undecorated"`
	Hidden      bool `toml:"hidden"`
	VSync       bool `toml:"vsync"`
	HighDPI     bool `toml:"high-dpi"`

	// TargetFPS caps the frame rate; 0 means uncapped.
	TargetFPS int `toml:"target-fps"`

	// ExitKey is the name of the key that requests window close,
	// "Escape" by default. "Null" disables the exit key.
	ExitKey string `toml:"exit-key"`
}

// OpenOptions reads [Options] from the given TOML file.
func OpenOptions(filename string) (*Options, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("options: %w", err)
	}
	opts := &Options{}
	if err := toml.Unmarshal(b, opts); err != nil {
		return nil, fmt.Errorf("options: %s: %w", filename, err)
	}
	return opts, nil
}

// defaults fills in default values for unset fields.
func (o *Options) defaults() {
	if o.Title == "" {
		o.Title = "Lumen"
	}
	if o.Width <= 0 {
		o.Width = 800
	}
	if o.Height <= 0 {
		o.Height = 450
	}
	if o.ExitKey == "" {
		o.ExitKey = "Escape"
	}
}

func (o *Options) flags() WindowFlags {
	var f WindowFlags
	if o.Resizable {
		f.Set(FlagResizable)
	}
	if o.Fullscreen {
		f.Set(FlagFullscreen)
	}
	if o.Undecorated {
		f.Set(FlagUndecorated)
	}
	if o.Hidden {
		f.Set(FlagHidden)
	}
	if o.VSync {
		f.Set(FlagVSyncHint)
	}
	if o.HighDPI {
		f.Set(FlagHighDPI)
	}
	return f
}

func (o *Options) exitKey() key.Codes {
	return key.CodeByName(o.ExitKey)
}
