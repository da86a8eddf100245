// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package driver selects the appropriate platform backend for the
// build: the desktop backend by default, and the offscreen backend
// under the offscreen build tag, in tests, and with the -nogui flag.
package driver
