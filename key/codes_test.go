// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert.False(t, CodeNull.IsValid())
	assert.False(t, Codes(-1).IsValid())
	assert.False(t, Codes(CodesN).IsValid())
	assert.True(t, CodeA.IsValid())
	assert.True(t, CodeEscape.IsValid())
	assert.True(t, CodeKeypadEqual.IsValid())
}

func TestString(t *testing.T) {
	assert.Equal(t, "A", CodeA.String())
	assert.Equal(t, "Escape", CodeEscape.String())
	assert.Equal(t, "Unknown", Codes(500).String())
}

func TestCodeByName(t *testing.T) {
	assert.Equal(t, CodeEscape, CodeByName("Escape"))
	assert.Equal(t, CodeQ, CodeByName("Q"))
	assert.Equal(t, CodeNull, CodeByName("Null"))
	assert.Equal(t, CodeNull, CodeByName("NoSuchKey"))
}

func TestPrintableCodesMatchASCII(t *testing.T) {
	assert.Equal(t, Codes('A'), CodeA)
	assert.Equal(t, Codes('0'), Code0)
	assert.Equal(t, Codes(' '), CodeSpace)
}
