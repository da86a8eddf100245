// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumen-gfx/lumen/core"
)

func TestTimeMonotonic(t *testing.T) {
	ctx := core.NewContext(nil)
	assert.Equal(t, float64(0), ctx.GetTime())

	ctx, _ = start(t, nil)
	first := ctx.GetTime()
	assert.GreaterOrEqual(t, first, float64(0))
	ctx.WaitTime(0.002)
	assert.Greater(t, ctx.GetTime(), first)
}

func TestTargetFPS(t *testing.T) {
	ctx, _ := start(t, nil)

	ctx.SetTargetFPS(60)
	assert.InDelta(t, 1.0/60, ctx.Time.Target, 1e-9)
	ctx.SetTargetFPS(0)
	assert.Equal(t, float64(0), ctx.Time.Target)
}

func TestEndFrameAccounting(t *testing.T) {
	ctx, _ := start(t, &core.Options{TargetFPS: 200})

	for i := 0; i < 3; i++ {
		ctx.PollInputEvents()
		ctx.EndFrame()
	}
	// With a 200 FPS cap each frame is padded out to its budget.
	assert.Greater(t, ctx.GetFrameTime(), float32(0))
	assert.GreaterOrEqual(t, float64(ctx.GetFrameTime()), 0.8*ctx.Time.Target)
	assert.Greater(t, ctx.GetFPS(), 0)
}

func TestWaitTimeNegative(t *testing.T) {
	ctx, _ := start(t, nil)
	// Must return immediately, not sleep.
	ctx.WaitTime(-1)
	ctx.WaitTime(0)
}
