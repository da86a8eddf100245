// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import "time"

// fpsCaptureFrames is the number of frames averaged by [Context.GetFPS].
const fpsCaptureFrames = 30

// TimeState is the frame pacing sub-state of a [Context]. The elapsed
// clock itself is owned by the backend, which anchors a monotonic base
// at init; this state tracks per-frame durations on top of it.
type TimeState struct {

	// Target is the desired seconds per frame, or 0 for uncapped.
	Target float64

	// Frame is the duration of the last completed frame.
	Frame float64

	// Previous is the clock reading at the end of the last frame.
	Previous float64

	history [fpsCaptureFrames]float64
	index   int
	average float64
}

// GetTime returns the elapsed seconds since the backend was
// initialized, from a monotonic source. It returns 0 before
// [Context.Start].
func (ctx *Context) GetTime() float64 {
	if ctx.platform == nil {
		return 0
	}
	return ctx.platform.Time()
}

// GetFrameTime returns the seconds taken by the last completed frame.
func (ctx *Context) GetFrameTime() float32 {
	return float32(ctx.Time.Frame)
}

// GetFPS returns the current frames per second, averaged over recent
// frames to be stable enough to display.
func (ctx *Context) GetFPS() int {
	if ctx.Time.average <= 0 {
		return 0
	}
	return int(1/(ctx.Time.average/fpsCaptureFrames) + 0.5)
}

// SetTargetFPS caps the frame rate; [Context.EndFrame] waits out any
// remaining frame time. Zero removes the cap.
func (ctx *Context) SetTargetFPS(fps int) {
	if fps <= 0 {
		ctx.Time.Target = 0
		return
	}
	ctx.Time.Target = 1 / float64(fps)
}

// WaitTime blocks for the given number of seconds. This is the only
// deliberate block in the platform layer.
func (ctx *Context) WaitTime(seconds float64) {
	if seconds <= 0 {
		return
	}
	time.Sleep(time.Duration(seconds * float64(time.Second)))
}

// SwapScreenBuffer presents the completed frame through the backend.
// Most programs call [Context.EndFrame] instead, which also does the
// frame time accounting.
func (ctx *Context) SwapScreenBuffer() {
	if ctx.platform == nil {
		return
	}
	ctx.platform.SwapBuffers()
}

// EndFrame presents the completed frame, accounts its duration, and
// waits out the remainder of the frame budget when a target FPS is
// set.
func (ctx *Context) EndFrame() {
	ctx.SwapScreenBuffer()

	t := &ctx.Time
	now := ctx.GetTime()
	frame := now - t.Previous
	t.Previous = now

	if t.Target > 0 && frame < t.Target {
		ctx.WaitTime(t.Target - frame)
		now = ctx.GetTime()
		frame += now - t.Previous
		t.Previous = now
	}

	t.Frame = frame
	t.average -= t.history[t.index]
	t.history[t.index] = frame
	t.average += frame
	t.index = (t.index + 1) % fpsCaptureFrames
}
