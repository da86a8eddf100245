// Copyright (c) 2026, Lumen Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides leveled logging for lumen, as a thin wrapper
// around [log/slog]. The levels follow the platform layer's diagnostic
// taxonomy: trace and debug for verbose development output, info for
// lifecycle milestones, warn for degraded capabilities, error for hard
// failures, and fatal for unrecoverable init failures.
package logx

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// Level values extend the slog levels with the two extremes used by
// the platform layer.
const (
	LevelTrace = slog.LevelDebug - 4
	LevelFatal = slog.LevelError + 4
)

// UserLevel is the minimum level at which messages are logged.
// It defaults based on build tags: debug builds log from [slog.LevelDebug],
// release builds from [slog.LevelWarn], and all others from [slog.LevelInfo].
var UserLevel = defaultUserLevel

// The handler passes everything; filtering happens against UserLevel in logAt.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: LevelTrace}))

// Logger returns the underlying [slog.Logger].
func Logger() *slog.Logger { return logger }

// SetLogger sets the underlying [slog.Logger], for apps that need to
// redirect platform diagnostics.
func SetLogger(l *slog.Logger) { logger = l }

func logAt(level slog.Level, format string, args ...any) {
	if level < UserLevel {
		return
	}
	logger.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Trace logs the given formatted message at [LevelTrace].
func Trace(format string, args ...any) { logAt(LevelTrace, format, args...) }

// Debug logs the given formatted message at [slog.LevelDebug].
func Debug(format string, args ...any) { logAt(slog.LevelDebug, format, args...) }

// Info logs the given formatted message at [slog.LevelInfo].
func Info(format string, args ...any) { logAt(slog.LevelInfo, format, args...) }

// Warn logs the given formatted message at [slog.LevelWarn].
// Degraded-capability diagnostics from platform backends go through here.
func Warn(format string, args ...any) { logAt(slog.LevelWarn, format, args...) }

// Error logs the given formatted message at [slog.LevelError].
func Error(format string, args ...any) { logAt(slog.LevelError, format, args...) }

// Fatal logs the given formatted message at [LevelFatal] and then
// exits the process with code 1.
func Fatal(format string, args ...any) {
	logAt(LevelFatal, format, args...)
	os.Exit(1)
}
