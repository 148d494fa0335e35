// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default structured logger
// and the user verbosity level.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. The default user
// verbosity level is [slog.LevelWarn].
var UserLevel = slog.LevelWarn

// UseColor is whether to use color in log messages. It is on by default.
var UseColor = true

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// SetDefaultLogger sets the default logger to a text handler on
// [os.Stderr] filtered by [UserLevel]. The handler reads UserLevel
// on every record, so later changes to it take effect immediately.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// NewHandler returns a text [slog.Handler] writing to w at [UserLevel],
// with level names colored when [UseColor] is set and w is a terminal.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	opts := &slog.HandlerOptions{
		Level: &UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if !UseColor || len(groups) > 0 || a.Key != slog.LevelKey {
				return a
			}
			lvl, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(out.String(lvl.String()).Foreground(out.Color(LevelColor(lvl))).Bold().String())
			return a
		},
	}
	return slog.NewTextHandler(w, opts)
}

// LevelColor returns the ANSI color code used for the given level.
func LevelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "1" // red
	case level >= slog.LevelWarn:
		return "3" // yellow
	case level >= slog.LevelInfo:
		return "4" // blue
	default:
		return "8" // gray
	}
}
