// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, true))
}

func TestHandlerLevel(t *testing.T) {
	old := UserLevel
	defer func() { UserLevel = old }()

	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf))
	UserLevel = slog.LevelWarn
	lg.Info("hidden")
	assert.Empty(t, buf.String())
	lg.Warn("shown")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	UserLevel = slog.LevelDebug
	lg.Debug("now shown")
	assert.Contains(t, buf.String(), "now shown")
}

func TestLevelColor(t *testing.T) {
	assert.Equal(t, "1", LevelColor(slog.LevelError))
	assert.Equal(t, "3", LevelColor(slog.LevelWarn))
	assert.Equal(t, "4", LevelColor(slog.LevelInfo))
	assert.Equal(t, "8", LevelColor(slog.LevelDebug))
}
