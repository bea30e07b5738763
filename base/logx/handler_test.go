// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func newTestLogger(buf *bytes.Buffer, level slog.Level) *slog.Logger {
	h := NewHandler(buf, &slog.HandlerOptions{Level: level}, termenv.WithProfile(termenv.Ascii))
	return slog.New(h)
}

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, slog.LevelInfo)
	l.Debug("hidden")
	l.Info("compiled shader", "stage", "vertex", "id", 3)
	assert.Equal(t, "INFO compiled shader stage=vertex id=3\n", buf.String())

	buf.Reset()
	l.Error("link failed", "log", "error: undefined symbol")
	assert.Equal(t, "ERROR link failed log=\"error: undefined symbol\"\n", buf.String())
}

func TestHandlerAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, slog.LevelDebug)
	l = l.With("scene", "indexed").WithGroup("gpu")
	l.Debug("draw", "count", 6, slog.Group("vao", "id", 1))
	assert.Equal(t, "DEBUG draw scene=indexed gpu.count=6 gpu.vao.id=1\n", buf.String())
}

func TestDefaultLogger(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)
	UserLevel = slog.LevelDebug
	defer func() { UserLevel = slog.LevelInfo }()
	SetDefaultLogger()

	slog.Debug("this is debug")
	slog.Info("this is info")
	slog.Warn("this is warn")
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))
}
