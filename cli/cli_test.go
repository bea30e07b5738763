// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Title  string     `default:"Draw Triangle" toml:"title"`
	Width  int        `default:"800" toml:"width"`
	Height int        `default:"600" toml:"height"`
	Clear  [4]float32 `default:"[0.2, 0.3, 0.3, 1]" toml:"clear"`
}

func TestOpen(t *testing.T) {
	cfg := &testConfig{}
	require.NoError(t, SetFromDefaults(cfg))
	require.NoError(t, Read(cfg, strings.NewReader("width = 1024\nclear = [0, 0, 0, 1]\n")))
	assert.Equal(t, "Draw Triangle", cfg.Title)
	assert.Equal(t, 1024, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
	assert.Equal(t, [4]float32{0, 0, 0, 1}, cfg.Clear)
}

func TestOpenUnknownField(t *testing.T) {
	cfg := &testConfig{}
	assert.Error(t, Read(cfg, strings.NewReader("depth = 24\n")))
}

func TestSaveOpen(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.toml")
	cfg := &testConfig{Title: "Saved", Width: 320, Height: 240, Clear: [4]float32{1, 0, 0, 1}}
	require.NoError(t, Save(cfg, file))

	got := &testConfig{}
	require.NoError(t, Open(got, file))
	assert.Equal(t, cfg, got)

	assert.Error(t, Open(got, filepath.Join(t.TempDir(), "missing.toml")))
}
