// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/gltri/gpu"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig("")
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Scene:          "colored",
		Title:          "Basic3DViewer",
		Width:          800,
		Height:         600,
		GLMajor:        3,
		GLMinor:        3,
		ClearColor:     mgl32.Vec4{0.2, 0.3, 0.3, 1},
		CloseKey:       "escape",
		VertexShader:   "shaders/3.3.shader.vs",
		FragmentShader: "shaders/3.3.shader.fs",
	}, cfg)
	k, err := cfg.Key()
	require.NoError(t, err)
	assert.Equal(t, gpu.KeyEscape, k)
}

func TestNewConfigFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "gltri.toml")
	require.NoError(t, os.WriteFile(file, []byte(`
scene = "indexed"
title = "Draw Triangle Indexed"
clear_color = [0.1, 0.1, 0.1, 1.0]
watch = true
`), 0666))
	cfg, err := NewConfig(file)
	require.NoError(t, err)
	assert.Equal(t, "indexed", cfg.Scene)
	assert.Equal(t, "Draw Triangle Indexed", cfg.Title)
	assert.Equal(t, mgl32.Vec4{0.1, 0.1, 0.1, 1}, cfg.ClearColor)
	assert.True(t, cfg.Watch)
	assert.Equal(t, 800, cfg.Width)

	sc, err := cfg.NewScene()
	require.NoError(t, err)
	assert.Equal(t, "indexed", sc.Name)
}

func TestNewConfigErrors(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(file, []byte("samples = 4\n"), 0666))
	_, err = NewConfig(file)
	assert.Error(t, err)
}
