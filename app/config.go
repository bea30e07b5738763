// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"cogentcore.org/gltri/cli"
	"cogentcore.org/gltri/gpu"
	"cogentcore.org/gltri/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// Config is the configuration of a gltri window, loaded from
// `default:` tags, then an optional TOML file, then flags.
type Config struct {
	// Scene is the name of the scene to draw.
	Scene string `default:"colored" toml:"scene"`

	Title  string `default:"Basic3DViewer" toml:"title"`
	Width  int    `default:"800" toml:"width"`
	Height int    `default:"600" toml:"height"`

	// GLMajor and GLMinor are the requested core profile version.
	GLMajor int `default:"3" toml:"gl_major"`
	GLMinor int `default:"3" toml:"gl_minor"`

	ClearColor mgl32.Vec4 `default:"[0.2, 0.3, 0.3, 1]" toml:"clear_color"`

	// CloseKey is the name of the key that closes the window.
	CloseKey string `default:"escape" toml:"close_key"`

	// VertexShader and FragmentShader are the shader files
	// of the colored scene.
	VertexShader   string `default:"shaders/3.3.shader.vs" toml:"vertex_shader"`
	FragmentShader string `default:"shaders/3.3.shader.fs" toml:"fragment_shader"`

	// Strict makes shader compile and link failures fatal.
	Strict bool `toml:"strict"`

	// Watch reloads file shaders when they change.
	Watch bool `toml:"watch"`
}

// NewConfig returns a config with the default values, overridden
// by the given TOML file if it is not empty.
func NewConfig(file string) (*Config, error) {
	cfg := &Config{}
	if err := cli.SetFromDefaults(cfg); err != nil {
		return nil, err
	}
	if file == "" {
		return cfg, nil
	}
	if err := cli.Open(cfg, file); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewScene returns the configured scene.
func (cfg *Config) NewScene() (*scene.Scene, error) {
	return scene.New(cfg.Scene, cfg.VertexShader, cfg.FragmentShader)
}

// Key returns the configured close key.
func (cfg *Config) Key() (gpu.Keys, error) {
	return gpu.ParseKey(cfg.CloseKey)
}
