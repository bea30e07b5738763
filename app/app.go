// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app sets up a [scene.Scene] on a window, runs its
// render loop until the window closes, and releases everything.
package app

import (
	"context"
	"log/slog"

	"cogentcore.org/gltri/base/errors"
	"cogentcore.org/gltri/gpu"
	"cogentcore.org/gltri/scene"
)

// Run builds the program and vertex array of the scene, runs the
// render loop on the window until it closes, and then releases the
// vertex array and program, on every return path. Shader failures
// are logged and the loop runs anyway, unless cfg.Strict is set, in
// which case they are returned.
func Run(ctx context.Context, cfg *Config, sc *scene.Scene, win gpu.Window, dev gpu.Device) error {
	key, err := cfg.Key()
	if err != nil {
		return err
	}
	lp := &gpu.Loop{
		Device:     dev,
		Window:     win,
		ClearColor: cfg.ClearColor,
		CloseKey:   key,
		Update:     sc.Update,
	}

	src, err := sc.Source()
	if err != nil {
		if cfg.Strict {
			return err
		}
		errors.Log(err)
	}
	pr, err := gpu.NewProgram(dev, src)
	lp.Program = pr
	defer func() { lp.Program.Release() }()
	if err != nil {
		if cfg.Strict {
			return err
		}
		slog.Error("shader program failed to build; drawing with it anyway", "scene", sc.Name, "err", err)
	}

	va, err := sc.Mesh.Upload(dev)
	if err != nil {
		return err
	}
	defer va.Release()
	lp.Array = va

	if cfg.Watch && len(sc.Files) > 0 {
		reload, stop, err := WatchFiles(ctx, sc.Files...)
		if err != nil {
			slog.Warn("not watching shader files", "scene", sc.Name, "err", err)
		} else {
			defer stop()
			lp.Reload = reload
			lp.OnReload = func() { reloadProgram(lp, sc) }
		}
	}

	slog.Info("drawing scene", "scene", sc.Name, "indexed", va.Indexed(), "count", va.Count)
	err = lp.Run(ctx)
	slog.Info("closed scene", "scene", sc.Name, "frames", lp.Frames)
	return err
}

// reloadProgram replaces the loop's program with one built from the
// current scene source, if it links.
func reloadProgram(lp *gpu.Loop, sc *scene.Scene) {
	src, err := sc.Source()
	if errors.Log(err) != nil {
		return
	}
	pr, err := gpu.NewProgram(lp.Device, src)
	if err != nil {
		pr.Release()
		slog.Error("reloaded shader program failed to build; keeping the current one", "scene", sc.Name, "err", err)
		return
	}
	lp.Program.Release()
	lp.Program = pr
	slog.Info("reloaded shader program", "scene", sc.Name)
}
