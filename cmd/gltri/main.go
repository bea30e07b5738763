// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gltri opens a window and draws one of a set of fixed
// OpenGL scenes until the window is closed or escape is pressed.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"cogentcore.org/gltri/app"
	"cogentcore.org/gltri/base/logx"
	"cogentcore.org/gltri/gpu/gldriver"
	"cogentcore.org/gltri/scene"
	"github.com/urfave/cli/v2"
)

func init() {
	// must lock main thread for glfw and gl!
	runtime.LockOSThread()
}

var sceneUsage = map[string]string{
	"triangle": "draw an orange triangle",
	"uniform":  "draw a triangle whose green pulses with time, set through a uniform",
	"indexed":  "draw a rectangle as two indexed triangles",
	"colored":  "draw a triangle with per-vertex colors, with shaders read from files",
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newApp().RunContext(ctx, os.Args)
	stop()
	if err != nil {
		slog.Error(err.Error())
		os.Exit(-1)
	}
}

func newApp() *cli.App {
	a := &cli.App{
		Name:  "gltri",
		Usage: "draw a fixed OpenGL scene",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from TOML `FILE`"},
			&cli.IntFlag{Name: "width", Usage: "window width"},
			&cli.IntFlag{Name: "height", Usage: "window height"},
			&cli.StringFlag{Name: "title", Usage: "window title"},
			&cli.BoolFlag{Name: "watch", Usage: "reload file shaders when they change"},
			&cli.BoolFlag{Name: "strict", Usage: "exit when a shader fails to compile or link"},
			&cli.BoolFlag{Name: "vv", Usage: "print debug messages"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "print informational messages"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "only print errors"},
		},
		Action: func(c *cli.Context) error {
			return run(c, "")
		},
	}
	for _, name := range scene.Names {
		a.Commands = append(a.Commands, &cli.Command{
			Name:  name,
			Usage: sceneUsage[name],
			Action: func(c *cli.Context) error {
				return run(c, name)
			},
		})
	}
	return a
}

// config returns the configuration from the config file, if any,
// with the flags that are set applied on top.
func config(c *cli.Context) (*app.Config, error) {
	cfg, err := app.NewConfig(c.String("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("width") {
		cfg.Width = c.Int("width")
	}
	if c.IsSet("height") {
		cfg.Height = c.Int("height")
	}
	if c.IsSet("title") {
		cfg.Title = c.String("title")
	}
	if c.IsSet("watch") {
		cfg.Watch = c.Bool("watch")
	}
	if c.IsSet("strict") {
		cfg.Strict = c.Bool("strict")
	}
	return cfg, nil
}

func run(c *cli.Context, name string) error {
	logx.UserLevel = logx.LevelFromFlags(c.Bool("vv"), c.Bool("verbose"), c.Bool("quiet"))
	logx.SetDefaultLogger()

	cfg, err := config(c)
	if err != nil {
		return err
	}
	if name != "" {
		cfg.Scene = name
	}
	sc, err := cfg.NewScene()
	if err != nil {
		return err
	}
	win, dev, terminate, err := gldriver.Open(gldriver.Options{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Title:   cfg.Title,
		GLMajor: cfg.GLMajor,
		GLMinor: cfg.GLMinor,
	})
	if err != nil {
		return err
	}
	defer terminate()
	return app.Run(c.Context, cfg, sc, win, dev)
}
