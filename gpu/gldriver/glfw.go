// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

// Package gldriver implements [gpu.Device] on OpenGL through go-gl
// and [gpu.Window] on glfw, for desktop platforms.
package gldriver

import (
	"fmt"
	"log/slog"
	"runtime"

	"cogentcore.org/gltri/gpu"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Options are the window and context settings for [Open].
type Options struct {
	Width, Height int
	Title         string

	// GLMajor and GLMinor are the requested core profile version.
	GLMajor, GLMinor int
}

// Window is a [gpu.Window] backed by a glfw window.
type Window struct {
	win *glfw.Window
}

var _ gpu.Window = (*Window)(nil)

// Open initializes glfw, creates a window with a current core profile
// context, loads the GL entry points, and sets the viewport to track
// the framebuffer size. The returned terminate function destroys the
// window and shuts down glfw; on error everything created so far has
// already been released.
// IMPORTANT: must be called on the main thread, which must be locked
// with [runtime.LockOSThread].
func Open(opts Options) (win *Window, dev *Device, terminate func(), err error) {
	if err = glfw.Init(); err != nil {
		return nil, nil, nil, fmt.Errorf("gldriver: failed to initialize glfw: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, opts.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	w, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, nil, fmt.Errorf("gldriver: failed to create glfw window: %w", err)
	}
	w.MakeContextCurrent()
	if err = gl.Init(); err != nil {
		w.Destroy()
		glfw.Terminate()
		return nil, nil, nil, fmt.Errorf("gldriver: failed to load OpenGL functions: %w", err)
	}
	dev = &Device{}
	w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		dev.Viewport(0, 0, width, height)
	})
	slog.Info("opened window", "title", opts.Title, "gl", gl.GoStr(gl.GetString(gl.VERSION)))
	terminate = func() {
		w.Destroy()
		glfw.Terminate()
	}
	return &Window{win: w}, dev, terminate, nil
}

// glfwKey returns the glfw key for the given key.
func glfwKey(key gpu.Keys) glfw.Key {
	switch key {
	case gpu.KeyEscape:
		return glfw.KeyEscape
	case gpu.KeyQ:
		return glfw.KeyQ
	case gpu.KeySpace:
		return glfw.KeySpace
	case gpu.KeyEnter:
		return glfw.KeyEnter
	}
	return glfw.KeyUnknown
}

func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

func (w *Window) SetShouldClose(v bool) {
	w.win.SetShouldClose(v)
}

func (w *Window) KeyPressed(key gpu.Keys) bool {
	k := glfwKey(key)
	if k == glfw.KeyUnknown {
		return false
	}
	return w.win.GetKey(k) == glfw.Press
}

func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) Time() float64 {
	return glfw.GetTime()
}

func (w *Window) FramebufferSize() (width, height int) {
	return w.win.GetFramebufferSize()
}
