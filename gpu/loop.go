// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"context"
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"
)

// States are the states of a [Loop].
type States int32

const (
	Running States = iota
	Closing
)

func (st States) String() string {
	if st == Closing {
		return "closing"
	}
	return "running"
}

// Loop is an unthrottled render loop that draws one vertex array
// with one program per frame, paced by the buffer swap.
type Loop struct {
	Device  Device
	Window  Window
	Program *Program
	Array   *VertexArray

	ClearColor mgl32.Vec4

	// CloseKey, unless [KeyNone], sets the window close flag
	// when pressed.
	CloseKey Keys

	// Update, if set, is called each frame with the program in use
	// and the current window time, to set time-varying uniforms.
	Update func(pr *Program, t float64)

	// Reload, if set, is checked between frames. Each value received
	// calls OnReload on the render thread.
	Reload   <-chan struct{}
	OnReload func()

	// Frames is the number of frames drawn.
	Frames int

	State States
}

// Run runs the loop until the window should close or ctx is done,
// which is treated the same as an external close request. The close
// key is checked at the start of each iteration, before anything is
// drawn, so no draw call follows a close request.
func (lp *Loop) Run(ctx context.Context) error {
	w, h := lp.Window.FramebufferSize()
	lp.Device.Viewport(0, 0, w, h)
	lp.State = Running
	slog.Debug("render loop started", "width", w, "height", h)
	for {
		lp.processInput()
		if ctx.Err() != nil {
			lp.Window.SetShouldClose(true)
		}
		if lp.Window.ShouldClose() {
			lp.State = Closing
			slog.Debug("render loop closing", "frames", lp.Frames)
			return nil
		}
		select {
		case <-lp.Reload:
			if lp.OnReload != nil {
				lp.OnReload()
			}
		default:
		}
		lp.RenderFrame()
		lp.Window.SwapBuffers()
		lp.Window.PollEvents()
	}
}

func (lp *Loop) processInput() {
	if lp.CloseKey != KeyNone && lp.Window.KeyPressed(lp.CloseKey) {
		lp.Window.SetShouldClose(true)
	}
}

// RenderFrame clears the screen and issues the frame's one draw call.
func (lp *Loop) RenderFrame() {
	lp.Device.ClearColor(lp.ClearColor)
	lp.Device.Clear()
	if lp.Program != nil {
		lp.Program.Use()
		if lp.Update != nil {
			lp.Update(lp.Program, lp.Window.Time())
		}
	}
	lp.Array.Draw()
	lp.Frames++
}
