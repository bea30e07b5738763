// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gputest

import "cogentcore.org/gltri/gpu"

var _ gpu.Window = (*Window)(nil)

// Window is a scripted [gpu.Window]. Frames are counted by
// [Window.SwapBuffers], and iteration n is the one in which
// n-1 frames have been swapped.
type Window struct {
	Width, Height int

	// CloseAfter, if positive, is the number of PollEvents calls
	// after which the window system requests a close.
	CloseAfter int

	// Key is reported pressed from iteration PressAt onward,
	// if PressAt is positive.
	Key     gpu.Keys
	PressAt int

	// TimeStep is the time in seconds added per swapped frame.
	TimeStep float64

	Swaps, Polls int

	closed bool
}

// NewWindow returns a new 800x600 window with a 60 Hz time step
// that closes after the given number of polls.
func NewWindow(closeAfter int) *Window {
	return &Window{Width: 800, Height: 600, CloseAfter: closeAfter, TimeStep: 1.0 / 60}
}

func (w *Window) ShouldClose() bool {
	return w.closed || (w.CloseAfter > 0 && w.Polls >= w.CloseAfter)
}

func (w *Window) SetShouldClose(v bool) {
	w.closed = v
}

func (w *Window) KeyPressed(key gpu.Keys) bool {
	return w.PressAt > 0 && key == w.Key && w.Swaps+1 >= w.PressAt
}

func (w *Window) SwapBuffers() {
	w.Swaps++
}

func (w *Window) PollEvents() {
	w.Polls++
}

func (w *Window) Time() float64 {
	return float64(w.Swaps) * w.TimeStep
}

func (w *Window) FramebufferSize() (width, height int) {
	return w.Width, w.Height
}
