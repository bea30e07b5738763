// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu_test

import (
	"context"
	"testing"

	"cogentcore.org/gltri/gpu"
	"cogentcore.org/gltri/gpu/gputest"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoop(t *testing.T, dev *gputest.Device, win *gputest.Window, src gpu.ProgramSource) *gpu.Loop {
	pr, _ := gpu.NewProgram(dev, src)
	va, err := rectangle().Upload(dev)
	require.NoError(t, err)
	t.Cleanup(func() {
		va.Release()
		pr.Release()
		assert.True(t, dev.Balanced(), dev.Errors)
	})
	return &gpu.Loop{
		Device:     dev,
		Window:     win,
		Program:    pr,
		Array:      va,
		ClearColor: mgl32.Vec4{0.2, 0.3, 0.3, 1},
		CloseKey:   gpu.KeyEscape,
	}
}

func validSource() gpu.ProgramSource {
	return gpu.ProgramSource{Name: "loop", Vertex: vertexSrc, Fragment: fragmentSrc}
}

func TestLoopWindowClose(t *testing.T) {
	dev := gputest.NewDevice()
	win := gputest.NewWindow(5)
	lp := newLoop(t, dev, win, validSource())
	require.NoError(t, lp.Run(context.Background()))
	assert.Equal(t, gpu.Closing, lp.State)
	assert.Equal(t, 5, lp.Frames)
	assert.Equal(t, 5, dev.Draws)
	assert.Equal(t, 5, dev.Clears)
	assert.Equal(t, 5, win.Swaps)
	assert.Equal(t, [4]int{0, 0, 800, 600}, dev.Viewed)
	assert.Equal(t, mgl32.Vec4{0.2, 0.3, 0.3, 1}, dev.Cleared)
	assert.Equal(t, lp.Program.Handle, dev.Current)
}

func TestLoopCloseKey(t *testing.T) {
	for _, k := range []int{1, 2, 7} {
		dev := gputest.NewDevice()
		win := gputest.NewWindow(0)
		win.Key = gpu.KeyEscape
		win.PressAt = k
		lp := newLoop(t, dev, win, validSource())
		require.NoError(t, lp.Run(context.Background()))
		assert.Equal(t, k-1, dev.Draws, "key pressed in iteration %d", k)
		assert.Equal(t, k-1, win.Swaps)
		assert.True(t, win.ShouldClose())
	}
}

func TestLoopOtherKeyIgnored(t *testing.T) {
	dev := gputest.NewDevice()
	win := gputest.NewWindow(4)
	win.Key = gpu.KeySpace
	win.PressAt = 1
	lp := newLoop(t, dev, win, validSource())
	require.NoError(t, lp.Run(context.Background()))
	assert.Equal(t, 4, dev.Draws)
}

func TestLoopContextCancel(t *testing.T) {
	dev := gputest.NewDevice()
	win := gputest.NewWindow(0)
	lp := newLoop(t, dev, win, validSource())
	ctx, cancel := context.WithCancel(context.Background())
	n := 0
	lp.Update = func(pr *gpu.Program, t float64) {
		n++
		if n == 3 {
			cancel()
		}
	}
	require.NoError(t, lp.Run(ctx))
	assert.Equal(t, 3, dev.Draws)
	assert.True(t, win.ShouldClose())
}

func TestLoopUpdate(t *testing.T) {
	dev := gputest.NewDevice()
	win := gputest.NewWindow(3)
	lp := newLoop(t, dev, win, validSource())
	var times []float64
	lp.Update = func(pr *gpu.Program, t float64) {
		times = append(times, t)
		pr.SetVec4("ourColor", mgl32.Vec4{0, float32(t), 0, 1})
	}
	require.NoError(t, lp.Run(context.Background()))
	assert.Equal(t, []float64{0, 1.0 / 60, 2.0 / 60}, times)
	loc := lp.Program.UniformLocation("ourColor")
	assert.Equal(t, mgl32.Vec4{0, float32(2.0 / 60), 0, 1}, dev.Uniforms[loc])
}

func TestLoopReload(t *testing.T) {
	dev := gputest.NewDevice()
	win := gputest.NewWindow(3)
	lp := newLoop(t, dev, win, validSource())
	reload := make(chan struct{}, 1)
	reload <- struct{}{}
	n := 0
	lp.Reload = reload
	lp.OnReload = func() { n++ }
	require.NoError(t, lp.Run(context.Background()))
	assert.Equal(t, 1, n)
	assert.Equal(t, 3, dev.Draws)
}

func TestLoopInvalidProgram(t *testing.T) {
	dev := gputest.NewDevice()
	win := gputest.NewWindow(2)
	src := validSource()
	src.Fragment = "#version 330 core\n#error broken\nvoid main() {}\n"
	lp := newLoop(t, dev, win, src)
	assert.False(t, lp.Program.Linked)
	assert.NotPanics(t, func() {
		require.NoError(t, lp.Run(context.Background()))
	})
	assert.Equal(t, 2, dev.Draws)
	assert.Equal(t, gpu.Closing, lp.State)
}

func TestParseKey(t *testing.T) {
	k, err := gpu.ParseKey("Escape")
	require.NoError(t, err)
	assert.Equal(t, gpu.KeyEscape, k)
	k, err = gpu.ParseKey("esc")
	require.NoError(t, err)
	assert.Equal(t, gpu.KeyEscape, k)
	k, err = gpu.ParseKey("")
	require.NoError(t, err)
	assert.Equal(t, gpu.KeyNone, k)
	_, err = gpu.ParseKey("f13")
	assert.Error(t, err)
	assert.Equal(t, "q", gpu.KeyQ.String())
}
