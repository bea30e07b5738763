// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gputest

import (
	"testing"

	"cogentcore.org/gltri/gpu"
	"github.com/stretchr/testify/assert"
)

func TestDeviceMisuse(t *testing.T) {
	d := NewDevice()
	b := d.GenBuffer()
	d.DeleteBuffer(b)
	d.DeleteBuffer(b)
	assert.Len(t, d.Errors, 1)
	assert.False(t, d.Balanced())

	d = NewDevice()
	d.DrawElements(6)
	d.BufferData(gpu.ArrayBuffer, 12, []float32{1, 2, 3})
	assert.Len(t, d.Errors, 2)
	assert.Zero(t, d.Draws)
}

func TestDeviceCompile(t *testing.T) {
	d := NewDevice()
	sh := d.CreateShader(gpu.VertexShader)
	d.ShaderSource(sh, "void main() {}")
	d.CompileShader(sh)
	assert.True(t, d.ShaderCompiled(sh))
	assert.Empty(t, d.ShaderInfoLog(sh))

	bad := d.CreateShader(gpu.FragmentShader)
	d.ShaderSource(bad, "")
	d.CompileShader(bad)
	assert.False(t, d.ShaderCompiled(bad))
	assert.Contains(t, d.ShaderInfoLog(bad), "fragment")

	pr := d.CreateProgram()
	d.AttachShader(pr, sh)
	d.AttachShader(pr, bad)
	d.LinkProgram(pr)
	assert.False(t, d.ProgramLinked(pr))
	assert.NotEmpty(t, d.ProgramInfoLog(pr))
	assert.Len(t, d.InfoLogs, 2)

	d.DeleteShader(sh)
	d.DeleteShader(bad)
	d.DeleteProgram(pr)
	assert.True(t, d.Balanced(), d.Errors)
	assert.Equal(t, 0, d.Live(ShaderKind))
}

func TestWindow(t *testing.T) {
	w := NewWindow(2)
	w.Key = gpu.KeyEscape
	w.PressAt = 2
	assert.False(t, w.KeyPressed(gpu.KeyEscape))
	w.SwapBuffers()
	assert.True(t, w.KeyPressed(gpu.KeyEscape))
	assert.False(t, w.KeyPressed(gpu.KeyQ))
	assert.InDelta(t, 1.0/60, w.Time(), 1e-12)
	w.PollEvents()
	assert.False(t, w.ShouldClose())
	w.PollEvents()
	assert.True(t, w.ShouldClose())
}
