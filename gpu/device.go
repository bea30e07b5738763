// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu provides the OpenGL resource lifecycle and frame loop
// used by the gltri programs: shader stages and programs, vertex and
// index buffers, vertex arrays, and a single-draw render loop.
//
// All GL access goes through the [Device] interface, which is
// implemented on top of go-gl by package gldriver and by a
// recording fake in package gputest.
package gpu

import "github.com/go-gl/mathgl/mgl32"

// Device is the set of OpenGL entry points used by this package.
// Handles are the raw GL object names; zero is never a valid handle.
// All methods must be called from the thread that owns the GL context.
type Device interface {
	CreateShader(typ ShaderTypes) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)

	// ShaderCompiled returns the COMPILE_STATUS of the shader.
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)

	// ProgramLinked returns the LINK_STATUS of the program.
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	// UniformLocation returns the location of the named uniform,
	// or -1 if the program has no active uniform of that name.
	UniformLocation(program uint32, name string) int32
	Uniform4f(location int32, v mgl32.Vec4)

	GenBuffer() uint32
	BindBuffer(target BufferTargets, buffer uint32)

	// BufferData uploads size bytes of data, which is a slice,
	// to the buffer bound to target, with static draw usage.
	BufferData(target BufferTargets, size int, data any)
	DeleteBuffer(buffer uint32)

	GenVertexArray() uint32
	BindVertexArray(array uint32)

	// VertexAttribPointer describes float32 attribute index as size
	// components, with stride and offset given in bytes.
	VertexAttribPointer(index uint32, size, stride, offset int)
	EnableVertexAttribArray(index uint32)
	DeleteVertexArray(array uint32)

	Viewport(x, y, width, height int)
	ClearColor(c mgl32.Vec4)

	// Clear clears the color buffer.
	Clear()

	// DrawArrays draws count vertices as triangles starting at first.
	DrawArrays(first, count int)

	// DrawElements draws count uint32 indices from the bound
	// element array buffer as triangles.
	DrawElements(count int)
}

// ShaderTypes are the shader pipeline stages.
type ShaderTypes int32

const (
	VertexShader ShaderTypes = iota
	FragmentShader
)

func (st ShaderTypes) String() string {
	switch st {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return "unknown"
}

// BufferTargets are the buffer binding points.
type BufferTargets int32

const (
	// ArrayBuffer holds vertex attribute data.
	ArrayBuffer BufferTargets = iota

	// ElementArrayBuffer holds vertex indices.
	ElementArrayBuffer
)

func (bt BufferTargets) String() string {
	switch bt {
	case ArrayBuffer:
		return "array"
	case ElementArrayBuffer:
		return "element-array"
	}
	return "unknown"
}
