// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gputest provides recording fakes of [gpu.Device] and
// [gpu.Window] for testing without a GL context.
package gputest

import (
	"fmt"
	"strings"

	"cogentcore.org/gltri/gpu"
	"github.com/go-gl/mathgl/mgl32"
)

// Kinds are the kinds of GL objects tracked by [Device].
type Kinds string

const (
	ShaderKind      Kinds = "shader"
	ProgramKind     Kinds = "program"
	BufferKind      Kinds = "buffer"
	VertexArrayKind Kinds = "vertex-array"
)

// InvalidMarker is a token that makes shader source fail to compile.
// Source without a main function also fails.
const InvalidMarker = "#error"

type shader struct {
	typ      gpu.ShaderTypes
	src      string
	compiled bool
}

type program struct {
	attached []uint32
	linked   bool
	uniforms map[string]int32
}

// Device is a [gpu.Device] that records every call. Shader source
// compiles if it has a main function and no [InvalidMarker], and a
// program links if it has one compiled vertex and one compiled
// fragment shader attached.
type Device struct {
	Created map[Kinds]int
	Deleted map[Kinds]int

	// Errors are misuses of the API, such as deleting an object
	// that is not live.
	Errors []string

	// InfoLogs are the non-empty shader and program info logs
	// that have been fetched.
	InfoLogs []string

	Draws   int
	Clears  int
	Current uint32

	// Viewed is the last viewport and Cleared the last clear color.
	Viewed  [4]int
	Cleared mgl32.Vec4

	// Uniforms are the values set by location.
	Uniforms map[int32]mgl32.Vec4

	// Data is the last data uploaded to each buffer.
	Data map[uint32]any

	// Attribs are the enabled attributes of each vertex array,
	// as index, size, stride and offset.
	Attribs map[uint32][][4]int

	next     uint32
	live     map[uint32]Kinds
	shaders  map[uint32]*shader
	programs map[uint32]*program
	bound    map[gpu.BufferTargets]uint32
	array    uint32
	elements map[uint32]uint32
}

var _ gpu.Device = (*Device)(nil)

// NewDevice returns a new recording device.
func NewDevice() *Device {
	return &Device{
		Created:  map[Kinds]int{},
		Deleted:  map[Kinds]int{},
		Uniforms: map[int32]mgl32.Vec4{},
		Data:     map[uint32]any{},
		Attribs:  map[uint32][][4]int{},
		live:     map[uint32]Kinds{},
		shaders:  map[uint32]*shader{},
		programs: map[uint32]*program{},
		bound:    map[gpu.BufferTargets]uint32{},
		elements: map[uint32]uint32{},
	}
}

// Live returns the number of objects of the given kind
// that have been created and not deleted.
func (d *Device) Live(kind Kinds) int {
	n := 0
	for _, k := range d.live {
		if k == kind {
			n++
		}
	}
	return n
}

// Balanced returns whether every created object has been deleted
// exactly once, with no API misuse.
func (d *Device) Balanced() bool {
	return len(d.live) == 0 && len(d.Errors) == 0
}

// ElementBuffer returns the element buffer bound to the given
// vertex array.
func (d *Device) ElementBuffer(array uint32) uint32 {
	return d.elements[array]
}

func (d *Device) errorf(format string, args ...any) {
	d.Errors = append(d.Errors, fmt.Sprintf(format, args...))
}

func (d *Device) create(kind Kinds) uint32 {
	d.next++
	d.live[d.next] = kind
	d.Created[kind]++
	return d.next
}

func (d *Device) release(kind Kinds, h uint32) {
	if h == 0 {
		return
	}
	if k, ok := d.live[h]; !ok || k != kind {
		d.errorf("delete of %s %d that is not live", kind, h)
		return
	}
	delete(d.live, h)
	d.Deleted[kind]++
}

func (d *Device) check(kind Kinds, h uint32, op string) bool {
	if k, ok := d.live[h]; !ok || k != kind {
		d.errorf("%s on %s %d that is not live", op, kind, h)
		return false
	}
	return true
}

func (d *Device) CreateShader(typ gpu.ShaderTypes) uint32 {
	h := d.create(ShaderKind)
	d.shaders[h] = &shader{typ: typ}
	return h
}

func (d *Device) ShaderSource(sh uint32, src string) {
	if d.check(ShaderKind, sh, "ShaderSource") {
		d.shaders[sh].src = src
	}
}

func (d *Device) CompileShader(sh uint32) {
	if !d.check(ShaderKind, sh, "CompileShader") {
		return
	}
	s := d.shaders[sh]
	s.compiled = strings.Contains(s.src, "void main") && !strings.Contains(s.src, InvalidMarker)
}

func (d *Device) ShaderCompiled(sh uint32) bool {
	s, ok := d.shaders[sh]
	return ok && s.compiled
}

func (d *Device) ShaderInfoLog(sh uint32) string {
	s, ok := d.shaders[sh]
	if !ok || s.compiled {
		return ""
	}
	log := "0:1(1): error: no function with name 'main' in " + s.typ.String() + " shader"
	if strings.Contains(s.src, InvalidMarker) {
		log = "0:1(1): error: #error directive in " + s.typ.String() + " shader"
	}
	d.InfoLogs = append(d.InfoLogs, log)
	return log
}

func (d *Device) DeleteShader(sh uint32) {
	d.release(ShaderKind, sh)
}

func (d *Device) CreateProgram() uint32 {
	h := d.create(ProgramKind)
	d.programs[h] = &program{uniforms: map[string]int32{}}
	return h
}

func (d *Device) AttachShader(pr, sh uint32) {
	if d.check(ProgramKind, pr, "AttachShader") && d.check(ShaderKind, sh, "AttachShader") {
		d.programs[pr].attached = append(d.programs[pr].attached, sh)
	}
}

func (d *Device) LinkProgram(pr uint32) {
	if !d.check(ProgramKind, pr, "LinkProgram") {
		return
	}
	p := d.programs[pr]
	stages := map[gpu.ShaderTypes]bool{}
	for _, sh := range p.attached {
		s := d.shaders[sh]
		if !s.compiled {
			p.linked = false
			return
		}
		stages[s.typ] = true
	}
	p.linked = len(p.attached) == 2 && stages[gpu.VertexShader] && stages[gpu.FragmentShader]
	if !p.linked {
		return
	}
	for _, sh := range p.attached {
		for _, line := range strings.Split(d.shaders[sh].src, "\n") {
			f := strings.Fields(strings.TrimSuffix(strings.TrimSpace(line), ";"))
			if len(f) == 3 && f[0] == "uniform" {
				if _, ok := p.uniforms[f[2]]; !ok {
					p.uniforms[f[2]] = int32(len(p.uniforms))
				}
			}
		}
	}
}

func (d *Device) ProgramLinked(pr uint32) bool {
	p, ok := d.programs[pr]
	return ok && p.linked
}

func (d *Device) ProgramInfoLog(pr uint32) string {
	p, ok := d.programs[pr]
	if !ok || p.linked {
		return ""
	}
	log := "error: linking with uncompiled/unspecialized shader"
	d.InfoLogs = append(d.InfoLogs, log)
	return log
}

func (d *Device) UseProgram(pr uint32) {
	if pr != 0 && !d.check(ProgramKind, pr, "UseProgram") {
		return
	}
	d.Current = pr
}

func (d *Device) DeleteProgram(pr uint32) {
	d.release(ProgramKind, pr)
	if d.Current == pr {
		d.Current = 0
	}
}

// UniformLocation returns the location of each uniform declared
// on its own line in the sources of a linked program.
func (d *Device) UniformLocation(pr uint32, name string) int32 {
	p, ok := d.programs[pr]
	if !ok || !p.linked {
		return -1
	}
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	return -1
}

func (d *Device) Uniform4f(loc int32, v mgl32.Vec4) {
	if d.Current == 0 {
		d.errorf("Uniform4f with no program in use")
		return
	}
	d.Uniforms[loc] = v
}

func (d *Device) GenBuffer() uint32 {
	return d.create(BufferKind)
}

func (d *Device) BindBuffer(target gpu.BufferTargets, bf uint32) {
	if bf != 0 && !d.check(BufferKind, bf, "BindBuffer") {
		return
	}
	d.bound[target] = bf
	if target == gpu.ElementArrayBuffer && d.array != 0 {
		d.elements[d.array] = bf
	}
}

func (d *Device) BufferData(target gpu.BufferTargets, size int, data any) {
	bf := d.bound[target]
	if bf == 0 {
		d.errorf("BufferData with no %s buffer bound", target)
		return
	}
	switch v := data.(type) {
	case []float32:
		if 4*len(v) != size {
			d.errorf("BufferData size %d for %d float32s", size, len(v))
		}
	case []uint32:
		if 4*len(v) != size {
			d.errorf("BufferData size %d for %d uint32s", size, len(v))
		}
	default:
		d.errorf("BufferData with unsupported data %T", data)
	}
	d.Data[bf] = data
}

func (d *Device) DeleteBuffer(bf uint32) {
	d.release(BufferKind, bf)
}

func (d *Device) GenVertexArray() uint32 {
	return d.create(VertexArrayKind)
}

func (d *Device) BindVertexArray(va uint32) {
	if va != 0 && !d.check(VertexArrayKind, va, "BindVertexArray") {
		return
	}
	d.array = va
}

func (d *Device) VertexAttribPointer(index uint32, size, stride, offset int) {
	if d.array == 0 || d.bound[gpu.ArrayBuffer] == 0 {
		d.errorf("VertexAttribPointer %d with no vertex array and array buffer bound", index)
		return
	}
	d.Attribs[d.array] = append(d.Attribs[d.array], [4]int{int(index), size, stride, offset})
}

func (d *Device) EnableVertexAttribArray(index uint32) {
	if d.array == 0 {
		d.errorf("EnableVertexAttribArray %d with no vertex array bound", index)
	}
}

func (d *Device) DeleteVertexArray(va uint32) {
	d.release(VertexArrayKind, va)
	if d.array == va {
		d.array = 0
	}
}

func (d *Device) Viewport(x, y, width, height int) {
	d.Viewed = [4]int{x, y, width, height}
}

func (d *Device) ClearColor(c mgl32.Vec4) {
	d.Cleared = c
}

func (d *Device) Clear() {
	d.Clears++
}

func (d *Device) DrawArrays(first, count int) {
	if d.array == 0 {
		d.errorf("DrawArrays with no vertex array bound")
		return
	}
	d.Draws++
}

func (d *Device) DrawElements(count int) {
	if d.array == 0 || d.elements[d.array] == 0 {
		d.errorf("DrawElements with no element buffer bound to the vertex array")
		return
	}
	d.Draws++
}
