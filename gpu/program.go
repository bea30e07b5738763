// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/gltri/base/errors"
	"github.com/go-gl/mathgl/mgl32"
)

// ProgramSource is the GLSL source of a vertex and fragment stage.
type ProgramSource struct {
	Name     string
	Vertex   string
	Fragment string
}

// OpenProgramSource reads a [ProgramSource] from the given
// vertex and fragment shader files.
func OpenProgramSource(name, vertexFile, fragmentFile string) (ProgramSource, error) {
	src := ProgramSource{Name: name}
	vs, verr := os.ReadFile(vertexFile)
	fs, ferr := os.ReadFile(fragmentFile)
	if err := errors.Join(verr, ferr); err != nil {
		return src, fmt.Errorf("gpu: reading shaders of program %q: %w", name, err)
	}
	src.Vertex = string(vs)
	src.Fragment = string(fs)
	return src, nil
}

// Program is a linked shader program.
type Program struct {
	Name   string
	Handle uint32

	// Linked is the link status reported by the driver.
	Linked bool

	dev      Device
	uniforms map[string]int32
}

// NewProgram compiles the vertex and fragment stages of src, links
// them into a new program, and deletes both stages, whether or not
// compiling and linking succeeded. The program is always returned,
// and must be released; the error joins every [*ShaderError] that
// occurred, in which case the program may be unusable.
func NewProgram(dev Device, src ProgramSource) (*Program, error) {
	vs, verr := CompileShader(dev, VertexShader, src.Name, src.Vertex)
	fs, ferr := CompileShader(dev, FragmentShader, src.Name, src.Fragment)
	defer vs.Release()
	defer fs.Release()

	pr := &Program{Name: src.Name, dev: dev, uniforms: map[string]int32{}}
	pr.Handle = dev.CreateProgram()
	dev.AttachShader(pr.Handle, vs.Handle)
	dev.AttachShader(pr.Handle, fs.Handle)
	dev.LinkProgram(pr.Handle)
	pr.Linked = dev.ProgramLinked(pr.Handle)
	var lerr error
	if !pr.Linked {
		lerr = newShaderError(src.Name, "link", dev.ProgramInfoLog(pr.Handle))
	} else {
		slog.Info("linked program", "program", src.Name, "handle", pr.Handle)
	}
	return pr, errors.Join(verr, ferr, lerr)
}

// Use makes the program current.
func (pr *Program) Use() {
	pr.dev.UseProgram(pr.Handle)
}

// UniformLocation returns the location of the named uniform,
// looking it up only the first time.
func (pr *Program) UniformLocation(name string) int32 {
	if loc, ok := pr.uniforms[name]; ok {
		return loc
	}
	loc := pr.dev.UniformLocation(pr.Handle, name)
	if loc < 0 {
		slog.Warn("program has no active uniform", "program", pr.Name, "uniform", name)
	}
	pr.uniforms[name] = loc
	return loc
}

// SetVec4 sets the named vec4 uniform. The program must be in use.
// Setting a uniform the program does not have is a no-op.
func (pr *Program) SetVec4(name string, v mgl32.Vec4) {
	loc := pr.UniformLocation(name)
	if loc < 0 {
		return
	}
	pr.dev.Uniform4f(loc, v)
}

// Release deletes the program. It is safe to call more than once.
func (pr *Program) Release() {
	if pr == nil || pr.Handle == 0 {
		return
	}
	pr.dev.DeleteProgram(pr.Handle)
	pr.Handle = 0
	pr.Linked = false
}
