// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"
	"strings"
)

// ShaderError is returned when a shader stage fails to compile
// or a program fails to link. Log is the driver info log, and is
// never empty.
type ShaderError struct {
	// Name is the name of the program the stage belongs to.
	Name string

	// Stage is vertex, fragment or link.
	Stage string

	Log string
}

func (e *ShaderError) Error() string {
	if e.Stage == "link" {
		return fmt.Sprintf("gpu: program %q failed to link: %s", e.Name, e.Log)
	}
	return fmt.Sprintf("gpu: %s shader of program %q failed to compile: %s", e.Stage, e.Name, e.Log)
}

func newShaderError(name, stage, log string) *ShaderError {
	log = strings.TrimSpace(log)
	if log == "" {
		log = "(driver returned an empty info log)"
	}
	return &ShaderError{Name: name, Stage: stage, Log: log}
}

// Shader is one compiled shader stage. It only lives until
// it has been linked into a [Program].
type Shader struct {
	Name   string
	Type   ShaderTypes
	Handle uint32

	// Compiled is the compile status reported by the driver.
	Compiled bool

	dev Device
}

// CompileShader creates and compiles a shader stage of the given
// type from source. If compilation fails, the shader is returned
// along with a [*ShaderError] holding the info log; the shader
// must be released in either case.
func CompileShader(dev Device, typ ShaderTypes, name, src string) (*Shader, error) {
	sh := &Shader{Name: name, Type: typ, dev: dev}
	sh.Handle = dev.CreateShader(typ)
	dev.ShaderSource(sh.Handle, src)
	dev.CompileShader(sh.Handle)
	sh.Compiled = dev.ShaderCompiled(sh.Handle)
	if !sh.Compiled {
		return sh, newShaderError(name, typ.String(), dev.ShaderInfoLog(sh.Handle))
	}
	slog.Debug("compiled shader", "program", name, "stage", typ, "handle", sh.Handle)
	return sh, nil
}

// Release deletes the shader. It is safe to call more than once.
func (sh *Shader) Release() {
	if sh == nil || sh.Handle == 0 {
		return
	}
	sh.dev.DeleteShader(sh.Handle)
	sh.Handle = 0
}
