// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene defines the fixed scenes drawn by gltri: a triangle,
// a triangle with a time-varying uniform color, an indexed rectangle,
// and a vertex-colored triangle with shaders loaded from files.
package scene

import (
	_ "embed"
	"fmt"
	"math"
	"slices"

	"cogentcore.org/gltri/gpu"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed shaders/position.vert
var positionVert string

//go:embed shaders/orange.frag
var orangeFrag string

//go:embed shaders/uniform.frag
var uniformFrag string

// Scene is one fixed mesh drawn with one shader program.
type Scene struct {
	Name string

	// Source returns the program source.
	Source func() (gpu.ProgramSource, error)

	Mesh gpu.Mesh

	// Update, if set, is called each frame to set uniforms.
	Update func(pr *gpu.Program, t float64)

	// Files are the shader files the source is read from, if any.
	Files []string
}

// Names are the names of the scenes, in order.
var Names = []string{"triangle", "uniform", "indexed", "colored"}

// New returns the scene with the given name. The vertex and fragment
// files are only used by the colored scene.
func New(name, vertexFile, fragmentFile string) (*Scene, error) {
	switch name {
	case "triangle":
		return Triangle(), nil
	case "uniform":
		return Uniform(), nil
	case "indexed":
		return Indexed(), nil
	case "colored":
		return Colored(vertexFile, fragmentFile), nil
	}
	return nil, fmt.Errorf("scene: unknown scene %q; must be one of %v", name, Names)
}

func embedded(name, vert, frag string) func() (gpu.ProgramSource, error) {
	return func() (gpu.ProgramSource, error) {
		return gpu.ProgramSource{Name: name, Vertex: vert, Fragment: frag}, nil
	}
}

func triangleVertices() []float32 {
	return []float32{
		-0.5, -0.5, 0.0, // left
		0.5, -0.5, 0.0,  // right
		0.0, 0.5, 0.0,   // top
	}
}

// Triangle is an orange triangle drawn with DrawArrays.
func Triangle() *Scene {
	return &Scene{
		Name:   "triangle",
		Source: embedded("triangle", positionVert, orangeFrag),
		Mesh:   gpu.Mesh{Name: "triangle", Vertices: triangleVertices(), Layout: gpu.PositionLayout()},
	}
}

// PulseValue returns sin(t)/2 + 0.5, which is in [0, 1] for all t.
func PulseValue(t float64) float32 {
	v := math.Sin(t)/2 + 0.5
	// sin is only NaN for infinite t
	if math.IsNaN(v) {
		return 0.5
	}
	return float32(v)
}

// PulseColor returns the green whose intensity follows [PulseValue].
func PulseColor(t float64) mgl32.Vec4 {
	return mgl32.Vec4{0, PulseValue(t), 0, 1}
}

// Uniform is the triangle with its color set each frame from
// the ourColor uniform, pulsing green over time.
func Uniform() *Scene {
	return &Scene{
		Name:   "uniform",
		Source: embedded("uniform", positionVert, uniformFrag),
		Mesh:   gpu.Mesh{Name: "uniform", Vertices: triangleVertices(), Layout: gpu.PositionLayout()},
		Update: func(pr *gpu.Program, t float64) {
			pr.SetVec4("ourColor", PulseColor(t))
		},
	}
}

// RectangleIndices are the two triangles of the [Indexed] rectangle.
var RectangleIndices = []uint32{
	0, 1, 3, // first triangle
	1, 2, 3, // second triangle
}

// Indexed is an orange rectangle of 4 vertices drawn as
// two triangles with DrawElements.
func Indexed() *Scene {
	return &Scene{
		Name:   "indexed",
		Source: embedded("indexed", positionVert, orangeFrag),
		Mesh: gpu.Mesh{
			Name: "indexed",
			Vertices: []float32{
				0.5, 0.5, 0.0,   // top right
				0.5, -0.5, 0.0,  // bottom right
				-0.5, -0.5, 0.0, // bottom left
				-0.5, 0.5, 0.0,  // top left
			},
			Layout:  gpu.PositionLayout(),
			Indices: slices.Clone(RectangleIndices),
		},
	}
}

// Colored is a triangle with a red, green and blue corner, with the
// colors interpolated by shaders read from the given files.
func Colored(vertexFile, fragmentFile string) *Scene {
	return &Scene{
		Name: "colored",
		Source: func() (gpu.ProgramSource, error) {
			return gpu.OpenProgramSource("colored", vertexFile, fragmentFile)
		},
		Mesh: gpu.Mesh{
			Name: "colored",
			Vertices: []float32{
				// positions     // colors
				0.5, -0.5, 0.0, 1.0, 0.0, 0.0,  // bottom right
				-0.5, -0.5, 0.0, 0.0, 1.0, 0.0, // bottom left
				0.0, 0.5, 0.0, 0.0, 0.0, 1.0,   // top
			},
			Layout: gpu.PositionColorLayout(),
		},
		Files: []string{vertexFile, fragmentFile},
	}
}
