// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Attrib is one float32 vertex attribute within an interleaved vertex.
type Attrib struct {
	Name     string
	Location uint32

	// Size is the number of float32 components.
	Size int

	// Offset is the offset in float32 components from the start
	// of the vertex.
	Offset int
}

// VertexLayout describes how the float32s of a vertex buffer are
// split into attributes. The first attribute is the position.
type VertexLayout struct {
	// Stride is the number of float32s per vertex.
	Stride  int
	Attribs []Attrib
}

// PositionLayout is a vec3 position at location 0.
func PositionLayout() VertexLayout {
	return VertexLayout{Stride: 3, Attribs: []Attrib{
		{Name: "aPos", Location: 0, Size: 3},
	}}
}

// PositionColorLayout is a vec3 position at location 0 followed
// by a vec3 color at location 1.
func PositionColorLayout() VertexLayout {
	return VertexLayout{Stride: 6, Attribs: []Attrib{
		{Name: "aPos", Location: 0, Size: 3},
		{Name: "aColor", Location: 1, Size: 3, Offset: 3},
	}}
}

// Mesh is fixed vertex data with an optional triangle index list.
type Mesh struct {
	Name     string
	Vertices []float32
	Layout   VertexLayout

	// Indices, if non-empty, are drawn as triangles with DrawElements.
	// Otherwise the vertices are drawn in order with DrawArrays.
	Indices []uint32
}

// NumVertices returns the number of vertices.
func (ms *Mesh) NumVertices() int {
	if ms.Layout.Stride == 0 {
		return 0
	}
	return len(ms.Vertices) / ms.Layout.Stride
}

// Position returns the position of vertex i.
func (ms *Mesh) Position(i int) mgl32.Vec3 {
	o := i*ms.Layout.Stride + ms.Layout.Attribs[0].Offset
	return mgl32.Vec3{ms.Vertices[o], ms.Vertices[o+1], ms.Vertices[o+2]}
}

// Triangles returns the vertex indices of each triangle drawn.
func (ms *Mesh) Triangles() [][3]uint32 {
	if len(ms.Indices) == 0 {
		n := ms.NumVertices() / 3
		tris := make([][3]uint32, n)
		for i := range tris {
			b := uint32(3 * i)
			tris[i] = [3]uint32{b, b + 1, b + 2}
		}
		return tris
	}
	tris := make([][3]uint32, len(ms.Indices)/3)
	for i := range tris {
		copy(tris[i][:], ms.Indices[3*i:])
	}
	return tris
}

// Validate checks that the mesh can be uploaded and drawn as triangles:
// the layout fits the vertex data, every index refers to a vertex,
// and the indices form whole, non-degenerate triangles with no two
// triangles over the same three vertices, in either winding.
func (ms *Mesh) Validate() error {
	ly := ms.Layout
	if ly.Stride <= 0 || len(ly.Attribs) == 0 {
		return fmt.Errorf("gpu: mesh %q has an empty vertex layout", ms.Name)
	}
	for _, a := range ly.Attribs {
		if a.Size < 1 || a.Size > 4 || a.Offset < 0 || a.Offset+a.Size > ly.Stride {
			return fmt.Errorf("gpu: mesh %q attribute %q does not fit in a stride of %d", ms.Name, a.Name, ly.Stride)
		}
	}
	if ly.Attribs[0].Size != 3 {
		return fmt.Errorf("gpu: mesh %q position attribute %q must have 3 components", ms.Name, ly.Attribs[0].Name)
	}
	if len(ms.Vertices) == 0 || len(ms.Vertices)%ly.Stride != 0 {
		return fmt.Errorf("gpu: mesh %q has %d floats, not a non-zero multiple of the stride %d", ms.Name, len(ms.Vertices), ly.Stride)
	}
	nv := ms.NumVertices()
	if len(ms.Indices) == 0 {
		if nv%3 != 0 {
			return fmt.Errorf("gpu: mesh %q has %d vertices, not a multiple of 3", ms.Name, nv)
		}
		return nil
	}
	if len(ms.Indices)%3 != 0 {
		return fmt.Errorf("gpu: mesh %q has %d indices, not a multiple of 3", ms.Name, len(ms.Indices))
	}
	for i, ix := range ms.Indices {
		if int(ix) >= nv {
			return fmt.Errorf("gpu: mesh %q index %d is %d, but there are only %d vertices", ms.Name, i, ix, nv)
		}
	}
	seen := map[[3]uint32]int{}
	for i, tri := range ms.Triangles() {
		if tri[0] == tri[1] || tri[1] == tri[2] || tri[0] == tri[2] {
			return fmt.Errorf("gpu: mesh %q triangle %d %v is degenerate", ms.Name, i, tri)
		}
		key := tri
		slices.Sort(key[:])
		if j, ok := seen[key]; ok {
			return fmt.Errorf("gpu: mesh %q triangle %d %v duplicates triangle %d", ms.Name, i, tri, j)
		}
		seen[key] = i
	}
	return nil
}

// Upload validates the mesh and uploads it into a new [VertexArray],
// describing its attribute layout once.
func (ms *Mesh) Upload(dev Device) (*VertexArray, error) {
	if err := ms.Validate(); err != nil {
		return nil, err
	}
	va := &VertexArray{Name: ms.Name, dev: dev}
	va.Handle = dev.GenVertexArray()
	dev.BindVertexArray(va.Handle)
	va.Vertices = NewBuffer(dev, ArrayBuffer, ms.Vertices)
	if len(ms.Indices) > 0 {
		va.Indices = NewBuffer(dev, ElementArrayBuffer, ms.Indices)
		va.Count = len(ms.Indices)
	} else {
		va.Count = ms.NumVertices()
	}
	stride := 4 * ms.Layout.Stride
	for _, a := range ms.Layout.Attribs {
		dev.VertexAttribPointer(a.Location, a.Size, stride, 4*a.Offset)
		dev.EnableVertexAttribArray(a.Location)
	}
	// the element buffer binding is part of the vertex array state,
	// so the array is unbound before the array buffer.
	dev.BindVertexArray(0)
	dev.BindBuffer(ArrayBuffer, 0)
	return va, nil
}
