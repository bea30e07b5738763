// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

// VertexArray is an uploaded [Mesh]: a vertex array object with
// its vertex buffer and optional index buffer.
type VertexArray struct {
	Name   string
	Handle uint32

	Vertices *Buffer

	// Indices is nil for a mesh drawn without indices.
	Indices *Buffer

	// Count is the number of vertices or indices drawn.
	Count int

	dev Device
}

// Indexed returns whether the array is drawn with an index buffer.
func (va *VertexArray) Indexed() bool {
	return va.Indices != nil
}

// Draw binds the array and issues exactly one draw call.
func (va *VertexArray) Draw() {
	va.dev.BindVertexArray(va.Handle)
	if va.Indexed() {
		va.dev.DrawElements(va.Count)
	} else {
		va.dev.DrawArrays(0, va.Count)
	}
}

// Release deletes the vertex array and its buffers.
// It is safe to call more than once.
func (va *VertexArray) Release() {
	if va == nil || va.Handle == 0 {
		return
	}
	va.dev.DeleteVertexArray(va.Handle)
	va.Handle = 0
	va.Vertices.Release()
	va.Indices.Release()
}
