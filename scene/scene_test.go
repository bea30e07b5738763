// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"math"
	"testing"

	"cogentcore.org/gltri/gpu"
	"cogentcore.org/gltri/gpu/gputest"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPulseValue(t *testing.T) {
	for _, tm := range []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2, -1, 1e9, -1e9, math.MaxFloat64, math.Inf(1)} {
		v := PulseValue(tm)
		assert.GreaterOrEqual(t, v, float32(0), "t = %g", tm)
		assert.LessOrEqual(t, v, float32(1), "t = %g", tm)
		if !math.IsInf(tm, 0) {
			assert.Equal(t, float32(math.Sin(tm)/2+0.5), v, "t = %g", tm)
		}
	}
	for tm := -100.0; tm <= 100; tm += 0.0137 {
		v := PulseValue(tm)
		if v < 0 || v > 1 {
			t.Fatalf("PulseValue(%g) = %g is out of [0, 1]", tm, v)
		}
	}
	assert.InDelta(t, 1, PulseValue(math.Pi/2), 1e-7)
	assert.InDelta(t, 0, PulseValue(3*math.Pi/2), 1e-7)
	assert.Equal(t, mgl32.Vec4{0, 0.5, 0, 1}, PulseColor(0))
}

func triangleArea(a, b, c mgl32.Vec3) float32 {
	return b.Sub(a).Cross(c.Sub(a)).Len() / 2
}

func TestIndexedRectangle(t *testing.T) {
	sc := Indexed()
	ms := &sc.Mesh
	require.NoError(t, ms.Validate())
	assert.Equal(t, 4, ms.NumVertices())
	assert.Equal(t, []uint32{0, 1, 3, 1, 2, 3}, ms.Indices)

	tris := ms.Triangles()
	require.Len(t, tris, 2)
	used := map[uint32]bool{}
	var area float32
	for _, tri := range tris {
		for _, ix := range tri {
			assert.Less(t, ix, uint32(4))
			used[ix] = true
		}
		area += triangleArea(ms.Position(int(tri[0])), ms.Position(int(tri[1])), ms.Position(int(tri[2])))
	}
	assert.Len(t, used, 4)
	// the rectangle is 1x1, so two triangles of area 1/2 cover it
	assert.InDelta(t, 1.0, area, 1e-6)
	assert.InDelta(t, 0.5, triangleArea(ms.Position(0), ms.Position(1), ms.Position(3)), 1e-6)
}

func TestIndexedDoesNotShareIndices(t *testing.T) {
	sc := Indexed()
	sc.Mesh.Indices[0] = 2
	assert.Equal(t, uint32(0), RectangleIndices[0])
}

func TestNew(t *testing.T) {
	for _, name := range Names {
		sc, err := New(name, "../shaders/3.3.shader.vs", "../shaders/3.3.shader.fs")
		require.NoError(t, err)
		assert.Equal(t, name, sc.Name)
		assert.NoError(t, sc.Mesh.Validate(), name)
		src, err := sc.Source()
		require.NoError(t, err, name)
		assert.Contains(t, src.Vertex, "void main")
		assert.Contains(t, src.Fragment, "void main")
	}
	_, err := New("cube", "", "")
	assert.Error(t, err)
}

func TestColoredLayout(t *testing.T) {
	sc := Colored("../shaders/3.3.shader.vs", "../shaders/3.3.shader.fs")
	assert.Equal(t, 6, sc.Mesh.Layout.Stride)
	assert.Equal(t, 3, sc.Mesh.NumVertices())
	assert.Len(t, sc.Files, 2)

	_, err := Colored("missing.vs", "missing.fs").Source()
	assert.Error(t, err)
}

func TestUniformUpdate(t *testing.T) {
	dev := gputest.NewDevice()
	sc := Uniform()
	src, err := sc.Source()
	require.NoError(t, err)
	pr, err := gpu.NewProgram(dev, src)
	require.NoError(t, err)
	defer pr.Release()
	pr.Use()
	sc.Update(pr, math.Pi/2)
	assert.InDelta(t, 1, dev.Uniforms[pr.UniformLocation("ourColor")][1], 1e-7)
}
