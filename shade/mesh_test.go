// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shade

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBuiltinWinding(t *testing.T) {
	for _, name := range []string{"triangle", "quad", "cube"} {
		m, ok := Builtin(name)
		if !ok {
			t.Fatalf("Builtin(%q) not found", name)
		}
		if len(m.Indices)%3 != 0 {
			t.Fatalf("%s: %d indices", name, len(m.Indices))
		}
		for tr := 0; tr < m.Triangles(); tr++ {
			a := m.Vertices[m.Indices[3*tr]]
			b := m.Vertices[m.Indices[3*tr+1]]
			c := m.Vertices[m.Indices[3*tr+2]]
			n := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position))
			if n.Dot(a.Normal) <= 0 {
				t.Errorf("%s triangle %d winds against its normal %v", name, tr, a.Normal)
			}
		}
	}
	if _, ok := Builtin("teapot"); ok {
		t.Error("Builtin(teapot) ok = true")
	}
}

func TestCubeBounds(t *testing.T) {
	m := Cube()
	if m.Triangles() != 12 {
		t.Errorf("Triangles() = %d, want 12", m.Triangles())
	}
	lo, hi := m.Bounds()
	if lo != (mgl32.Vec3{-0.5, -0.5, -0.5}) || hi != (mgl32.Vec3{0.5, 0.5, 0.5}) {
		t.Errorf("Bounds() = %v, %v", lo, hi)
	}
}

func TestNormalize(t *testing.T) {
	m := &Mesh{Vertices: []Vertex{
		{Position: mgl32.Vec3{10, 0, 0}},
		{Position: mgl32.Vec3{14, 1, 0}},
		{Position: mgl32.Vec3{12, 2, 1}},
	}}
	m.Normalize()
	lo, hi := m.Bounds()
	if !lo.ApproxEqual(mgl32.Vec3{-1, -0.5, -0.25}) || !hi.ApproxEqual(mgl32.Vec3{1, 0.5, 0.25}) {
		t.Errorf("Bounds() after Normalize = %v, %v", lo, hi)
	}

	empty := &Mesh{}
	empty.Normalize()
	point := &Mesh{Vertices: []Vertex{{Position: mgl32.Vec3{3, 3, 3}}}}
	point.Normalize()
	if point.Vertices[0].Position != (mgl32.Vec3{}) {
		t.Errorf("single point = %v, want origin", point.Vertices[0].Position)
	}
}

func TestComputeNormals(t *testing.T) {
	m := Quad()
	for i := range m.Vertices {
		m.Vertices[i].Normal = mgl32.Vec3{7, 7, 7}
	}
	m.ComputeNormals()
	for i, v := range m.Vertices {
		if !v.Normal.ApproxEqual(mgl32.Vec3{0, 0, 1}) {
			t.Errorf("vertex %d normal = %v, want (0, 0, 1)", i, v.Normal)
		}
	}
}

func TestSetColor(t *testing.T) {
	m := Cube()
	m.SetColor(mgl32.Vec3{0.1, 0.2, 0.3})
	for i, v := range m.Vertices {
		if v.Color != (mgl32.Vec3{0.1, 0.2, 0.3}) {
			t.Fatalf("vertex %d color = %v", i, v.Color)
		}
	}
}

func TestClone(t *testing.T) {
	m := Triangle()
	c := m.Clone()
	c.Vertices[0].Position = mgl32.Vec3{9, 9, 9}
	c.Indices[0] = 2
	if m.Vertices[0].Position == c.Vertices[0].Position || m.Indices[0] == 2 {
		t.Error("Clone() shares storage with its receiver")
	}
}
