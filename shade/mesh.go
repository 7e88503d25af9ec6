// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shade

import (
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is an indexed triangle list. Front faces wind counter-clockwise
// when seen from outside.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Triangles returns the number of triangles in m.
func (m *Mesh) Triangles() int {
	return len(m.Indices) / 3
}

// Clone returns a deep copy of m.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		Vertices: slices.Clone(m.Vertices),
		Indices:  slices.Clone(m.Indices),
	}
}

// Bounds returns the axis-aligned bounding box of the vertex positions.
// Both corners are zero for an empty mesh.
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3) {
	if len(m.Vertices) == 0 {
		return lo, hi
	}
	lo, hi = m.Vertices[0].Position, m.Vertices[0].Position
	for _, v := range m.Vertices[1:] {
		for i := range 3 {
			lo[i] = min(lo[i], v.Position[i])
			hi[i] = max(hi[i], v.Position[i])
		}
	}
	return lo, hi
}

// Normalize centers the mesh on the origin and scales it uniformly so
// that its largest extent spans [-1, 1].
func (m *Mesh) Normalize() {
	lo, hi := m.Bounds()
	center := lo.Add(hi).Mul(0.5)
	size := hi.Sub(lo)
	extent := max(size[0], size[1], size[2])
	scale := float32(1)
	if extent > 0 {
		scale = 2 / extent
	}
	for i := range m.Vertices {
		m.Vertices[i].Position = m.Vertices[i].Position.Sub(center).Mul(scale)
	}
}

// ComputeNormals replaces every vertex normal with the area-weighted
// average of the normals of the faces sharing it.
func (m *Mesh) ComputeNormals() {
	for i := range m.Vertices {
		m.Vertices[i].Normal = mgl32.Vec3{}
	}
	for t := 0; t+2 < len(m.Indices); t += 3 {
		a, b, c := m.Indices[t], m.Indices[t+1], m.Indices[t+2]
		pa, pb, pc := m.Vertices[a].Position, m.Vertices[b].Position, m.Vertices[c].Position
		n := pb.Sub(pa).Cross(pc.Sub(pa))
		for _, k := range [3]uint32{a, b, c} {
			m.Vertices[k].Normal = m.Vertices[k].Normal.Add(n)
		}
	}
	for i := range m.Vertices {
		n := m.Vertices[i].Normal
		if l := n.Len(); l > 0 && !math.IsInf(float64(l), 0) {
			m.Vertices[i].Normal = n.Mul(1 / l)
		}
	}
}

// SetColor paints every vertex with c, channels in [0, 1].
func (m *Mesh) SetColor(c mgl32.Vec3) {
	for i := range m.Vertices {
		m.Vertices[i].Color = c
	}
}

// Triangle returns a single triangle in the z = 0 plane with red, green
// and blue corners.
func Triangle() *Mesh {
	n := mgl32.Vec3{0, 0, 1}
	return &Mesh{
		Vertices: []Vertex{
			{Position: mgl32.Vec3{-0.5, -0.5, 0}, Normal: n, Color: mgl32.Vec3{1, 0, 0}, UV: mgl32.Vec2{0, 0}},
			{Position: mgl32.Vec3{0.5, -0.5, 0}, Normal: n, Color: mgl32.Vec3{0, 1, 0}, UV: mgl32.Vec2{1, 0}},
			{Position: mgl32.Vec3{0, 0.5, 0}, Normal: n, Color: mgl32.Vec3{0, 0, 1}, UV: mgl32.Vec2{0.5, 1}},
		},
		Indices: []uint32{0, 1, 2},
	}
}

// Quad returns a unit square in the z = 0 plane facing +Z.
func Quad() *Mesh {
	n := mgl32.Vec3{0, 0, 1}
	return &Mesh{
		Vertices: []Vertex{
			{Position: mgl32.Vec3{-0.5, -0.5, 0}, Normal: n, Color: mgl32.Vec3{1, 1, 1}, UV: mgl32.Vec2{0, 0}},
			{Position: mgl32.Vec3{0.5, -0.5, 0}, Normal: n, Color: mgl32.Vec3{1, 1, 1}, UV: mgl32.Vec2{1, 0}},
			{Position: mgl32.Vec3{0.5, 0.5, 0}, Normal: n, Color: mgl32.Vec3{1, 1, 1}, UV: mgl32.Vec2{1, 1}},
			{Position: mgl32.Vec3{-0.5, 0.5, 0}, Normal: n, Color: mgl32.Vec3{1, 1, 1}, UV: mgl32.Vec2{0, 1}},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

var cubeFaces = [6]struct {
	n, u  mgl32.Vec3
	color mgl32.Vec3
}{
	{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0.9, 0.3, 0.3}},
	{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0.3, 0.9, 0.9}},
	{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0.3, 0.9, 0.3}},
	{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0.9, 0.3, 0.9}},
	{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0.3, 0.3, 0.9}},
	{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0.9, 0.9, 0.3}},
}

// Cube returns an axis-aligned cube spanning [-0.5, 0.5] with flat face
// normals and one color per face.
func Cube() *Mesh {
	m := &Mesh{
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}
	for _, f := range cubeFaces {
		// v completes a right-handed basis so u x v == n.
		v := f.n.Cross(f.u)
		c := f.n.Mul(0.5)
		u, w := f.u.Mul(0.5), v.Mul(0.5)
		base := uint32(len(m.Vertices))
		corners := [4]struct {
			p  mgl32.Vec3
			uv mgl32.Vec2
		}{
			{c.Sub(u).Sub(w), mgl32.Vec2{0, 0}},
			{c.Add(u).Sub(w), mgl32.Vec2{1, 0}},
			{c.Add(u).Add(w), mgl32.Vec2{1, 1}},
			{c.Sub(u).Add(w), mgl32.Vec2{0, 1}},
		}
		for _, k := range corners {
			m.Vertices = append(m.Vertices, Vertex{Position: k.p, Normal: f.n, Color: f.color, UV: k.uv})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// Builtin returns a copy of a named built-in mesh: "triangle", "quad" or
// "cube". ok is false for unknown names.
func Builtin(name string) (m *Mesh, ok bool) {
	switch name {
	case "triangle":
		return Triangle(), true
	case "quad":
		return Quad(), true
	case "cube":
		return Cube(), true
	}
	return nil, false
}
