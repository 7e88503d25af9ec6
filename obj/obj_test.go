// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package obj

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const cubeOBJ = `# unit cube, quads
mtllib cube.mtl
o Cube
v -1 -1  1
v  1 -1  1
v  1  1  1
v -1  1  1
v -1 -1 -1
v  1 -1 -1
v  1  1 -1
v -1  1 -1
vn 0 0 1
vn 0 0 -1
usemtl default
s off
f 1//1 2//1 3//1 4//1
f 6//2 5//2 8//2 7//2
`

func TestReadQuads(t *testing.T) {
	m, err := Read(strings.NewReader(cubeOBJ))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if len(m.Vertices) != 8 {
		t.Errorf("len(Vertices) = %d, want 8", len(m.Vertices))
	}
	want := []uint32{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7}
	if len(m.Indices) != len(want) {
		t.Fatalf("Indices = %v, want %v", m.Indices, want)
	}
	for i := range want {
		if m.Indices[i] != want[i] {
			t.Fatalf("Indices = %v, want %v", m.Indices, want)
		}
	}
	if m.Vertices[0].Normal != (mgl32.Vec3{0, 0, 1}) {
		t.Errorf("Vertices[0].Normal = %v", m.Vertices[0].Normal)
	}
	if m.Vertices[0].Color != DefaultColor {
		t.Errorf("Vertices[0].Color = %v, want default", m.Vertices[0].Color)
	}
}

func TestReadCornerForms(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
f 1 2 3
f 1/1 2/2 3/3
f 1/1/1 2/2/1 3/3/1
f -3/-3/-1 -2/-2/-1 -1/-1/-1
`
	m, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	// Three distinct corner forms; the negative face repeats the last one.
	if len(m.Vertices) != 9 {
		t.Errorf("len(Vertices) = %d, want 9", len(m.Vertices))
	}
	if len(m.Indices) != 12 {
		t.Fatalf("len(Indices) = %d, want 12", len(m.Indices))
	}
	for i := 0; i < 3; i++ {
		if m.Indices[9+i] != m.Indices[6+i] {
			t.Errorf("negative face index %d = %d, want %d", i, m.Indices[9+i], m.Indices[6+i])
		}
	}
	if uv := m.Vertices[m.Indices[4]].UV; uv != (mgl32.Vec2{1, 0}) {
		t.Errorf("UV = %v, want (1, 0)", uv)
	}
}

func TestReadComputesNormals(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	m, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	for i, v := range m.Vertices {
		if !v.Normal.ApproxEqual(mgl32.Vec3{0, 0, 1}) {
			t.Errorf("vertex %d normal = %v, want (0, 0, 1)", i, v.Normal)
		}
	}
}

func TestReadVertexColor(t *testing.T) {
	src := "v 0 0 0 1 0 0\nv 1 0 0 0 1 0\nv 0 1 0 0 0 1\nf 1 2 3\n"
	m, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if m.Vertices[1].Color != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("Vertices[1].Color = %v, want green", m.Vertices[1].Color)
	}
}

func TestReadPentagonFan(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 2 1 0\nv 1 2 0\nv 0 1 0\nf 1 2 3 4 5 # pentagon\n"
	m, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	want := []uint32{0, 1, 2, 0, 2, 3, 0, 3, 4}
	if m.Triangles() != 3 {
		t.Fatalf("Triangles() = %d, want 3", m.Triangles())
	}
	for i := range want {
		if m.Indices[i] != want[i] {
			t.Fatalf("Indices = %v, want %v", m.Indices, want)
		}
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		line     int
		sentinel error
	}{
		{"short vertex", "v 1 2\n", 1, nil},
		{"bad number", "v 1 x 3\n", 1, nil},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n", 3, nil},
		{"index zero", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n", 4, ErrIndexOutOfRange},
		{"index past end", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 4\n", 4, ErrIndexOutOfRange},
		{"negative past start", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -4 1 2\n", 4, ErrIndexOutOfRange},
		{"missing normal", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1//1 2//1 3//1\n", 4, ErrIndexOutOfRange},
		{"malformed corner", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1/2/3/4 2 3\n", 4, nil},
		{"bad vn", "vn 0 1\n", 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.src))
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Read() error = %v, want *ParseError", err)
			}
			if pe.Line != tt.line {
				t.Errorf("ParseError.Line = %d, want %d", pe.Line, tt.line)
			}
			if tt.sentinel != nil && !errors.Is(err, tt.sentinel) {
				t.Errorf("Read() error = %v, want %v", err, tt.sentinel)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.obj")
	if err := os.WriteFile(path, []byte(cubeOBJ), 0o600); err != nil {
		t.Fatal(err)
	}
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m.Triangles() != 4 {
		t.Errorf("Triangles() = %d, want 4", m.Triangles())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.obj")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want ErrNotExist", err)
	}
}
