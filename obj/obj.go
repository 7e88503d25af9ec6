// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package obj reads Wavefront OBJ geometry into a shade.Mesh.
//
// Supported statements are v (with an optional r g b vertex color), vt, vn
// and f. Faces with more than three corners are split into a fan around
// the first corner. Negative indices count back from the most recent
// element. Every distinct position/texcoord/normal triple becomes one
// vertex, so the result is a single indexed list ready for tri.Draw.
//
// Materials, groups, smoothing groups, lines and points are ignored.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/tri/shade"
)

// DefaultColor is assigned to vertices without an explicit color.
var DefaultColor = mgl32.Vec3{1, 1, 1}

// Load reads the OBJ file at path.
func Load(path string) (*shade.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Read parses OBJ data from r. If no face carries normals, smooth vertex
// normals are computed from the geometry.
func Read(r io.Reader) (*shade.Mesh, error) {
	p := &parser{
		seen: make(map[corner]uint32),
		mesh: &shade.Mesh{},
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		p.line++
		if err := p.statement(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("obj: read: %w", err)
	}
	if !p.hasNormals {
		p.mesh.ComputeNormals()
	}
	return p.mesh, nil
}

// corner identifies a face vertex by its 0-based attribute indices; -1
// means absent.
type corner struct {
	v, vt, vn int
}

type parser struct {
	line int

	positions []mgl32.Vec3
	colors    []mgl32.Vec3
	texcoords []mgl32.Vec2
	normals   []mgl32.Vec3

	seen       map[corner]uint32
	hasNormals bool
	face       []uint32
	mesh       *shade.Mesh
}

func (p *parser) statement(line string) error {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	args := fields[1:]
	switch fields[0] {
	case "v":
		if len(args) != 3 && len(args) != 4 && len(args) != 6 {
			return p.errorf(nil, "v: want 3, 4 or 6 values, got %d", len(args))
		}
		f, err := p.floats(args)
		if err != nil {
			return err
		}
		p.positions = append(p.positions, mgl32.Vec3{f[0], f[1], f[2]})
		color := DefaultColor
		if len(f) == 6 {
			color = mgl32.Vec3{f[3], f[4], f[5]}
		}
		p.colors = append(p.colors, color)
	case "vt":
		if len(args) < 1 || len(args) > 3 {
			return p.errorf(nil, "vt: want 1 to 3 values, got %d", len(args))
		}
		f, err := p.floats(args)
		if err != nil {
			return err
		}
		uv := mgl32.Vec2{f[0], 0}
		if len(f) > 1 {
			uv[1] = f[1]
		}
		p.texcoords = append(p.texcoords, uv)
	case "vn":
		if len(args) != 3 {
			return p.errorf(nil, "vn: want 3 values, got %d", len(args))
		}
		f, err := p.floats(args)
		if err != nil {
			return err
		}
		p.normals = append(p.normals, mgl32.Vec3{f[0], f[1], f[2]})
	case "f":
		return p.faceStatement(args)
	}
	return nil
}

func (p *parser) faceStatement(args []string) error {
	if len(args) < 3 {
		return p.errorf(nil, "f: want at least 3 corners, got %d", len(args))
	}
	p.face = p.face[:0]
	for _, a := range args {
		c, err := p.corner(a)
		if err != nil {
			return err
		}
		idx, err := p.vertex(c)
		if err != nil {
			return err
		}
		p.face = append(p.face, idx)
	}
	for i := 1; i+1 < len(p.face); i++ {
		p.mesh.Indices = append(p.mesh.Indices, p.face[0], p.face[i], p.face[i+1])
	}
	return nil
}

// corner parses v, v/vt, v//vn or v/vt/vn.
func (p *parser) corner(s string) (corner, error) {
	parts := strings.Split(s, "/")
	if len(parts) > 3 || parts[0] == "" {
		return corner{}, p.errorf(nil, "f: malformed corner %q", s)
	}
	c := corner{v: -1, vt: -1, vn: -1}
	var err error
	if c.v, err = p.index(parts[0], len(p.positions), "position"); err != nil {
		return c, err
	}
	if len(parts) > 1 && parts[1] != "" {
		if c.vt, err = p.index(parts[1], len(p.texcoords), "texcoord"); err != nil {
			return c, err
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		if c.vn, err = p.index(parts[2], len(p.normals), "normal"); err != nil {
			return c, err
		}
	}
	return c, nil
}

// index resolves a 1-based or negative relative OBJ index to 0-based.
func (p *parser) index(s string, n int, what string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, p.errorf(err, "f: bad %s index %q", what, s)
	}
	switch {
	case i > 0 && i <= n:
		return i - 1, nil
	case i < 0 && -i <= n:
		return n + i, nil
	}
	return 0, p.errorf(ErrIndexOutOfRange, "f: %s index %d with %d defined", what, i, n)
}

func (p *parser) vertex(c corner) (uint32, error) {
	if idx, ok := p.seen[c]; ok {
		return idx, nil
	}
	if uint64(len(p.mesh.Vertices)) >= math.MaxUint32 {
		return 0, p.errorf(ErrTooManyVertices, "f")
	}
	v := shade.Vertex{
		Position: p.positions[c.v],
		Color:    p.colors[c.v],
	}
	if c.vt >= 0 {
		v.UV = p.texcoords[c.vt]
	}
	if c.vn >= 0 {
		v.Normal = p.normals[c.vn]
		p.hasNormals = true
	}
	idx := uint32(len(p.mesh.Vertices))
	p.mesh.Vertices = append(p.mesh.Vertices, v)
	p.seen[c] = idx
	return idx, nil
}

func (p *parser) floats(args []string) ([]float32, error) {
	out := make([]float32, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, p.errorf(err, "bad number %q", a)
		}
		out[i] = float32(f)
	}
	return out, nil
}

func (p *parser) errorf(err error, format string, args ...any) error {
	return &ParseError{Line: p.line, Message: fmt.Sprintf(format, args...), Err: err}
}
