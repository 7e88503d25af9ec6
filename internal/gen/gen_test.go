// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gen

import (
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"
)

// stubImporter serves a minimal mgl32 so tests need no module download.
type stubImporter struct {
	fset     *token.FileSet
	fallback types.Importer
	cache    map[string]*types.Package
}

const mglStub = `package mgl32

type Vec2 [2]float32
type Vec3 [3]float32
type Vec4 [4]float32
`

func (s *stubImporter) Import(path string) (*types.Package, error) {
	if pkg, ok := s.cache[path]; ok {
		return pkg, nil
	}
	if path != mglPath {
		return s.fallback.Import(path)
	}
	pkg, err := check(s.fset, path, mglStub, nil)
	if err != nil {
		return nil, err
	}
	s.cache[path] = pkg
	return pkg, nil
}

func check(fset *token.FileSet, path, src string, imp types.Importer) (*types.Package, error) {
	f, err := parser.ParseFile(fset, "src.go", src, 0)
	if err != nil {
		return nil, err
	}
	conf := types.Config{Importer: imp}
	return conf.Check(path, fset, []*ast.File{f}, nil)
}

func load(t *testing.T, src string) *types.Package {
	t.Helper()
	fset := token.NewFileSet()
	imp := &stubImporter{fset: fset, fallback: importer.Default(), cache: map[string]*types.Package{}}
	pkg, err := check(fset, "example.com/mesh", src, imp)
	if err != nil {
		t.Fatalf("type-check: %v", err)
	}
	return pkg
}

// squash collapses whitespace so assertions do not depend on gofmt alignment.
func squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func TestGenerate(t *testing.T) {
	pkg := load(t, `package mesh

import "github.com/go-gl/mathgl/mgl32"

type Depth float32

type Weights [2]float64

type Varyings struct {
	Color  mgl32.Vec3
	UV     mgl32.Vec2
	Depth  Depth
	W      Weights
	Light  Light
	Nested struct{ A float32 }
	_      float32
}

type Light struct {
	Intensity float32
}
`)

	src, err := Generate(pkg, []string{"Varyings", "Light"}, "trigen -type=Varyings,Light")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	out := squash(string(src))

	want := []string{
		`// Code generated by "trigen -type=Varyings,Light"; DO NOT EDIT.`,
		"package mesh",
		`"github.com/gogpu/tri/interp"`,
		"func (a Varyings) Combine(b, c Varyings, wa, wb, wc float32) Varyings {",
		"Color:  interp.Vec3(a.Color, b.Color, c.Color, wa, wb, wc),",
		"UV:     interp.Vec2(a.UV, b.UV, c.UV, wa, wb, wc),",
		"Depth:  Depth(interp.Float32(float32(a.Depth), float32(b.Depth), float32(c.Depth), wa, wb, wc)),",
		"W:      Weights{interp.Float64(a.W[0], b.W[0], c.W[0], wa, wb, wc), interp.Float64(a.W[1], b.W[1], c.W[1], wa, wb, wc)},",
		"Light:  a.Light.Combine(b.Light, c.Light, wa, wb, wc),",
		"A: interp.Float32(a.Nested.A, b.Nested.A, c.Nested.A, wa, wb, wc),",
		"func (a Light) Combine(b, c Light, wa, wb, wc float32) Light {",
		"Intensity: interp.Float32(a.Intensity, b.Intensity, c.Intensity, wa, wb, wc),",
	}
	for _, w := range want {
		if !strings.Contains(out, squash(w)) {
			t.Errorf("output missing %q\n%s", w, out)
		}
	}
	if strings.Contains(out, "_:") {
		t.Errorf("blank field was emitted\n%s", out)
	}
	if strings.Contains(out, `"github.com/go-gl/mathgl/mgl32"`) {
		t.Errorf("mgl32 import not needed\n%s", out)
	}
}

func TestGenerateUsesExistingCombine(t *testing.T) {
	pkg := load(t, `package mesh

type Fog float32

func (a Fog) Combine(b, c Fog, wa, wb, wc float32) Fog { return a }

type ptrCombine struct{ X float32 }

func (p *ptrCombine) Combine(b, c ptrCombine, wa, wb, wc float32) ptrCombine { return *p }

type Varyings struct {
	Fog Fog
	P   ptrCombine
}
`)
	src, err := Generate(pkg, []string{"Varyings"}, "trigen -type=Varyings")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	out := squash(string(src))
	if !strings.Contains(out, "Fog: a.Fog.Combine(b.Fog, c.Fog, wa, wb, wc),") {
		t.Errorf("value-receiver Combine not used\n%s", out)
	}
	// Pointer receivers do not satisfy the varying contract, so P is expanded.
	if !strings.Contains(out, "X: interp.Float32(a.P.X, b.P.X, c.P.X, wa, wb, wc),") {
		t.Errorf("pointer-receiver Combine should be ignored\n%s", out)
	}
}

func TestGenerateErrors(t *testing.T) {
	pkg := load(t, `package mesh

type BadInt struct{ N int }

type BadSlice struct{ S []float32 }

type Generic[T any] struct{ V T }

type Big struct{ A [100]float32 }

type Alias = struct{ X float32 }

const NotAType = 1
`)
	tests := []struct {
		name string
		typ  string
		want string
	}{
		{"int field", "BadInt", "BadInt.N: cannot interpolate int"},
		{"slice field", "BadSlice", "BadSlice.S: cannot interpolate []float32"},
		{"generic", "Generic", "generic types are not supported"},
		{"long array", "Big", "array of 100 elements"},
		{"alias", "Alias", "must be a defined type"},
		{"not a type", "NotAType", "is not a type"},
		{"missing", "Missing", "not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(pkg, []string{tt.typ}, "trigen")
			if err == nil {
				t.Fatalf("Generate(%s) error = nil, want %q", tt.typ, tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Generate(%s) error = %v, want containing %q", tt.typ, err, tt.want)
			}
		})
	}
}

func TestGenerateNoTypes(t *testing.T) {
	pkg := load(t, "package mesh\n")
	if _, err := Generate(pkg, nil, "trigen"); err == nil {
		t.Error("Generate(nil) error = nil, want error")
	}
}

// The generated file must itself type-check against a package that
// provides the interp helpers.
func TestGenerateCompiles(t *testing.T) {
	const decl = `package mesh

import "github.com/go-gl/mathgl/mgl32"

type Varyings struct {
	Normal mgl32.Vec3
	Shade  float32
	Pair   [2]float32
}
`
	pkg := load(t, decl)
	src, err := Generate(pkg, []string{"Varyings"}, "trigen -type=Varyings")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	const interpStub = `package interp

import "github.com/go-gl/mathgl/mgl32"

func Float32(a, b, c, wa, wb, wc float32) float32 { return a*wa + b*wb + c*wc }
func Float64(a, b, c float64, wa, wb, wc float32) float64 { return a }
func Vec2(a, b, c mgl32.Vec2, wa, wb, wc float32) mgl32.Vec2 { return a }
func Vec3(a, b, c mgl32.Vec3, wa, wb, wc float32) mgl32.Vec3 { return a }
func Vec4(a, b, c mgl32.Vec4, wa, wb, wc float32) mgl32.Vec4 { return a }
`
	fset := token.NewFileSet()
	imp := &stubImporter{fset: fset, fallback: importer.Default(), cache: map[string]*types.Package{}}
	ipkg, err := check(fset, interpPath, interpStub, imp)
	if err != nil {
		t.Fatalf("interp stub: %v", err)
	}
	imp.cache[interpPath] = ipkg

	files := make([]*ast.File, 0, 2)
	for i, s := range []string{decl, string(src)} {
		f, err := parser.ParseFile(fset, fmt.Sprintf("f%d.go", i), s, 0)
		if err != nil {
			t.Fatalf("parse: %v\n%s", err, s)
		}
		files = append(files, f)
	}
	conf := types.Config{Importer: imp}
	if _, err := conf.Check("example.com/mesh", fset, files, nil); err != nil {
		t.Errorf("generated code does not type-check: %v\n%s", err, src)
	}
}
