// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gen emits Combine methods for varying types.
//
// It works on type-checked packages so that it can see through named
// types, follow nested structs and detect fields that already know how to
// combine themselves. cmd/trigen is the command-line front end.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/types"
	"sort"
	"strings"
)

const (
	interpPath = "github.com/gogpu/tri/interp"
	mglPath    = "github.com/go-gl/mathgl/mgl32"

	// maxArrayLen bounds arrays expanded element by element.
	maxArrayLen = 64
)

// Generator accumulates Combine methods for types of a single package.
type Generator struct {
	pkg     *types.Package
	targets map[string]bool
	imports map[string]string // path -> name
	buf     bytes.Buffer
}

// New returns a Generator for pkg. typeNames are the types that will get a
// Combine method; fields of those types are treated as combinable even
// before their method exists.
func New(pkg *types.Package, typeNames []string) *Generator {
	targets := make(map[string]bool, len(typeNames))
	for _, name := range typeNames {
		targets[name] = true
	}
	return &Generator{
		pkg:     pkg,
		targets: targets,
		imports: make(map[string]string),
	}
}

// Generate produces a gofmt-ed source file containing a Combine method for
// every requested type. header is placed in the "Code generated" line.
func Generate(pkg *types.Package, typeNames []string, header string) ([]byte, error) {
	if len(typeNames) == 0 {
		return nil, errors.New("gen: no types requested")
	}
	g := New(pkg, typeNames)
	for _, name := range typeNames {
		if err := g.method(name); err != nil {
			return nil, err
		}
	}
	return g.source(header)
}

func (g *Generator) method(name string) error {
	obj := g.pkg.Scope().Lookup(name)
	if obj == nil {
		return fmt.Errorf("gen: type %s not found in package %s", name, g.pkg.Path())
	}
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return fmt.Errorf("gen: %s is not a type", name)
	}
	named, ok := tn.Type().(*types.Named)
	if !ok || tn.IsAlias() {
		return fmt.Errorf("gen: %s must be a defined type", name)
	}
	if named.TypeParams().Len() > 0 {
		return fmt.Errorf("gen: %s: generic types are not supported", name)
	}

	body, err := g.expr(named, "", name, true)
	if err != nil {
		return err
	}

	fmt.Fprintf(&g.buf, "\n// Combine returns the member-wise weighted sum a*wa + b*wb + c*wc.\n")
	fmt.Fprintf(&g.buf, "func (a %s) Combine(b, c %s, wa, wb, wc float32) %s {\n", name, name, name)
	fmt.Fprintf(&g.buf, "\treturn %s\n}\n", body)
	return nil
}

// expr returns an expression combining a<path>, b<path> and c<path> of
// type t. where names the field for error messages.
func (g *Generator) expr(t types.Type, path, where string, top bool) (string, error) {
	t = types.Unalias(t)
	if !top && g.combinable(t) {
		return fmt.Sprintf("a%[1]s.Combine(b%[1]s, c%[1]s, wa, wb, wc)", path), nil
	}
	if helper, ok := vectorHelper(t); ok {
		g.imports[interpPath] = "interp"
		return fmt.Sprintf("interp.%[1]s(a%[2]s, b%[2]s, c%[2]s, wa, wb, wc)", helper, path), nil
	}

	switch u := t.Underlying().(type) {
	case *types.Basic:
		var helper, base string
		switch u.Kind() {
		case types.Float32:
			helper, base = "Float32", "float32"
		case types.Float64:
			helper, base = "Float64", "float64"
		default:
			return "", fmt.Errorf("gen: %s: cannot interpolate %s", where, g.typeString(t))
		}
		g.imports[interpPath] = "interp"
		if _, named := t.(*types.Named); named {
			return fmt.Sprintf("%[1]s(interp.%[2]s(%[3]s(a%[4]s), %[3]s(b%[4]s), %[3]s(c%[4]s), wa, wb, wc))",
				g.typeString(t), helper, base, path), nil
		}
		return fmt.Sprintf("interp.%[1]s(a%[2]s, b%[2]s, c%[2]s, wa, wb, wc)", helper, path), nil

	case *types.Array:
		if u.Len() > maxArrayLen {
			return "", fmt.Errorf("gen: %s: array of %d elements is too long", where, u.Len())
		}
		elems := make([]string, u.Len())
		for i := range elems {
			e, err := g.expr(u.Elem(), fmt.Sprintf("%s[%d]", path, i), fmt.Sprintf("%s[%d]", where, i), false)
			if err != nil {
				return "", err
			}
			elems[i] = e
		}
		return fmt.Sprintf("%s{%s}", g.typeString(t), strings.Join(elems, ", ")), nil

	case *types.Struct:
		var sb strings.Builder
		sb.WriteString(g.typeString(t))
		sb.WriteString("{\n")
		for i := range u.NumFields() {
			f := u.Field(i)
			if f.Name() == "_" {
				continue
			}
			if !f.Exported() && f.Pkg() != g.pkg {
				return "", fmt.Errorf("gen: %s.%s: unexported field of another package", where, f.Name())
			}
			e, err := g.expr(f.Type(), path+"."+f.Name(), where+"."+f.Name(), false)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&sb, "%s: %s,\n", f.Name(), e)
		}
		sb.WriteString("}")
		return sb.String(), nil
	}

	return "", fmt.Errorf("gen: %s: cannot interpolate %s", where, g.typeString(t))
}

// combinable reports whether t is a generation target or already has a
// value-receiver Combine(b, c T, wa, wb, wc float32) T method.
func (g *Generator) combinable(t types.Type) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	if named.Obj().Pkg() == g.pkg && g.targets[named.Obj().Name()] {
		return true
	}
	obj, _, _ := types.LookupFieldOrMethod(t, false, g.pkg, "Combine")
	fn, ok := obj.(*types.Func)
	if !ok {
		return false
	}
	sig := fn.Type().(*types.Signature)
	if _, ptr := sig.Recv().Type().(*types.Pointer); ptr {
		return false
	}
	params, results := sig.Params(), sig.Results()
	if params.Len() != 5 || results.Len() != 1 {
		return false
	}
	if !types.Identical(params.At(0).Type(), t) || !types.Identical(params.At(1).Type(), t) ||
		!types.Identical(results.At(0).Type(), t) {
		return false
	}
	for i := 2; i < 5; i++ {
		b, ok := params.At(i).Type().(*types.Basic)
		if !ok || b.Kind() != types.Float32 {
			return false
		}
	}
	return true
}

// vectorHelper maps mgl32 vector types to their interp helper.
func vectorHelper(t types.Type) (string, bool) {
	named, ok := t.(*types.Named)
	if !ok || named.Obj().Pkg() == nil || named.Obj().Pkg().Path() != mglPath {
		return "", false
	}
	switch name := named.Obj().Name(); name {
	case "Vec2", "Vec3", "Vec4":
		return name, true
	}
	return "", false
}

func (g *Generator) typeString(t types.Type) string {
	return types.TypeString(t, func(p *types.Package) string {
		if p == g.pkg {
			return ""
		}
		g.imports[p.Path()] = p.Name()
		return p.Name()
	})
}

func (g *Generator) source(header string) ([]byte, error) {
	var out bytes.Buffer
	fmt.Fprintf(&out, "// Code generated by \"%s\"; DO NOT EDIT.\n\n", header)
	fmt.Fprintf(&out, "package %s\n", g.pkg.Name())

	if len(g.imports) > 0 {
		paths := make([]string, 0, len(g.imports))
		for p := range g.imports {
			paths = append(paths, p)
		}
		sort.Strings(paths)
		out.WriteString("\nimport (\n")
		for _, p := range paths {
			fmt.Fprintf(&out, "\t%q\n", p)
		}
		out.WriteString(")\n")
	}
	out.Write(g.buf.Bytes())

	src, err := format.Source(out.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: formatting output: %w", err)
	}
	return src, nil
}
