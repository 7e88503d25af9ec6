// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package interp

import (
	"fmt"
	"reflect"
	"sync"
)

// combineFunc writes the weighted combination of a, b and c into dst.
// dst must be settable; a, b and c have the same type as dst.
type combineFunc func(dst, a, b, c reflect.Value, wa, wb, wc float32)

// plans caches compiled combiners by type. Values are combineFunc.
var plans sync.Map

var float32Type = reflect.TypeFor[float32]()

// Struct combines three values of a struct type field by field. Arrays and
// float types are accepted at the top level too and combined element-wise.
//
// Supported field kinds are float32, float64, arrays of supported kinds
// (which covers mgl32 vectors and matrices), nested structs of supported
// fields, and any type with a value-receiver method
// Combine(b, c T, wa, wb, wc float32) T, which is called instead of
// descending into it. T itself is always combined by its structure, whatever
// its kind, so a Combine method on T may delegate to Struct without
// recursing.
//
// Struct panics if T has a field that cannot be interpolated, such as an
// integer, string, pointer or unexported field. [Check] reports the same
// condition as an error.
func Struct[T any](a, b, c T, wa, wb, wc float32) T {
	fn, err := compileTop(reflect.TypeFor[T]())
	if err != nil {
		panic(err)
	}
	var out T
	fn(reflect.ValueOf(&out).Elem(), reflect.ValueOf(a), reflect.ValueOf(b), reflect.ValueOf(c), wa, wb, wc)
	return out
}

// Check reports whether values of type T can be combined by [Struct].
func Check[T any]() error {
	_, err := compileTop(reflect.TypeFor[T]())
	return err
}

func compileTop(t reflect.Type) (combineFunc, error) {
	if cached, ok := plans.Load(t); ok {
		return cached.(combineFunc), nil
	}
	fn, err := compile(t, t.String(), true)
	if err != nil {
		return nil, err
	}
	plans.Store(t, fn)
	return fn, nil
}

// compile builds the combiner for t. At the top level t's own Combine
// method is ignored, since it may be the caller of Struct.
func compile(t reflect.Type, path string, top bool) (combineFunc, error) {
	if idx, ok := combineMethod(t); ok && !top {
		return func(dst, a, b, c reflect.Value, wa, wb, wc float32) {
			out := a.Method(idx).Call([]reflect.Value{
				b, c,
				reflect.ValueOf(wa), reflect.ValueOf(wb), reflect.ValueOf(wc),
			})
			dst.Set(out[0])
		}, nil
	}

	switch t.Kind() {
	case reflect.Float32:
		return func(dst, a, b, c reflect.Value, wa, wb, wc float32) {
			dst.SetFloat(float64(Float32(float32(a.Float()), float32(b.Float()), float32(c.Float()), wa, wb, wc)))
		}, nil

	case reflect.Float64:
		return func(dst, a, b, c reflect.Value, wa, wb, wc float32) {
			dst.SetFloat(Float64(a.Float(), b.Float(), c.Float(), wa, wb, wc))
		}, nil

	case reflect.Array:
		elem, err := compile(t.Elem(), path+"[]", false)
		if err != nil {
			return nil, err
		}
		n := t.Len()
		return func(dst, a, b, c reflect.Value, wa, wb, wc float32) {
			for i := range n {
				elem(dst.Index(i), a.Index(i), b.Index(i), c.Index(i), wa, wb, wc)
			}
		}, nil

	case reflect.Struct:
		return compileStruct(t, path)
	}

	return nil, fmt.Errorf("interp: %s: cannot interpolate %s", path, t)
}

func compileStruct(t reflect.Type, path string) (combineFunc, error) {
	type fieldPlan struct {
		index int
		fn    combineFunc
	}
	fields := make([]fieldPlan, 0, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		if f.Name == "_" {
			continue
		}
		if !f.IsExported() {
			return nil, fmt.Errorf("interp: %s.%s: unexported field", path, f.Name)
		}
		fn, err := compile(f.Type, path+"."+f.Name, false)
		if err != nil {
			return nil, err
		}
		fields = append(fields, fieldPlan{index: i, fn: fn})
	}
	return func(dst, a, b, c reflect.Value, wa, wb, wc float32) {
		for _, f := range fields {
			f.fn(dst.Field(f.index), a.Field(f.index), b.Field(f.index), c.Field(f.index), wa, wb, wc)
		}
	}, nil
}

// combineMethod returns the method index of a value-receiver
// Combine(b, c T, wa, wb, wc float32) T on t.
func combineMethod(t reflect.Type) (int, bool) {
	m, ok := t.MethodByName("Combine")
	if !ok {
		return 0, false
	}
	mt := m.Type // includes the receiver as In(0)
	if mt.NumIn() != 6 || mt.NumOut() != 1 {
		return 0, false
	}
	if mt.In(1) != t || mt.In(2) != t || mt.Out(0) != t {
		return 0, false
	}
	for i := 3; i < 6; i++ {
		if mt.In(i) != float32Type {
			return 0, false
		}
	}
	return m.Index, true
}
