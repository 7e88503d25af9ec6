// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package interp provides the building blocks for varying types: weighted
// three-way combinations of scalars and vectors, plus a reflection-based
// combinator for whole structs.
//
// A varying type implements
//
//	Combine(b, c T, wa, wb, wc float32) T
//
// with the receiver as the first operand. The method is usually generated
// by cmd/trigen, which emits calls to the helpers in this package:
//
//	//go:generate trigen -type=Varyings
//	type Varyings struct {
//		Color mgl32.Vec3
//		UV    mgl32.Vec2
//	}
//
// Callers who prefer to skip the generate step can delegate to [Struct]:
//
//	func (a Varyings) Combine(b, c Varyings, wa, wb, wc float32) Varyings {
//		return interp.Struct(a, b, c, wa, wb, wc)
//	}
package interp

import "github.com/go-gl/mathgl/mgl32"

// Float32 returns a*wa + b*wb + c*wc.
func Float32(a, b, c, wa, wb, wc float32) float32 {
	return a*wa + b*wb + c*wc
}

// Float64 returns a*wa + b*wb + c*wc computed in float64.
func Float64(a, b, c float64, wa, wb, wc float32) float64 {
	return a*float64(wa) + b*float64(wb) + c*float64(wc)
}

// Vec2 combines three 2-component vectors component-wise.
func Vec2(a, b, c mgl32.Vec2, wa, wb, wc float32) mgl32.Vec2 {
	return mgl32.Vec2{
		a[0]*wa + b[0]*wb + c[0]*wc,
		a[1]*wa + b[1]*wb + c[1]*wc,
	}
}

// Vec3 combines three 3-component vectors component-wise.
func Vec3(a, b, c mgl32.Vec3, wa, wb, wc float32) mgl32.Vec3 {
	return mgl32.Vec3{
		a[0]*wa + b[0]*wb + c[0]*wc,
		a[1]*wa + b[1]*wb + c[1]*wc,
		a[2]*wa + b[2]*wb + c[2]*wc,
	}
}

// Vec4 combines three 4-component vectors component-wise.
func Vec4(a, b, c mgl32.Vec4, wa, wb, wc float32) mgl32.Vec4 {
	return mgl32.Vec4{
		a[0]*wa + b[0]*wb + c[0]*wc,
		a[1]*wa + b[1]*wb + c[1]*wc,
		a[2]*wa + b[2]*wb + c[2]*wc,
		a[3]*wa + b[3]*wb + c[3]*wc,
	}
}

// Empty is a varying with no attributes, for shaders whose fragment stage
// needs nothing from the vertex stage.
type Empty struct{}

// Combine returns Empty{}.
func (Empty) Combine(_, _ Empty, _, _, _ float32) Empty {
	return Empty{}
}

// Scalar is a varying holding a single float32 attribute.
type Scalar float32

// Combine returns the weighted sum of a, b and c.
func (a Scalar) Combine(b, c Scalar, wa, wb, wc float32) Scalar {
	return Scalar(Float32(float32(a), float32(b), float32(c), wa, wb, wc))
}
