// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package shade provides ready-made shaders for tri.
//
// All shaders consume [Vertex] and transform positions with a
// model-view-projection matrix. Vertex colors are in [0, 1]; fragment
// outputs are scaled to the [0, 255] range tri expects.
package shade

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/tri"
	"github.com/gogpu/tri/interp"
)

// Vertex is the common vertex layout used by the shaders in this package
// and produced by the obj loader.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Color    mgl32.Vec3
	UV       mgl32.Vec2
}

func clip(mvp mgl32.Mat4, p mgl32.Vec3) mgl32.Vec4 {
	return mvp.Mul4x1(p.Vec4(1))
}

// Flat fills every triangle with a single color.
type Flat struct {
	MVP   mgl32.Mat4
	Color tri.RGB
}

// Vertex implements tri.Shader.
func (s *Flat) Vertex(v *Vertex) (mgl32.Vec4, interp.Empty) {
	return clip(s.MVP, v.Position), interp.Empty{}
}

// Fragment implements tri.Shader.
func (s *Flat) Fragment(interp.Empty) mgl32.Vec3 {
	return s.Color.Vec3()
}

// Gouraud interpolates vertex colors across each triangle.
type Gouraud struct {
	MVP mgl32.Mat4
}

// Vertex implements tri.Shader.
func (s *Gouraud) Vertex(v *Vertex) (mgl32.Vec4, ColorVarying) {
	return clip(s.MVP, v.Position), ColorVarying{Color: v.Color}
}

// Fragment implements tri.Shader.
func (s *Gouraud) Fragment(in ColorVarying) mgl32.Vec3 {
	return in.Color.Mul(255)
}

// Lambert applies per-pixel diffuse lighting from a single directional
// light to the vertex color.
type Lambert struct {
	mvp     mgl32.Mat4
	normal  mgl32.Mat3
	light   mgl32.Vec3
	ambient float32
}

// NewLambert returns a Lambert shader. model transforms object space to
// world space and viewProj world space to clip space. light is the
// direction the light travels in world space; ambient is the fraction of
// the color kept on faces turned away from the light.
func NewLambert(model, viewProj mgl32.Mat4, light mgl32.Vec3, ambient float32) *Lambert {
	s := &Lambert{
		mvp:     viewProj.Mul4(model),
		normal:  model.Mat3().Inv().Transpose(),
		ambient: mgl32.Clamp(ambient, 0, 1),
	}
	if light.Len() > 0 {
		s.light = light.Normalize().Mul(-1)
	}
	return s
}

// Vertex implements tri.Shader.
func (s *Lambert) Vertex(v *Vertex) (mgl32.Vec4, LitVarying) {
	return clip(s.mvp, v.Position), LitVarying{
		Normal: s.normal.Mul3x1(v.Normal),
		Color:  v.Color,
	}
}

// Fragment implements tri.Shader.
func (s *Lambert) Fragment(in LitVarying) mgl32.Vec3 {
	var diffuse float32
	if l := in.Normal.Len(); l > 0 {
		diffuse = max(in.Normal.Mul(1/l).Dot(s.light), 0)
	}
	k := s.ambient + (1-s.ambient)*diffuse
	return in.Color.Mul(255 * k)
}

var (
	_ tri.Shader[Vertex, interp.Empty] = (*Flat)(nil)
	_ tri.Shader[Vertex, ColorVarying] = (*Gouraud)(nil)
	_ tri.Shader[Vertex, LitVarying]   = (*Lambert)(nil)
)
