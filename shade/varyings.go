// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shade

import "github.com/go-gl/mathgl/mgl32"

//go:generate go run github.com/gogpu/tri/cmd/trigen -type=ColorVarying,LitVarying

// ColorVarying carries a vertex color in [0, 1].
type ColorVarying struct {
	Color mgl32.Vec3
}

// LitVarying carries a world-space normal and a vertex color.
type LitVarying struct {
	Normal mgl32.Vec3
	Color  mgl32.Vec3
}
