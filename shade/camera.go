// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shade

import "github.com/go-gl/mathgl/mgl32"

// Camera is a perspective camera looking from Eye towards Target.
//
// tri does not clip against the near plane, so geometry behind the eye
// must be kept out of view by the caller.
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3
	FOV    float32 // vertical, in degrees
	Near   float32
	Far    float32
}

// DefaultCamera looks at the origin from +Z.
func DefaultCamera() Camera {
	return Camera{
		Eye:  mgl32.Vec3{0, 0, 3},
		Up:   mgl32.Vec3{0, 1, 0},
		FOV:  45,
		Near: 0.1,
		Far:  100,
	}
}

// View returns the world-to-camera matrix.
func (c Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

// Projection returns the camera-to-clip matrix for the given width/height
// ratio.
func (c Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FOV), aspect, c.Near, c.Far)
}

// ViewProjection returns Projection(aspect) * View().
func (c Camera) ViewProjection(aspect float32) mgl32.Mat4 {
	return c.Projection(aspect).Mul4(c.View())
}
