// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package fixed implements the 24.8 fixed-point type used for screen-space
// triangle setup.
//
// Edge functions evaluated on snapped integer coordinates are exact, so two
// triangles sharing an edge see exactly negated values along it. That is
// what lets the top-left fill rule partition pixels without gaps or
// overlaps.
package fixed

import "math"

// Dot8 is a 24.8 fixed-point type for pixel coordinates.
// The 8-bit fractional part provides 256 subpixel positions per pixel.
type Dot8 int64

const (
	// Shift is the number of fractional bits in Dot8.
	Shift = 8
	// One represents 1.0 in Dot8 format (256).
	One Dot8 = 1 << Shift
	// Half represents 0.5 in Dot8 format, the pixel center offset.
	Half Dot8 = One / 2
	// Mask extracts the fractional part.
	Mask = One - 1
)

// Limit bounds the magnitude of a snapped coordinate. Edge function
// products of coordinates inside ±Limit fit in an int64 with room for the
// incremental stepping sums.
const Limit Dot8 = 1 << 29

// FromFloat64 rounds f to the nearest Dot8.
// The boolean is false when f is not finite or falls outside ±Limit.
func FromFloat64(f float64) (Dot8, bool) {
	v := math.Round(f * float64(One))
	if math.IsNaN(v) || v <= -float64(Limit) || v >= float64(Limit) {
		return 0, false
	}
	return Dot8(v), true
}

// FromFloat32 rounds a float32 to the nearest Dot8.
func FromFloat32(f float32) (Dot8, bool) {
	return FromFloat64(float64(f))
}

// FromInt converts an integer pixel coordinate to Dot8.
func FromInt(i int) Dot8 {
	return Dot8(i) << Shift
}

// Center returns the Dot8 position of the center of pixel i.
func Center(i int) Dot8 {
	return FromInt(i) + Half
}

// Float32 converts d back to float32.
func (d Dot8) Float32() float32 {
	return float32(d) / float32(One)
}

// Float64 converts d back to float64.
func (d Dot8) Float64() float64 {
	return float64(d) / float64(One)
}

// Floor returns the largest integer not greater than d.
func (d Dot8) Floor() int {
	return int(d >> Shift)
}

// Ceil returns the smallest integer not less than d.
func (d Dot8) Ceil() int {
	return int((d + Mask) >> Shift)
}

// Min3 returns the minimum of three Dot8 values.
func Min3(a, b, c Dot8) Dot8 {
	return min(a, b, c)
}

// Max3 returns the maximum of three Dot8 values.
func Max3(a, b, c Dot8) Dot8 {
	return max(a, b, c)
}
