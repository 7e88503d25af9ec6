package tri

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// RGB is a framebuffer pixel with 8 bits per channel.
type RGB struct {
	R, G, B uint8
}

// RGBA implements the color.Color interface. Pixels are always opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Vec3 returns the color as a vector with channels in [0, 255].
func (c RGB) Vec3() mgl32.Vec3 {
	return mgl32.Vec3{float32(c.R), float32(c.G), float32(c.B)}
}

// Common colors.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
	Red   = RGB{255, 0, 0}
	Green = RGB{0, 255, 0}
	Blue  = RGB{0, 0, 255}
)

// ColorFromVec3 converts a fragment color with channels nominally in
// [0, 255] to RGB. Channels are rounded and clamped; NaN becomes 0.
func ColorFromVec3(v mgl32.Vec3) RGB {
	return RGB{clamp255(v[0]), clamp255(v[1]), clamp255(v[2])}
}

// FromColor converts a standard color.Color to RGB, dropping alpha.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}

// Hex packs the color as 0xRRGGBB.
func (c RGB) Hex() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// FromHex unpacks a 0xRRGGBB value.
func FromHex(v uint32) RGB {
	return RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}
}

func clamp255(v float32) uint8 {
	switch {
	case v != v: // NaN
		return 0
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(math.Round(float64(v)))
}
