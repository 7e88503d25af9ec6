// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/tri"
)

// Color is an RGB color written either as "#rrggbb" or as a sequence of
// three 0-255 channels.
type Color tri.RGB

// RGB returns c as a framebuffer color.
func (c Color) RGB() tri.RGB {
	return tri.RGB(c)
}

// Unit returns c with channels scaled to [0, 1].
func (c Color) Unit() mgl32.Vec3 {
	return tri.RGB(c).Vec3().Mul(1.0 / 255)
}

// ParseColor parses "#rrggbb" or "rrggbb".
func ParseColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("scene: color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("scene: color %q: %w", s, err)
	}
	return Color(tri.FromHex(uint32(v))), nil
}

// String returns the color as "#rrggbb".
func (c Color) String() string {
	return fmt.Sprintf("#%06x", tri.RGB(c).Hex())
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		parsed, err := ParseColor(value.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", value.Line, err)
		}
		*c = parsed
		return nil
	case yaml.SequenceNode:
		var ch []int
		if err := value.Decode(&ch); err != nil {
			return err
		}
		if len(ch) != 3 {
			return fmt.Errorf("line %d: scene: color needs 3 channels, got %d", value.Line, len(ch))
		}
		for _, v := range ch {
			if v < 0 || v > 255 {
				return fmt.Errorf("line %d: scene: color channel %d out of range [0, 255]", value.Line, v)
			}
		}
		*c = Color{uint8(ch[0]), uint8(ch[1]), uint8(ch[2])}
		return nil
	}
	return fmt.Errorf("line %d: scene: color must be a string or a sequence", value.Line)
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}
