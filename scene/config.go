// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package scene describes renderable scenes in YAML files.
//
// A scene names a mesh (an OBJ file or a built-in shape), a camera, a
// directional light and the shading to use:
//
//	width: 800
//	height: 600
//	background: "#202020"
//	camera:
//	  eye: [0, 1, 3]
//	  fov: 45
//	light:
//	  direction: [-1, -1, -1]
//	  ambient: 0.2
//	model:
//	  path: head.obj
//	shading: lambert
//	frames: 36
//	turntable: 360
//	output: head-%03d.png
//
// Missing fields take the defaults listed on [Config].
package scene

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/tri"
	"github.com/gogpu/tri/shade"
)

// Defaults applied by Load.
const (
	DefaultWidth   = 800
	DefaultHeight  = 600
	DefaultShading = "lambert"
	DefaultOutput  = "out.png"
	DefaultAmbient = 0.2
)

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("scene: invalid config")

// Config is the on-disk scene description.
type Config struct {
	Width      int    `yaml:"width,omitempty"`
	Height     int    `yaml:"height,omitempty"`
	Background *Color `yaml:"background,omitempty"`

	Camera CameraConfig `yaml:"camera"`
	Light  LightConfig  `yaml:"light"`
	Model  ModelConfig  `yaml:"model"`

	// Shading is one of flat, gouraud or lambert.
	Shading string `yaml:"shading,omitempty"`
	// Draw is fill or wireframe.
	Draw string `yaml:"draw,omitempty"`
	// Cull is none, back or front.
	Cull string `yaml:"cull,omitempty"`

	// Frames is the number of frames to render; Turntable is the total
	// rotation in degrees about the Y axis spread over those frames.
	Frames    int     `yaml:"frames,omitempty"`
	Turntable float32 `yaml:"turntable,omitempty"`

	// Output is the image path. With more than one frame it must contain
	// a %d verb for the frame number.
	Output string `yaml:"output,omitempty"`
}

// CameraConfig mirrors shade.Camera.
type CameraConfig struct {
	Eye    *mgl32.Vec3 `yaml:"eye,omitempty"`
	Target mgl32.Vec3  `yaml:"target"`
	Up     *mgl32.Vec3 `yaml:"up,omitempty"`
	FOV    float32     `yaml:"fov,omitempty"`
	Near   float32     `yaml:"near,omitempty"`
	Far    float32     `yaml:"far,omitempty"`
}

// LightConfig is a single directional light.
type LightConfig struct {
	Direction *mgl32.Vec3 `yaml:"direction,omitempty"`
	Ambient   *float32    `yaml:"ambient,omitempty"`
}

// ModelConfig selects the mesh. Exactly one of Path and Builtin is set.
type ModelConfig struct {
	// Path is an OBJ file, relative to the scene file.
	Path string `yaml:"path,omitempty"`
	// Builtin is triangle, quad or cube.
	Builtin string `yaml:"builtin,omitempty"`
	// Color overrides the vertex colors.
	Color *Color `yaml:"color,omitempty"`
	// Normalize rescales the mesh to fit [-1, 1].
	Normalize bool `yaml:"normalize,omitempty"`
	// Rotate is applied before the turntable, in degrees about X, Y, Z.
	Rotate mgl32.Vec3 `yaml:"rotate"`
}

var (
	shadings  = []string{"flat", "gouraud", "lambert"}
	drawModes = map[string]tri.DrawMode{"fill": tri.DrawFill, "wireframe": tri.DrawWireframe}
	cullModes = map[string]tri.CullMode{"none": tri.CullNone, "back": tri.CullBack, "front": tri.CullFront}
)

// normalize fills in defaults for unset fields.
func (c *Config) normalize() {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.Background == nil {
		c.Background = &Color{}
	}

	cam := shade.DefaultCamera()
	if c.Camera.Eye == nil {
		c.Camera.Eye = &cam.Eye
	}
	if c.Camera.Up == nil {
		c.Camera.Up = &cam.Up
	}
	if c.Camera.FOV == 0 {
		c.Camera.FOV = cam.FOV
	}
	if c.Camera.Near == 0 {
		c.Camera.Near = cam.Near
	}
	if c.Camera.Far == 0 {
		c.Camera.Far = cam.Far
	}

	if c.Light.Direction == nil {
		c.Light.Direction = &mgl32.Vec3{-1, -1, -1}
	}
	if c.Light.Ambient == nil {
		a := float32(DefaultAmbient)
		c.Light.Ambient = &a
	}

	if c.Model.Path == "" && c.Model.Builtin == "" {
		c.Model.Builtin = "cube"
	}
	if c.Shading == "" {
		c.Shading = DefaultShading
	}
	if c.Draw == "" {
		c.Draw = "fill"
	}
	if c.Cull == "" {
		c.Cull = "none"
	}
	if c.Frames == 0 {
		c.Frames = 1
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
}

// Validate reports the first problem with c. It expects defaults to have
// been applied.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Model.Path != "" && c.Model.Builtin != "" {
		return fmt.Errorf("%w: model.path and model.builtin are exclusive", ErrInvalidConfig)
	}
	if c.Model.Builtin != "" {
		if _, ok := shade.Builtin(c.Model.Builtin); !ok {
			return fmt.Errorf("%w: unknown builtin model %q", ErrInvalidConfig, c.Model.Builtin)
		}
	}
	if !slices.Contains(shadings, c.Shading) {
		return fmt.Errorf("%w: unknown shading %q", ErrInvalidConfig, c.Shading)
	}
	if _, ok := drawModes[c.Draw]; !ok {
		return fmt.Errorf("%w: unknown draw mode %q", ErrInvalidConfig, c.Draw)
	}
	if _, ok := cullModes[c.Cull]; !ok {
		return fmt.Errorf("%w: unknown cull mode %q", ErrInvalidConfig, c.Cull)
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("%w: camera.fov %v out of range (0, 180)", ErrInvalidConfig, c.Camera.FOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("%w: camera needs 0 < near < far", ErrInvalidConfig)
	}
	if c.Camera.Eye != nil && *c.Camera.Eye == c.Camera.Target {
		return fmt.Errorf("%w: camera.eye equals camera.target", ErrInvalidConfig)
	}
	if a := c.Light.Ambient; a != nil && (*a < 0 || *a > 1) {
		return fmt.Errorf("%w: light.ambient %v out of range [0, 1]", ErrInvalidConfig, *a)
	}
	if c.Frames < 1 {
		return fmt.Errorf("%w: frames must be at least 1", ErrInvalidConfig)
	}
	if _, err := tri.FormatFromPath(c.Output); err != nil {
		return fmt.Errorf("%w: output: %w", ErrInvalidConfig, err)
	}
	if c.Frames > 1 && !strings.Contains(c.Output, "%") {
		return fmt.Errorf("%w: output %q needs a %%d verb for %d frames", ErrInvalidConfig, c.Output, c.Frames)
	}
	return nil
}

// OutputPath returns the image path for frame i.
func (c *Config) OutputPath(i int) string {
	if c.Frames <= 1 && !strings.Contains(c.Output, "%") {
		return c.Output
	}
	return fmt.Sprintf(c.Output, i)
}

// DrawMode returns the configured tri draw mode.
func (c *Config) DrawMode() tri.DrawMode {
	return drawModes[c.Draw]
}

// CullMode returns the configured tri cull mode.
func (c *Config) CullMode() tri.CullMode {
	return cullModes[c.Cull]
}

// CameraValue returns the camera described by c.
func (c *Config) CameraValue() shade.Camera {
	cam := shade.DefaultCamera()
	if c.Camera.Eye != nil {
		cam.Eye = *c.Camera.Eye
	}
	if c.Camera.Up != nil {
		cam.Up = *c.Camera.Up
	}
	cam.Target = c.Camera.Target
	if c.Camera.FOV != 0 {
		cam.FOV = c.Camera.FOV
	}
	if c.Camera.Near != 0 {
		cam.Near = c.Camera.Near
	}
	if c.Camera.Far != 0 {
		cam.Far = c.Camera.Far
	}
	return cam
}

// Parse decodes a scene from YAML, applies defaults and validates it.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("scene: parse: %w", err)
	}
	c.normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadConfig reads and parses the scene file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	return Parse(data)
}

// WriteConfig writes c as YAML, after applying defaults, so that it can
// serve as a template.
func WriteConfig(path string, c Config) error {
	c.normalize()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("scene: create %s: %w", path, err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(&c); err != nil {
		return fmt.Errorf("scene: encode %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("scene: close %s: %w", path, err)
	}
	return nil
}
