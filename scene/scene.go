// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/tri"
	"github.com/gogpu/tri/internal/cache"
	"github.com/gogpu/tri/obj"
	"github.com/gogpu/tri/shade"
)

// Scene is a loaded configuration together with its mesh.
type Scene struct {
	Config *Config
	Mesh   *shade.Mesh
}

// Load reads the scene file at path and the mesh it refers to. Relative
// model paths are resolved against the directory of the scene file.
func Load(path string) (*Scene, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return New(cfg, filepath.Dir(path))
}

// New builds a scene from cfg, applying defaults to unset fields. dir is
// the base directory for a relative model path.
func New(cfg *Config, dir string) (*Scene, error) {
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var mesh *shade.Mesh
	if cfg.Model.Path != "" {
		p := cfg.Model.Path
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		m, err := loadMesh(p)
		if err != nil {
			return nil, fmt.Errorf("scene: model: %w", err)
		}
		mesh = m
	} else {
		mesh, _ = shade.Builtin(cfg.Model.Builtin)
	}

	if cfg.Model.Normalize {
		mesh.Normalize()
	}
	if cfg.Model.Color != nil {
		mesh.SetColor(cfg.Model.Color.Unit())
	}

	tri.Logger().Debug("scene: loaded",
		"model", cmp.Or(cfg.Model.Path, cfg.Model.Builtin),
		"vertices", len(mesh.Vertices),
		"triangles", mesh.Triangles(),
	)
	return &Scene{Config: cfg, Mesh: mesh}, nil
}

// meshKey identifies one version of a model file on disk.
type meshKey struct {
	path    string
	size    int64
	modTime time.Time
}

// meshes keeps recently parsed models so that reloading a scene does not
// parse the same OBJ file again.
var meshes = cache.New[meshKey, *shade.Mesh](8)

// loadMesh returns a private copy of the mesh in the OBJ file at path.
func loadMesh(path string) (*shade.Mesh, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fi, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	key := meshKey{path: abs, size: fi.Size(), modTime: fi.ModTime()}
	if m, ok := meshes.Get(key); ok {
		return m.Clone(), nil
	}
	m, err := obj.Load(abs)
	if err != nil {
		return nil, err
	}
	meshes.Put(key, m)
	return m.Clone(), nil
}

// NewRenderer returns a renderer sized and configured for the scene.
// It clears to the background color before every draw.
func (s *Scene) NewRenderer() (*tri.Renderer, error) {
	c := s.Config
	return tri.NewRenderer(c.Width, c.Height,
		tri.WithClearColor(c.Background.RGB()),
		tri.WithDrawMode(c.DrawMode()),
		tri.WithCullMode(c.CullMode()),
	)
}

// Model returns the model matrix of frame i: the configured rotation
// followed by the turntable angle for that frame.
func (s *Scene) Model(i int) mgl32.Mat4 {
	c := s.Config
	r := c.Model.Rotate
	base := mgl32.HomogRotate3DZ(mgl32.DegToRad(r[2])).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(r[1]))).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(r[0])))
	angle := float32(0)
	if c.Frames > 0 {
		angle = c.Turntable * float32(i) / float32(c.Frames)
	}
	return mgl32.HomogRotate3DY(mgl32.DegToRad(angle)).Mul4(base)
}

// Draw renders frame i into r. The aspect ratio follows the renderer,
// which may have been resized since NewRenderer.
func (s *Scene) Draw(r *tri.Renderer, i int) (*tri.Framebuffer, error) {
	c := s.Config
	aspect := float32(r.Width()) / float32(r.Height())
	viewProj := c.CameraValue().ViewProjection(aspect)
	model := s.Model(i)
	v, idx := s.Mesh.Vertices, s.Mesh.Indices

	switch c.Shading {
	case "flat":
		color := tri.White
		if c.Model.Color != nil {
			color = c.Model.Color.RGB()
		}
		return tri.Draw(r, &shade.Flat{MVP: viewProj.Mul4(model), Color: color}, v, idx)
	case "gouraud":
		return tri.Draw(r, &shade.Gouraud{MVP: viewProj.Mul4(model)}, v, idx)
	case "lambert":
		return tri.Draw(r, shade.NewLambert(model, viewProj, *c.Light.Direction, *c.Light.Ambient), v, idx)
	}
	return nil, fmt.Errorf("%w: unknown shading %q", ErrInvalidConfig, c.Shading)
}
