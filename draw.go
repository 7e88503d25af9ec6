package tri

import (
	"fmt"
	"time"
)

// Draw rasterizes the indexed triangle list into the renderer's
// framebuffer and returns it.
//
// Every consecutive triple in indices is one triangle. The vertex stage of
// s runs exactly once per element of vertices, before any triangle is
// rasterized; its outputs are cached for the rest of the call.
//
// Draw fails with an error wrapping ErrInvalidInput when s is nil, when
// len(indices) is not a multiple of three, or when an index is out of
// range. Validation happens before anything else, so a failed call leaves
// the framebuffer untouched and does not invoke the shader.
//
// Triangles with zero screen-space area, or with a vertex at w = 0, are
// skipped silently and counted in [Stats].Degenerate.
func Draw[In any, Out Varying[Out]](r *Renderer, s Shader[In, Out], vertices []In, indices []uint32) (*Framebuffer, error) {
	if err := validate(s != nil, len(vertices), indices); err != nil {
		Logger().Warn("tri: draw rejected", "err", err)
		return nil, err
	}

	start := time.Now()
	fb := r.fb
	stats := Stats{
		Vertices:  len(vertices),
		Triangles: len(indices) / 3,
	}

	// Vertex stage.
	screen := r.screenScratch(len(vertices))
	outs := varyingScratch[Out](r, len(vertices))
	for i := range vertices {
		pos, out := s.Vertex(&vertices[i])
		screen[i] = project(pos, fb.width, fb.height)
		outs[i] = out
	}

	if r.opts.load == LoadClear {
		fb.Fill(r.opts.clearColor)
	}

	for t := 0; t < len(indices); t += 3 {
		i0, i1, i2 := indices[t], indices[t+1], indices[t+2]

		setup, res := setupTriangle(screen[i0], screen[i1], screen[i2], fb.width, fb.height, r.opts.cullMode)
		switch res {
		case setupDegenerate:
			stats.Degenerate++
			continue
		case setupCulled:
			stats.Culled++
			continue
		}

		corners := [3]Out{outs[i0], outs[i1], outs[i2]}
		if r.opts.drawMode == DrawWireframe {
			stats.Fragments += wireframeTriangle(fb, &setup, s, &corners)
		} else {
			stats.Fragments += fillTriangle(fb, &setup, s, &corners, r.pool)
		}
	}

	// Drop references held by the varyings until the next call.
	clear(outs)

	stats.Duration = time.Since(start)
	r.stats = stats
	Logger().Debug("tri: draw",
		"vertices", stats.Vertices,
		"triangles", stats.Triangles,
		"degenerate", stats.Degenerate,
		"culled", stats.Culled,
		"fragments", stats.Fragments,
		"mode", r.opts.drawMode,
		"duration", stats.Duration,
	)
	return fb, nil
}

// validate checks the draw call preconditions.
func validate(haveShader bool, vertexCount int, indices []uint32) error {
	if !haveShader {
		return fmt.Errorf("%w: nil shader", ErrInvalidInput)
	}
	if len(indices)%3 != 0 {
		return fmt.Errorf("%w: index count %d is not a multiple of 3", ErrInvalidInput, len(indices))
	}
	for i, idx := range indices {
		if uint64(idx) >= uint64(vertexCount) {
			return fmt.Errorf("%w: index %d at position %d out of range for %d vertices",
				ErrInvalidInput, idx, i, vertexCount)
		}
	}
	return nil
}
