package tri

import (
	"fmt"
	"time"

	"github.com/gogpu/tri/internal/parallel"
)

// Renderer owns a framebuffer and the per-draw scratch state of the
// rasterizer. Draw into it with the package-level [Draw] function.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	fb   *Framebuffer
	opts options

	// screen caches projected vertices for the current draw call.
	screen []screenVertex

	// varyings holds the []Out cache of the last draw call so that a
	// renderer reused with the same shader type does not reallocate.
	varyings any

	// pool is nil unless WithWorkers asked for more than one worker.
	pool *parallel.Pool

	stats Stats
}

// Stats describes the work done by the most recent draw call.
type Stats struct {
	// Vertices is the number of vertex shader invocations.
	Vertices int
	// Triangles is the number of index triples submitted.
	Triangles int
	// Degenerate counts triangles skipped for zero area, a vertex at w = 0
	// or a vertex outside the representable screen range.
	Degenerate int
	// Culled counts triangles discarded by the cull mode.
	Culled int
	// Fragments is the number of fragment shader invocations.
	Fragments int
	// Duration is the wall time spent in the draw call.
	Duration time.Duration
}

// NewRenderer creates a renderer with a width × height framebuffer filled
// with the clear color (black unless WithClearColor is given).
//
// It returns an error wrapping ErrInvalidConfiguration if either dimension
// is not positive; no renderer is produced in that case.
func NewRenderer(width, height int, opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fb, err := NewFramebuffer(width, height)
	if err != nil {
		return nil, err
	}
	fb.Fill(o.clearColor)

	r := &Renderer{fb: fb, opts: o}
	if o.workers > 1 {
		r.pool = parallel.New(o.workers)
	}
	return r, nil
}

// Framebuffer returns the renderer's framebuffer. The returned value is
// owned by the renderer and changes with every draw call.
func (r *Renderer) Framebuffer() *Framebuffer {
	return r.fb
}

// Width returns the framebuffer width.
func (r *Renderer) Width() int {
	return r.fb.width
}

// Height returns the framebuffer height.
func (r *Renderer) Height() int {
	return r.fb.height
}

// Resize changes the framebuffer size. The overlapping region is kept and
// new pixels are set to the clear color. On error the renderer is unchanged.
func (r *Renderer) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: framebuffer size %dx%d", ErrInvalidConfiguration, width, height)
	}
	r.fb.resize(width, height, r.opts.clearColor)
	return nil
}

// Workers returns the number of goroutines used to fill large triangles.
func (r *Renderer) Workers() int {
	if r.pool == nil {
		return 1
	}
	return r.pool.Workers()
}

// Close stops the worker goroutines started by WithWorkers. The renderer
// stays usable and draws on the calling goroutine afterwards.
func (r *Renderer) Close() {
	if r.pool != nil {
		r.pool.Close()
		r.pool = nil
	}
}

// Clear fills the framebuffer with the clear color.
func (r *Renderer) Clear() {
	r.fb.Fill(r.opts.clearColor)
}

// ClearColor returns the color used by Clear and LoadClear.
func (r *Renderer) ClearColor() RGB {
	return r.opts.clearColor
}

// SetClearColor sets the color used by Clear and LoadClear.
// It does not change the load operation.
func (r *Renderer) SetClearColor(c RGB) {
	r.opts.clearColor = c
}

// LoadOp returns what Draw does with existing contents.
func (r *Renderer) LoadOp() LoadOp {
	return r.opts.load
}

// SetLoadOp sets what Draw does with existing contents.
func (r *Renderer) SetLoadOp(op LoadOp) {
	r.opts.load = op
}

// DrawMode returns the current draw mode.
func (r *Renderer) DrawMode() DrawMode {
	return r.opts.drawMode
}

// SetDrawMode selects filled or wireframe rendering.
func (r *Renderer) SetDrawMode(m DrawMode) {
	r.opts.drawMode = m
}

// CullMode returns the current cull mode.
func (r *Renderer) CullMode() CullMode {
	return r.opts.cullMode
}

// SetCullMode selects which triangle windings are discarded.
func (r *Renderer) SetCullMode(m CullMode) {
	r.opts.cullMode = m
}

// Stats returns counters for the most recent successful draw call.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// screenScratch returns a reusable slice of n screen vertices.
func (r *Renderer) screenScratch(n int) []screenVertex {
	if cap(r.screen) < n {
		r.screen = make([]screenVertex, n)
	}
	return r.screen[:n]
}

// varyingScratch returns a reusable slice of n varyings of type Out.
func varyingScratch[Out any](r *Renderer, n int) []Out {
	if s, ok := r.varyings.([]Out); ok && cap(s) >= n {
		return s[:n]
	}
	s := make([]Out, n)
	r.varyings = s
	return s
}
