package tri

// Option configures a Renderer during creation.
//
// Example:
//
//	// Layer over previous frames (default)
//	r, _ := tri.NewRenderer(800, 600)
//
//	// Clear to dark gray before every draw, wireframe, back-face culling
//	r, _ := tri.NewRenderer(800, 600,
//	    tri.WithClearColor(tri.RGB{95, 95, 95}),
//	    tri.WithDrawMode(tri.DrawWireframe),
//	    tri.WithCullMode(tri.CullBack),
//	)
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	load       LoadOp
	clearColor RGB
	drawMode   DrawMode
	cullMode   CullMode
	workers    int
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		load:       LoadKeep,
		clearColor: Black,
		drawMode:   DrawFill,
		cullMode:   CullNone,
	}
}

// WithClearColor makes every Draw clear the framebuffer to c before
// rasterizing. The initial framebuffer contents are c as well.
func WithClearColor(c RGB) Option {
	return func(o *options) {
		o.load = LoadClear
		o.clearColor = c
	}
}

// WithDrawMode selects filled or wireframe rendering.
func WithDrawMode(m DrawMode) Option {
	return func(o *options) {
		o.drawMode = m
	}
}

// WithCullMode selects which triangle windings are discarded.
func WithCullMode(m CullMode) Option {
	return func(o *options) {
		o.cullMode = m
	}
}

// WithWorkers splits the rows of large triangles across n goroutines.
// Values below 2 keep rasterization on the calling goroutine, which is the
// default. Shaders must be safe to call concurrently when n > 1. Release
// the workers with Renderer.Close.
//
// Output is identical to the single-threaded path: each triangle is
// finished before the next one starts, so submission order is preserved.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// LoadOp controls what happens to existing framebuffer contents at the
// start of a draw call.
type LoadOp int

const (
	// LoadKeep draws over whatever the framebuffer already holds.
	LoadKeep LoadOp = iota
	// LoadClear fills the framebuffer with the clear color first.
	LoadClear
)

// String returns the name of the load operation.
func (op LoadOp) String() string {
	switch op {
	case LoadKeep:
		return "keep"
	case LoadClear:
		return "clear"
	default:
		return "unknown"
	}
}

// DrawMode selects how triangles are rasterized.
type DrawMode int

const (
	// DrawFill shades every pixel covered by a triangle.
	DrawFill DrawMode = iota
	// DrawWireframe shades only the three edges of each triangle.
	DrawWireframe
)

// String returns the name of the draw mode.
func (m DrawMode) String() string {
	switch m {
	case DrawFill:
		return "fill"
	case DrawWireframe:
		return "wireframe"
	default:
		return "unknown"
	}
}

// CullMode selects which triangles are discarded by winding.
// A triangle is front-facing when its vertices are counter-clockwise in
// normalized device coordinates (clockwise on screen).
type CullMode int

const (
	// CullNone draws both windings.
	CullNone CullMode = iota
	// CullBack discards clockwise (back-facing) triangles.
	CullBack
	// CullFront discards counter-clockwise (front-facing) triangles.
	CullFront
)

// String returns the name of the cull mode.
func (m CullMode) String() string {
	switch m {
	case CullNone:
		return "none"
	case CullBack:
		return "back"
	case CullFront:
		return "front"
	default:
		return "unknown"
	}
}
