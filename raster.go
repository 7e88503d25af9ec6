package tri

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/tri/internal/fixed"
	"github.com/gogpu/tri/internal/parallel"
)

// screenVertex is a vertex after perspective divide and viewport mapping.
// Positions inside the fixed-point range are snapped to x, y; positions
// beyond it are kept in fx, fy and flagged wide.
type screenVertex struct {
	x, y   fixed.Dot8
	fx, fy float64
	invW   float64
	ok     bool // false for w = 0 or non-finite positions
	wide   bool
}

// pos returns the pixel position of v in float64.
func (v *screenVertex) pos() (float64, float64) {
	if v.wide {
		return v.fx, v.fy
	}
	return v.x.Float64(), v.y.Float64()
}

// project maps a clip-space position to framebuffer pixel coordinates.
// NDC (-1, 1) lands on the top-left corner of the framebuffer.
func project(pos mgl32.Vec4, width, height int) screenVertex {
	w := float64(pos[3])
	if w == 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return screenVertex{}
	}
	invW := 1 / w
	sx := (float64(pos[0])*invW + 1) * 0.5 * float64(width)
	sy := (1 - float64(pos[1])*invW) * 0.5 * float64(height)
	if !finite(sx) || !finite(sy) {
		return screenVertex{}
	}

	x, okX := fixed.FromFloat64(sx)
	y, okY := fixed.FromFloat64(sy)
	if !okX || !okY {
		return screenVertex{fx: sx, fy: sy, invW: invW, ok: true, wide: true}
	}
	return screenVertex{x: x, y: y, invW: invW, ok: true}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

type setupResult int

const (
	setupOK setupResult = iota
	setupDegenerate
	setupCulled
)

// triangleSetup is a triangle ready for rasterization: wound so that its
// doubled signed area is positive, with order mapping each slot back to the
// submitted corner. Wide triangles carry their area in square pixels in
// wideArea instead of area.
type triangleSetup struct {
	v        [3]screenVertex
	order    [3]int
	area     int64
	wideArea float64
	wide     bool
	bounds   image.Rectangle
}

// setupTriangle orients the triangle, applies culling and computes the
// clamped pixel bounding box.
func setupTriangle(a, b, c screenVertex, width, height int, cull CullMode) (triangleSetup, setupResult) {
	if !a.ok || !b.ok || !c.ok {
		return triangleSetup{}, setupDegenerate
	}
	if a.wide || b.wide || c.wide {
		return setupWideTriangle(a, b, c, width, height, cull)
	}

	area := orient(a, b, c)
	if area == 0 {
		return triangleSetup{}, setupDegenerate
	}
	// Positive area is clockwise on screen, counter-clockwise in NDC.
	if (cull == CullBack && area < 0) || (cull == CullFront && area > 0) {
		return triangleSetup{}, setupCulled
	}

	t := triangleSetup{
		v:     [3]screenVertex{a, b, c},
		order: [3]int{0, 1, 2},
		area:  area,
	}
	if area < 0 {
		t.v[1], t.v[2] = t.v[2], t.v[1]
		t.order[1], t.order[2] = 2, 1
		t.area = -area
	}

	minX := fixed.Min3(a.x, b.x, c.x).Floor()
	minY := fixed.Min3(a.y, b.y, c.y).Floor()
	maxX := fixed.Max3(a.x, b.x, c.x).Ceil()
	maxY := fixed.Max3(a.y, b.y, c.y).Ceil()
	t.bounds = image.Rect(minX, minY, maxX, maxY).Intersect(image.Rect(0, 0, width, height))

	return t, setupOK
}

// setupWideTriangle is setupTriangle for triangles with a vertex beyond
// the fixed-point range.
func setupWideTriangle(a, b, c screenVertex, width, height int, cull CullMode) (triangleSetup, setupResult) {
	ax, ay := a.pos()
	bx, by := b.pos()
	cx, cy := c.pos()

	area := (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
	if area == 0 || !finite(area) {
		return triangleSetup{}, setupDegenerate
	}
	if (cull == CullBack && area < 0) || (cull == CullFront && area > 0) {
		return triangleSetup{}, setupCulled
	}

	t := triangleSetup{
		v:        [3]screenVertex{a, b, c},
		order:    [3]int{0, 1, 2},
		wideArea: area,
		wide:     true,
	}
	if area < 0 {
		t.v[1], t.v[2] = t.v[2], t.v[1]
		t.order[1], t.order[2] = 2, 1
		t.wideArea = -area
	}

	// Clamp in float64 first; the raw extents may not fit an int.
	clampTo := func(v float64, hi int) int {
		return int(max(0, min(v, float64(hi))))
	}
	t.bounds = image.Rect(
		clampTo(math.Floor(min(ax, bx, cx)), width),
		clampTo(math.Floor(min(ay, by, cy)), height),
		clampTo(math.Ceil(max(ax, bx, cx)), width),
		clampTo(math.Ceil(max(ay, by, cy)), height),
	)
	return t, setupOK
}

// orient returns twice the signed area of triangle abc in 24.8 units
// squared, positive when abc is clockwise on screen.
func orient(a, b, c screenVertex) int64 {
	return int64(b.x-a.x)*int64(c.y-a.y) - int64(b.y-a.y)*int64(c.x-a.x)
}

// edgeFunc evaluates the edge function of a directed edge incrementally
// across the bounding box.
type edgeFunc struct {
	row   int64 // value at the start of the current row, bias included
	stepX int64
	stepY int64
	bias  int64
}

// newEdgeFunc sets up the edge a→b evaluated at pixel center (px, py).
//
// Pixels exactly on an edge belong to the triangle only if the edge is a
// top or left edge. With positive orientation that is an edge going up the
// screen, or a horizontal edge going right. Other edges get a bias of -1 so
// that a zero value fails the >= 0 test; values are integers, so the bias
// never excludes an interior pixel.
func newEdgeFunc(a, b screenVertex, px, py fixed.Dot8) edgeFunc {
	dx := int64(b.x - a.x)
	dy := int64(b.y - a.y)

	var bias int64
	if !(dy < 0 || (dy == 0 && dx > 0)) {
		bias = -1
	}

	return edgeFunc{
		row:   dx*int64(py-a.y) - dy*int64(px-a.x) + bias,
		stepX: -dy * int64(fixed.One),
		stepY: dx * int64(fixed.One),
		bias:  bias,
	}
}

// Row bands smaller than this are not worth a goroutine hand-off.
const minBandRows = 16

// advance returns the edge function moved down by rows pixel rows.
func (e edgeFunc) advance(rows int) edgeFunc {
	e.row += int64(rows) * e.stepY
	return e
}

// fillTriangle shades every pixel of t whose center is covered and returns
// the number of fragments produced. With a pool, tall triangles are split
// into row bands that are shaded concurrently; bands never share a pixel.
func fillTriangle[In any, Out Varying[Out]](fb *Framebuffer, t *triangleSetup, s Shader[In, Out], corners *[3]Out, pool *parallel.Pool) int {
	b := t.bounds
	if b.Empty() {
		return 0
	}

	var (
		edges [3]edgeFunc
		wide  [3]wideEdge
	)
	if t.wide {
		wide = [3]wideEdge{newWideEdge(&t.v[1], &t.v[2]), newWideEdge(&t.v[2], &t.v[0]), newWideEdge(&t.v[0], &t.v[1])}
	} else {
		px, py := fixed.Center(b.Min.X), fixed.Center(b.Min.Y)
		edges = [3]edgeFunc{
			newEdgeFunc(t.v[1], t.v[2], px, py), // opposite v0
			newEdgeFunc(t.v[2], t.v[0], px, py), // opposite v1
			newEdgeFunc(t.v[0], t.v[1], px, py), // opposite v2
		}
	}
	band := func(y0, y1 int) int {
		if t.wide {
			return fillRowsWide(fb, t, s, corners, &wide, y0, y1)
		}
		skip := y0 - b.Min.Y
		return fillRows(fb, t, s, corners, [3]edgeFunc{edges[0].advance(skip), edges[1].advance(skip), edges[2].advance(skip)}, y0, y1)
	}

	rows := b.Dy()
	bands := 1
	if pool != nil {
		bands = min(pool.Workers()*2, rows/minBandRows)
	}
	if bands <= 1 {
		return band(b.Min.Y, b.Max.Y)
	}

	counts := make([]int, bands)
	pool.Run(bands, func(i int) {
		counts[i] = band(b.Min.Y+rows*i/bands, b.Min.Y+rows*(i+1)/bands)
	})
	fragments := 0
	for _, n := range counts {
		fragments += n
	}
	return fragments
}

// fillRows rasterizes rows [y0, y1) of t's bounding box. edges hold the
// edge functions at the first pixel of row y0.
func fillRows[In any, Out Varying[Out]](fb *Framebuffer, t *triangleSetup, s Shader[In, Out], corners *[3]Out, edges [3]edgeFunc, y0, y1 int) int {
	b := t.bounds
	v0, v1, v2 := &t.v[0], &t.v[1], &t.v[2]
	a0, a1, a2 := corners[t.order[0]], corners[t.order[1]], corners[t.order[2]]
	e0, e1, e2 := edges[0], edges[1], edges[2]

	invArea := 1 / float64(t.area)
	fragments := 0

	for y := y0; y < y1; y++ {
		w0, w1, w2 := e0.row, e1.row, e2.row
		row := fb.pix[y*fb.width : (y+1)*fb.width]

		for x := b.Min.X; x < b.Max.X; x++ {
			// Sign bit of the OR is set iff any edge value is negative.
			if w0|w1|w2 >= 0 {
				l0 := float64(w0-e0.bias) * invArea
				l1 := float64(w1-e1.bias) * invArea
				l2 := float64(w2-e2.bias) * invArea

				if c0, c1, c2, ok := perspective(l0, l1, l2, v0.invW, v1.invW, v2.invW); ok {
					attrs := a0.Combine(a1, a2, c0, c1, c2)
					row[x] = ColorFromVec3(s.Fragment(attrs))
					fragments++
				}
			}
			w0 += e0.stepX
			w1 += e1.stepX
			w2 += e2.stepX
		}

		e0.row += e0.stepY
		e1.row += e1.stepY
		e2.row += e2.stepY
	}

	return fragments
}

// wideEdge evaluates an edge function directly at each pixel center, for
// triangles that do not fit the fixed-point range. An edge whose endpoints
// both fit is still evaluated exactly in 24.8, so it splits pixels the same
// way as edgeFunc does for a neighboring triangle.
type wideEdge struct {
	exact          bool
	ax, ay, dx, dy int64
	fax, fay       float64
	fdx, fdy       float64
	topLeft        bool
}

func newWideEdge(a, b *screenVertex) wideEdge {
	if !a.wide && !b.wide {
		e := wideEdge{exact: true, ax: int64(a.x), ay: int64(a.y), dx: int64(b.x - a.x), dy: int64(b.y - a.y)}
		e.topLeft = e.dy < 0 || (e.dy == 0 && e.dx > 0)
		return e
	}
	ax, ay := a.pos()
	bx, by := b.pos()
	e := wideEdge{fax: ax, fay: ay, fdx: bx - ax, fdy: by - ay}
	e.topLeft = e.fdy < 0 || (e.fdy == 0 && e.fdx > 0)
	return e
}

// at returns the edge function at the center of pixel (x, y) in square
// pixels and whether the center is inside the edge.
func (e *wideEdge) at(x, y int) (float64, bool) {
	if e.exact {
		v := e.dx*(int64(fixed.Center(y))-e.ay) - e.dy*(int64(fixed.Center(x))-e.ax)
		return float64(v) / float64(fixed.One*fixed.One), v > 0 || (v == 0 && e.topLeft)
	}
	v := e.fdx*(float64(y)+0.5-e.fay) - e.fdy*(float64(x)+0.5-e.fax)
	return v, v > 0 || (v == 0 && e.topLeft)
}

// fillRowsWide rasterizes rows [y0, y1) of a wide triangle.
func fillRowsWide[In any, Out Varying[Out]](fb *Framebuffer, t *triangleSetup, s Shader[In, Out], corners *[3]Out, edges *[3]wideEdge, y0, y1 int) int {
	b := t.bounds
	a0, a1, a2 := corners[t.order[0]], corners[t.order[1]], corners[t.order[2]]
	invArea := 1 / t.wideArea
	fragments := 0

	for y := y0; y < y1; y++ {
		row := fb.pix[y*fb.width : (y+1)*fb.width]
		for x := b.Min.X; x < b.Max.X; x++ {
			w0, in0 := edges[0].at(x, y)
			w1, in1 := edges[1].at(x, y)
			w2, in2 := edges[2].at(x, y)
			if !in0 || !in1 || !in2 {
				continue
			}
			c0, c1, c2, ok := perspective(w0*invArea, w1*invArea, w2*invArea, t.v[0].invW, t.v[1].invW, t.v[2].invW)
			if !ok {
				continue
			}
			row[x] = ColorFromVec3(s.Fragment(a0.Combine(a1, a2, c0, c1, c2)))
			fragments++
		}
	}
	return fragments
}

// perspective converts screen-space barycentric weights into weights that
// interpolate linearly in clip space:
//
//	c_i = (l_i / w_i) / Σ_j (l_j / w_j)
//
// ok is false if the denominator vanishes or is not finite.
func perspective(l0, l1, l2, invW0, invW1, invW2 float64) (c0, c1, c2 float32, ok bool) {
	p0 := l0 * invW0
	p1 := l1 * invW1
	p2 := l2 * invW2
	sum := p0 + p1 + p2
	if sum == 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return 0, 0, 0, false
	}
	inv := 1 / sum
	return float32(p0 * inv), float32(p1 * inv), float32(p2 * inv), true
}
