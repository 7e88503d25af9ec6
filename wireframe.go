package tri

import "math"

// wireframeTriangle shades the three edges of t and returns the number of
// fragments produced. Pixels shared by two edges are shaded twice.
func wireframeTriangle[In any, Out Varying[Out]](fb *Framebuffer, t *triangleSetup, s Shader[In, Out], corners *[3]Out) int {
	if t.bounds.Empty() {
		return 0
	}
	n := 0
	for i := range 3 {
		j := (i + 1) % 3
		n += drawEdge(fb, &t.v[i], &t.v[j], corners[t.order[i]], corners[t.order[j]], s)
	}
	return n
}

// drawEdge walks the segment a→b one pixel step at a time along its major
// axis. Attributes are interpolated between the two endpoints with the
// same perspective correction as filled triangles, the third weight being
// zero.
func drawEdge[In any, Out Varying[Out]](fb *Framebuffer, a, b *screenVertex, oa, ob Out, s Shader[In, Out]) int {
	ax, ay := a.pos()
	bx, by := b.pos()
	dx, dy := bx-ax, by-ay

	// Skip segments entirely outside the framebuffer.
	if max(ax, bx) < 0 || min(ax, bx) >= float64(fb.width) ||
		max(ay, by) < 0 || min(ay, by) >= float64(fb.height) {
		return 0
	}

	t0, t1 := 0.0, 1.0
	if a.wide || b.wide {
		var ok bool
		if t0, t1, ok = clipSegment(ax, ay, dx, dy, float64(fb.width), float64(fb.height)); !ok {
			return 0
		}
	}

	steps := int(math.Ceil(max(math.Abs(dx), math.Abs(dy)) * (t1 - t0)))
	if steps == 0 {
		steps = 1
	}

	// Endpoints on an exact integer coordinate would floor onto the pixel
	// past the triangle's bounding box; keep them inside it.
	lastX := math.Ceil(max(ax, bx)) - 1
	lastY := math.Ceil(max(ay, by)) - 1

	n := 0
	for k := 0; k <= steps; k++ {
		t := t0 + (t1-t0)*float64(k)/float64(steps)
		x := int(min(math.Floor(ax+dx*t), lastX))
		y := int(min(math.Floor(ay+dy*t), lastY))
		if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
			continue
		}
		ca, cb, _, ok := perspective(1-t, t, 0, a.invW, b.invW, 0)
		if !ok {
			continue
		}
		attrs := oa.Combine(ob, oa, ca, cb, 0)
		fb.pix[y*fb.width+x] = ColorFromVec3(s.Fragment(attrs))
		n++
	}
	return n
}

// clipSegment returns the parameter range of the segment
// (ax, ay) + t·(dx, dy), t in [0, 1], that lies within one pixel of the
// width × height rectangle. ok is false if no part does.
func clipSegment(ax, ay, dx, dy, width, height float64) (t0, t1 float64, ok bool) {
	t0, t1 = 0, 1
	bounds := [4][2]float64{
		{-dx, ax + 1},
		{dx, width + 1 - ax},
		{-dy, ay + 1},
		{dy, height + 1 - ay},
	}
	for _, pq := range bounds {
		p, q := pq[0], pq[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, false
			}
			t1 = min(t1, r)
		}
	}
	return t0, t1, true
}
