package tri

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/tri/interp"
)

// testVertex carries a clip-space position and a color attribute.
type testVertex struct {
	Pos   mgl32.Vec4
	Color mgl32.Vec3
}

// colorVarying interpolates a color.
type colorVarying struct {
	Color mgl32.Vec3
}

func (a colorVarying) Combine(b, c colorVarying, wa, wb, wc float32) colorVarying {
	return colorVarying{Color: interp.Vec3(a.Color, b.Color, c.Color, wa, wb, wc)}
}

// clipVarying carries the clip-space position itself plus one scalar.
// Perspective-correct interpolation of (x, y, w) reproduces the exact
// clip-space point of the pixel center.
type clipVarying struct {
	Clip mgl32.Vec4
	U    float32
}

func (a clipVarying) Combine(b, c clipVarying, wa, wb, wc float32) clipVarying {
	return interp.Struct(a, b, c, wa, wb, wc)
}

// screenToClip returns the clip-space position that lands on screen point
// (sx, sy) of a width × height framebuffer after dividing by w.
func screenToClip(sx, sy, w float32, width, height int) mgl32.Vec4 {
	x := sx/float32(width)*2 - 1
	y := 1 - sy/float32(height)*2
	return mgl32.Vec4{x * w, y * w, 0, w}
}

// clipToScreen is the inverse of screenToClip in float64.
func clipToScreen(p mgl32.Vec4, width, height int) (float64, float64) {
	x := float64(p[0]) / float64(p[3])
	y := float64(p[1]) / float64(p[3])
	return (x + 1) * 0.5 * float64(width), (1 - y) * 0.5 * float64(height)
}

// screenVerts builds test vertices at the given screen points with w = 1.
func screenVerts(width, height int, pts ...[2]float32) []testVertex {
	out := make([]testVertex, len(pts))
	for i, p := range pts {
		out[i] = testVertex{Pos: screenToClip(p[0], p[1], 1, width, height)}
	}
	return out
}

// quadVertices returns the four corners of the full NDC square.
func quadVertices() []testVertex {
	return []testVertex{
		{Pos: mgl32.Vec4{-1, 1, 0, 1}},  // top-left
		{Pos: mgl32.Vec4{1, 1, 0, 1}},   // top-right
		{Pos: mgl32.Vec4{1, -1, 0, 1}},  // bottom-right
		{Pos: mgl32.Vec4{-1, -1, 0, 1}}, // bottom-left
	}
}

// constantShader paints every fragment with c.
func constantShader(c RGB) Shader[testVertex, interp.Empty] {
	return ShaderFuncs[testVertex, interp.Empty]{
		VertexFunc: func(v *testVertex) (mgl32.Vec4, interp.Empty) {
			return v.Pos, interp.Empty{}
		},
		FragmentFunc: func(interp.Empty) mgl32.Vec3 {
			return c.Vec3()
		},
	}
}

// colorShader passes the vertex color through.
type colorShader struct {
	vertexCalls int
}

func (s *colorShader) Vertex(v *testVertex) (mgl32.Vec4, colorVarying) {
	s.vertexCalls++
	return v.Pos, colorVarying{Color: v.Color}
}

func (s *colorShader) Fragment(attrs colorVarying) mgl32.Vec3 {
	return attrs.Color
}

// coverageShader counts fragments per pixel. The pixel is recovered from
// the interpolated clip-space position.
type coverageShader struct {
	width, height int
	counts        []int
	outside       int
}

func newCoverageShader(width, height int) *coverageShader {
	return &coverageShader{width: width, height: height, counts: make([]int, width*height)}
}

func (s *coverageShader) Vertex(v *testVertex) (mgl32.Vec4, clipVarying) {
	return v.Pos, clipVarying{Clip: v.Pos}
}

func (s *coverageShader) Fragment(attrs clipVarying) mgl32.Vec3 {
	sx, sy := clipToScreen(attrs.Clip, s.width, s.height)
	x, y := int(sx), int(sy)
	if sx < 0 || sy < 0 || x >= s.width || y >= s.height {
		s.outside++
		return White.Vec3()
	}
	s.counts[y*s.width+x]++
	return White.Vec3()
}
