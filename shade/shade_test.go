// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shade

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/tri"
)

func near(a, b, eps float32) bool {
	d := a - b
	return d <= eps && d >= -eps
}

func TestFlatDrawsSolidColor(t *testing.T) {
	r, err := tri.NewRenderer(32, 32)
	if err != nil {
		t.Fatal(err)
	}
	m := Quad()
	s := &Flat{MVP: mgl32.Scale3D(2, 2, 1), Color: tri.RGB{R: 10, G: 20, B: 30}}

	fb, err := tri.Draw(r, s, m.Vertices, m.Indices)
	if err != nil {
		t.Fatalf("Draw() = %v", err)
	}
	for i, c := range fb.Pix() {
		if c != s.Color {
			t.Fatalf("pixel %d = %v, want %v", i, c, s.Color)
		}
	}
}

func TestGouraudCentroid(t *testing.T) {
	r, err := tri.NewRenderer(90, 90)
	if err != nil {
		t.Fatal(err)
	}
	m := Triangle()
	fb, err := tri.Draw(r, &Gouraud{MVP: mgl32.Ident4()}, m.Vertices, m.Indices)
	if err != nil {
		t.Fatalf("Draw() = %v", err)
	}

	// The centroid (0, -1/6) lands on pixel (44, 52).
	got := fb.RGBAt(44, 52)
	for i, ch := range []uint8{got.R, got.G, got.B} {
		if ch < 80 || ch > 90 {
			t.Errorf("centroid channel %d = %d, want about 85", i, ch)
		}
	}

	// Near a corner the corner's color dominates.
	if c := fb.RGBAt(23, 66); c.R < 200 {
		t.Errorf("pixel near red corner = %v, want mostly red", c)
	}
}

func TestLambert(t *testing.T) {
	tests := []struct {
		name    string
		light   mgl32.Vec3
		ambient float32
		want    uint8
	}{
		{"facing", mgl32.Vec3{0, 0, -1}, 0.2, 255},
		{"behind", mgl32.Vec3{0, 0, 1}, 0.2, 51},
		{"grazing", mgl32.Vec3{1, 0, 0}, 0.6, 153},
		{"no light", mgl32.Vec3{}, 0.4, 102},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := tri.NewRenderer(16, 16)
			if err != nil {
				t.Fatal(err)
			}
			m := Quad()
			s := NewLambert(mgl32.Scale3D(2, 2, 2), mgl32.Ident4(), tt.light, tt.ambient)
			fb, err := tri.Draw(r, s, m.Vertices, m.Indices)
			if err != nil {
				t.Fatalf("Draw() = %v", err)
			}
			got := fb.RGBAt(8, 8)
			want := tri.RGB{R: tt.want, G: tt.want, B: tt.want}
			if got != want {
				t.Errorf("pixel = %v, want %v", got, want)
			}
		})
	}
}

// A rotated model must light its normals in world space.
func TestLambertRotatedNormal(t *testing.T) {
	model := mgl32.HomogRotate3DY(mgl32.DegToRad(90))
	s := NewLambert(model, mgl32.Ident4(), mgl32.Vec3{-1, 0, 0}, 0)
	_, out := s.Vertex(&Vertex{Normal: mgl32.Vec3{0, 0, 1}, Color: mgl32.Vec3{1, 1, 1}})
	if !out.Normal.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Errorf("world normal = %v, want (1, 0, 0)", out.Normal)
	}
	c := s.Fragment(out)
	if !near(c[0], 255, 1e-3) {
		t.Errorf("Fragment() = %v, want full intensity", c)
	}
}

func TestLambertZeroNormal(t *testing.T) {
	s := NewLambert(mgl32.Ident4(), mgl32.Ident4(), mgl32.Vec3{0, 0, -1}, 0.5)
	c := s.Fragment(LitVarying{Color: mgl32.Vec3{1, 1, 1}})
	if !near(c[0], 127.5, 1e-3) {
		t.Errorf("Fragment(zero normal) = %v, want ambient only", c)
	}
}

func TestVaryingsCombine(t *testing.T) {
	a := LitVarying{Normal: mgl32.Vec3{1, 0, 0}, Color: mgl32.Vec3{1, 0, 0}}
	b := LitVarying{Normal: mgl32.Vec3{0, 1, 0}, Color: mgl32.Vec3{0, 1, 0}}
	c := LitVarying{Normal: mgl32.Vec3{0, 0, 1}, Color: mgl32.Vec3{0, 0, 1}}

	got := a.Combine(b, c, 0.5, 0.25, 0.25)
	want := mgl32.Vec3{0.5, 0.25, 0.25}
	if got.Normal != want || got.Color != want {
		t.Errorf("Combine() = %+v, want both %v", got, want)
	}
	if id := a.Combine(a, a, 0.2, 0.3, 0.5); !id.Color.ApproxEqual(a.Color) {
		t.Errorf("Combine(a, a) = %+v, want %+v", id, a)
	}

	cv := ColorVarying{Color: mgl32.Vec3{1, 2, 3}}
	if got := cv.Combine(ColorVarying{}, ColorVarying{}, 0.5, 0.25, 0.25); got.Color != (mgl32.Vec3{0.5, 1, 1.5}) {
		t.Errorf("ColorVarying.Combine() = %v", got.Color)
	}
}

func TestCameraTargetAtCenter(t *testing.T) {
	cam := DefaultCamera()
	cam.Eye = mgl32.Vec3{2, 3, 4}
	cam.Target = mgl32.Vec3{0.5, 0, -1}
	p := cam.ViewProjection(16.0 / 9).Mul4x1(cam.Target.Vec4(1))
	if p[3] <= 0 {
		t.Fatalf("w = %v, want positive", p[3])
	}
	if !near(p[0]/p[3], 0, 1e-5) || !near(p[1]/p[3], 0, 1e-5) {
		t.Errorf("target projects to (%v, %v), want (0, 0)", p[0]/p[3], p[1]/p[3])
	}
}

func TestCubeCullsBackFaces(t *testing.T) {
	r, err := tri.NewRenderer(64, 64, tri.WithCullMode(tri.CullBack))
	if err != nil {
		t.Fatal(err)
	}
	m := Cube()
	s := &Flat{MVP: DefaultCamera().ViewProjection(1), Color: tri.White}
	if _, err := tri.Draw(r, s, m.Vertices, m.Indices); err != nil {
		t.Fatalf("Draw() = %v", err)
	}
	st := r.Stats()
	if st.Culled != 10 || st.Degenerate != 0 {
		t.Errorf("Stats() = %+v, want 10 culled, 0 degenerate", st)
	}
	if got := r.Framebuffer().RGBAt(32, 32); got != tri.White {
		t.Errorf("center = %v, want front face", got)
	}
}
