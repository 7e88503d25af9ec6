package tri

import "testing"

// TestNewRendererDefault tests the configuration used when no options are given.
func TestNewRendererDefault(t *testing.T) {
	r, err := NewRenderer(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if r.LoadOp() != LoadKeep {
		t.Errorf("LoadOp() = %v, want keep", r.LoadOp())
	}
	if r.ClearColor() != Black {
		t.Errorf("ClearColor() = %v, want black", r.ClearColor())
	}
	if r.DrawMode() != DrawFill {
		t.Errorf("DrawMode() = %v, want fill", r.DrawMode())
	}
	if r.CullMode() != CullNone {
		t.Errorf("CullMode() = %v, want none", r.CullMode())
	}
	if r.Workers() != 1 {
		t.Errorf("Workers() = %d, want 1", r.Workers())
	}
}

// TestNewRendererOptions tests that options combine and later ones win.
func TestNewRendererOptions(t *testing.T) {
	r, err := NewRenderer(10, 10,
		WithClearColor(Red),
		WithDrawMode(DrawWireframe),
		WithCullMode(CullFront),
		WithCullMode(CullBack),
		WithClearColor(Green),
		WithWorkers(3),
	)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	if r.LoadOp() != LoadClear || r.ClearColor() != Green {
		t.Errorf("load = %v %v, want clear to green", r.LoadOp(), r.ClearColor())
	}
	if r.DrawMode() != DrawWireframe {
		t.Errorf("DrawMode() = %v, want wireframe", r.DrawMode())
	}
	if r.CullMode() != CullBack {
		t.Errorf("CullMode() = %v, want back", r.CullMode())
	}
	if r.Workers() != 3 {
		t.Errorf("Workers() = %d, want 3", r.Workers())
	}
	if got := r.Framebuffer().RGBAt(5, 5); got != Green {
		t.Errorf("initial pixel = %v, want green", got)
	}
}

// TestWithWorkersSingle tests that one worker does not start a pool.
func TestWithWorkersSingle(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		r, err := NewRenderer(4, 4, WithWorkers(n))
		if err != nil {
			t.Fatal(err)
		}
		if r.pool != nil {
			t.Errorf("WithWorkers(%d) started a pool", n)
		}
		r.Close()
	}
}
