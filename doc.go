// Package tri provides a CPU triangle rasterizer with programmable shaders.
//
// # Overview
//
// tri renders indexed triangle lists into an RGB framebuffer without a GPU.
// Geometry is processed by a caller-supplied [Shader]: its vertex stage
// projects each vertex to clip space and emits per-vertex attributes, its
// fragment stage receives those attributes interpolated for each covered
// pixel and returns a color.
//
// # Quick Start
//
//	import "github.com/gogpu/tri"
//
//	r, err := tri.NewRenderer(800, 600, tri.WithClearColor(tri.Black))
//	if err != nil {
//	    return err
//	}
//
//	fb, err := tri.Draw(r, shader, vertices, indices)
//	if err != nil {
//	    return err
//	}
//	err = fb.Save("out.png")
//
// # Varyings
//
// The attribute record produced by the vertex stage is any type T with a
// method
//
//	Combine(b, c T, wa, wb, wc float32) T
//
// (see [Varying]). The method is usually generated by cmd/trigen or
// delegated to interp.Struct; the rasterizer never looks inside T.
//
// # Pipeline
//
// For each draw call the renderer:
//   - runs the vertex stage once per vertex and caches its output
//   - divides by w and maps normalized device coordinates to pixels
//   - skips triangles with zero area or a vertex at w = 0
//   - walks the pixel-aligned bounding box of each triangle
//   - tests pixel centers against the three edge functions (top-left rule)
//   - corrects the barycentric weights for perspective and combines the
//     three varyings
//   - runs the fragment stage and stores the clamped color
//
// Triangles are drawn in submission order; later triangles overwrite earlier
// ones. There is no depth buffer and no near/far clipping.
//
// # Coordinate System
//
// Framebuffer coordinates use the usual image convention:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Normalized device coordinate (-1, 1) maps to the top-left corner and
// (1, -1) to the bottom-right corner.
//
// # Concurrency
//
// A [Renderer] is not safe for concurrent use. Draw calls are synchronous
// and run on the calling goroutine unless [WithWorkers] is given, in which
// case the rows of large triangles are shaded on a worker pool. Triangles
// are still completed one after another, so the result does not depend on
// the number of workers.
package tri

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
