package tri

import "github.com/go-gl/mathgl/mgl32"

// Varying is implemented by vertex shader outputs. Combine returns the
// weighted sum a*wa + b*wb + c*wc computed member-wise, where a is the
// receiver.
//
// Implementations must be linear: a.Combine(a, a, wa, wb, wc) == a whenever
// wa+wb+wc == 1, and permuting the (value, weight) pairs consistently must
// not change the result. Use cmd/trigen or interp.Struct to derive Combine
// for plain attribute structs.
type Varying[T any] interface {
	Combine(b, c T, wa, wb, wc float32) T
}

// Shader is a programmable vertex/fragment stage pair.
//
// Vertex is called exactly once per vertex per draw call and returns the
// clip-space position together with the attributes to interpolate.
// Fragment is called once per covered pixel with the perspective-correct
// interpolated attributes and returns a color with channels in [0, 255].
// Out-of-range channels are clamped.
//
// Both methods should be pure; the renderer may call them in any order.
type Shader[In any, Out Varying[Out]] interface {
	Vertex(v *In) (mgl32.Vec4, Out)
	Fragment(attrs Out) mgl32.Vec3
}

// ShaderFuncs adapts a pair of functions to the Shader interface.
type ShaderFuncs[In any, Out Varying[Out]] struct {
	VertexFunc   func(v *In) (mgl32.Vec4, Out)
	FragmentFunc func(attrs Out) mgl32.Vec3
}

// Vertex calls s.VertexFunc.
func (s ShaderFuncs[In, Out]) Vertex(v *In) (mgl32.Vec4, Out) {
	return s.VertexFunc(v)
}

// Fragment calls s.FragmentFunc.
func (s ShaderFuncs[In, Out]) Fragment(attrs Out) mgl32.Vec3 {
	return s.FragmentFunc(attrs)
}
