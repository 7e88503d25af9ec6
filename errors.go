package tri

import "errors"

var (
	// ErrInvalidConfiguration is returned when a renderer or framebuffer is
	// created or resized with a non-positive width or height.
	ErrInvalidConfiguration = errors.New("tri: invalid configuration")

	// ErrInvalidInput is returned by Draw when the index buffer is malformed
	// or the shader is nil. The framebuffer is left untouched.
	ErrInvalidInput = errors.New("tri: invalid input")
)
