// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package obj

import (
	"errors"
	"fmt"
)

// Sentinel errors for obj package.
var (
	// ErrIndexOutOfRange is returned when a face references a missing
	// position, texture coordinate or normal.
	ErrIndexOutOfRange = errors.New("obj: index out of range")

	// ErrTooManyVertices is returned when the mesh needs more vertices
	// than a uint32 index can address.
	ErrTooManyVertices = errors.New("obj: too many vertices")
)

// ParseError reports a malformed statement.
type ParseError struct {
	Line    int // 1-indexed
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("obj: line %d: %s: %v", e.Line, e.Message, e.Err)
	}
	return fmt.Sprintf("obj: line %d: %s", e.Line, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
