// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package present shows rendered framebuffers to a user.
//
// [Terminal] draws into a truecolor terminal using upper-half-block cells,
// two framebuffer rows per text row. The window presenter lives in the
// window subpackage so that terminal-only programs do not link a
// graphics toolkit.
package present

import (
	"errors"
	"time"

	"github.com/gogpu/tri"
)

// ErrClosed is returned when a presenter is used after Close.
var ErrClosed = errors.New("present: closed")

// Frame describes the frame a presenter asks for.
type Frame struct {
	// Index counts frames from zero.
	Index int
	// Elapsed is the time since the presenter started running.
	Elapsed time.Duration
	// Width and Height are the pixel size the presenter can display.
	Width, Height int
}

// FrameFunc renders one frame. Returning an error stops the presenter,
// which then returns that error.
type FrameFunc func(f Frame) (*tri.Framebuffer, error)
