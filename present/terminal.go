// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package present

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/tri"
)

// halfBlock paints the upper half of a cell with the foreground color and
// the lower half with the background color.
const halfBlock = '▀'

// Terminal presents framebuffers on a tcell screen.
type Terminal struct {
	screen tcell.Screen
	smooth bool
	logger *slog.Logger
	closed bool
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithSmoothScaling resamples with Catmull-Rom instead of nearest-neighbor.
func WithSmoothScaling() TerminalOption {
	return func(t *Terminal) {
		t.smooth = true
	}
}

// WithLogger sets the logger used for resize and key events. The default
// is tri.Logger().
func WithLogger(l *slog.Logger) TerminalOption {
	return func(t *Terminal) {
		t.logger = l
	}
}

// NewTerminal opens the controlling terminal.
func NewTerminal(opts ...TerminalOption) (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalScreen(s, opts...)
}

// NewTerminalScreen wraps an existing screen and initializes it. The
// Terminal takes ownership; Close finalizes the screen.
func NewTerminalScreen(s tcell.Screen, opts ...TerminalOption) (*Terminal, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault)
	s.HideCursor()
	s.Clear()

	t := &Terminal{screen: s}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = tri.Logger()
	}
	return t, nil
}

// Screen returns the underlying tcell screen.
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// PixelSize returns the framebuffer size that maps one-to-one onto the
// screen: one pixel per column and two per row.
func (t *Terminal) PixelSize() (width, height int) {
	cols, rows := t.screen.Size()
	return cols, rows * 2
}

// Show scales fb to the screen and displays it.
func (t *Terminal) Show(fb *tri.Framebuffer) error {
	if t.closed {
		return ErrClosed
	}
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 || fb == nil {
		return nil
	}
	img := fb.Scale(cols, rows*2, t.smooth)
	for y := range rows {
		for x := range cols {
			top := img.RGBAAt(x, 2*y)
			bottom := img.RGBAAt(x, 2*y+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			t.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	t.screen.Show()
	return nil
}

// Run calls next at up to fps frames per second and shows each result
// until the user presses Esc, q or Ctrl-C, ctx is done, or next fails.
// The frame size follows the terminal size.
func (t *Terminal) Run(ctx context.Context, fps int, next FrameFunc) error {
	if t.closed {
		return ErrClosed
	}
	if fps <= 0 {
		fps = 30
	}

	events := make(chan tcell.Event, 16)
	stop := make(chan struct{})
	go func() {
		defer close(events)
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-stop:
				return
			}
		}
	}()
	defer func() {
		close(stop)
		// Wake the poller if it is blocked in PollEvent.
		_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	start := time.Now()
	index := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h := t.PixelSize()
				t.logger.Debug("present: terminal resized", "width", w, "height", h)
				t.screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEsc || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
			}
		case <-ticker.C:
			w, h := t.PixelSize()
			fb, err := next(Frame{Index: index, Elapsed: time.Since(start), Width: w, Height: h})
			if err != nil {
				return err
			}
			if err := t.Show(fb); err != nil {
				return err
			}
			index++
		}
	}
}

// Close restores the terminal. It is safe to call more than once.
func (t *Terminal) Close() {
	if t.closed {
		return
	}
	t.closed = true
	t.screen.Fini()
}
