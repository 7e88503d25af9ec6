// Command trirender renders a YAML scene with the tri software rasterizer.
//
// Usage:
//
//	trirender [flags] [scene.yaml]
//
// Without a scene file a lit cube is rendered. The result is written to
// the scene's output path, or shown live with -present terminal or
// -present window.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/gogpu/tri"
	"github.com/gogpu/tri/present"
	"github.com/gogpu/tri/present/window"
	"github.com/gogpu/tri/scene"
)

type options struct {
	output  string
	width   int
	height  int
	frames  int
	present string
	fps     int
	verbose bool
	init    string
}

// totals accumulates draw statistics over all frames.
type totals struct {
	frames    int
	triangles int
	culled    int
	fragments int
	draw      time.Duration
}

func (t *totals) add(st tri.Stats) {
	t.frames++
	t.triangles += st.Triangles
	t.culled += st.Culled
	t.fragments += st.Fragments
	t.draw += st.Duration
}

func main() {
	var o options
	flag.StringVar(&o.output, "o", "", "output image path (overrides the scene)")
	flag.IntVar(&o.width, "width", 0, "framebuffer width (overrides the scene)")
	flag.IntVar(&o.height, "height", 0, "framebuffer height (overrides the scene)")
	flag.IntVar(&o.frames, "frames", 0, "number of turntable frames (overrides the scene)")
	flag.StringVar(&o.present, "present", "file", "where to show frames: file, terminal or window")
	flag.IntVar(&o.fps, "fps", 30, "frame rate for terminal and window presentation")
	flag.BoolVar(&o.verbose, "v", false, "log every draw call")
	flag.StringVar(&o.init, "init", "", "write a template scene to this path and exit")
	flag.Parse()

	if err := run(o, flag.Arg(0), os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "trirender: %v\n", err)
		os.Exit(1)
	}
}

// run renders the scene at path; logs go to stderr, the summary to stdout.
func run(o options, path string, stdout, stderr io.Writer) error {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	if o.present != "terminal" {
		// Log output would corrupt the terminal presenter.
		tri.SetLogger(logger)
	}

	if o.init != "" {
		if err := scene.WriteConfig(o.init, scene.Config{}); err != nil {
			return err
		}
		logger.Info("wrote template scene", "path", o.init)
		return nil
	}

	s, err := loadScene(o, path)
	if err != nil {
		return err
	}

	var sum totals
	start := time.Now()
	switch o.present {
	case "file":
		err = renderFiles(s, &sum, logger)
	case "terminal":
		err = renderTerminal(s, o.fps, &sum)
	case "window":
		err = renderWindow(s, o.fps, &sum)
	default:
		err = fmt.Errorf("unknown -present %q", o.present)
	}
	if err != nil {
		return err
	}

	printSummary(stdout, &sum, time.Since(start))
	return nil
}

func loadScene(o options, path string) (*scene.Scene, error) {
	cfg := &scene.Config{}
	dir := "."
	if path != "" {
		c, err := scene.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = c
		dir = filepath.Dir(path)
	}
	if o.output != "" {
		cfg.Output = o.output
	}
	if o.width > 0 {
		cfg.Width = o.width
	}
	if o.height > 0 {
		cfg.Height = o.height
	}
	if o.frames > 0 {
		cfg.Frames = o.frames
	}
	return scene.New(cfg, dir)
}

func renderFiles(s *scene.Scene, sum *totals, logger *slog.Logger) error {
	r, err := s.NewRenderer()
	if err != nil {
		return err
	}
	n := s.Config.Frames

	var bar *progressbar.ProgressBar
	if n > 1 {
		bar = progressbar.Default(int64(n), "rendering")
		defer bar.Close()
	}

	for i := range n {
		fb, err := s.Draw(r, i)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		sum.add(r.Stats())
		if err := fb.Save(s.Config.OutputPath(i)); err != nil {
			return err
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if n == 1 {
		logger.Info("wrote image", "path", s.Config.OutputPath(0))
	}
	return nil
}

// liveFrame returns a FrameFunc that follows the presenter's size and
// loops over the scene's turntable frames.
func liveFrame(s *scene.Scene, sum *totals) (present.FrameFunc, error) {
	r, err := s.NewRenderer()
	if err != nil {
		return nil, err
	}
	return func(f present.Frame) (*tri.Framebuffer, error) {
		if f.Width > 0 && f.Height > 0 && (f.Width != r.Width() || f.Height != r.Height()) {
			if err := r.Resize(f.Width, f.Height); err != nil {
				return nil, err
			}
		}
		fb, err := s.Draw(r, f.Index%s.Config.Frames)
		if err != nil {
			return nil, err
		}
		sum.add(r.Stats())
		return fb, nil
	}, nil
}

func renderTerminal(s *scene.Scene, fps int, sum *totals) error {
	next, err := liveFrame(s, sum)
	if err != nil {
		return err
	}
	term, err := present.NewTerminal()
	if err != nil {
		return err
	}
	defer term.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = term.Run(ctx, fps, next)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func renderWindow(s *scene.Scene, fps int, sum *totals) error {
	next, err := liveFrame(s, sum)
	if err != nil {
		return err
	}
	return window.Run(window.Config{
		Title:     "trirender",
		Width:     s.Config.Width,
		Height:    s.Config.Height,
		Resizable: true,
		TPS:       fps,
	}, next)
}
