// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package window presents framebuffers in a desktop window.
package window

import (
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/tri"
	"github.com/gogpu/tri/present"
)

// Config describes the window.
type Config struct {
	Title string
	// Width and Height are the initial framebuffer size in pixels.
	Width, Height int
	// Scale multiplies the window size relative to the framebuffer.
	Scale int
	// Resizable lets the user resize the window; frames then follow the
	// window size divided by Scale.
	Resizable bool
	// TPS is the number of frames rendered per second.
	TPS int
}

func (c *Config) normalize() {
	if c.Title == "" {
		c.Title = "tri"
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
}

// Run opens a window and shows the framebuffers returned by next until
// the window is closed, Escape is pressed, or next fails. It blocks and
// must be called from the main goroutine.
func Run(cfg Config, next present.FrameFunc) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.New("window: size must be positive")
	}
	cfg.normalize()

	g := &game{
		next:   next,
		width:  cfg.Width,
		height: cfg.Height,
		scale:  cfg.Scale,
		start:  time.Now(),
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(cfg.TPS)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

type game struct {
	next          present.FrameFunc
	width, height int
	scale         int
	start         time.Time
	index         int

	img *ebiten.Image
	pix []byte
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	fb, err := g.next(present.Frame{
		Index:   g.index,
		Elapsed: time.Since(g.start),
		Width:   g.width,
		Height:  g.height,
	})
	if err != nil {
		return err
	}
	g.index++
	g.upload(fb)
	return nil
}

// upload copies fb into the texture shown by Draw.
func (g *game) upload(fb *tri.Framebuffer) {
	if fb == nil {
		return
	}
	w, h := fb.Width(), fb.Height()
	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(w, h)
		g.pix = make([]byte, 4*w*h)
	}
	for i, c := range fb.Pix() {
		j := 4 * i
		g.pix[j+0] = c.R
		g.pix[j+1] = c.G
		g.pix[j+2] = c.B
		g.pix[j+3] = 0xff
	}
	g.img.WritePixels(g.pix)
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	iw, ih := g.img.Bounds().Dx(), g.img.Bounds().Dy()
	if iw != sw || ih != sh {
		op.GeoM.Scale(float64(sw)/float64(iw), float64(sh)/float64(ih))
	}
	screen.DrawImage(g.img, op)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := outsideWidth/g.scale, outsideHeight/g.scale
	if w > 0 && h > 0 {
		g.width, g.height = w, h
	}
	return g.width, g.height
}
