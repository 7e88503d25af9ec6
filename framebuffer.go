package tri

import (
	"fmt"
	"image"
	"image/color"
)

// Framebuffer is a fixed-size grid of RGB pixels stored row-major with the
// origin at the top-left corner.
type Framebuffer struct {
	width  int
	height int
	pix    []RGB
}

// NewFramebuffer creates a black framebuffer of the given size.
// It returns an error wrapping ErrInvalidConfiguration if either dimension
// is not positive.
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: framebuffer size %dx%d", ErrInvalidConfiguration, width, height)
	}
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]RGB, width*height),
	}, nil
}

// Width returns the width of the framebuffer in pixels.
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the height of the framebuffer in pixels.
func (f *Framebuffer) Height() int {
	return f.height
}

// Pix returns the pixels in row-major order. The slice aliases the
// framebuffer; pixel (x, y) is at index y*Width()+x.
func (f *Framebuffer) Pix() []RGB {
	return f.pix
}

// Set stores c at (x, y). Out-of-bounds coordinates are ignored.
func (f *Framebuffer) Set(x, y int, c RGB) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.pix[y*f.width+x] = c
}

// RGBAt returns the pixel at (x, y), or black if out of bounds.
func (f *Framebuffer) RGBAt(x, y int) RGB {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Black
	}
	return f.pix[y*f.width+x]
}

// Fill sets every pixel to c.
func (f *Framebuffer) Fill(c RGB) {
	for i := range f.pix {
		f.pix[i] = c
	}
}

// Clone returns a deep copy of the framebuffer.
func (f *Framebuffer) Clone() *Framebuffer {
	pix := make([]RGB, len(f.pix))
	copy(pix, f.pix)
	return &Framebuffer{width: f.width, height: f.height, pix: pix}
}

// Equal reports whether f and g have the same size and pixels.
func (f *Framebuffer) Equal(g *Framebuffer) bool {
	if f.width != g.width || f.height != g.height {
		return false
	}
	for i, c := range f.pix {
		if g.pix[i] != c {
			return false
		}
	}
	return true
}

// resize changes the dimensions, keeping the overlapping region and
// filling new pixels with bg.
func (f *Framebuffer) resize(width, height int, bg RGB) {
	if width == f.width && height == f.height {
		return
	}
	pix := make([]RGB, width*height)
	for y := range height {
		row := pix[y*width : (y+1)*width]
		n := 0
		if y < f.height {
			n = copy(row, f.pix[y*f.width:y*f.width+min(f.width, width)])
		}
		for x := n; x < width; x++ {
			row[x] = bg
		}
	}
	f.width, f.height, f.pix = width, height, pix
}

// ToImage converts the framebuffer to an opaque image.RGBA.
func (f *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for i, c := range f.pix {
		j := i * 4
		img.Pix[j+0] = c.R
		img.Pix[j+1] = c.G
		img.Pix[j+2] = c.B
		img.Pix[j+3] = 0xff
	}
	return img
}

// At implements the image.Image interface.
func (f *Framebuffer) At(x, y int) color.Color {
	return f.RGBAt(x, y)
}

// Bounds implements the image.Image interface.
func (f *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// ColorModel implements the image.Image interface.
func (f *Framebuffer) ColorModel() color.Model {
	return color.RGBAModel
}
