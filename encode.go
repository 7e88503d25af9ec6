package tri

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// Format selects the image encoding used by Encode.
type Format int

const (
	// FormatPNG encodes as PNG.
	FormatPNG Format = iota
	// FormatBMP encodes as uncompressed BMP.
	FormatBMP
	// FormatTIFF encodes as deflate-compressed TIFF.
	FormatTIFF
)

// String returns the conventional file extension without the dot.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks a Format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	}
	return 0, fmt.Errorf("tri: unsupported image extension %q", filepath.Ext(path))
}

// Encode writes the framebuffer to w in the given format.
func (f *Framebuffer) Encode(w io.Writer, format Format) error {
	img := f.ToImage()
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("tri: unsupported format %v", format)
}

// Save writes the framebuffer to path, choosing the format from the file
// extension (.png, .bmp, .tif, .tiff).
func (f *Framebuffer) Save(path string) (err error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return f.Encode(out, format)
}

// Scale resamples the framebuffer to width × height. Nearest-neighbor
// sampling keeps hard triangle edges; pass smooth to use Catmull-Rom
// instead.
func (f *Framebuffer) Scale(width, height int, smooth bool) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	var scaler draw.Scaler = draw.NearestNeighbor
	if smooth {
		scaler = draw.CatmullRom
	}
	scaler.Scale(dst, dst.Bounds(), f.ToImage(), f.Bounds(), draw.Src, nil)
	return dst
}
