package ears

import (
	"image"
	"image/color"

	"github.com/ears-go/ears/internal/imgmodel"
)

// PixelImage is the minimal pixel-access surface every codec in this
// module reads from and writes to. Callers supply an implementation so
// this package never needs to depend on an image-decoding library itself.
type PixelImage interface {
	// Bounds reports the image dimensions in pixels.
	Bounds() (width, height int)
	// At returns the raw channel values of the pixel at (x, y).
	At(x, y int) (r, g, b, a uint8)
	// Set overwrites the pixel at (x, y).
	Set(x, y int, r, g, b, a uint8)
}

// rgbaAdapter adapts a decoded *image.RGBA into a PixelImage.
type rgbaAdapter struct {
	img *image.RGBA
}

// FromImage wraps a decoded image.Image as a PixelImage. Decoding PNG (or
// any other format) bytes into an image.Image remains the caller's
// responsibility (see spec.md §1's outer-decoder boundary); this adapter
// only bridges the already-decoded pixel grid into this package's
// minimal interface, converting to image.RGBA first if necessary.
func FromImage(img image.Image) PixelImage {
	if rgba, ok := img.(*image.RGBA); ok {
		return &rgbaAdapter{img: rgba}
	}
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rgba.Set(x, y, img.At(x, y))
		}
	}
	return &rgbaAdapter{img: rgba}
}

func (a *rgbaAdapter) Bounds() (int, int) {
	b := a.img.Bounds()
	return b.Dx(), b.Dy()
}

func (a *rgbaAdapter) At(x, y int) (r, g, b, al uint8) {
	b := a.img.Bounds()
	c := a.img.RGBAAt(b.Min.X+x, b.Min.Y+y)
	return c.R, c.G, c.B, c.A
}

func (a *rgbaAdapter) Set(x, y int, r, g, b, al uint8) {
	bounds := a.img.Bounds()
	a.img.SetRGBA(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: r, G: g, B: b, A: al})
}

// modelImage adapts the exported PixelImage interface to the internal
// imgmodel.Image interface the codec packages consume, so the public
// surface never needs to import the internal model type directly.
type modelImage struct {
	PixelImage
}

var _ imgmodel.Image = modelImage{}
