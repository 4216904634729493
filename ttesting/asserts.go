package ttesting

import (
	"image"
	"image/color"
	"testing"
)

func AssertEqualInt(t *testing.T, name string, got, want int) {
	t.Run(name, func(t *testing.T) {
		if got != want {
			t.Errorf("got %d; want %d", got, want)
		}
	})
}

// AssertSize checks that an image's bounds span exactly w x h pixels.
func AssertSize(t *testing.T, name string, img image.Image, w, h int) {
	t.Run(name, func(t *testing.T) {
		sz := img.Bounds().Size()
		if sz.X != w || sz.Y != h {
			t.Errorf("got %dx%d; want %dx%d", sz.X, sz.Y, w, h)
		}
	})
}

// AssertPixel checks the straight-alpha value of a single pixel.
func AssertPixel(t *testing.T, name string, img *image.NRGBA, x, y int, want color.NRGBA) {
	t.Run(name, func(t *testing.T) {
		if got := img.NRGBAAt(x, y); got != want {
			t.Errorf("pixel (%d,%d): got %v; want %v", x, y, got, want)
		}
	})
}

// AssertTransparent checks that a pixel has zero alpha.
func AssertTransparent(t *testing.T, name string, img *image.NRGBA, x, y int) {
	t.Run(name, func(t *testing.T) {
		if got := img.NRGBAAt(x, y); got.A != 0 {
			t.Errorf("pixel (%d,%d): got %v; want alpha 0", x, y, got)
		}
	})
}
