package raster

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestLookupFaceFallsBack(t *testing.T) {
	orig := fontPaths
	fontPaths = []string{"testdata/definitely-not-here.ttf"}
	defer func() { fontPaths = orig }()

	if f := lookupFace(); f != basicfont.Face7x13 {
		t.Errorf("got %T; want the built-in face", f)
	}
}

func TestLabelDrawsInk(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	Label(img, 5, 5, "0", color.NRGBA{R: 255, G: 255, B: 255, A: 200})

	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if img.NRGBAAt(x, y).A > 0 {
				return
			}
		}
	}
	t.Errorf("label drew nothing")
}

func TestLabelAnchorsTopLeft(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	drawLabel(img, 20, 20, "0", color.NRGBA{R: 255, G: 255, B: 255, A: 255}, basicfont.Face7x13)

	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if img.NRGBAAt(x, y).A != 0 && (x < 20 || y < 20) {
				t.Fatalf("pixel (%d,%d) landed above or left of the anchor", x, y)
			}
		}
	}
}

func TestLabelInkVerbatim(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	ink := color.NRGBA{R: 255, G: 255, B: 255, A: 200}
	drawLabel(img, 2, 2, "0", ink, basicfont.Face7x13)

	// The bitmap face has no antialiasing, so every glyph pixel holds
	// the full ink, semi-transparent alpha included.
	found := false
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			got := img.NRGBAAt(x, y)
			if got.A == 0 {
				continue
			}
			found = true
			if got != ink {
				t.Fatalf("pixel (%d,%d): got %v; want %v", x, y, got, ink)
			}
		}
	}
	if !found {
		t.Errorf("label drew nothing")
	}
}
