package shadow

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"testing"

	"github.com/gfxblit/EastVsWest/ttesting"
)

func TestGenerate(t *testing.T) {
	img := Generate()
	ttesting.AssertSize(t, "canvas", img, 96, 96)

	want := color.NRGBA{A: 100}
	ttesting.AssertPixel(t, "ellipse center", img, 48, 70, want)
	ttesting.AssertPixel(t, "left extreme", img, 20, 70, want)
	ttesting.AssertPixel(t, "right extreme", img, 76, 70, want)
	ttesting.AssertPixel(t, "top extreme", img, 48, 55, want)
	ttesting.AssertPixel(t, "bottom extreme", img, 48, 85, want)

	ttesting.AssertTransparent(t, "above the box", img, 48, 54)
	ttesting.AssertTransparent(t, "below the box", img, 48, 86)
	for _, p := range []struct{ x, y int }{{0, 0}, {95, 0}, {0, 95}, {95, 95}} {
		ttesting.AssertTransparent(t, fmt.Sprintf("corner (%d,%d)", p.x, p.y), img, p.x, p.y)
	}
}

func TestGenerateAlphaStaysExact(t *testing.T) {
	// Every inked pixel carries exactly alpha 100; the fill never
	// feathers or blends.
	img := Generate()
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			got := img.NRGBAAt(x, y)
			if got.A == 0 {
				continue
			}
			if got != (color.NRGBA{A: 100}) {
				t.Fatalf("pixel (%d,%d): got %v; want {0 0 0 100}", x, y, got)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	if err := png.Encode(&a, Generate()); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := png.Encode(&b, Generate()); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Errorf("two runs produced different files")
	}
}
