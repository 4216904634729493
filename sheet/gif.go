package sheet

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"

	"github.com/bradfitz/iter"
	"github.com/ericpauley/go-quantize/quantize"
	"github.com/pkg/errors"
)

// EncodeWalkGIF writes the six frames of one direction row as a looping
// animated GIF. delayCS is the per-frame delay in hundredths of a
// second, the GIF wire unit; values below 1 are clamped.
//
// Each frame gets its own median-cut palette with a transparent entry
// at index zero, so the backdrop stays clear in viewers that honor
// background disposal.
func EncodeWalkGIF(w io.Writer, row, delayCS int) error {
	if row < 0 || row >= Rows {
		return errors.Errorf("direction row %d out of range [0,%d)", row, Rows)
	}
	if delayCS < 1 {
		delayCS = 1
	}

	g := &gif.GIF{}
	q := quantize.MedianCutQuantizer{}
	for col := range iter.N(Columns) {
		frame := image.NewNRGBA(image.Rect(0, 0, FrameWidth, FrameHeight))
		DrawFrame(frame, image.Point{}, row, col)

		// Quantize only derives the palette; the pixels are mapped by
		// the draw below. Index 0 stays reserved for transparency.
		pal := q.Quantize(make(color.Palette, 0, 255), frame)
		p := image.NewPaletted(frame.Bounds(), append(color.Palette{color.Transparent}, pal...))
		draw.Draw(p, frame.Bounds(), frame, image.Point{}, draw.Over)

		g.Image = append(g.Image, p)
		g.Delay = append(g.Delay, delayCS)
		g.Disposal = append(g.Disposal, gif.DisposalBackground)
	}
	g.BackgroundIndex = 0

	if err := gif.EncodeAll(w, g); err != nil {
		return errors.Wrap(err, "encoding walk cycle gif")
	}
	return nil
}
