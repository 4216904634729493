// Package sheet generates the placeholder walking sprite sheet for the
// player: an 8-direction walk cycle laid out as a 6x8 grid of 96x96
// frames.
//
// Every frame holds the same procedural stand-in glyph. A blue body
// disc pulses over the cycle, a yellow arrow marks the row's heading
// and the frame number sits in the corner, so none of this is shippable
// art, but the geometry (frame size, row order, cycle length) is
// exactly what the real sheet will use.
package sheet

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/bradfitz/iter"

	"github.com/gfxblit/EastVsWest/raster"
)

// Frame geometry. The sheet is Columns*FrameWidth by Rows*FrameHeight
// pixels.
const (
	FrameWidth  = 96
	FrameHeight = 96
	Columns     = 6 // frames in one walk cycle
	Rows        = 8 // directions

	Width  = FrameWidth * Columns
	Height = FrameHeight * Rows
)

// Glyph geometry.
const (
	baseBodyRadius = 25
	pulseAmplitude = 3
	outlineWidth   = 2
	arrowLength    = 15
	arrowWidth     = 3
	arrowTipRadius = 3
	labelOffsetX   = 5
	labelOffsetY   = 5
)

var (
	bodyInk    = color.NRGBA{R: 100, G: 150, B: 200, A: 255}
	outlineInk = color.NRGBA{R: 50, G: 100, B: 150, A: 255}
	arrowInk   = color.NRGBA{R: 255, G: 200, B: 0, A: 255}
	labelInk   = color.NRGBA{R: 255, G: 255, B: 255, A: 200}
)

// BodyRadius returns the body disc radius for a frame column. The
// radius runs through one full sine cycle across the Columns of a row,
// which reads as a subtle pulse when the cycle plays back.
func BodyRadius(col int) float64 {
	return baseBodyRadius + pulseAmplitude*math.Sin(float64(col)/Columns*2*math.Pi)
}

// Generate renders the whole sprite sheet into a fresh transparent
// canvas. The output depends only on compiled-in constants, so repeated
// runs produce identical pixels.
func Generate() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, Width, Height))
	for row := range iter.N(Rows) {
		for col := range iter.N(Columns) {
			DrawFrame(img, image.Pt(col*FrameWidth, row*FrameHeight), row, col)
		}
	}
	return img
}

// DrawFrame renders the placeholder glyph for one (direction, frame)
// cell with its top-left corner at origin. Out-of-range rows and
// columns draw nothing.
func DrawFrame(dst *image.NRGBA, origin image.Point, row, col int) {
	if row < 0 || row >= Rows || col < 0 || col >= Columns {
		return
	}
	cx := float64(origin.X) + FrameWidth/2
	cy := float64(origin.Y) + FrameHeight/2

	r := BodyRadius(col)
	raster.Disc(dst, cx, cy, r, bodyInk)
	raster.Ring(dst, cx, cy, r, outlineWidth, outlineInk)

	ax, ay := ArrowEndpoint(row, cx, cy)
	raster.Segment(dst, cx, cy, ax, ay, arrowWidth, arrowInk)
	raster.Disc(dst, ax, ay, arrowTipRadius, arrowInk)

	raster.Label(dst, origin.X+labelOffsetX, origin.Y+labelOffsetY, strconv.Itoa(col), labelInk)
}
