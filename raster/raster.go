// Package raster draws the handful of shapes the placeholder generators
// need directly into NRGBA pixel buffers.
//
// Every primitive stores its ink verbatim (straight alpha, no
// compositing), so a semi-transparent ink comes out of the PNG encoder
// as exactly that pixel value. The shadow ellipse keeps alpha 100
// wherever it lands; it does not blend with whatever was underneath.
package raster

import (
	"image"
	"image/color"
	"math"
)

// Ellipse fills the axis-aligned ellipse inscribed in the bounding box
// (x0,y0)-(x1,y1). The box is inclusive on all four edges, so the
// extreme points of both axes are part of the fill.
func Ellipse(dst *image.NRGBA, x0, y0, x1, y1 int, ink color.NRGBA) {
	if x1 <= x0 || y1 <= y0 {
		return
	}
	cx := float64(x0+x1) / 2
	cy := float64(y0+y1) / 2
	a := float64(x1-x0) / 2
	b := float64(y1-y0) / 2
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			nx := (float64(x) - cx) / a
			ny := (float64(y) - cy) / b
			if nx*nx+ny*ny <= 1 {
				set(dst, x, y, ink)
			}
		}
	}
}

// Disc fills a circle of radius r centered at (cx, cy).
func Disc(dst *image.NRGBA, cx, cy, r float64, ink color.NRGBA) {
	if r <= 0 {
		return
	}
	rr := r * r
	for y := int(math.Floor(cy - r)); y <= int(math.Ceil(cy+r)); y++ {
		for x := int(math.Floor(cx - r)); x <= int(math.Ceil(cx+r)); x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= rr {
				set(dst, x, y, ink)
			}
		}
	}
}

// Ring strokes a circle of radius r centered at (cx, cy) with a stroke
// of the passed width growing inward from r, covering distances in
// (r-width, r].
func Ring(dst *image.NRGBA, cx, cy, r, width float64, ink color.NRGBA) {
	if r <= 0 || width <= 0 {
		return
	}
	inner := r - width
	if inner < 0 {
		inner = 0
	}
	rr := r * r
	ii := inner * inner
	for y := int(math.Floor(cy - r)); y <= int(math.Ceil(cy+r)); y++ {
		for x := int(math.Floor(cx - r)); x <= int(math.Ceil(cx+r)); x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			d := dx*dx + dy*dy
			if d <= rr && d > ii {
				set(dst, x, y, ink)
			}
		}
	}
}

// Segment draws a straight stroke of the passed width between two
// points. Pixels within width/2 of the segment are inked, which gives
// the stroke round caps; a zero-length segment degenerates to a dot.
func Segment(dst *image.NRGBA, x0, y0, x1, y1, width float64, ink color.NRGBA) {
	half := width / 2
	if half <= 0 {
		return
	}
	minX := int(math.Floor(math.Min(x0, x1) - half))
	maxX := int(math.Ceil(math.Max(x0, x1) + half))
	minY := int(math.Floor(math.Min(y0, y1) - half))
	maxY := int(math.Ceil(math.Max(y0, y1) + half))

	dx := x1 - x0
	dy := y1 - y0
	len2 := dx*dx + dy*dy
	h2 := half * half

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px := float64(x) - x0
			py := float64(y) - y0
			t := 0.0
			if len2 > 0 {
				t = (px*dx + py*dy) / len2
				if t < 0 {
					t = 0
				} else if t > 1 {
					t = 1
				}
			}
			ex := px - t*dx
			ey := py - t*dy
			if ex*ex+ey*ey <= h2 {
				set(dst, x, y, ink)
			}
		}
	}
}

func set(dst *image.NRGBA, x, y int, ink color.NRGBA) {
	if !(image.Pt(x, y).In(dst.Bounds())) {
		return
	}
	dst.SetNRGBA(x, y, ink)
}
