// Package compose layers the generated placeholder sprites the way the
// game's renderer stacks them at runtime: drop shadow first, body frame
// on top.
//
// The shadow canvas and a sheet frame are the same 96x96 size, so the
// layers align without any anchoring math.
package compose

import (
	"image"
	"image/draw"

	"github.com/bradfitz/iter"

	"github.com/gfxblit/EastVsWest/shadow"
	"github.com/gfxblit/EastVsWest/sheet"
)

// Cell renders one sprite sheet cell over the drop shadow. Out-of-range
// rows and columns leave just the shadow.
func Cell(row, col int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, sheet.FrameWidth, sheet.FrameHeight))
	draw.Draw(img, img.Bounds(), shadow.Generate(), image.Point{}, draw.Over)

	frame := image.NewNRGBA(img.Bounds())
	sheet.DrawFrame(frame, image.Point{}, row, col)
	draw.Draw(img, img.Bounds(), frame, image.Point{}, draw.Over)
	return img
}

// Row renders the full six frame cycle of one direction as a strip,
// with the shadow under every frame.
func Row(row int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, sheet.Width, sheet.FrameHeight))
	for col := range iter.N(sheet.Columns) {
		cell := Cell(row, col)
		dst := image.Rect(col*sheet.FrameWidth, 0, (col+1)*sheet.FrameWidth, sheet.FrameHeight)
		draw.Draw(img, dst, cell, image.Point{}, draw.Src)
	}
	return img
}
