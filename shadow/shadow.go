// Package shadow generates the translucent blob rendered under the
// player.
package shadow

import (
	"image"
	"image/color"

	"github.com/gfxblit/EastVsWest/raster"
)

// Size is the square canvas edge in pixels, matching a sprite sheet
// frame so the two composite without scaling.
const Size = 96

// The ellipse sits low in the frame, wider than tall, a flat puddle
// under the character's feet. The box is inclusive on all edges.
const (
	boxLeft   = 20
	boxTop    = 55
	boxRight  = 76
	boxBottom = 85
)

// ink is black at a bit under half opacity. It is stored verbatim, so
// the file keeps alpha 100 no matter what it is drawn over in game.
var ink = color.NRGBA{A: 100}

// Generate renders the shadow sprite into a fresh transparent canvas.
// The output depends only on compiled-in constants, so repeated runs
// produce identical pixels.
func Generate() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, Size, Size))
	raster.Ellipse(img, boxLeft, boxTop, boxRight, boxBottom, ink)
	return img
}
