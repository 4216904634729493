package raster

import (
	"image"
	"image/color"
	"os"
	"sync"

	"github.com/golang/glog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// labelPts is the point size used when a scalable system font is found.
// The bitmap fallback face has a fixed size and ignores it.
const labelPts = 10

// fontPaths lists system fonts probed for labels, best first. The macOS
// Supplemental path matches where the asset pipeline historically ran;
// the DejaVu path covers most Linux installs.
var fontPaths = []string{
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
}

var (
	faceOnce sync.Once
	face     font.Face
)

// Face returns the label typeface: the first entry of fontPaths that
// parses, or the built-in fixed-size face when none does. The lookup
// never fails; a missing font only changes the glyph shapes.
func Face() font.Face {
	faceOnce.Do(func() {
		face = lookupFace()
	})
	return face
}

func lookupFace() font.Face {
	for _, path := range fontPaths {
		b, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fnt, err := opentype.Parse(b)
		if err != nil {
			glog.V(1).Infof("raster: skipping unparseable font %q: %v", path, err)
			continue
		}
		f, err := opentype.NewFace(fnt, &opentype.FaceOptions{
			Size:    labelPts,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			glog.V(1).Infof("raster: skipping font %q: %v", path, err)
			continue
		}
		glog.V(1).Infof("raster: label font %q", path)
		return f
	}
	glog.V(1).Infof("raster: no system font found, using the built-in face")
	return basicfont.Face7x13
}

// Label draws s with the top left corner of its glyph box at (x, y).
func Label(dst *image.NRGBA, x, y int, s string, ink color.NRGBA) {
	drawLabel(dst, x, y, s, ink, Face())
}

func drawLabel(dst *image.NRGBA, x, y int, s string, ink color.NRGBA, f font.Face) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(ink),
		Face: f,
		Dot:  fixed.P(x, y+f.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}
