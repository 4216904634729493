// Command sheetprint renders the placeholder art on the terminal, for
// eyeballing the generators without opening a PNG viewer.
package main

import (
	"flag"
	"image"

	"badc0de.net/pkg/flagutil/v1"

	"github.com/golang/glog"

	"github.com/gfxblit/EastVsWest/compose"
	"github.com/gfxblit/EastVsWest/shadow"
	"github.com/gfxblit/EastVsWest/sheet"
)

var (
	wholeSheet = flag.Bool("sheet", false, "print the whole sprite sheet")
	dirRow     = flag.Int("dir", -1, "direction row to print (0-7); the full six frame cycle unless -frame is set")
	frameCol   = flag.Int("frame", -1, "frame column to print (0-5), combined with -dir")
	shadowSpr  = flag.Bool("shadow", false, "print the shadow sprite")
	composed   = flag.Bool("withshadow", false, "layer the drop shadow under -dir prints, like the in-game draw order")
)

func dirHandler(row, col int) {
	d, err := sheet.DirectionByRow(row)
	if err != nil {
		glog.Errorf("bad -dir: %v", err)
		return
	}
	glog.V(1).Infof("printing %s", d.Name)

	if col >= 0 {
		if col >= sheet.Columns {
			glog.Errorf("bad -frame: column %d out of range [0,%d)", col, sheet.Columns)
			return
		}
		if *composed {
			out(compose.Cell(row, col))
			return
		}
		img := image.NewNRGBA(image.Rect(0, 0, sheet.FrameWidth, sheet.FrameHeight))
		sheet.DrawFrame(img, image.Point{}, row, col)
		out(img)
		return
	}

	if *composed {
		out(compose.Row(row))
		return
	}
	img := image.NewNRGBA(image.Rect(0, 0, sheet.Width, sheet.FrameHeight))
	for c := 0; c < sheet.Columns; c++ {
		sheet.DrawFrame(img, image.Pt(c*sheet.FrameWidth, 0), row, c)
	}
	out(img)
}

func main() {
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	printed := false
	if *wholeSheet {
		out(sheet.Generate())
		printed = true
	}
	if *dirRow >= 0 {
		dirHandler(*dirRow, *frameCol)
		printed = true
	}
	if *shadowSpr {
		out(shadow.Generate())
		printed = true
	}
	if !printed {
		glog.Errorf("nothing to print; pass -sheet, -dir or -shadow")
	}
}
