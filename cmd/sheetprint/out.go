package main

import (
	"flag"
	"fmt"
	"image"

	"github.com/nfnt/resize"

	"github.com/gfxblit/EastVsWest/preview"
)

var (
	col256   = flag.Bool("col256", false, "whether to use 256 col instead of 24 bit")
	noColor  = flag.Bool("nocolor", false, "whether to render without color escape sequences")
	inline   = flag.Bool("inline", false, "whether to prefer the terminal's native image protocol (kitty, iterm, sixel)")
	blanks   = flag.Bool("blanks", true, "whether to just use colored blanks instead of some bad ascii art")
	downsize = flag.Bool("downsize", true, "whether to shrink images to the terminal size")
	asURL    = flag.Bool("dataurl", false, "print a data: URL instead of rendering")
)

func out(img image.Image) {
	if *asURL {
		fmt.Println(preview.DataURL(img))
		return
	}

	if *downsize {
		termSize, err := GetTermSize()
		if err == nil {
			if *inline && termSize.WSXPixel != 0 && termSize.WSYPixel != 0 {
				// The native protocols measure in pixels, not cells.
				img = resize.Thumbnail(termSize.WSXPixel/2, termSize.WSYPixel/2, img, resize.Lanczos3)
			} else {
				img = resize.Thumbnail(termSize.WSCol/2, termSize.WSRow, img, resize.Lanczos3)
			}
		}
	}

	if *inline && preview.PrintInline(img) {
		return
	}
	if *noColor {
		preview.PrintNoColor(img)
	} else if *col256 {
		preview.Print256Color(img, *blanks)
	} else {
		preview.Print24Bit(img, *blanks)
	}
}
