// Package preview renders generated placeholder art on the terminal.
//
// Debug helper with no API stability guarantees; the generators do not
// depend on it.
package preview

import (
	"bytes"
	"fmt"
	"image"
	ic "image/color"
	"image/png"
	"os"

	"github.com/BourgeoisBear/rasterm"
	"github.com/andybons/gogif"
	"github.com/golang/glog"
	"github.com/gookit/color"
	"github.com/nfnt/resize"
	"github.com/vincent-petithory/dataurl"
	"golang.org/x/crypto/ssh/terminal"
)

type dumper interface {
	Printf(s string, arg ...interface{})
}

type fmtDumperT struct{}

func (fmtDumperT) Printf(s string, arg ...interface{}) {
	fmt.Printf(s, arg...)
}

var fmtDumper fmtDumperT

// cell prints one image pixel as a two-character terminal cell. With
// blanks the pixel is a colored blank; otherwise a four-step luminance
// ramp stands in for terminals that drop backgrounds when copying.
func cell(col ic.Color, escapesTrueColor, blanks, noColor bool) {
	cR, cG, cB, cA := col.RGBA()
	if cA == 0 {
		fmt.Printf("\x1b[0m  ")
		return
	}

	var d dumper
	if noColor {
		d = &fmtDumper
	} else if escapesTrueColor {
		fmt.Printf("\x1b[48;2;%d;%d;%dm", uint8(cR>>8), uint8(cG>>8), uint8(cB>>8))
		d = &fmtDumper
	} else {
		d = color.RGB(uint8(cR>>8), uint8(cG>>8), uint8(cB>>8), true)
	}

	if blanks {
		d.Printf("  ")
	} else {
		switch a := ((cR + cG + cB) / 3) >> 8; {
		case a < 32:
			d.Printf("..")
		case a < 64:
			d.Printf("--")
		case a < 128:
			d.Printf("==")
		default:
			d.Printf("##")
		}
	}

	if escapesTrueColor {
		fmt.Printf("\x1b[0m")
	}
}

// Print24Bit draws an image using 24bit color escape sequences by
// changing the cell background.
func Print24Bit(i image.Image, blanks bool) {
	for y := i.Bounds().Min.Y; y < i.Bounds().Max.Y; y++ {
		for x := i.Bounds().Min.X; x < i.Bounds().Max.X; x++ {
			cell(i.At(x, y), true, blanks, false)
		}
		fmt.Printf("\x1b[0m\n")
	}
}

// Print256Color draws an image using 256color'd ascii art.
func Print256Color(i image.Image, blanks bool) {
	for y := i.Bounds().Min.Y; y < i.Bounds().Max.Y; y++ {
		for x := i.Bounds().Min.X; x < i.Bounds().Max.X; x++ {
			cell(i.At(x, y), false, blanks, false)
		}
		fmt.Printf("\x1b[0m\n")
	}
}

// PrintNoColor draws an image as a plain luminance ramp, without color
// escape sequences.
func PrintNoColor(i image.Image) {
	for y := i.Bounds().Min.Y; y < i.Bounds().Max.Y; y++ {
		for x := i.Bounds().Min.X; x < i.Bounds().Max.X; x++ {
			cell(i.At(x, y), true, false, true)
		}
		fmt.Printf("\n")
	}
}

// PrintInline draws an image with the terminal's native image protocol
// (kitty, iTerm2/WezTerm, or sixel, probed in that order). It reports
// whether anything was drawn; the caller should fall back to one of the
// cell renderers otherwise.
func PrintInline(i image.Image) bool {
	switch {
	case rasterm.IsTermKitty():
		if err := (rasterm.Settings{}).KittyWriteImage(os.Stdout, i); err != nil {
			glog.Errorf("preview: kitty write: %v", err)
			return false
		}
	case rasterm.IsTermItermWez():
		if err := (rasterm.Settings{}).ItermWriteImage(os.Stdout, i); err != nil {
			glog.Errorf("preview: iterm write: %v", err)
			return false
		}
	default:
		capable, err := rasterm.IsSixelCapable()
		if err != nil || !capable {
			return false
		}
		palettedImage := image.NewPaletted(i.Bounds(), nil)
		quantizer := gogif.MedianCutQuantizer{NumColor: 64}
		quantizer.Quantize(palettedImage, i.Bounds(), i, image.Point{})
		if err := (rasterm.Settings{}).SixelWriteImage(os.Stdout, palettedImage); err != nil {
			glog.Errorf("preview: sixel write: %v", err)
			return false
		}
	}
	fmt.Printf("\n")
	return true
}

// DataURL returns the image PNG-encoded as a data: URL, for pasting
// into a browser when the terminal cannot draw images at all.
func DataURL(i image.Image) string {
	var buf bytes.Buffer
	if err := png.Encode(&buf, i); err != nil {
		glog.Errorf("preview: png encode for data url: %v", err)
		return ""
	}
	return dataurl.New(buf.Bytes(), "image/png").String()
}

// FitTerminal downsizes an image so the cell renderers (two characters
// per pixel) fit the current terminal, keeping aspect. scale shrinks
// the target box further when below 1. Without a usable tty an 80x25
// terminal is assumed.
func FitTerminal(i image.Image, scale float64) image.Image {
	w, h, err := terminal.GetSize(0)
	if err != nil {
		glog.V(1).Infof("preview: terminal size unavailable, assuming 80x25: %v", err)
		w, h = 80, 25
	}
	tw := uint(float64(w/2) * scale)
	th := uint(float64(h) * scale)
	if tw == 0 || th == 0 {
		return i
	}
	return resize.Thumbnail(tw, th, i, resize.Lanczos3)
}
