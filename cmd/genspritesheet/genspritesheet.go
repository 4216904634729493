// Command genspritesheet writes the placeholder walking sprite sheet to
// public/assets/player/player-walk-spritesheet.png: 8 direction rows of
// 6 frames, 96x96 pixels each. It takes no arguments and rerunning it
// produces identical bytes.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"badc0de.net/pkg/flagutil/v1"

	"github.com/golang/glog"

	"github.com/gfxblit/EastVsWest/paths"
	"github.com/gfxblit/EastVsWest/sheet"
)

func main() {
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	fmt.Println("Generating player walking sprite sheet...")
	fmt.Printf("  Dimensions: %dx%dpx\n", sheet.Width, sheet.Height)
	fmt.Printf("  Frame size: %dx%dpx\n", sheet.FrameWidth, sheet.FrameHeight)
	fmt.Printf("  Layout: %d frames × %d directions\n", sheet.Columns, sheet.Rows)

	img := sheet.Generate()

	out := paths.LocateOutput(paths.SpriteSheetPNG)
	f, err := os.Create(out)
	if err != nil {
		glog.Fatalf("creating %s: %v", out, err)
	}
	if err := png.Encode(f, img); err != nil {
		glog.Fatalf("encoding %s: %v", out, err)
	}
	if err := f.Close(); err != nil {
		glog.Fatalf("closing %s: %v", out, err)
	}
	fmt.Printf("✓ Sprite sheet saved to: %s\n", out)
	if st, err := os.Stat(out); err == nil {
		fmt.Printf("  File size: %d bytes\n", st.Size())
	}

	// Self-check: re-open the saved file and decode its header.
	cfg, err := reopenConfig(out)
	if err != nil {
		glog.Fatalf("verifying %s: %v", out, err)
	}
	fmt.Printf("✓ Verified: %dx%dpx, mode=%s\n", cfg.Width, cfg.Height, modeName(cfg.ColorModel))
}

func reopenConfig(path string) (image.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, err
	}
	defer f.Close()
	return png.DecodeConfig(f)
}

func modeName(m color.Model) string {
	switch m {
	case color.NRGBAModel:
		return "NRGBA"
	case color.NRGBA64Model:
		return "NRGBA64"
	case color.RGBAModel:
		return "RGBA"
	case color.GrayModel:
		return "Gray"
	}
	return "unknown"
}
