// Command genshadow writes the placeholder drop-shadow sprite to
// public/shadow.png. It takes no arguments and rerunning it produces
// identical bytes.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"badc0de.net/pkg/flagutil/v1"

	"github.com/golang/glog"

	"github.com/gfxblit/EastVsWest/paths"
	"github.com/gfxblit/EastVsWest/shadow"
)

func main() {
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	img := shadow.Generate()

	out := paths.LocateOutput(paths.ShadowPNG)
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

	fmt.Printf("Shadow sprite generated: %s\n", out)
}
