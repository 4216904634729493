// Command walkgif renders looping GIF previews of the walk cycle, one
// per direction row, next to the sprite sheet. They are review
// artifacts; the game itself only consumes the sheet.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"badc0de.net/pkg/flagutil/v1"

	"github.com/bradfitz/iter"
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/gfxblit/EastVsWest/paths"
	"github.com/gfxblit/EastVsWest/sheet"
)

var (
	outDir  string
	delayCS = flag.Int("delay_cs", 12, "per-frame delay in hundredths of a second")
	dirRow  = flag.Int("dir", -1, "single direction row to render; all eight when unset")
)

func init() {
	paths.SetupOutputDirFlag(paths.WalkPreviewDir, "out_dir", &outDir)
}

func main() {
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	var rows []int
	if *dirRow >= 0 {
		if _, err := sheet.DirectionByRow(*dirRow); err != nil {
			glog.Fatalf("bad -dir: %v", err)
		}
		rows = append(rows, *dirRow)
	} else {
		for row := range iter.N(sheet.Rows) {
			rows = append(rows, row)
		}
	}

	for _, row := range rows {
		if err := writeRow(row); err != nil {
			glog.Fatalf("direction %d: %v", row, err)
		}
	}
}

func writeRow(row int) error {
	d, err := sheet.DirectionByRow(row)
	if err != nil {
		return err
	}
	name := fmt.Sprintf("player-walk-%s.gif", strings.ToLower(d.Name))
	path := filepath.Join(outDir, name)

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating gif")
	}
	if err := sheet.EncodeWalkGIF(f, row, *delayCS); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(err, "closing gif")
	}

	fmt.Printf("Walk cycle preview generated: %s\n", path)
	return nil
}
