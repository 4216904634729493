// Package paths resolves where generated placeholder art is written.
package paths

import (
	"os"
	"path/filepath"

	"github.com/golang/glog"
)

// Well-known output artifacts, relative to the repository root.
const (
	ShadowPNG      = "public/shadow.png"
	SpriteSheetPNG = "public/assets/player/player-walk-spritesheet.png"
)

// WalkPreviewDir is where the optional walk cycle GIFs go, relative to
// the repository root.
const WalkPreviewDir = "public/assets/player/preview"

// LocateOutput resolves where the passed repo-relative output file
// should be written. The generators get run from the repository root
// and from one directory down, so the parent is probed too; the first
// candidate whose directory already exists wins.
//
// Nothing is ever created here. When no candidate directory exists the
// relative path is returned as-is and the eventual create fails, which
// is the wanted outcome for a checkout without a public/ tree.
func LocateOutput(rel string) string {
	candidates := []string{
		rel,
		filepath.Join("..", rel),
	}

	for _, path := range candidates {
		if st, err := os.Stat(filepath.Dir(path)); err == nil && st.IsDir() {
			glog.Infof("paths.LocateOutput(%q)=%s", rel, path)
			return path
		}
	}

	glog.Infof("paths.LocateOutput(%q)=%s (no existing directory)", rel, rel)
	return rel
}

// LocateOutputDir is LocateOutput for a directory target: it returns
// the first existing candidate, or rel unchanged when none exists.
func LocateOutputDir(rel string) string {
	for _, path := range []string{rel, filepath.Join("..", rel)} {
		if st, err := os.Stat(path); err == nil && st.IsDir() {
			glog.Infof("paths.LocateOutputDir(%q)=%s", rel, path)
			return path
		}
	}
	return rel
}
