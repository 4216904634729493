package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestLocateOutputPrefersLocal(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "public"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	chdir(t, root)

	if got := LocateOutput("public/shadow.png"); got != "public/shadow.png" {
		t.Errorf("got %q; want %q", got, "public/shadow.png")
	}
}

func TestLocateOutputProbesParent(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "public"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.Mkdir(filepath.Join(root, "scripts"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	chdir(t, filepath.Join(root, "scripts"))

	got := LocateOutput("public/shadow.png")
	want := filepath.Join("..", "public/shadow.png")
	if got != want {
		t.Errorf("got %q; want %q", got, want)
	}
}

func TestLocateOutputNeverCreates(t *testing.T) {
	root := t.TempDir()
	chdir(t, root)

	if got := LocateOutput("public/shadow.png"); got != "public/shadow.png" {
		t.Errorf("got %q; want the relative default", got)
	}
	if _, err := os.Stat(filepath.Join(root, "public")); !os.IsNotExist(err) {
		t.Errorf("public/ exists after resolution; the resolver must not create directories")
	}
}

func TestLocateOutputDir(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "public", "assets", "player", "preview"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.Mkdir(filepath.Join(root, "scripts"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	chdir(t, root)
	if got := LocateOutputDir(WalkPreviewDir); got != WalkPreviewDir {
		t.Errorf("from root: got %q; want %q", got, WalkPreviewDir)
	}

	chdir(t, filepath.Join(root, "scripts"))
	want := filepath.Join("..", WalkPreviewDir)
	if got := LocateOutputDir(WalkPreviewDir); got != want {
		t.Errorf("from scripts/: got %q; want %q", got, want)
	}
}

func TestLocateOutputDirMissingUnchanged(t *testing.T) {
	chdir(t, t.TempDir())
	if got := LocateOutputDir(WalkPreviewDir); got != WalkPreviewDir {
		t.Errorf("got %q; want the relative default", got)
	}
}
