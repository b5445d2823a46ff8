package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestRenderCommand(t *testing.T) {
	in := writeGrayFixture(t)
	out := filepath.Join(t.TempDir(), "out.png")

	if _, err := captureOutput(t, func() error {
		return runRender(in, out)
	}); err != nil {
		t.Fatalf("runRender: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open png: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("png bounds = %v, want 2x1", img.Bounds())
	}
}

func TestRenderCommandBadInput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")
	if err := runRender("/nonexistent/tile.wkb", out); err == nil {
		t.Fatalf("expected error for missing input")
	}
}
