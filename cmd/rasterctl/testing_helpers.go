package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/joshuapare/rasterkit/raster"
)

// writeGrayFixture writes a little-endian 1-band 2x1 raster and returns its path.
func writeGrayFixture(t *testing.T) string {
	t.Helper()

	b := &raster.Builder{
		LittleEndian: true,
		ScaleX:       2.0,
		ScaleY:       -2.0,
		OriginY:      100.0,
		SRID:         4326,
		Width:        2,
		Height:       1,
	}
	b.AddBand(raster.BandSpec{PixelType: raster.PT8BUI, Pixels: []byte{10, 20}})

	path := filepath.Join(t.TempDir(), "gray.wkb")
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	return buf.String(), fnErr
}
