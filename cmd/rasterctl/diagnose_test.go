package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshuapare/rasterkit/raster"
)

// writeOffDBFixture writes a 1-band raster whose band is off-database.
func writeOffDBFixture(t *testing.T) string {
	t.Helper()

	b := &raster.Builder{LittleEndian: true, ScaleX: 1, ScaleY: 1, Width: 2, Height: 2}
	b.AddBand(raster.BandSpec{PixelType: raster.PT8BUI, OffDatabase: true})

	path := filepath.Join(t.TempDir(), "offdb.wkb")
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestDiagnoseCommandClean(t *testing.T) {
	path := writeGrayFixture(t)

	out, err := captureOutput(t, func() error {
		return runDiagnose(path, false)
	})
	if err != nil {
		t.Fatalf("runDiagnose: %v", err)
	}
	if !strings.Contains(out, "No issues found") {
		t.Errorf("expected clean report, got:\n%s", out)
	}
}

func TestDiagnoseCommandOffDB(t *testing.T) {
	path := writeOffDBFixture(t)

	out, err := captureOutput(t, func() error {
		return runDiagnose(path, false)
	})
	if err != nil {
		t.Fatalf("runDiagnose: %v", err)
	}
	if !strings.Contains(out, "off-database") {
		t.Errorf("expected off-database diagnostic, got:\n%s", out)
	}

	// --fail-on-issues turns the diagnostics into a failure.
	if _, err := captureOutput(t, func() error {
		return runDiagnose(path, true)
	}); err == nil {
		t.Fatalf("expected error with --fail-on-issues")
	}
}
