package main

import (
	"strings"
	"testing"
)

func TestInfoCommand(t *testing.T) {
	path := writeGrayFixture(t)

	out, err := captureOutput(t, func() error {
		return runInfo([]string{path})
	})
	if err != nil {
		t.Fatalf("runInfo: %v", err)
	}

	for _, want := range []string{
		"little-endian",
		"Bands:      1",
		"2x1 pixels",
		"SRID:       4326",
		"[0, 98] - [4, 100]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("info output missing %q:\n%s", want, out)
		}
	}
}

func TestInfoCommandJSON(t *testing.T) {
	path := writeGrayFixture(t)

	jsonOut = true
	defer func() { jsonOut = false }()

	out, err := captureOutput(t, func() error {
		return runInfo([]string{path})
	})
	if err != nil {
		t.Fatalf("runInfo: %v", err)
	}
	for _, want := range []string{`"bands": 1`, `"srid": 4326`, `"width": 2`} {
		if !strings.Contains(out, want) {
			t.Errorf("json output missing %q:\n%s", want, out)
		}
	}
}

func TestInfoCommandMissingFile(t *testing.T) {
	if err := runInfo([]string{"/nonexistent/tile.wkb"}); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
