package raster

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// DecodeHex decodes a hex-encoded raster WKB stream, the form PostGIS
// clients usually receive raster columns in. A leading `\x` (the bytea
// escape prefix) and surrounding whitespace are tolerated.
func DecodeHex(s string, opts ...Option) (*Raster, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, `\x`)

	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("raster: hex input: %w", err)
	}
	return Decode(raw, opts...)
}
