package wkb

import (
	"fmt"

	"github.com/joshuapare/rasterkit/internal/buf"
)

// Descriptor captures the raster WKB header. See the offset table in
// consts.go for the wire layout. Immutable once parsed.
type Descriptor struct {
	LittleEndian bool
	Version      uint16
	Bands        uint16
	ScaleX       float64
	ScaleY       float64
	OriginX      float64
	OriginY      float64
	SkewX        float64
	SkewY        float64
	SRID         int32
	Width        uint16
	Height       uint16
}

// ParseDescriptor validates and extracts the header fields, consuming exactly
// HeaderSize bytes. On return the cursor addresses the first band tag byte.
//
// Fails with ErrUnsupportedVersion for any version other than 0 and with
// ErrUnsupportedRotation when either skew term is nonzero. Band count is not
// validated here; the caller decides which layouts it can decode.
func ParseDescriptor(c *buf.Cursor) (Descriptor, error) {
	endian, err := c.Uint8()
	if err != nil {
		return Descriptor{}, fmt.Errorf("wkb header: endianness flag: %w", err)
	}
	little := endian != 0

	version, err := c.Uint16(little)
	if err != nil {
		return Descriptor{}, fmt.Errorf("wkb header: version: %w", err)
	}
	if version != SupportedVersion {
		return Descriptor{}, fmt.Errorf("wkb header: version %d: %w", version, ErrUnsupportedVersion)
	}

	bands, err := c.Uint16(little)
	if err != nil {
		return Descriptor{}, fmt.Errorf("wkb header: band count: %w", err)
	}

	var geo [6]float64
	for i, name := range [6]string{"scaleX", "scaleY", "originX", "originY", "skewX", "skewY"} {
		geo[i], err = c.Float64(little)
		if err != nil {
			return Descriptor{}, fmt.Errorf("wkb header: %s: %w", name, err)
		}
	}

	srid, err := c.Int32(little)
	if err != nil {
		return Descriptor{}, fmt.Errorf("wkb header: srid: %w", err)
	}
	width, err := c.Uint16(little)
	if err != nil {
		return Descriptor{}, fmt.Errorf("wkb header: width: %w", err)
	}
	height, err := c.Uint16(little)
	if err != nil {
		return Descriptor{}, fmt.Errorf("wkb header: height: %w", err)
	}

	if geo[4] != 0 || geo[5] != 0 {
		return Descriptor{}, fmt.Errorf("wkb header: skew (%g, %g): %w", geo[4], geo[5], ErrUnsupportedRotation)
	}

	return Descriptor{
		LittleEndian: little,
		Version:      version,
		Bands:        bands,
		ScaleX:       geo[0],
		ScaleY:       geo[1],
		OriginX:      geo[2],
		OriginY:      geo[3],
		SkewX:        geo[4],
		SkewY:        geo[5],
		SRID:         srid,
		Width:        width,
		Height:       height,
	}, nil
}
