package wkb

import (
	"errors"

	"github.com/joshuapare/rasterkit/internal/buf"
)

var (
	// ErrUnexpectedEOF indicates the buffer lacked the bytes required for a
	// structure. Aliased from the cursor package so callers can match either.
	ErrUnexpectedEOF = buf.ErrUnexpectedEOF
	// ErrUnsupportedVersion indicates a wire protocol version other than 0.
	ErrUnsupportedVersion = errors.New("wkb: unsupported version")
	// ErrUnsupportedRotation indicates a raster with nonzero skew terms.
	ErrUnsupportedRotation = errors.New("wkb: rotated raster not supported")
	// ErrUnsupportedBandCount indicates a band count other than 1 or 3.
	ErrUnsupportedBandCount = errors.New("wkb: unsupported band count")
)
