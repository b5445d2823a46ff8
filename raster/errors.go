package raster

import "github.com/joshuapare/rasterkit/internal/wkb"

// Sentinel errors for the fatal decode conditions. Match with errors.Is;
// returned errors wrap these with offsets and offending values.
var (
	// ErrUnexpectedEOF indicates a required read ran past the end of the input.
	ErrUnexpectedEOF = wkb.ErrUnexpectedEOF
	// ErrUnsupportedVersion indicates a wire protocol version other than 0.
	ErrUnsupportedVersion = wkb.ErrUnsupportedVersion
	// ErrUnsupportedRotation indicates nonzero skew terms in the header.
	ErrUnsupportedRotation = wkb.ErrUnsupportedRotation
	// ErrUnsupportedBandCount indicates a band count other than 1 or 3.
	ErrUnsupportedBandCount = wkb.ErrUnsupportedBandCount
)
