package raster

import "github.com/joshuapare/rasterkit/internal/wkb"

// PixelType is the per-band pixel type code from the wire encoding.
// Re-exported from internal/wkb for the public API; only PT8BSI and PT8BUI
// payloads are decoded.
type PixelType = wkb.PixelType

const (
	PT1BB   = wkb.PT1BB
	PT2BUI  = wkb.PT2BUI
	PT4BUI  = wkb.PT4BUI
	PT8BSI  = wkb.PT8BSI
	PT8BUI  = wkb.PT8BUI
	PT16BSI = wkb.PT16BSI
	PT16BUI = wkb.PT16BUI
	PT32BSI = wkb.PT32BSI
	PT32BUI = wkb.PT32BUI
	PT32BF  = wkb.PT32BF
	PT64BF  = wkb.PT64BF
)
