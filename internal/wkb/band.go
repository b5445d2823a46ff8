package wkb

import "fmt"

// PixelType is the 4-bit pixel type code carried in the low nibble of a band
// tag byte. Values match the PostGIS rt_pixtype enumeration.
type PixelType uint8

const (
	PT1BB   PixelType = 0  // 1-bit boolean
	PT2BUI  PixelType = 1  // 2-bit unsigned integer
	PT4BUI  PixelType = 2  // 4-bit unsigned integer
	PT8BSI  PixelType = 3  // 8-bit signed integer
	PT8BUI  PixelType = 4  // 8-bit unsigned integer
	PT16BSI PixelType = 5  // 16-bit signed integer
	PT16BUI PixelType = 6  // 16-bit unsigned integer
	PT32BSI PixelType = 7  // 32-bit signed integer
	PT32BUI PixelType = 8  // 32-bit unsigned integer
	PT32BF  PixelType = 10 // 32-bit float
	PT64BF  PixelType = 11 // 64-bit float
	PTEnd   PixelType = 13
)

// EightBit reports whether the pixel type is one of the 8-bit integer types,
// the only types this decoder reads payloads for.
func (pt PixelType) EightBit() bool {
	return pt == PT8BSI || pt == PT8BUI
}

func (pt PixelType) String() string {
	switch pt {
	case PT1BB:
		return "1BB"
	case PT2BUI:
		return "2BUI"
	case PT4BUI:
		return "4BUI"
	case PT8BSI:
		return "8BSI"
	case PT8BUI:
		return "8BUI"
	case PT16BSI:
		return "16BSI"
	case PT16BUI:
		return "16BUI"
	case PT32BSI:
		return "32BSI"
	case PT32BUI:
		return "32BUI"
	case PT32BF:
		return "32BF"
	case PT64BF:
		return "64BF"
	default:
		return fmt.Sprintf("pixtype(%d)", uint8(pt))
	}
}

// BandTag is the single tag byte that opens every band header. The low
// nibble encodes the pixel type; the high nibble carries flags.
type BandTag uint8

// PixelType extracts the pixel type code from the low nibble.
func (t BandTag) PixelType() PixelType {
	return PixelType(uint8(t) & BandPixelTypeMask)
}

// OffDatabase reports whether the band's payload lives outside the stream.
func (t BandTag) OffDatabase() bool {
	return uint8(t)&BandFlagOffDB != 0
}

// HasNodata reports whether the band declares a meaningful nodata value.
func (t BandTag) HasNodata() bool {
	return uint8(t)&BandFlagHasNodata != 0
}

// IsNodataPixel reports whether the band is flagged as entirely nodata.
func (t BandTag) IsNodataPixel() bool {
	return uint8(t)&BandFlagIsNodata != 0
}

// MakeBandTag assembles a tag byte from a pixel type and flags. Used by the
// stream builder; the decoder only takes tags apart.
func MakeBandTag(pt PixelType, offDB, hasNodata, isNodata bool) BandTag {
	b := uint8(pt) & BandPixelTypeMask
	if offDB {
		b |= BandFlagOffDB
	}
	if hasNodata {
		b |= BandFlagHasNodata
	}
	if isNodata {
		b |= BandFlagIsNodata
	}
	return BandTag(b)
}
