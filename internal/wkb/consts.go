// Package wkb houses low-level decoders for the PostGIS raster wire encoding
// (raster WKB). The goal is to keep the parsing focused, allocation-free
// where possible, and independent from the public API so higher-level
// packages can orchestrate the data in a more ergonomic form.
package wkb

// Raster WKB header field offsets. All multi-byte fields use the byte order
// declared by the endianness flag at offset 0.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x00    1    Endianness flag (0 = big endian, nonzero = little endian)
//	 0x01    2    Version (must be 0)
//	 0x03    2    Band count
//	 0x05    8    scaleX  (pixel width in geographic units)
//	 0x0D    8    scaleY  (pixel height in geographic units, often negative)
//	 0x15    8    originX (upper-left corner X)
//	 0x1D    8    originY (upper-left corner Y)
//	 0x25    8    skewX   (rotation term, must be 0)
//	 0x2D    8    skewY   (rotation term, must be 0)
//	 0x35    4    Spatial reference id (signed)
//	 0x39    2    Width in pixels
//	 0x3B    2    Height in pixels
//	 0x3D         First band header
const (
	EndianFlagOffset = 0x00
	VersionOffset    = 0x01
	BandCountOffset  = 0x03
	ScaleXOffset     = 0x05
	ScaleYOffset     = 0x0D
	OriginXOffset    = 0x15
	OriginYOffset    = 0x1D
	SkewXOffset      = 0x25
	SkewYOffset      = 0x2D
	SRIDOffset       = 0x35
	WidthOffset      = 0x39
	HeightOffset     = 0x3B

	// HeaderSize is the size of the raster WKB header in bytes. The first
	// band header, when present, starts immediately after it.
	HeaderSize = 0x3D

	// BandHeaderSize is the per-band header size: 1 tag byte followed by
	// 1 nodata-value byte. The nodata byte is part of the band header and is
	// always consumed, whether or not nodata is honored.
	BandHeaderSize = 2

	// SupportedVersion is the only wire protocol version this package decodes.
	SupportedVersion = 0

	// PixelSize is the size of one output pixel in bytes (RGBA).
	PixelSize = 4
)

// Band tag byte layout: the low nibble carries the pixel type, the high
// nibble carries flags.
const (
	BandPixelTypeMask = 0x0F
	BandFlagsMask     = 0xF0

	BandFlagOffDB     = 1 << 7 // pixel payload stored outside the stream
	BandFlagHasNodata = 1 << 6 // nodata value is meaningful
	BandFlagIsNodata  = 1 << 5 // entire band is nodata
	BandFlagReserved  = 1 << 4
)
