package raster

import "github.com/joshuapare/rasterkit/internal/wkb"

// BandSpec describes one band to encode: its declared pixel type, header
// flags, nodata value, and the payload bytes. Pixels must hold exactly
// width*height bytes for a band a decoder is expected to read; off-database
// bands carry no payload by definition.
type BandSpec struct {
	PixelType   wkb.PixelType
	OffDatabase bool
	HasNodata   bool
	IsNodata    bool
	Nodata      uint8
	Pixels      []byte
}

// Builder assembles a raster WKB stream in either byte order. It mirrors the
// header field-for-field so tests and tools can produce exactly the stream
// they want, including invalid ones (nonzero version or skew, odd band
// counts via extra AddBand calls).
type Builder struct {
	LittleEndian bool
	Version      uint16
	ScaleX       float64
	ScaleY       float64
	OriginX      float64
	OriginY      float64
	SkewX        float64
	SkewY        float64
	SRID         int32
	Width        uint16
	Height       uint16

	bands []BandSpec
}

// AddBand appends a band to the stream in layout order.
func (b *Builder) AddBand(s BandSpec) *Builder {
	b.bands = append(b.bands, s)
	return b
}

// Bytes encodes the stream. The declared band count is the number of bands
// added.
func (b *Builder) Bytes() []byte {
	le := b.LittleEndian

	out := make([]byte, 0, wkb.HeaderSize+len(b.bands)*(wkb.BandHeaderSize+int(b.Width)*int(b.Height)))
	if le {
		out = append(out, 1)
	} else {
		out = append(out, 0)
	}
	out = wkb.AppendUint16(out, le, b.Version)
	out = wkb.AppendUint16(out, le, uint16(len(b.bands)))
	out = wkb.AppendFloat64(out, le, b.ScaleX)
	out = wkb.AppendFloat64(out, le, b.ScaleY)
	out = wkb.AppendFloat64(out, le, b.OriginX)
	out = wkb.AppendFloat64(out, le, b.OriginY)
	out = wkb.AppendFloat64(out, le, b.SkewX)
	out = wkb.AppendFloat64(out, le, b.SkewY)
	out = wkb.AppendInt32(out, le, b.SRID)
	out = wkb.AppendUint16(out, le, b.Width)
	out = wkb.AppendUint16(out, le, b.Height)

	for _, s := range b.bands {
		tag := wkb.MakeBandTag(s.PixelType, s.OffDatabase, s.HasNodata, s.IsNodata)
		out = append(out, uint8(tag), s.Nodata)
		out = append(out, s.Pixels...)
	}

	return out
}
