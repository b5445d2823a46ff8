package raster

import (
	"fmt"

	"github.com/joshuapare/rasterkit/internal/buf"
	"github.com/joshuapare/rasterkit/internal/wkb"
	"github.com/joshuapare/rasterkit/pkg/types"
)

// Option configures a decode call.
type Option func(*decoder)

// WithSink routes non-fatal diagnostics (offline bands, unsupported pixel
// types, nodata values) to s. Without it they are silently dropped.
func WithSink(s Sink) Option {
	return func(d *decoder) { d.sink = s }
}

type decoder struct {
	sink Sink
}

func (d *decoder) warn(band, offset int, issue string, expected, actual any) {
	if d.sink == nil {
		return
	}
	d.sink.Record(types.Diagnostic{
		Severity: types.SevWarning,
		Band:     band,
		Offset:   offset,
		Issue:    issue,
		Expected: expected,
		Actual:   actual,
	})
}

// Decode parses a complete raster WKB stream into a Raster. The input must
// be supplied in full; nothing is streamed and data is never mutated.
//
// On any structural failure (ErrUnexpectedEOF, ErrUnsupportedVersion,
// ErrUnsupportedRotation, ErrUnsupportedBandCount) the returned Raster is
// nil; a partially filled raster never escapes. A non-nil Raster may still
// carry channels at their opaque-white defaults when bands were skipped;
// those cases surface through the Sink, not the error.
func Decode(data []byte, opts ...Option) (*Raster, error) {
	d := &decoder{}
	for _, opt := range opts {
		opt(d)
	}

	c := buf.NewCursor(data)
	desc, err := wkb.ParseDescriptor(c)
	if err != nil {
		return nil, err
	}

	if desc.Bands != 1 && desc.Bands != 3 {
		return nil, fmt.Errorf("raster: %d bands: %w", desc.Bands, ErrUnsupportedBandCount)
	}

	r, err := newWhiteRaster(desc)
	if err != nil {
		return nil, err
	}

	switch desc.Bands {
	case 1:
		err = d.readGrayscale(c, r)
	case 3:
		err = d.readRGB(c, r)
	}
	if err != nil {
		return nil, err
	}

	return r, nil
}

// newWhiteRaster allocates the output raster with every pixel opaque white,
// so skipped bands leave well-defined channels rather than zeroed memory.
func newWhiteRaster(desc wkb.Descriptor) (*Raster, error) {
	pixels, ok := buf.MulOverflowSafe(int(desc.Width), int(desc.Height))
	if !ok {
		return nil, fmt.Errorf("raster: %dx%d pixel count overflows", desc.Width, desc.Height)
	}
	size, ok := buf.MulOverflowSafe(pixels, wkb.PixelSize)
	if !ok {
		return nil, fmt.Errorf("raster: %dx%d buffer size overflows", desc.Width, desc.Height)
	}

	pix := make([]byte, size)
	for i := range pix {
		pix[i] = 0xFF
	}

	return &Raster{
		Extent:             extentOf(desc),
		Width:              int(desc.Width),
		Height:             int(desc.Height),
		SRID:               desc.SRID,
		Pix:                pix,
		PremultipliedAlpha: true,
	}, nil
}

// extentOf derives the normalized bounding rectangle
// [originX, originX + width*scaleX] x [originY, originY + height*scaleY].
func extentOf(desc wkb.Descriptor) Extent {
	x0 := desc.OriginX
	x1 := desc.OriginX + float64(desc.Width)*desc.ScaleX
	y0 := desc.OriginY
	y1 := desc.OriginY + float64(desc.Height)*desc.ScaleY
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Extent{MinX: x0, MinY: y0, MaxX: x1, MaxY: y1}
}

// readBandHeader consumes one band header: the tag byte and the nodata byte.
// The nodata byte is consumed even for bands that end up skipped, keeping the
// cursor aligned on the next band header.
func readBandHeader(c *buf.Cursor, band int) (wkb.BandTag, uint8, error) {
	tag, err := c.Uint8()
	if err != nil {
		return 0, 0, fmt.Errorf("band %d tag: %w", band, err)
	}
	nodata, err := c.Uint8()
	if err != nil {
		return 0, 0, fmt.Errorf("band %d nodata value: %w", band, err)
	}
	return wkb.BandTag(tag), nodata, nil
}

// bandSupported reports whether the band's payload can be decoded, emitting
// a diagnostic when it cannot.
func (d *decoder) bandSupported(tag wkb.BandTag, band, offset int) bool {
	if tag.OffDatabase() {
		d.warn(band, offset, "off-database band unsupported", nil, nil)
		return false
	}
	if pt := tag.PixelType(); !pt.EightBit() {
		d.warn(band, offset, "band pixel type unsupported", "8BSI or 8BUI", pt.String())
		return false
	}
	return true
}

// readGrayscale fills all three color channels from the single band,
// replicating each sample. Alpha keeps its initialized value.
func (d *decoder) readGrayscale(c *buf.Cursor, r *Raster) error {
	tag, nodata, err := readBandHeader(c, 0)
	if err != nil {
		return err
	}
	if !d.bandSupported(tag, 0, c.Offset()) {
		return nil
	}
	if tag.HasNodata() {
		d.warn(0, c.Offset(), "nodata value detected but not applied", nil, nodata)
	}

	payload, err := c.Take(r.Width * r.Height)
	if err != nil {
		return fmt.Errorf("band 0 payload: %w", err)
	}

	pix := r.Pix
	for i, v := range payload {
		off := i * wkb.PixelSize
		pix[off] = v
		pix[off+1] = v
		pix[off+2] = v
	}
	return nil
}

// readRGB fills one color channel per band. Bands are laid out sequentially
// in the stream, so each payload is consumed in full before the next band
// header. Skipped bands consume only their 2-byte header and leave their
// channel white.
func (d *decoder) readRGB(c *buf.Cursor, r *Raster) error {
	var firstNodata uint8
	seenNodata := false

	for band := 0; band < 3; band++ {
		tag, nodata, err := readBandHeader(c, band)
		if err != nil {
			return err
		}
		if !d.bandSupported(tag, band, c.Offset()) {
			continue
		}

		if !seenNodata {
			firstNodata, seenNodata = nodata, true
		} else if nodata != firstNodata {
			d.warn(band, c.Offset(), "nodata value differs from first band", firstNodata, nodata)
		}
		if tag.HasNodata() {
			d.warn(band, c.Offset(), "nodata value detected but not applied", nil, nodata)
		}

		payload, err := c.Take(r.Width * r.Height)
		if err != nil {
			return fmt.Errorf("band %d payload: %w", band, err)
		}

		pix := r.Pix
		for i, v := range payload {
			pix[i*wkb.PixelSize+band] = v
		}
	}
	return nil
}
