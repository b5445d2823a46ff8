// Package raster decodes the PostGIS raster wire encoding (raster WKB) into
// an in-memory RGBA raster.
//
// # Overview
//
// A raster WKB stream is a self-describing binary encoding of a
// georeferenced multi-band pixel grid: a fixed header (endianness, version,
// band count, affine transform, SRID, dimensions) followed by one header and
// one payload per band. Decode performs a single linear pass over the input
// and produces a Raster: the derived spatial extent plus a dense
// 4-byte-per-pixel buffer in RGBA channel order.
//
// # Supported layouts
//
// Only band counts 1 (grayscale, replicated across the color channels) and
// 3 (one band per color channel) are decoded, and only 8-bit integer pixel
// types. The buffer is initialized fully opaque white before any band is
// written, so bands that turn out to be off-database or carry an unsupported
// pixel type leave well-defined white channels behind. Rotated rasters and
// protocol versions other than 0 are rejected outright.
//
// # Errors and diagnostics
//
// Structural problems (truncation, unsupported version, rotation,
// unsupported band count) abort the decode with a distinguishable sentinel
// error and no Raster. Per-band limitations (off-database band, unsupported
// pixel type, nodata values) never abort; they are reported through an
// injected Sink:
//
//	col := raster.NewCollector()
//	r, err := raster.Decode(data, raster.WithSink(col))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(col.Report().FormatText())
//
// Nodata values are detected and surfaced but never applied as masking;
// the nodata byte of every band header is consumed purely for alignment.
//
// Decoding is synchronous and allocates a fresh output buffer per call, so
// independent decodes are safe to run concurrently.
package raster
