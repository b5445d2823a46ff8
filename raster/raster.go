package raster

// Extent is the axis-aligned bounding rectangle of a raster in its spatial
// reference system. Bounds are normalized: MinX <= MaxX and MinY <= MaxY
// regardless of the sign of the scale terms (scaleY is negative in most
// north-up rasters, putting the origin at the max-Y corner).
type Extent struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the extent's span along X in geographic units.
func (e Extent) Width() float64 { return e.MaxX - e.MinX }

// Height returns the extent's span along Y in geographic units.
func (e Extent) Height() float64 { return e.MaxY - e.MinY }

// Raster is a decoded raster: its spatial extent, pixel dimensions, and a
// dense row-major RGBA pixel buffer. Values are immutable by convention once
// Decode returns; the decoder retains no reference to them.
type Raster struct {
	Extent Extent
	Width  int
	Height int

	// SRID is the spatial reference id declared in the header.
	SRID int32

	// Pix holds the pixels in row-major order, 4 bytes per pixel, channel 0
	// first. Pixel (x, y) starts at PixOffset(x, y).
	Pix []byte

	// PremultipliedAlpha records the alpha convention of Pix. Always true
	// for rasters produced by this decoder.
	PremultipliedAlpha bool
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
func (r *Raster) PixOffset(x, y int) int {
	return (y*r.Width + x) * 4
}

// RGBA8 returns the four channel bytes of the pixel at (x, y).
func (r *Raster) RGBA8(x, y int) (red, green, blue, alpha uint8) {
	off := r.PixOffset(x, y)
	return r.Pix[off], r.Pix[off+1], r.Pix[off+2], r.Pix[off+3]
}
