package raster

import (
	"github.com/joshuapare/rasterkit/internal/mmfile"
)

// Open memory-maps the raster WKB file at path read-only and decodes it.
// The mapping never outlives the call: Decode copies pixel data into a fresh
// buffer, so the returned Raster holds no reference to the file.
func Open(path string, opts ...Option) (*Raster, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cleanup() }() // unmap failure cannot affect the copied-out result

	return Decode(data, opts...)
}
