package raster

import (
	"github.com/joshuapare/rasterkit/internal/buf"
	"github.com/joshuapare/rasterkit/internal/wkb"
)

// Info reports the header of a raster WKB stream without decoding any pixel
// data.
type Info struct {
	LittleEndian bool    `json:"little_endian"`
	Version      uint16  `json:"version"`
	Bands        uint16  `json:"bands"`
	ScaleX       float64 `json:"scale_x"`
	ScaleY       float64 `json:"scale_y"`
	OriginX      float64 `json:"origin_x"`
	OriginY      float64 `json:"origin_y"`
	SRID         int32   `json:"srid"`
	Width        uint16  `json:"width"`
	Height       uint16  `json:"height"`
	Extent       Extent  `json:"extent"`
}

// Inspect parses and validates the header only. Unlike Decode it accepts any
// band count, since reporting a header is useful even for layouts the
// decoder does not handle. Version and rotation checks still apply.
func Inspect(data []byte) (Info, error) {
	desc, err := wkb.ParseDescriptor(buf.NewCursor(data))
	if err != nil {
		return Info{}, err
	}
	return Info{
		LittleEndian: desc.LittleEndian,
		Version:      desc.Version,
		Bands:        desc.Bands,
		ScaleX:       desc.ScaleX,
		ScaleY:       desc.ScaleY,
		OriginX:      desc.OriginX,
		OriginY:      desc.OriginY,
		SRID:         desc.SRID,
		Width:        desc.Width,
		Height:       desc.Height,
		Extent:       extentOf(desc),
	}, nil
}
