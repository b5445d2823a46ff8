package raster

import "image"

// Image returns a zero-copy image.RGBA view over the raster's pixel buffer,
// suitable for PNG export or drawing. Mutating the returned image mutates
// the raster.
func (r *Raster) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    r.Pix,
		Stride: r.Width * 4,
		Rect:   image.Rect(0, 0, r.Width, r.Height),
	}
}
