package raster

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestImageView(t *testing.T) {
	r, err := Decode(grayBuilder(2, 2, []byte{0, 85, 170, 255}).Bytes())
	require.NoError(t, err)

	img := r.Image()
	require.Equal(t, 2, img.Bounds().Dx())
	require.Equal(t, 2, img.Bounds().Dy())

	require.Equal(t, color.RGBA{85, 85, 85, 255}, img.RGBAAt(1, 0))
	require.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(1, 1))

	// Zero-copy: the image shares the raster's pixel buffer.
	img.Pix[0] = 42
	require.Equal(t, uint8(42), r.Pix[0])
}
