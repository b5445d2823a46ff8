package raster

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeHex(t *testing.T) {
	raw := grayBuilder(2, 1, []byte{10, 20}).Bytes()

	for _, in := range []string{
		hex.EncodeToString(raw),
		`\x` + hex.EncodeToString(raw),
		"  " + hex.EncodeToString(raw) + "\n",
	} {
		r, err := DecodeHex(in)
		require.NoError(t, err, "input %q", in)
		red, _, _, _ := r.RGBA8(1, 0)
		require.Equal(t, uint8(20), red)
	}
}

func TestDecodeHexInvalid(t *testing.T) {
	r, err := DecodeHex("zz")
	require.Error(t, err)
	require.Nil(t, r)

	// Valid hex, truncated stream.
	r, err = DecodeHex("0000")
	require.ErrorIs(t, err, ErrUnexpectedEOF)
	require.Nil(t, r)
}
