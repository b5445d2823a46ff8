package raster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gray.wkb")
	require.NoError(t, os.WriteFile(path, grayBuilder(2, 1, []byte{10, 20}).Bytes(), 0o644))

	r, err := Open(path)
	require.NoError(t, err)
	require.Equal(t, 2, r.Width)

	red, green, blue, alpha := r.RGBA8(0, 0)
	require.Equal(t, [4]uint8{10, 10, 10, 255}, [4]uint8{red, green, blue, alpha})
}

func TestOpenMissingFile(t *testing.T) {
	r, err := Open(filepath.Join(t.TempDir(), "nope.wkb"))
	require.Error(t, err)
	require.Nil(t, r)
}

func TestOpenEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.wkb")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	r, err := Open(path)
	require.ErrorIs(t, err, ErrUnexpectedEOF)
	require.Nil(t, r)
}
