// Package buf contains bounds helpers and the byte cursor used by the
// raster WKB decoding routines.
package buf

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrUnexpectedEOF indicates a read would advance past the end of the input.
var ErrUnexpectedEOF = errors.New("buf: unexpected end of input")

// Cursor owns a read position into an immutable byte buffer. Reads advance
// the position and fail with ErrUnexpectedEOF instead of panicking on
// underrun. The underlying buffer is never copied.
//
// Multi-byte reads take the byte order of the stream being decoded; the WKB
// encoding declares it in its first byte, so the order is not known until
// after the first read.
type Cursor struct {
	data []byte
	off  int
}

// NewCursor returns a cursor positioned at the start of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Offset returns the current read position.
func (c *Cursor) Offset() int { return c.off }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.data) - c.off }

// Take returns the next n bytes as a sub-slice of the underlying buffer and
// advances the cursor. The slice aliases the input; callers must not mutate it.
func (c *Cursor) Take(n int) ([]byte, error) {
	b, ok := Slice(c.data, c.off, n)
	if !ok {
		return nil, fmt.Errorf("read %d bytes at offset %d (have %d): %w",
			n, c.off, len(c.data), ErrUnexpectedEOF)
	}
	c.off += n
	return b, nil
}

// Skip advances the cursor by n bytes without reading them.
func (c *Cursor) Skip(n int) error {
	_, err := c.Take(n)
	return err
}

// Uint8 reads one byte.
func (c *Cursor) Uint8() (uint8, error) {
	b, err := c.Take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Uint16 reads a 2-byte unsigned integer in the requested byte order.
func (c *Cursor) Uint16(littleEndian bool) (uint16, error) {
	b, err := c.Take(2)
	if err != nil {
		return 0, err
	}
	if littleEndian {
		return binary.LittleEndian.Uint16(b), nil
	}
	return binary.BigEndian.Uint16(b), nil
}

// Uint32 reads a 4-byte unsigned integer in the requested byte order.
func (c *Cursor) Uint32(littleEndian bool) (uint32, error) {
	b, err := c.Take(4)
	if err != nil {
		return 0, err
	}
	if littleEndian {
		return binary.LittleEndian.Uint32(b), nil
	}
	return binary.BigEndian.Uint32(b), nil
}

// Int32 reads a 4-byte signed integer in the requested byte order.
func (c *Cursor) Int32(littleEndian bool) (int32, error) {
	v, err := c.Uint32(littleEndian)
	return int32(v), err
}

// Float64 reads an 8-byte IEEE-754 double in the requested byte order. The
// raw bits are reinterpreted, never rounded.
func (c *Cursor) Float64(littleEndian bool) (float64, error) {
	b, err := c.Take(8)
	if err != nil {
		return 0, err
	}
	var bits uint64
	if littleEndian {
		bits = binary.LittleEndian.Uint64(b)
	} else {
		bits = binary.BigEndian.Uint64(b)
	}
	return math.Float64frombits(bits), nil
}
