package wkb

import (
	"encoding/binary"
	"math"
)

// Binary encoding utilities for assembling raster WKB streams.
//
// Raster WKB declares its byte order in the first byte of the stream, so
// every helper takes the order as a parameter. Append-style helpers fit the
// variable-length band layout better than put-at-offset ones.

// AppendUint16 appends a uint16 in the requested byte order.
func AppendUint16(dst []byte, littleEndian bool, v uint16) []byte {
	if littleEndian {
		return binary.LittleEndian.AppendUint16(dst, v)
	}
	return binary.BigEndian.AppendUint16(dst, v)
}

// AppendUint32 appends a uint32 in the requested byte order.
func AppendUint32(dst []byte, littleEndian bool, v uint32) []byte {
	if littleEndian {
		return binary.LittleEndian.AppendUint32(dst, v)
	}
	return binary.BigEndian.AppendUint32(dst, v)
}

// AppendInt32 appends an int32 in the requested byte order.
func AppendInt32(dst []byte, littleEndian bool, v int32) []byte {
	return AppendUint32(dst, littleEndian, uint32(v))
}

// AppendFloat64 appends the IEEE-754 bits of v in the requested byte order.
func AppendFloat64(dst []byte, littleEndian bool, v float64) []byte {
	bits := math.Float64bits(v)
	if littleEndian {
		return binary.LittleEndian.AppendUint64(dst, bits)
	}
	return binary.BigEndian.AppendUint64(dst, bits)
}
