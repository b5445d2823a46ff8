// Package types holds the public diagnostic types emitted while decoding
// raster WKB streams. They are defined apart from the raster package so that
// alternative sinks (loggers, collectors, test doubles) can depend on the
// types without pulling in the decoder.
package types
