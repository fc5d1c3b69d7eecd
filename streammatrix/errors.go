// Package streammatrix provides a read-only, single-pass view over a
// serialized matrix stream: it indexes row byte offsets and sizes without
// ever materializing the cells, so callers can iterate one row of a
// matrix too large to load in full.
package streammatrix

import "errors"

// Sentinel errors for streammatrix operations.
var (
	// ErrParse indicates the stream could not be indexed: malformed
	// cells/dimension, or a row index that decreased.
	ErrParse = errors.New("streammatrix: malformed stream")

	// ErrOutOfRange indicates a row argument outside [0, Rows()).
	ErrOutOfRange = errors.New("streammatrix: row out of range")
)
