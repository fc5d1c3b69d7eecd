// Package crosslist implements the cross list: an ordered sparse grid of
// row and column rings sharing one vector of header sentinels.
//
// A CrossList[T] stores at most one value per (row, column) coordinate. Every
// stored value is linked into exactly one row ring and one column ring, each
// kept sorted by the orthogonal coordinate, so that row/column scans and
// point lookups both run in time proportional to local density rather than
// matrix size.
package crosslist

import "errors"

// Sentinel errors for crosslist operations. Callers should branch on these
// with errors.Is rather than comparing error strings.
var (
	// ErrOutOfRange indicates a row or column argument outside the live
	// [0,Rows())/[0,Columns()) region.
	ErrOutOfRange = errors.New("crosslist: row or column out of range")

	// ErrNotFound indicates At (const) found no node at the requested
	// coordinate.
	ErrNotFound = errors.New("crosslist: no value at coordinate")

	// ErrInvalidArgument indicates a malformed argument, such as a
	// negative count passed to RowReserve or ColumnReserve.
	ErrInvalidArgument = errors.New("crosslist: invalid argument")
)
