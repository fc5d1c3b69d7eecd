// Package sparsematrix adds a hash-bucket overlay on top of crosslist,
// trading a little memory for near-O(1) existence and erase checks keyed
// by (row, column) rather than a ring walk.
package sparsematrix

import "errors"

// ErrInvalidArgument indicates a zero or negative sparse dimension passed
// to Sparse. Coordinate range errors are crosslist.ErrOutOfRange,
// propagated unchanged from the embedded CrossList.
var ErrInvalidArgument = errors.New("sparsematrix: invalid argument")
