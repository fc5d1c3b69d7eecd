// Package serial implements the text serialization grammar shared by
// crosslist, sparsematrix, and streammatrix: whitespace-delimited
// parenthesized pairs/triads/cells and bracketed dimension footers.
//
//	pair      := "(" A B ")"
//	triad     := "(" A B C ")"
//	cell      := "(" row column value ")"
//	dimension := "[" rows columns "]"
//	matrix    := cell* dimension
//
// Readers and writers operate on plain ints, uint64s, and floats via
// fmt.Fscan/fmt.Fprintf, matching the original's operator>>/operator<<
// overloads token for token.
package serial

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrMalformed indicates the input did not match the expected grammar
// token (a missing delimiter, EOF mid-production, and so on).
var ErrMalformed = errors.New("serial: malformed input")

// Pair mirrors std::pair<A, B>.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triad mirrors the original's three-field pair extension.
type Triad[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Cell is one non-default entry of a matrix: value V at (Row, Column).
type Cell[V any] struct {
	Row, Column int
	Value       V
}

// Dimension is a matrix's row/column footer.
type Dimension struct {
	Rows, Columns int
}

func expectRune(r *bufio.Reader, want rune) error {
	for {
		c, _, err := r.ReadRune()
		if err != nil {
			return err
		}
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			continue
		}
		if c != want {
			return fmt.Errorf("serial: expected %q, got %q: %w", want, c, ErrMalformed)
		}
		return nil
	}
}

// ReadPair parses " ( A B ) " from r.
func ReadPair[A, B any](r *bufio.Reader) (Pair[A, B], error) {
	var p Pair[A, B]
	if err := expectRune(r, '('); err != nil {
		return p, err
	}
	if _, err := fmt.Fscan(r, &p.First, &p.Second); err != nil {
		return p, fmt.Errorf("serial: reading pair fields: %w", err)
	}
	if err := expectRune(r, ')'); err != nil {
		return p, err
	}
	return p, nil
}

// WritePair writes " ( A B ) " to w, matching the original's
// operator<<'s surrounding spaces.
func WritePair[A, B any](w io.Writer, p Pair[A, B]) error {
	_, err := fmt.Fprintf(w, " ( %v %v ) ", p.First, p.Second)
	return err
}

// ReadTriad parses " ( A B C ) " from r.
func ReadTriad[A, B, C any](r *bufio.Reader) (Triad[A, B, C], error) {
	var t Triad[A, B, C]
	if err := expectRune(r, '('); err != nil {
		return t, err
	}
	if _, err := fmt.Fscan(r, &t.First, &t.Second, &t.Third); err != nil {
		return t, fmt.Errorf("serial: reading triad fields: %w", err)
	}
	if err := expectRune(r, ')'); err != nil {
		return t, err
	}
	return t, nil
}

// WriteTriad writes " ( A B C ) " to w.
func WriteTriad[A, B, C any](w io.Writer, t Triad[A, B, C]) error {
	_, err := fmt.Fprintf(w, " ( %v %v %v ) ", t.First, t.Second, t.Third)
	return err
}

// ReadCell parses " ( row column value ) " from r.
func ReadCell[V any](r *bufio.Reader) (Cell[V], error) {
	var c Cell[V]
	if err := expectRune(r, '('); err != nil {
		return c, err
	}
	if _, err := fmt.Fscan(r, &c.Row, &c.Column, &c.Value); err != nil {
		return c, fmt.Errorf("serial: reading cell fields: %w", err)
	}
	if err := expectRune(r, ')'); err != nil {
		return c, err
	}
	return c, nil
}

// WriteCell writes " ( row column value ) " to w.
func WriteCell[V any](w io.Writer, c Cell[V]) error {
	_, err := fmt.Fprintf(w, " ( %d %d %v ) ", c.Row, c.Column, c.Value)
	return err
}

// ReadDimension parses " [ rows columns ] " from r.
func ReadDimension(r *bufio.Reader) (Dimension, error) {
	var d Dimension
	if err := expectRune(r, '['); err != nil {
		return d, err
	}
	if _, err := fmt.Fscan(r, &d.Rows, &d.Columns); err != nil {
		return d, fmt.Errorf("serial: reading dimension fields: %w", err)
	}
	if err := expectRune(r, ']'); err != nil {
		return d, err
	}
	return d, nil
}

// WriteDimension writes " [ rows columns ] " to w.
func WriteDimension(w io.Writer, d Dimension) error {
	_, err := fmt.Fprintf(w, " [ %d %d ] ", d.Rows, d.Columns)
	return err
}

// peekNonSpace returns the next non-whitespace rune without consuming
// anything beyond the whitespace run preceding it.
func peekNonSpace(r *bufio.Reader) (rune, error) {
	for {
		c, _, err := r.ReadRune()
		if err != nil {
			return 0, err
		}
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			continue
		}
		if err := r.UnreadRune(); err != nil {
			return c, nil // already consumed; caller must not re-peek
		}
		return c, nil
	}
}

// NextCell is the next_cell helper: it inspects the next non-whitespace
// rune and dispatches to ReadCell ('(') or ReadDimension ('['). isCell
// reports which production matched; exactly one of cell/dim is valid.
func NextCell[V any](r *bufio.Reader) (cell Cell[V], dim Dimension, isCell bool, err error) {
	c, err := peekNonSpace(r)
	if err != nil {
		return cell, dim, false, err
	}
	switch c {
	case '(':
		cell, err = ReadCell[V](r)
		return cell, dim, true, err
	case '[':
		dim, err = ReadDimension(r)
		return cell, dim, false, err
	default:
		return cell, dim, false, fmt.Errorf("serial: unexpected token %q: %w", c, ErrMalformed)
	}
}

// MatrixWriter is satisfied by any row-major matrix-like value that can
// enumerate its non-default cells. Implemented by crosslist.CrossList[T]
// and sparsematrix.Matrix[T] via a thin adapter in those packages.
type MatrixWriter[V any] interface {
	Rows() int
	Columns() int
	CursorCells(yield func(row, col int, value V) bool)
}

// WriteMatrix writes every cell yielded by m in row-major order, one
// newline-terminated line per row, followed by the trailing dimension
// footer.
func WriteMatrix[V any](w io.Writer, m MatrixWriter[V]) error {
	curRow := -1
	var werr error
	m.CursorCells(func(row, col int, value V) bool {
		if row != curRow {
			if curRow != -1 {
				if _, werr = fmt.Fprintln(w); werr != nil {
					return false
				}
			}
			curRow = row
		}
		if werr = WriteCell(w, Cell[V]{Row: row, Column: col, Value: value}); werr != nil {
			return false
		}
		return true
	})
	if werr != nil {
		return werr
	}
	if curRow != -1 {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return WriteDimension(w, Dimension{Rows: m.Rows(), Columns: m.Columns()})
}

// MatrixReader is satisfied by any sparse matrix type constructible from
// a stream of (row, col, value) cells plus a trailing dimension.
type MatrixReader[V any] interface {
	Reserve(rows, columns int) error
	Set(row, col int, value V) error
}

// ReadMatrix reads a stream of cells terminated by one Dimension line,
// reserving m's shape from the footer and setting every cell read.
func ReadMatrix[V any](r *bufio.Reader, m MatrixReader[V]) error {
	var cells []Cell[V]
	for {
		cell, dim, isCell, err := NextCell[V](r)
		if err != nil {
			return err
		}
		if !isCell {
			if err := m.Reserve(dim.Rows, dim.Columns); err != nil {
				return err
			}
			break
		}
		cells = append(cells, cell)
	}
	for _, c := range cells {
		if err := m.Set(c.Row, c.Column, c.Value); err != nil {
			return err
		}
	}
	return nil
}
