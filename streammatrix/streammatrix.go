package streammatrix

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/wafcore/waf/serial"
)

// Reader is a read-only view over a serialized matrix stream (see
// package serial for the grammar). It indexes row byte offsets and sizes
// in a single pass over r, then answers row/cursor iteration by seeking
// back into r on demand rather than holding any cell in memory.
//
// A Reader is single-reader: it owns r's seek position, so concurrent
// iteration over the same Reader from two goroutines is undefined.
type Reader[T any] struct {
	r io.ReadSeeker

	rows, cols int
	rowBegins  []int64 // length rows+1; rowBegins[rows] is the dimension line's offset
	rowSizes   []int
	colSizes   []int
}

// NewReader builds a Reader by making one pass over r to index row
// offsets and sizes. r's position is left wherever the index scan ended;
// callers should not read r directly afterward.
func NewReader[T any](r io.ReadSeeker) (*Reader[T], error) {
	rows, cols, rowBegins, rowSizes, colSizes, err := buildIndex[T](r)
	if err != nil {
		return nil, err
	}
	return &Reader[T]{
		r: r, rows: rows, cols: cols,
		rowBegins: rowBegins, rowSizes: rowSizes, colSizes: colSizes,
	}, nil
}

func buildIndex[T any](r io.ReadSeeker) (rows, cols int, rowBegins []int64, rowSizes, colSizes []int, err error) {
	if _, err = r.Seek(0, io.SeekStart); err != nil {
		return
	}
	br := bufio.NewReader(r)

	rowBeginOf := map[int]int64{}
	rowCount := map[int]int{}
	colCount := map[int]int{}
	var dim serial.Dimension
	var dimOffset int64 = -1

	var offset int64
	lastRow := -1
	for {
		raw, readErr := br.ReadBytes('\n')
		lineOffset := offset
		offset += int64(len(raw))
		trimmed := bytes.TrimSpace(raw)
		if len(trimmed) > 0 {
			lr := bufio.NewReader(bytes.NewReader(trimmed))
			if trimmed[0] == '[' {
				d, derr := serial.ReadDimension(lr)
				if derr != nil {
					err = fmt.Errorf("streammatrix: reading dimension footer: %w", ErrParse)
					return
				}
				dim = d
				dimOffset = lineOffset
			} else {
				for {
					c, cerr := serial.ReadCell[T](lr)
					if cerr != nil {
						if errors.Is(cerr, io.EOF) {
							break
						}
						err = fmt.Errorf("streammatrix: reading cell: %w", ErrParse)
						return
					}
					if c.Row < lastRow {
						err = fmt.Errorf("streammatrix: row %d follows row %d: %w", c.Row, lastRow, ErrParse)
						return
					}
					lastRow = c.Row
					if _, seen := rowBeginOf[c.Row]; !seen {
						rowBeginOf[c.Row] = lineOffset
					}
					rowCount[c.Row]++
					colCount[c.Column]++
				}
			}
		}
		if readErr != nil {
			break
		}
	}

	if dimOffset < 0 {
		err = fmt.Errorf("streammatrix: stream has no dimension footer: %w", ErrParse)
		return
	}

	rows, cols = dim.Rows, dim.Columns
	rowBegins = make([]int64, rows+1)
	rowBegins[rows] = dimOffset
	next := dimOffset
	for row := rows - 1; row >= 0; row-- {
		if off, ok := rowBeginOf[row]; ok {
			next = off
		}
		rowBegins[row] = next
	}

	rowSizes = make([]int, rows)
	for row, n := range rowCount {
		if row >= 0 && row < rows {
			rowSizes[row] = n
		}
	}
	colSizes = make([]int, cols)
	for col, n := range colCount {
		if col >= 0 && col < cols {
			colSizes[col] = n
		}
	}
	return rows, cols, rowBegins, rowSizes, colSizes, nil
}

// Rows returns the matrix's row count, read from the stream's footer.
func (sm *Reader[T]) Rows() int { return sm.rows }

// Columns returns the matrix's column count.
func (sm *Reader[T]) Columns() int { return sm.cols }

// RowSize returns the number of stored values in row r.
func (sm *Reader[T]) RowSize(r int) (int, error) {
	if r < 0 || r >= sm.rows {
		return 0, fmt.Errorf("streammatrix: RowSize(%d): %w", r, ErrOutOfRange)
	}
	return sm.rowSizes[r], nil
}

// ColumnSize returns the number of stored values in column c.
func (sm *Reader[T]) ColumnSize(c int) (int, error) {
	if c < 0 || c >= sm.cols {
		return 0, fmt.Errorf("streammatrix: ColumnSize(%d): %w", c, ErrOutOfRange)
	}
	return sm.colSizes[c], nil
}

func (sm *Reader[T]) loadRow(r int) ([]serial.Cell[T], error) {
	start, end := sm.rowBegins[r], sm.rowBegins[r+1]
	if start == end {
		return nil, nil
	}
	if _, err := sm.r.Seek(start, io.SeekStart); err != nil {
		return nil, err
	}
	buf := make([]byte, end-start)
	if _, err := io.ReadFull(sm.r, buf); err != nil {
		return nil, err
	}
	lr := bufio.NewReader(bytes.NewReader(buf))
	var cells []serial.Cell[T]
	for {
		c, err := serial.ReadCell[T](lr)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("streammatrix: reading row %d: %w", r, ErrParse)
		}
		cells = append(cells, c)
	}
	return cells, nil
}

// Iterator walks cells of a Reader across a bounded row range, in
// row-major order, loading one row's cells at a time.
type Iterator[T any] struct {
	sm       *Reader[T]
	row      int
	endRow   int // exclusive
	cells    []serial.Cell[T]
	idx      int
	loadErr  error
	hasValue bool
}

// Next advances to the next cell and reports whether one was found
// before reaching the end of the bounded range. Check Err after Next
// returns false.
func (it *Iterator[T]) Next() bool {
	for {
		if it.idx < len(it.cells) {
			it.hasValue = true
			it.idx++
			return true
		}
		if it.row >= it.endRow {
			it.hasValue = false
			return false
		}
		cells, err := it.sm.loadRow(it.row)
		it.row++
		if err != nil {
			it.loadErr = err
			it.hasValue = false
			return false
		}
		it.cells = cells
		it.idx = 0
	}
}

// Err returns the first stream error encountered during iteration, if
// any.
func (it *Iterator[T]) Err() error { return it.loadErr }

func (it *Iterator[T]) current() serial.Cell[T] { return it.cells[it.idx-1] }

// Row returns the current cell's row. Valid only after Next returns true.
func (it *Iterator[T]) Row() int { return it.current().Row }

// Column returns the current cell's column. Valid only after Next
// returns true.
func (it *Iterator[T]) Column() int { return it.current().Column }

// Value returns the current cell's value. Valid only after Next returns
// true.
func (it *Iterator[T]) Value() T { return it.current().Value }

// RowIterator returns an iterator bounded to row r's stored cells.
func (sm *Reader[T]) RowIterator(r int) (*Iterator[T], error) {
	if r < 0 || r >= sm.rows {
		return nil, fmt.Errorf("streammatrix: RowIterator(%d): %w", r, ErrOutOfRange)
	}
	return &Iterator[T]{sm: sm, row: r, endRow: r + 1}, nil
}

// RowEnd reports whether row r is empty (row_begin(r) == row_end(r) in
// the original's terms): true iff RowSize(r) == 0.
func (sm *Reader[T]) RowEnd(r int) (bool, error) {
	if r < 0 || r >= sm.rows {
		return false, fmt.Errorf("streammatrix: RowEnd(%d): %w", r, ErrOutOfRange)
	}
	return sm.rowBegins[r] == sm.rowBegins[r+1], nil
}

// Cursor returns an iterator over every stored cell in the whole matrix,
// in row-major order.
func (sm *Reader[T]) Cursor() *Iterator[T] {
	return &Iterator[T]{sm: sm, row: 0, endRow: sm.rows}
}
