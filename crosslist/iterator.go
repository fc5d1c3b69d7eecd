package crosslist

// direction selects which pair of links an Iterator walks.
type direction int

const (
	dirRow direction = iota
	dirColumn
	dirCursor
)

// rawIter is the unexported link-walker shared by every public Iterator
// flavour. It never allocates past construction and tolerates the erase
// of the node it is currently positioned on, provided the caller captured
// cur before calling Erase (see CrossList.Clear).
type rawIter[T any] struct {
	cl        *CrossList[T]
	dir       direction
	reverse   bool
	header    int // ring anchor (row header, column header, or headers[0] for cursor)
	cursorRow int // next header to descend into, cursor mode only
	cur       int // current node index, or header when exhausted
	started   bool
}

func (it *rawIter[T]) stepNode(n int) int {
	nn := &it.cl.nodes[n]
	switch {
	case it.dir == dirRow && !it.reverse:
		return nn.right
	case it.dir == dirRow && it.reverse:
		return nn.left
	case it.dir == dirColumn && !it.reverse:
		return nn.down
	case it.dir == dirColumn && it.reverse:
		return nn.up
	case it.dir == dirCursor && it.reverse:
		return nn.left
	default:
		return nn.right
	}
}

func (it *rawIter[T]) next() bool {
	if it.dir != dirCursor {
		if !it.started {
			it.started = true
			it.cur = it.stepNode(it.header)
		} else {
			it.cur = it.stepNode(it.cur)
		}
		return it.cur != it.header
	}
	return it.nextCursor()
}

// nextCursor advances a whole-matrix scan row by row (last row first and
// right to left in reverse), skipping empty rows entirely.
func (it *rawIter[T]) nextCursor() bool {
	for {
		if it.started && it.cur != it.cl.headers[it.rowHeaderIndex()] {
			nxt := it.stepNode(it.cur)
			if nxt != it.cl.headers[it.rowHeaderIndex()] {
				it.cur = nxt
				return true
			}
		}
		it.started = true
		// advance to next non-empty row
		for {
			if it.reverse {
				it.cursorRow--
			} else {
				it.cursorRow++
			}
			if it.reverse {
				if it.cursorRow < 0 {
					return false
				}
			} else {
				if it.cursorRow >= it.cl.Rows() {
					return false
				}
			}
			if it.cl.rowSizes[it.cursorRow] > 0 {
				break
			}
		}
		header := it.cl.headers[it.cursorRow]
		it.cur = it.stepNode(header)
		if it.cur != header {
			return true
		}
	}
}

func (it *rawIter[T]) rowHeaderIndex() int {
	if it.dir == dirCursor {
		return it.cursorRow
	}
	return it.cl.nodes[it.header].row
}

// Iterator walks nodes of a CrossList in row order, column order, or full
// row-major cursor order, forward or reverse. The zero value is not
// usable; obtain one via CrossList.RowIterator, ColumnIterator, or
// CursorIterator.
type Iterator[T any] struct {
	raw rawIter[T]
}

// Next advances the iterator and reports whether a node is now positioned.
// Call it before the first Row/Column/Value access.
func (it *Iterator[T]) Next() bool { return it.raw.next() }

// Row returns the current node's row. Valid only after Next returns true.
func (it *Iterator[T]) Row() int { return it.raw.cl.nodes[it.raw.cur].row }

// Column returns the current node's column. Valid only after Next returns
// true.
func (it *Iterator[T]) Column() int { return it.raw.cl.nodes[it.raw.cur].col }

// Value returns the current node's value. Valid only after Next returns
// true.
func (it *Iterator[T]) Value() T { return it.raw.cl.nodes[it.raw.cur].value }

// Reverse returns an iterator over the same ring(s) walked tail-to-head
// instead of head-to-tail. Calling Reverse before any Next call is
// required; reversing mid-walk is undefined.
func (it Iterator[T]) Reverse() Iterator[T] {
	it.raw.reverse = !it.raw.reverse
	it.raw.started = false
	if it.raw.dir == dirCursor {
		if it.raw.reverse {
			it.raw.cursorRow = it.raw.cl.Rows()
		} else {
			it.raw.cursorRow = -1
		}
	}
	return it
}

// RowIterator returns an iterator over row r's stored values in increasing
// column order.
func (cl *CrossList[T]) RowIterator(r int) (Iterator[T], error) {
	if !cl.validRow(r) {
		var zero Iterator[T]
		return zero, ErrOutOfRange
	}
	return Iterator[T]{raw: rawIter[T]{cl: cl, dir: dirRow, header: cl.headers[r]}}, nil
}

// ColumnIterator returns an iterator over column c's stored values in
// increasing row order.
func (cl *CrossList[T]) ColumnIterator(c int) (Iterator[T], error) {
	if !cl.validCol(c) {
		var zero Iterator[T]
		return zero, ErrOutOfRange
	}
	return Iterator[T]{raw: rawIter[T]{cl: cl, dir: dirColumn, header: cl.headers[c]}}, nil
}

// CursorIterator returns an iterator over every stored value in row-major order:
// row 0's values left to right, then row 1's, and so on.
func (cl *CrossList[T]) CursorIterator() Iterator[T] {
	return Iterator[T]{raw: rawIter[T]{cl: cl, dir: dirCursor, cursorRow: -1}}
}

func (cl *CrossList[T]) cursorRaw() *rawIter[T] {
	it := &rawIter[T]{cl: cl, dir: dirCursor, cursorRow: -1}
	return it
}
