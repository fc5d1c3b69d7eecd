package crosslist

import (
	"bufio"
	"io"

	"github.com/wafcore/waf/serial"
)

// CursorCells enumerates every stored (row, column, value) in row-major
// order, stopping early if yield returns false. It satisfies
// serial.MatrixWriter.
func (cl *CrossList[T]) CursorCells(yield func(row, col int, value T) bool) {
	it := cl.CursorIterator()
	for it.Next() {
		if !yield(it.Row(), it.Column(), it.Value()) {
			return
		}
	}
}

// WriteTo serializes cl using the serial package's matrix grammar: every
// non-default cell in row-major order, one line per row, followed by a
// trailing "[ rows columns ]" footer.
func (cl *CrossList[T]) WriteTo(w io.Writer) error {
	return serial.WriteMatrix[T](w, cl)
}

// ReadFrom replaces cl's contents by parsing the serial package's matrix
// grammar from r: a stream of "( row col value )" cells terminated by one
// "[ rows columns ]" dimension line, which also resizes cl.
func (cl *CrossList[T]) ReadFrom(r *bufio.Reader) error {
	cl.Clear()
	return serial.ReadMatrix[T](r, cl)
}
