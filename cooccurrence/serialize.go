package cooccurrence

import (
	"bufio"
	"fmt"
	"io"

	"github.com/wafcore/waf/serial"
	"github.com/wafcore/waf/sparsematrix"
)

// WriteMatrix serializes a co-occurrence matrix as nested-pair cells,
// "( row col ( D N ) )" row-major, followed by a dimension footer — the
// pair-in-cell grammar the original's PairCellSerializationTest exercises,
// since CoEntry is the Go analogue of std::pair<double, size_t>.
func WriteMatrix(w io.Writer, m *sparsematrix.Matrix[CoEntry]) error {
	curRow := -1
	it := m.CursorIterator()
	for it.Next() {
		row, col, v := it.Row(), it.Column(), it.Value()
		if row != curRow {
			if curRow != -1 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			curRow = row
		}
		if _, err := fmt.Fprintf(w, " ( %d %d ( %v %d ) ) ", row, col, v.D, v.N); err != nil {
			return err
		}
	}
	if curRow != -1 {
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return serial.WriteDimension(w, serial.Dimension{Rows: m.Rows(), Columns: m.Columns()})
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
			return fmt.Errorf("cooccurrence: expected %q, got %q: %w", want, c, serial.ErrMalformed)
		}
		return nil
	}
}

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
			return c, nil
		}
		return c, nil
	}
}

// ReadMatrix parses a co-occurrence matrix written by WriteMatrix into m.
func ReadMatrix(r *bufio.Reader, m *sparsematrix.Matrix[CoEntry]) error {
	type rawCell struct {
		row, col int
		entry    CoEntry
	}
	var cells []rawCell
	for {
		tok, err := peekNonSpace(r)
		if err != nil {
			return err
		}
		if tok == '[' {
			dim, err := serial.ReadDimension(r)
			if err != nil {
				return err
			}
			if err := m.Reserve(dim.Rows, dim.Columns); err != nil {
				return err
			}
			break
		}
		if err := expectRune(r, '('); err != nil {
			return err
		}
		var row, col int
		if _, err := fmt.Fscan(r, &row, &col); err != nil {
			return fmt.Errorf("cooccurrence: reading cell coordinates: %w", err)
		}
		if err := expectRune(r, '('); err != nil {
			return err
		}
		var d float64
		var n uint64
		if _, err := fmt.Fscan(r, &d, &n); err != nil {
			return fmt.Errorf("cooccurrence: reading cell entry: %w", err)
		}
		if err := expectRune(r, ')'); err != nil {
			return err
		}
		if err := expectRune(r, ')'); err != nil {
			return err
		}
		cells = append(cells, rawCell{row: row, col: col, entry: CoEntry{D: d, N: n}})
	}
	for _, c := range cells {
		if err := m.Set(c.row, c.col, c.entry); err != nil {
			return err
		}
	}
	return nil
}
