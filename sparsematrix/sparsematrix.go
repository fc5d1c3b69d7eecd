package sparsematrix

import (
	"container/list"
	"fmt"

	"github.com/wafcore/waf/crosslist"
)

type coord struct{ row, col int }

// Matrix embeds a crosslist.CrossList and layers a bucket-hash overlay on
// top of it, keyed by (row mod SR, column mod SC). The overlay is kept in
// sync by installing crosslist.Hooks at construction time; callers never
// need to maintain it themselves.
type Matrix[T any] struct {
	*crosslist.CrossList[T]

	sr, sc int
	table  [][]list.List // table[r%sr][c%sc]
}

// New constructs an empty Matrix with the given row/column counts and
// default value, with the bucket overlay shaped sr x sc.
func New[T any](rows, columns int, defaultValue T, sr, sc int) (*Matrix[T], error) {
	m := &Matrix[T]{CrossList: crosslist.New(rows, columns, defaultValue)}
	if err := m.Sparse(sr, sc); err != nil {
		return nil, err
	}
	m.installHooks()
	return m, nil
}

func (m *Matrix[T]) installHooks() {
	m.SetHooks(&crosslist.Hooks{
		OnInsert: func(row, col int) { m.bucketAt(row, col).PushBack(coord{row, col}) },
		OnErase:  func(row, col int) { m.removeFromBucket(row, col) },
	})
}

func (m *Matrix[T]) bucketAt(row, col int) *list.List {
	return &m.table[row%m.sr][col%m.sc]
}

func (m *Matrix[T]) removeFromBucket(row, col int) {
	b := m.bucketAt(row, col)
	for e := b.Front(); e != nil; e = e.Next() {
		if e.Value.(coord) == (coord{row, col}) {
			b.Remove(e)
			return
		}
	}
}

// Sparse reshapes the bucket overlay to sr x sc, rebuilding every bucket
// from the current contents of the embedded CrossList. Both dimensions
// must be positive.
func (m *Matrix[T]) Sparse(sr, sc int) error {
	if sr <= 0 || sc <= 0 {
		return fmt.Errorf("sparsematrix: Sparse(%d,%d): %w", sr, sc, ErrInvalidArgument)
	}
	m.sr, m.sc = sr, sc
	m.table = make([][]list.List, sr)
	for i := range m.table {
		m.table[i] = make([]list.List, sc)
	}
	if m.CrossList == nil {
		return nil
	}
	it := m.CursorIterator()
	for it.Next() {
		m.bucketAt(it.Row(), it.Column()).PushBack(coord{it.Row(), it.Column()})
	}
	return nil
}

// SparseDims returns the overlay's current (SR, SC).
func (m *Matrix[T]) SparseDims() (int, int) { return m.sr, m.sc }

// ilocate scans the bucket for (row, col) and reports whether it holds
// that coordinate.
func (m *Matrix[T]) ilocate(row, col int) bool {
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Columns() {
		return false
	}
	b := m.bucketAt(row, col)
	for e := b.Front(); e != nil; e = e.Next() {
		if e.Value.(coord) == (coord{row, col}) {
			return true
		}
	}
	return false
}

// IExist reports whether (row, col) holds a value, checking the bucket
// first (O(bucket size)) rather than walking a row or column ring.
func (m *Matrix[T]) IExist(row, col int) (bool, error) {
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Columns() {
		return false, fmt.Errorf("sparsematrix: IExist(%d,%d): %w", row, col, crosslist.ErrOutOfRange)
	}
	return m.ilocate(row, col), nil
}

// IGet returns the value at (row, col), or the configured default if the
// bucket check finds it absent.
func (m *Matrix[T]) IGet(row, col int) (T, error) {
	var zero T
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Columns() {
		return zero, fmt.Errorf("sparsematrix: IGet(%d,%d): %w", row, col, crosslist.ErrOutOfRange)
	}
	if !m.ilocate(row, col) {
		return m.DefaultValue(), nil
	}
	return m.Get(row, col)
}

// ISet stores value at (row, col), overwriting any existing value. The
// hash overlay is kept current by the hooks installed at construction.
func (m *Matrix[T]) ISet(row, col int, value T) error {
	return m.Set(row, col, value)
}

// IAt returns a mutable pointer to the value at (row, col), creating a
// default-valued entry (and bucket slot, via the insert hook) if absent.
func (m *Matrix[T]) IAt(row, col int) (*T, error) {
	return m.At(row, col)
}

// IErase removes the value at (row, col) if present, returning whether
// anything was removed. The bucket overlay is updated by the erase hook.
func (m *Matrix[T]) IErase(row, col int) (bool, error) {
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Columns() {
		return false, fmt.Errorf("sparsematrix: IErase(%d,%d): %w", row, col, crosslist.ErrOutOfRange)
	}
	if !m.ilocate(row, col) {
		return false, nil
	}
	return m.Erase(row, col)
}

// Transpose transposes the embedded CrossList, then reshapes the overlay
// with SR and SC swapped to match the new orientation.
func (m *Matrix[T]) Transpose() error {
	m.CrossList.Transpose()
	return m.Sparse(m.sc, m.sr)
}
