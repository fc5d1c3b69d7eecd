package crosslist_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wafcore/waf/crosslist"
)

// Stage 1: an empty CrossList reports zero size and default reads.
func TestCrossList_Empty(t *testing.T) {
	cl := crosslist.New[int](3, 4, -1)
	assert.True(t, cl.Empty())
	assert.Equal(t, 3, cl.Rows())
	assert.Equal(t, 4, cl.Columns())

	v, err := cl.Get(1, 2)
	require.NoError(t, err)
	assert.Equal(t, -1, v)
}

// Stage 2: Insert/Exist/Erase round trip, plus duplicate-insert rejection.
func TestCrossList_InsertExistErase(t *testing.T) {
	cl := crosslist.New[int](3, 3, 0)

	ok, err := cl.Insert(1, 1, 42)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = cl.Insert(1, 1, 99)
	require.NoError(t, err)
	assert.False(t, ok, "Insert must not overwrite an existing value")

	exists, err := cl.Exist(1, 1)
	require.NoError(t, err)
	assert.True(t, exists)

	v, err := cl.Get(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	erased, err := cl.Erase(1, 1)
	require.NoError(t, err)
	assert.True(t, erased)

	exists, err = cl.Exist(1, 1)
	require.NoError(t, err)
	assert.False(t, exists)
}

// Stage 3: Set always overwrites, At always creates.
func TestCrossList_SetAt(t *testing.T) {
	cl := crosslist.New[int](2, 2, 0)

	require.NoError(t, cl.Set(0, 0, 7))
	require.NoError(t, cl.Set(0, 0, 8))
	v, err := cl.Get(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 8, v)

	p, err := cl.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, *p)
	*p = 55
	v, err = cl.Get(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 55, v)
}

// Stage 4: out-of-range coordinates always return ErrOutOfRange.
func TestCrossList_OutOfRange(t *testing.T) {
	cl := crosslist.New[int](2, 2, 0)

	_, err := cl.Get(5, 0)
	assert.True(t, errors.Is(err, crosslist.ErrOutOfRange))

	_, err = cl.Insert(-1, 0, 1)
	assert.True(t, errors.Is(err, crosslist.ErrOutOfRange))

	_, err = cl.At(0, 9)
	assert.True(t, errors.Is(err, crosslist.ErrOutOfRange))
}

// Stage 5: row and column iteration visit stored cells in coordinate order.
func TestCrossList_RowColumnIteration(t *testing.T) {
	cl := crosslist.New[int](3, 3, 0)
	cells := [][3]int{{0, 2, 1}, {0, 0, 2}, {0, 1, 3}, {1, 1, 4}, {2, 1, 5}}
	for _, c := range cells {
		_, err := cl.Insert(c[0], c[1], c[2])
		require.NoError(t, err)
	}

	rowIt, err := cl.RowIterator(0)
	require.NoError(t, err)
	var cols []int
	for rowIt.Next() {
		cols = append(cols, rowIt.Column())
	}
	assert.Equal(t, []int{0, 1, 2}, cols)

	colIt, err := cl.ColumnIterator(1)
	require.NoError(t, err)
	var rows []int
	for colIt.Next() {
		rows = append(rows, colIt.Row())
	}
	assert.Equal(t, []int{0, 1, 2}, rows)
}

// Stage 6: reverse iteration visits the same ring tail to head.
func TestCrossList_ReverseIteration(t *testing.T) {
	cl := crosslist.New[int](1, 5, 0)
	for c := 0; c < 5; c++ {
		_, err := cl.Insert(0, c, c*10)
		require.NoError(t, err)
	}

	fwd, err := cl.RowIterator(0)
	require.NoError(t, err)
	var forward []int
	for fwd.Next() {
		forward = append(forward, fwd.Column())
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, forward)

	rev, err := cl.RowIterator(0)
	require.NoError(t, err)
	rev = rev.Reverse()
	var reverse []int
	for rev.Next() {
		reverse = append(reverse, rev.Column())
	}
	assert.Equal(t, []int{4, 3, 2, 1, 0}, reverse)
}

// Stage 7: CursorIterator walks every stored cell in row-major order,
// skipping empty rows.
func TestCrossList_CursorIteration(t *testing.T) {
	cl := crosslist.New[int](4, 2, 0)
	_, _ = cl.Insert(0, 1, 1)
	_, _ = cl.Insert(2, 0, 2)
	_, _ = cl.Insert(2, 1, 3)

	it := cl.CursorIterator()
	var visited [][2]int
	for it.Next() {
		visited = append(visited, [2]int{it.Row(), it.Column()})
	}
	assert.Equal(t, [][2]int{{0, 1}, {2, 0}, {2, 1}}, visited)
}

// Stage 7b: a reversed CursorIterator walks rows last-to-first and, within
// each row, rightmost column to leftmost.
func TestCrossList_ReverseCursorIteration(t *testing.T) {
	cl := crosslist.New[int](4, 2, 0)
	_, _ = cl.Insert(0, 1, 1)
	_, _ = cl.Insert(2, 0, 2)
	_, _ = cl.Insert(2, 1, 3)

	it := cl.CursorIterator().Reverse()
	var visited [][2]int
	for it.Next() {
		visited = append(visited, [2]int{it.Row(), it.Column()})
	}
	assert.Equal(t, [][2]int{{2, 1}, {2, 0}, {0, 1}}, visited)
}

// Stage 8: Transpose swaps row and column roles and preserves values.
func TestCrossList_Transpose(t *testing.T) {
	cl := crosslist.New[int](2, 3, 0)
	_, _ = cl.Insert(0, 2, 9)
	_, _ = cl.Insert(1, 0, 4)

	cl.Transpose()
	assert.Equal(t, 3, cl.Rows())
	assert.Equal(t, 2, cl.Columns())

	v, err := cl.Get(2, 0)
	require.NoError(t, err)
	assert.Equal(t, 9, v)

	v, err = cl.Get(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, v)
}

// Stage 9: RowReserve/ColumnReserve shrink erases vanished cells and grow
// adds addressable, empty capacity.
func TestCrossList_Reserve(t *testing.T) {
	cl := crosslist.New[int](3, 3, 0)
	_, _ = cl.Insert(2, 2, 1)

	require.NoError(t, cl.RowReserve(5))
	assert.Equal(t, 5, cl.Rows())
	v, err := cl.Get(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	require.NoError(t, cl.RowReserve(1))
	assert.Equal(t, 1, cl.Rows())
	assert.Equal(t, 0, cl.Size(), "shrinking rows must erase cells in vanished rows")
}

// Stage 10: Clear empties the grid but keeps its dimensions.
func TestCrossList_Clear(t *testing.T) {
	cl := crosslist.New[int](2, 2, 0)
	_, _ = cl.Insert(0, 0, 1)
	_, _ = cl.Insert(1, 1, 2)

	cl.Clear()
	assert.True(t, cl.Empty())
	assert.Equal(t, 2, cl.Rows())
	assert.Equal(t, 2, cl.Columns())
}

// Stage 11: Equal compares dimensions, size, and (row,col,value) triples.
func TestCrossList_Equal(t *testing.T) {
	a := crosslist.New[int](2, 2, 0)
	b := crosslist.New[int](2, 2, 0)
	_, _ = a.Insert(0, 1, 7)
	_, _ = b.Insert(0, 1, 7)
	assert.True(t, crosslist.Equal(a, b))

	_, _ = b.Insert(1, 0, 3)
	assert.False(t, crosslist.Equal(a, b))
}
