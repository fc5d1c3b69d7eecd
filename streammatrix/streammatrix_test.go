package streammatrix_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wafcore/waf/streammatrix"
)

func fixtureStream() string {
	return " ( 0 0 1 )  ( 0 2 2 ) \n" +
		" ( 1 1 3 )  ( 1 3 4 ) \n" +
		" ( 2 1 5 )  ( 2 2 6 ) \n" +
		" [ 3 4 ] "
}

func TestReader_Dimensions(t *testing.T) {
	r, err := streammatrix.NewReader[int](bytes.NewReader([]byte(fixtureStream())))
	require.NoError(t, err)
	assert.Equal(t, 3, r.Rows())
	assert.Equal(t, 4, r.Columns())

	size, err := r.RowSize(0)
	require.NoError(t, err)
	assert.Equal(t, 2, size)
}

func TestReader_RowIterator(t *testing.T) {
	r, err := streammatrix.NewReader[int](bytes.NewReader([]byte(fixtureStream())))
	require.NoError(t, err)

	it, err := r.RowIterator(1)
	require.NoError(t, err)
	var got [][2]int
	for it.Next() {
		got = append(got, [2]int{it.Column(), it.Value()})
	}
	require.NoError(t, it.Err())
	assert.Equal(t, [][2]int{{1, 3}, {3, 4}}, got)
}

func TestReader_Cursor(t *testing.T) {
	r, err := streammatrix.NewReader[int](bytes.NewReader([]byte(fixtureStream())))
	require.NoError(t, err)

	it := r.Cursor()
	var cells [][3]int
	for it.Next() {
		cells = append(cells, [3]int{it.Row(), it.Column(), it.Value()})
	}
	require.NoError(t, it.Err())
	assert.Equal(t, [][3]int{{0, 0, 1}, {0, 2, 2}, {1, 1, 3}, {1, 3, 4}, {2, 1, 5}, {2, 2, 6}}, cells)
}

// Scenario 6: row_begin(r) == row_end(r) iff row_size(r) == 0, including
// rows that have no non-zero cell at all.
func TestReader_EmptyRowBounds(t *testing.T) {
	src := " ( 0 0 1 ) \n" +
		" ( 2 1 2 ) \n" +
		" [ 4 4 ] "
	r, err := streammatrix.NewReader[int](bytes.NewReader([]byte(src)))
	require.NoError(t, err)

	for row := 0; row < r.Rows(); row++ {
		size, err := r.RowSize(row)
		require.NoError(t, err)
		empty, err := r.RowEnd(row)
		require.NoError(t, err)
		assert.Equal(t, size == 0, empty, "row %d", row)
	}

	it, err := r.RowIterator(1)
	require.NoError(t, err)
	assert.False(t, it.Next(), "row 1 has no cells")

	it, err = r.RowIterator(3)
	require.NoError(t, err)
	assert.False(t, it.Next(), "row 3 has no cells")
}

func TestReader_FromString(t *testing.T) {
	r, err := streammatrix.NewReader[int](strings.NewReader(fixtureStream()))
	require.NoError(t, err)
	assert.Equal(t, 3, r.Rows())
	assert.Equal(t, 4, r.Columns())
}
