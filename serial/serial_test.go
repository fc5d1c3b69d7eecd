package serial_test

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wafcore/waf/serial"
)

func TestReadWritePair_EndToEnd(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(" ( 2 5 ) "))
	p, err := serial.ReadPair[int, int](r)
	require.NoError(t, err)
	assert.Equal(t, serial.Pair[int, int]{First: 2, Second: 5}, p)

	var sb strings.Builder
	require.NoError(t, serial.WritePair(&sb, p))
	assert.Equal(t, " ( 2 5 ) ", sb.String())
}

func TestReadWriteTriad_EndToEnd(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(" ( 2 5 8 ) "))
	tr, err := serial.ReadTriad[int, int, int](r)
	require.NoError(t, err)
	assert.Equal(t, 2, tr.First)
	assert.Equal(t, 5, tr.Second)
	assert.Equal(t, 8, tr.Third)

	tr.Third = 9
	var sb strings.Builder
	require.NoError(t, serial.WriteTriad(&sb, tr))
	assert.Equal(t, " ( 2 5 9 ) ", sb.String())
}

func TestReadWriteCell_EndToEnd(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(" ( 2 5 8 ) "))
	c, err := serial.ReadCell[int](r)
	require.NoError(t, err)
	assert.Equal(t, serial.Cell[int]{Row: 2, Column: 5, Value: 8}, c)

	var sb strings.Builder
	require.NoError(t, serial.WriteCell(&sb, c))
	assert.Equal(t, " ( 2 5 8 ) ", sb.String())
}

func TestReadWriteDimension_EndToEnd(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(" [ 3 6 ] "))
	d, err := serial.ReadDimension(r)
	require.NoError(t, err)
	assert.Equal(t, serial.Dimension{Rows: 3, Columns: 6}, d)

	var sb strings.Builder
	require.NoError(t, serial.WriteDimension(&sb, d))
	assert.Equal(t, " [ 3 6 ] ", sb.String())
}

func TestNextCell_DispatchesOnLeadingToken(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(" ( 0 0 1 )  ( 0 2 2 ) \n [ 3 4 ] "))

	cell, _, isCell, err := serial.NextCell[int](r)
	require.NoError(t, err)
	require.True(t, isCell)
	assert.Equal(t, serial.Cell[int]{Row: 0, Column: 0, Value: 1}, cell)

	cell, _, isCell, err = serial.NextCell[int](r)
	require.NoError(t, err)
	require.True(t, isCell)
	assert.Equal(t, serial.Cell[int]{Row: 0, Column: 2, Value: 2}, cell)

	_, dim, isCell, err := serial.NextCell[int](r)
	require.NoError(t, err)
	require.False(t, isCell)
	assert.Equal(t, serial.Dimension{Rows: 3, Columns: 4}, dim)
}
