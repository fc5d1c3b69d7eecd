package cooccurrence_test

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wafcore/waf/cooccurrence"
	"github.com/wafcore/waf/sparsematrix"
)

func TestCoEntryMatrix_SerializeRoundTrip(t *testing.T) {
	var zero cooccurrence.CoEntry
	m, err := sparsematrix.New[cooccurrence.CoEntry](4, 4, zero, 2, 2)
	require.NoError(t, err)
	require.NoError(t, m.ISet(0, 1, cooccurrence.CoEntry{D: 1.5, N: 2}))
	require.NoError(t, m.ISet(2, 3, cooccurrence.CoEntry{D: 7, N: 1}))

	var sb strings.Builder
	require.NoError(t, cooccurrence.WriteMatrix(&sb, m))

	m2, err := sparsematrix.New[cooccurrence.CoEntry](0, 0, zero, 2, 2)
	require.NoError(t, err)
	require.NoError(t, cooccurrence.ReadMatrix(bufio.NewReader(strings.NewReader(sb.String())), m2))

	require.Equal(t, 4, m2.Rows())
	require.Equal(t, 4, m2.Columns())

	e, err := m2.IGet(0, 1)
	require.NoError(t, err)
	require.Equal(t, cooccurrence.CoEntry{D: 1.5, N: 2}, e)

	e, err = m2.IGet(2, 3)
	require.NoError(t, err)
	require.Equal(t, cooccurrence.CoEntry{D: 7, N: 1}, e)
}
