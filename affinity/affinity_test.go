package affinity_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wafcore/waf/affinity"
	"github.com/wafcore/waf/crosslist"
	"github.com/wafcore/waf/termset"
)

func alwaysCare(termset.Termid) bool { return true }

// Seven-term fixture: t,u,v,w,x,y,z mapped to 0..6. Edges:
// t->u=0.04, w->u=0.05, z->u=0.05, u->x=0.03, u->y=0.03,
// t->v=0.05, w->v=0.02, v->x=0.06, v->y=0.03, v->z=0.04.
// Expect K_mean(u,v)~=0.4, L_mean(u,v)~=0.5, aff(u,v)~=0.45.
func sevenTermFixture(t *testing.T) (waf *crosslist.CrossList[float64], termOf map[string]int) {
	t.Helper()
	termOf = map[string]int{"t": 0, "u": 1, "v": 2, "w": 3, "x": 4, "y": 5, "z": 6}
	waf = crosslist.New[float64](7, 7, 0)

	edges := []struct {
		from, to string
		w        float64
	}{
		{"t", "u", 0.04},
		{"w", "u", 0.05},
		{"z", "u", 0.05},
		{"u", "x", 0.03},
		{"u", "y", 0.03},
		{"t", "v", 0.05},
		{"w", "v", 0.02},
		{"v", "x", 0.06},
		{"v", "y", 0.03},
		{"v", "z", 0.04},
	}
	for _, e := range edges {
		_, err := waf.Insert(termOf[e.from], termOf[e.to], e.w)
		require.NoError(t, err)
	}
	return waf, termOf
}

func TestCompute_SevenTermFixture(t *testing.T) {
	waf, termOf := sevenTermFixture(t)

	out, err := affinity.Compute(waf, alwaysCare, 0)
	require.NoError(t, err)

	u, v := termOf["u"], termOf["v"]
	got, err := out.Get(u, v)
	require.NoError(t, err)
	assert.True(t, math.Abs(got-0.45) < 0.01, "aff(u,v) = %v, want ~0.45", got)

	symmetric, err := out.Get(v, u)
	require.NoError(t, err)
	assert.InDelta(t, got, symmetric, 1e-12)
}

func TestCompute_DiagonalIsOne(t *testing.T) {
	waf, termOf := sevenTermFixture(t)
	out, err := affinity.Compute(waf, alwaysCare, 0)
	require.NoError(t, err)

	for _, id := range termOf {
		v, err := out.Get(id, id)
		require.NoError(t, err)
		assert.Equal(t, 1.0, v)
	}
}

func TestCompute_IsolatedTermGetsNoEntries(t *testing.T) {
	waf, termOf := sevenTermFixture(t)
	_, err := affinity.Compute(waf, alwaysCare, 0)
	require.NoError(t, err)

	// x and y have no out-edges and are not symmetric peers of u/v in
	// the same way; pick a genuinely disconnected term by adding one.
	isolated := 7
	waf2 := crosslist.New[float64](8, 8, 0)
	it := waf.CursorIterator()
	for it.Next() {
		_, err := waf2.Insert(it.Row(), it.Column(), it.Value())
		require.NoError(t, err)
	}
	out2, err := affinity.Compute(waf2, alwaysCare, 0)
	require.NoError(t, err)

	for id := range termOf {
		exists, err := out2.Exist(isolated, termOf[id])
		require.NoError(t, err)
		assert.False(t, exists)
	}
}

func TestDiagonal_SameMatrixIsVacuouslyOne(t *testing.T) {
	waf, _ := sevenTermFixture(t)
	got, err := affinity.Diagonal(waf, waf, alwaysCare, 0)
	require.NoError(t, err)
	for _, v := range got {
		assert.Equal(t, 1.0, v)
	}
}

func TestDiagonal_DistinctMatrices(t *testing.T) {
	wafA, termOf := sevenTermFixture(t)
	wafB := crosslist.New[float64](7, 7, 0)
	it := wafA.CursorIterator()
	for it.Next() {
		_, err := wafB.Insert(it.Row(), it.Column(), it.Value())
		require.NoError(t, err)
	}

	got, err := affinity.Diagonal(wafA, wafB, alwaysCare, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got[termset.Termid(termOf["u"])], 1e-9)
}
