// Package activation implements the WAF (Word Activation Force) engine:
// the directed per-edge measure built from co-occurrence counts and term
// frequencies.
package activation

import (
	"github.com/wafcore/waf/cooccurrence"
	"github.com/wafcore/waf/crosslist"
	"github.com/wafcore/waf/sparsematrix"
	"github.com/wafcore/waf/termset"
)

// Score computes the scalar WAF value n^2 / (fi * fj * dMean^2) for a
// single edge, used by callers that hold edges one at a time (e.g. a
// streammatrix-backed co-occurrence source).
func Score(n uint64, dMean float64, fi, fj uint64) float64 {
	if fi == 0 || fj == 0 || dMean == 0 {
		return 0
	}
	nn := float64(n)
	return (nn * nn) / (float64(fi) * float64(fj) * dMean * dMean)
}

// Compute walks co in row-major order and emits a WAF matrix: for every
// edge whose endpoints both satisfy care, computes Score from co's
// (dMean, n) entry and f, and writes it into the output only if it meets
// precision. co's entries are assumed already converted to mean distance
// (see cooccurrence.MeanDistance). Writes use the tail-biased RInsert,
// cheap because edges arrive in row-major order.
func Compute(co *sparsematrix.Matrix[cooccurrence.CoEntry], f *termset.Frequencies, care func(termset.Termid) bool, precision float64) (*crosslist.CrossList[float64], error) {
	out := crosslist.New[float64](co.Rows(), co.Columns(), 0)

	it := co.CursorIterator()
	for it.Next() {
		i, j := it.Row(), it.Column()
		ti, tj := termset.Termid(i), termset.Termid(j)
		if !care(ti) || !care(tj) {
			continue
		}
		entry := it.Value()
		if entry.N == 0 {
			continue
		}
		score := Score(entry.N, entry.D, f.Get(ti), f.Get(tj))
		if score < precision {
			continue
		}
		if _, err := out.RInsert(i, j, score); err != nil {
			return nil, err
		}
	}
	return out, nil
}
