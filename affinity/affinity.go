// Package affinity implements the symmetric Affinity engine (C8): given a
// WAF matrix, derive a symmetric measure between term pairs from the
// overlap of their in- and out-neighbour weight profiles, with an
// algebraic upper bound that prunes most pairs before the expensive
// neighbour-list merge.
package affinity

import (
	"math"

	"github.com/wafcore/waf/crosslist"
	"github.com/wafcore/waf/termset"
)

// neighbour is one entry of a sorted in- or out-neighbour profile.
type neighbour struct {
	idx    int
	weight float64
}

func neighboursIn(waf *crosslist.CrossList[float64], i int, care func(termset.Termid) bool) ([]neighbour, error) {
	it, err := waf.ColumnIterator(i)
	if err != nil {
		return nil, err
	}
	var out []neighbour
	for it.Next() {
		r := it.Row()
		if !care(termset.Termid(r)) {
			continue
		}
		out = append(out, neighbour{idx: r, weight: it.Value()})
	}
	return out, nil
}

func neighboursOut(waf *crosslist.CrossList[float64], i int, care func(termset.Termid) bool) ([]neighbour, error) {
	it, err := waf.RowIterator(i)
	if err != nil {
		return nil, err
	}
	var out []neighbour
	for it.Next() {
		c := it.Column()
		if !care(termset.Termid(c)) {
			continue
		}
		out = append(out, neighbour{idx: c, weight: it.Value()})
	}
	return out, nil
}

// meanOverlap is the two-finger merge over two sorted neighbour profiles:
// a position present in both contributes min/max, a position present in
// only one contributes 0 to the sum but still counts toward the union
// size. A term with no neighbours at all is excluded by convention
// (returns 1) so its absence of evidence doesn't collapse the affinity
// product to 0.
func meanOverlap(a, b []neighbour) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 1
	}
	i, j, union := 0, 0, 0
	sum := 0.0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].idx == b[j].idx:
			wa, wb := a[i].weight, b[j].weight
			if wa < wb {
				sum += wa / wb
			} else if wb < wa {
				sum += wb / wa
			} else {
				sum += 1
			}
			union++
			i++
			j++
		case a[i].idx < b[j].idx:
			union++
			i++
		default:
			union++
			j++
		}
	}
	union += (len(a) - i) + (len(b) - j)
	if union == 0 {
		return 1
	}
	return sum / float64(union)
}

// boundFactor is the algebraic upper bound on a single overlap term: the
// smaller degree over the larger. A zero degree on either side matches
// the meanOverlap convention of 1, so the bound never undershoots the
// true value it is meant to bound.
func boundFactor(a, b int) float64 {
	if a == 0 || b == 0 {
		return 1
	}
	mn, mx := a, b
	if mn > mx {
		mn, mx = mx, mn
	}
	return float64(mn) / float64(mx)
}

type profile struct {
	in, out []neighbour
}

func (p profile) isolated() bool { return len(p.in) == 0 && len(p.out) == 0 }

// Compute emits the symmetric affinity matrix derived from waf restricted
// to termids accepted by care: aff(i,j) = sqrt(K_mean(i,j) * L_mean(i,j))
// where K_mean/L_mean are the in-/out-neighbour overlap means. Diagonal
// entries are fixed at 1. Entries below precision, including ones pruned
// by the algebraic upper bound, are omitted.
func Compute(waf *crosslist.CrossList[float64], care func(termset.Termid) bool, precision float64) (*crosslist.CrossList[float64], error) {
	out := crosslist.New[float64](waf.Rows(), waf.Columns(), 0)

	n := waf.Rows()
	profiles := make(map[int]profile, n)
	cared := make([]int, 0, n)
	for i := 0; i < n; i++ {
		t := termset.Termid(i)
		if !care(t) {
			continue
		}
		inN, err := neighboursIn(waf, i, care)
		if err != nil {
			return nil, err
		}
		outN, err := neighboursOut(waf, i, care)
		if err != nil {
			return nil, err
		}
		profiles[i] = profile{in: inN, out: outN}
		cared = append(cared, i)
	}

	for _, i := range cared {
		if _, err := out.Insert(i, i, 1); err != nil {
			return nil, err
		}
	}

	for a := 0; a < len(cared); a++ {
		i := cared[a]
		pi := profiles[i]
		if pi.isolated() {
			continue
		}
		for b := a + 1; b < len(cared); b++ {
			j := cared[b]
			pj := profiles[j]
			if pj.isolated() {
				continue
			}

			bound := math.Sqrt(boundFactor(len(pi.in), len(pj.in)) * boundFactor(len(pi.out), len(pj.out)))
			if bound < precision {
				continue
			}

			k := meanOverlap(pi.in, pj.in)
			l := meanOverlap(pi.out, pj.out)
			aff := math.Sqrt(k * l)
			if aff < precision {
				continue
			}
			if _, err := out.Insert(i, j, aff); err != nil {
				return nil, err
			}
			if _, err := out.Insert(j, i, aff); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Diagonal computes only the cross-matrix diagonal aff_A_B(i, i) for every
// cared-about i, the variant used to compare two WAF matrices (e.g.
// before/after a corpus update) without materializing the full
// cross-matrix affinity. If wafA and wafB are the same object, the
// result is vacuously 1 for every live i.
func Diagonal(wafA, wafB *crosslist.CrossList[float64], care func(termset.Termid) bool, precision float64) (map[termset.Termid]float64, error) {
	result := make(map[termset.Termid]float64)
	n := wafA.Rows()

	if wafA == wafB {
		for i := 0; i < n; i++ {
			t := termset.Termid(i)
			if care(t) {
				result[t] = 1
			}
		}
		return result, nil
	}

	for i := 0; i < n; i++ {
		t := termset.Termid(i)
		if !care(t) {
			continue
		}
		inA, err := neighboursIn(wafA, i, care)
		if err != nil {
			return nil, err
		}
		outA, err := neighboursOut(wafA, i, care)
		if err != nil {
			return nil, err
		}
		inB, err := neighboursIn(wafB, i, care)
		if err != nil {
			return nil, err
		}
		outB, err := neighboursOut(wafB, i, care)
		if err != nil {
			return nil, err
		}
		if len(inA) == 0 && len(outA) == 0 && len(inB) == 0 && len(outB) == 0 {
			continue
		}
		k := meanOverlap(inA, inB)
		l := meanOverlap(outA, outB)
		aff := math.Sqrt(k * l)
		if aff >= precision {
			result[t] = aff
		}
	}
	return result, nil
}
