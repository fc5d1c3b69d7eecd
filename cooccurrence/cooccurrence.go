// Package cooccurrence implements the windowed directed co-occurrence
// accumulation that anchors the WAF analytics pipeline: for each distance
// d in a sliding window, count ordered term pairs that are the closest
// occurrence of their kind within the window, never pairing across a
// paragraph-boundary sentinel.
package cooccurrence

import (
	"github.com/wafcore/waf/sparsematrix"
	"github.com/wafcore/waf/termset"
)

// CoEntry is one accumulated (termLeft, termRight) cell: the sum of
// distances at which the pair was observed, and the number of times it
// was observed. D and N are kept separate through ingestion; only
// MeanDistance converts the sum to an average, deferring the float
// division to the point of consumption.
type CoEntry struct {
	D float64
	N uint64
}

// Care is a boolean classifier over termids restricting accumulation to
// a foreground or background subset.
type Care func(termset.Termid) bool

// Accumulate runs the windowed directed co-occurrence algorithm over
// terms, adding to target. A pair is counted when one endpoint satisfies
// careLeft and the other careRight, in either order; passing the same
// predicate for both collapses to the single-set form. window is W from the spec (the
// maximum counted distance is window-1). target must already have rows
// and columns large enough to address every termid pair observed (see
// termset.Set.MaxTermid), which is the caller's responsibility.
func Accumulate(terms []termset.Termid, careLeft, careRight Care, window int, target *sparsematrix.Matrix[CoEntry]) error {
	if window < 2 {
		return nil
	}
	for d := 1; d < window; d++ {
		if err := accumulateDistance(terms, careLeft, careRight, d, target); err != nil {
			return err
		}
	}
	return nil
}

// accumulateDistance handles one fixed distance d: a ring-buffered queue
// holds the d-1 termids strictly between the left and right cursors, and
// a running count of sentinels inside that queue.
func accumulateDistance(terms []termset.Termid, careLeft, careRight Care, d int, target *sparsematrix.Matrix[CoEntry]) error {
	n := len(terms)
	if n <= d {
		return nil
	}

	size := d - 1
	queue := make([]termset.Termid, size)
	copy(queue, terms[1:d])
	head := 0
	qDelim := 0
	for _, t := range queue {
		if t == termset.DelimTermid {
			qDelim++
		}
	}
	contains := func(t termset.Termid) bool {
		for _, q := range queue {
			if q == t {
				return true
			}
		}
		return false
	}

	for left, right := 0, d; right < n; left, right = left+1, right+1 {
		tLeft, tRight := terms[left], terms[right]

		if qDelim == 0 && tLeft != termset.DelimTermid && tRight != termset.DelimTermid {
			hit := (careLeft(tLeft) && careRight(tRight)) || (careLeft(tRight) && careRight(tLeft))
			if hit && !contains(tLeft) && !contains(tRight) {
				entry, err := target.IGet(int(tLeft), int(tRight))
				if err != nil {
					return err
				}
				entry.D += float64(d)
				entry.N++
				if err := target.ISet(int(tLeft), int(tRight), entry); err != nil {
					return err
				}
			}
		}

		// Slide the window: terms[right] (just used as the right
		// endpoint) becomes strictly-between for the next pair; the
		// oldest queued term (position left+1) falls out of range.
		if size > 0 {
			removed := queue[head]
			if removed == termset.DelimTermid {
				qDelim--
			}
			queue[head] = terms[right]
			if terms[right] == termset.DelimTermid {
				qDelim++
			}
			head = (head + 1) % size
		}
	}
	return nil
}

// MeanDistance converts every stored D from a running sum to an average
// (D /= N), in place. Inverse of TotalDistance: applying one then the
// other restores every entry with N > 0.
func MeanDistance(m *sparsematrix.Matrix[CoEntry]) {
	walk(m, func(e CoEntry) CoEntry {
		if e.N == 0 {
			return e
		}
		e.D /= float64(e.N)
		return e
	})
}

// TotalDistance converts every stored D from an average back to a
// running sum (D *= N), in place. Inverse of MeanDistance.
func TotalDistance(m *sparsematrix.Matrix[CoEntry]) {
	walk(m, func(e CoEntry) CoEntry {
		e.D *= float64(e.N)
		return e
	})
}

func walk(m *sparsematrix.Matrix[CoEntry], fn func(CoEntry) CoEntry) {
	it := m.CursorIterator()
	type coord struct{ row, col int }
	var coords []coord
	for it.Next() {
		coords = append(coords, coord{it.Row(), it.Column()})
	}
	for _, c := range coords {
		v, _ := m.Get(c.row, c.col)
		_ = m.Set(c.row, c.col, fn(v))
	}
}
