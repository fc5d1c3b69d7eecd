// Package termset implements the termid <-> term bijection and the
// termid -> frequency vector that anchor the WAF analytics pipeline, plus
// their line-oriented file serialization.
package termset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/wafcore/waf/serial"
)

// Termid identifies a term, unique within a run. DelimTermid is the
// reserved sentinel meaning "paragraph boundary"; it must never be a
// live key in a Set or Frequencies.
type Termid = uint64

// DelimTermid is the maximum representable Termid, reserved as the
// paragraph-boundary sentinel.
const DelimTermid Termid = ^Termid(0)

// ErrAlreadyBound indicates Insert was called for a termid or term
// string already present in the opposite mapping.
var ErrAlreadyBound = errors.New("termset: termid or term already bound")

// Set is a bijective mapping between Termid and an opaque term string.
type Set struct {
	idToTerm map[Termid]string
	termToID map[string]Termid
	maxID    Termid
	hasAny   bool
}

// NewSet returns an empty term set.
func NewSet() *Set {
	return &Set{idToTerm: map[Termid]string{}, termToID: map[string]Termid{}}
}

// Insert binds id to term. It fails with ErrAlreadyBound if either side
// is already in use for a different counterpart.
func (s *Set) Insert(id Termid, term string) error {
	if existing, ok := s.idToTerm[id]; ok && existing != term {
		return fmt.Errorf("termset: Insert(%d, %q): %w", id, term, ErrAlreadyBound)
	}
	if existingID, ok := s.termToID[term]; ok && existingID != id {
		return fmt.Errorf("termset: Insert(%d, %q): %w", id, term, ErrAlreadyBound)
	}
	s.idToTerm[id] = term
	s.termToID[term] = id
	if !s.hasAny || id > s.maxID {
		s.maxID = id
		s.hasAny = true
	}
	return nil
}

// EraseID removes the binding for id, if any.
func (s *Set) EraseID(id Termid) {
	if term, ok := s.idToTerm[id]; ok {
		delete(s.idToTerm, id)
		delete(s.termToID, term)
	}
}

// EraseTerm removes the binding for term, if any.
func (s *Set) EraseTerm(term string) {
	if id, ok := s.termToID[term]; ok {
		delete(s.idToTerm, id)
		delete(s.termToID, term)
	}
}

// Has reports whether id is bound.
func (s *Set) Has(id Termid) bool { _, ok := s.idToTerm[id]; return ok }

// HasTerm reports whether term is bound.
func (s *Set) HasTerm(term string) bool { _, ok := s.termToID[term]; return ok }

// Term returns the term bound to id, if any.
func (s *Set) Term(id Termid) (string, bool) { t, ok := s.idToTerm[id]; return t, ok }

// ID returns the termid bound to term, if any.
func (s *Set) ID(term string) (Termid, bool) { id, ok := s.termToID[term]; return id, ok }

// MaxTermid returns the largest termid ever inserted, and false if the
// set has never held a binding.
func (s *Set) MaxTermid() (Termid, bool) { return s.maxID, s.hasAny }

// Len returns the number of bound termids.
func (s *Set) Len() int { return len(s.idToTerm) }

// Each calls fn for every binding in increasing termid order, stopping
// early if fn returns false.
func (s *Set) Each(fn func(id Termid, term string) bool) {
	ids := make([]Termid, 0, len(s.idToTerm))
	for id := range s.idToTerm {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if !fn(id, s.idToTerm[id]) {
			return
		}
	}
}

// WriteTermSet writes one "( termid 0 term )" line per binding, in
// increasing termid order, terminated by end of stream (no dimension
// footer, per the term-set file format).
func WriteTermSet(w io.Writer, s *Set) error {
	var err error
	s.Each(func(id Termid, term string) bool {
		err = serial.WriteCell(w, serial.Cell[string]{Row: int(id), Column: 0, Value: term})
		if err == nil {
			_, err = fmt.Fprintln(w)
		}
		return err == nil
	})
	return err
}

// ReadTermSet reads "( termid 0 term )" lines until EOF into a new Set.
// The serialized format reuses serial.Cell with Column always 0.
func ReadTermSet(r io.Reader) (*Set, error) {
	s := NewSet()
	br := bufio.NewReader(r)
	for {
		c, err := serial.ReadCell[string](br)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return s, nil
			}
			return nil, fmt.Errorf("termset: reading term set: %w", serial.ErrMalformed)
		}
		if err := s.Insert(Termid(c.Row), c.Value); err != nil {
			return nil, err
		}
	}
}

// Frequencies is a termid -> non-negative count mapping. Reads of
// absent keys yield zero; writes auto-extend.
type Frequencies struct {
	counts map[Termid]uint64
}

// NewFrequencies returns an empty frequency vector.
func NewFrequencies() *Frequencies { return &Frequencies{counts: map[Termid]uint64{}} }

// Get returns the count for id, or zero if absent.
func (f *Frequencies) Get(id Termid) uint64 { return f.counts[id] }

// Set stores count for id.
func (f *Frequencies) Set(id Termid, count uint64) { f.counts[id] = count }

// Add increments id's count by delta.
func (f *Frequencies) Add(id Termid, delta uint64) { f.counts[id] += delta }

// Each calls fn for every non-zero entry in increasing termid order.
func (f *Frequencies) Each(fn func(id Termid, count uint64) bool) {
	ids := make([]Termid, 0, len(f.counts))
	for id := range f.counts {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if f.counts[id] == 0 {
			continue
		}
		if !fn(id, f.counts[id]) {
			return
		}
	}
}

// WriteFrequencies writes one "( termid 0 frequency )" line per non-zero
// entry, in increasing termid order.
func WriteFrequencies(w io.Writer, f *Frequencies) error {
	var err error
	f.Each(func(id Termid, count uint64) bool {
		err = serial.WriteCell(w, serial.Cell[uint64]{Row: int(id), Column: 0, Value: count})
		if err == nil {
			_, err = fmt.Fprintln(w)
		}
		return err == nil
	})
	return err
}

// ReadFrequencies reads "( termid 0 frequency )" lines until EOF.
func ReadFrequencies(r io.Reader) (*Frequencies, error) {
	f := NewFrequencies()
	br := bufio.NewReader(r)
	for {
		c, err := serial.ReadCell[uint64](br)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return f, nil
			}
			return nil, fmt.Errorf("termset: reading frequencies: %w", serial.ErrMalformed)
		}
		f.Set(Termid(c.Row), c.Value)
	}
}
