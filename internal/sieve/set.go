package sieve

import (
	"iter"
	"slices"
)

// Set is an ordered, duplicate-free collection of integers. Iteration
// always yields values in strictly ascending order.
//
// The zero value is an empty set ready to use.
type Set struct {
	values []uint64
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{}
}

// Insert adds v to the set, keeping it sorted. It reports whether v was
// added; inserting a value already present is a no-op.
func (s *Set) Insert(v uint64) bool {
	// The sieve only ever appends, so check the tail before searching.
	if n := len(s.values); n == 0 || s.values[n-1] < v {
		s.values = append(s.values, v)
		return true
	}
	i, found := slices.BinarySearch(s.values, v)
	if found {
		return false
	}
	s.values = slices.Insert(s.values, i, v)
	return true
}

// Contains reports whether v is in the set.
func (s *Set) Contains(v uint64) bool {
	_, found := slices.BinarySearch(s.values, v)
	return found
}

// Len returns the number of values in the set.
func (s *Set) Len() int {
	return len(s.values)
}

// Last returns the largest value in the set. ok is false when the set is empty.
func (s *Set) Last() (v uint64, ok bool) {
	if len(s.values) == 0 {
		return 0, false
	}
	return s.values[len(s.values)-1], true
}

// Values returns an ascending copy of the set's contents.
func (s *Set) Values() []uint64 {
	return slices.Clone(s.values)
}

// All returns an iterator over the set in ascending order.
func (s *Set) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for _, v := range s.values {
			if !yield(v) {
				return
			}
		}
	}
}

// Reset empties the set, keeping its allocated storage.
func (s *Set) Reset() {
	s.values = s.values[:0]
}
