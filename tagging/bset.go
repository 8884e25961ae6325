package tagging

import (
	"iter"
	"slices"
	"sort"
)

// BSet is a slice kept sorted by a comparison function, queried with binary
// search. It is not a mathematical set: whether equal keys are replaced or
// kept side by side is decided by the caller through Set or Insert.
//
// The zero value has no comparison function and only supports the read
// methods; use NewBSet.
type BSet[A any] struct {
	items []A
	cmp   func(a, b A) int
}

func NewBSet[A any](cmp func(a, b A) int) BSet[A] {
	return BSet[A]{cmp: cmp}
}

// Search returns the position of the first element equal to probe and true,
// or the position where probe would be inserted and false.
func (s *BSet[A]) Search(probe A) (int, bool) {
	return slices.BinarySearchFunc(s.items, probe, s.cmp)
}

// Find returns the first element equal to probe.
func (s *BSet[A]) Find(probe A) (A, bool) {
	i, ok := s.Search(probe)
	if !ok {
		var zero A
		return zero, false
	}
	return s.items[i], true
}

// Insert adds a after any elements equal to it.
func (s *BSet[A]) Insert(a A) int {
	i := sort.Search(len(s.items), func(i int) bool { return s.cmp(s.items[i], a) > 0 })
	s.InsertAt(i, a)
	return i
}

// Set replaces the first element equal to a, or inserts a in order. It
// reports whether an element was replaced.
func (s *BSet[A]) Set(a A) bool {
	i, found := s.Search(a)
	if found {
		s.items[i] = a
		return true
	}
	s.InsertAt(i, a)
	return false
}

// InsertAt places a at index i. The caller is responsible for keeping the
// set sorted.
func (s *BSet[A]) InsertAt(i int, a A) {
	s.items = slices.Insert(s.items, i, a)
}

// ReplaceAt overwrites the element at index i. The caller is responsible for
// keeping the set sorted.
func (s *BSet[A]) ReplaceAt(i int, a A) {
	s.items[i] = a
}

// RemoveAt deletes the element at index i.
func (s *BSet[A]) RemoveAt(i int) {
	s.items = slices.Delete(s.items, i, i+1)
}

func (s *BSet[A]) Len() int { return len(s.items) }

// Items returns the sorted elements. The slice must not be modified.
func (s *BSet[A]) Items() []A { return slices.Clip(s.items) }

// All iterates over the elements in order.
func (s *BSet[A]) All() iter.Seq2[int, A] { return slices.All(s.items) }

// IsSorted reports whether the ordering invariant holds.
func (s *BSet[A]) IsSorted() bool { return slices.IsSortedFunc(s.items, s.cmp) }

// Clone returns a copy that shares no backing storage with s.
func (s *BSet[A]) Clone() BSet[A] {
	return BSet[A]{items: slices.Clone(s.items), cmp: s.cmp}
}
