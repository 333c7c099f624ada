package flatmap

import (
	"sort"

	"github.com/campusforge/scheduga/arena"
)

// Set is a sorted-slice associative set, the companion to Map (spec §4.D).
type Set[K Ordered] struct {
	elems []K
}

// NewSet returns a Set whose backing slice is cut from buf (or the heap).
func NewSet[K Ordered](buf *arena.Buffer, capacityHint int) *Set[K] {
	return &Set[K]{elems: arena.AllocSlice[K](buf, capacityHint)}
}

// LowerBound returns the index of the first element >= key.
func (s *Set[K]) LowerBound(key K) int {
	return sort.Search(len(s.elems), func(i int) bool { return s.elems[i] >= key })
}

// Contains reports whether key is present.
func (s *Set[K]) Contains(key K) bool {
	i := s.LowerBound(key)
	return i < len(s.elems) && s.elems[i] == key
}

// Insert adds key if absent, keeping elems sorted ascending.
func (s *Set[K]) Insert(key K) {
	i := s.LowerBound(key)
	if i < len(s.elems) && s.elems[i] == key {
		return
	}
	s.elems = append(s.elems, key)
	copy(s.elems[i+1:], s.elems[i:len(s.elems)-1])
	s.elems[i] = key
}

// Elems returns the ordered elements for iteration.
func (s *Set[K]) Elems() []K { return s.elems }

// Len returns the number of elements.
func (s *Set[K]) Len() int { return len(s.elems) }
