// Package flatmap implements the small associative containers used by the
// fitness evaluator (spec §4.D): sorted flat maps and sets backed by a
// contiguous, arena-allocated slice rather than a hash table. For the tiny
// N (professors or groups active on one day, rarely more than a few dozen)
// this evaluator sees, a sorted slice with binary-search lookup beats
// hashing and cooperates with the bump allocator in package arena.
// Grounded on original_source/utils.h's SortedMap/SortedSet.
package flatmap

import (
	"sort"

	"github.com/campusforge/scheduga/arena"
)

// Entry is one key/value pair of a Map, exposed for ordered iteration.
type Entry[K Ordered, V any] struct {
	Key K
	Val V
}

// Ordered is the set of key types flat containers accept.
type Ordered interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// Map is a sorted-slice associative map parameterized on an arena buffer.
// Zero value is usable but capacity-less; prefer NewMap with a hint.
type Map[K Ordered, V any] struct {
	entries []Entry[K, V]
}

// NewMap returns a Map whose backing slice is cut from buf (or the heap,
// if buf is nil or the hint overflows it).
func NewMap[K Ordered, V any](buf *arena.Buffer, capacityHint int) *Map[K, V] {
	return &Map[K, V]{entries: arena.AllocSlice[Entry[K, V]](buf, capacityHint)}
}

// LowerBound returns the index of the first entry with Key >= key.
func (m *Map[K, V]) LowerBound(key K) int {
	return sort.Search(len(m.entries), func(i int) bool { return m.entries[i].Key >= key })
}

// At returns a pointer to the value for key, inserting a zero value at
// the correct sorted position on first touch (mirrors SortedMap::operator[]).
func (m *Map[K, V]) At(key K) *V {
	i := m.LowerBound(key)
	if i < len(m.entries) && m.entries[i].Key == key {
		return &m.entries[i].Val
	}

	var zero V
	m.entries = insertEntry(m.entries, i, Entry[K, V]{Key: key, Val: zero})
	return &m.entries[i].Val
}

// EmplaceHint inserts key/val at hint if hint is still a valid sorted
// position, otherwise falls back to a binary search, mirroring
// SortedMap::emplace_hint. Returns the index the entry was inserted at.
func (m *Map[K, V]) EmplaceHint(hint int, key K, val V) int {
	validLow := hint == 0 || m.entries[hint-1].Key < key
	validHigh := hint == len(m.entries) || key < m.entries[hint].Key
	if !validLow || !validHigh {
		hint = m.LowerBound(key)
	}
	m.entries = insertEntry(m.entries, hint, Entry[K, V]{Key: key, Val: val})
	return hint
}

// Entries returns the ordered key/value pairs for iteration.
func (m *Map[K, V]) Entries() []Entry[K, V] { return m.entries }

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return len(m.entries) }

func insertEntry[K Ordered, V any](entries []Entry[K, V], at int, e Entry[K, V]) []Entry[K, V] {
	entries = append(entries, e)
	copy(entries[at+1:], entries[at:len(entries)-1])
	entries[at] = e
	return entries
}
