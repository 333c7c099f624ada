package flatmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusforge/scheduga/arena"
	"github.com/campusforge/scheduga/flatmap"
)

func TestMapAtInsertsSorted(t *testing.T) {
	buf := arena.NewBuffer(1024)
	m := flatmap.NewMap[uint64, int](buf, 4)

	*m.At(5) += 10
	*m.At(1) += 20
	*m.At(5) += 1

	keys := make([]uint64, 0)
	for _, e := range m.Entries() {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []uint64{1, 5}, keys)

	v, ok := find(m, 5)
	assert.True(t, ok)
	assert.Equal(t, 11, v)
}

func find(m *flatmap.Map[uint64, int], key uint64) (int, bool) {
	for _, e := range m.Entries() {
		if e.Key == key {
			return e.Val, true
		}
	}
	return 0, false
}

func TestEmplaceHintFallsBackWhenInvalid(t *testing.T) {
	m := flatmap.NewMap[int, string](nil, 4)
	m.EmplaceHint(0, 5, "five")
	// hint 1 is wrong for key 1 (it belongs before 5); must still end up sorted
	m.EmplaceHint(1, 1, "one")

	var keys []int
	for _, e := range m.Entries() {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []int{1, 5}, keys)
}

func TestSetInsertAndContains(t *testing.T) {
	s := flatmap.NewSet[uint64](nil, 4)
	s.Insert(3)
	s.Insert(1)
	s.Insert(3)

	assert.Equal(t, []uint64{1, 3}, s.Elems())
	assert.True(t, s.Contains(1))
	assert.False(t, s.Contains(2))
}
