package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusforge/scheduga/arena"
)

func TestAllocSliceFitsWithinBuffer(t *testing.T) {
	buf := arena.NewBuffer(4096)
	s := arena.AllocSlice[int](buf, 16)
	assert.Equal(t, 0, len(s))
	assert.Equal(t, 16, cap(s))
	assert.Greater(t, buf.Peak(), 0)
}

func TestAllocSliceOverflowsToHeap(t *testing.T) {
	buf := arena.NewBuffer(8)
	s := arena.AllocSlice[int](buf, 64)
	assert.Equal(t, 64, cap(s))
	// still usable: the heap-backed overflow slice appends like any slice
	s = append(s, 1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, s)
}

func TestBufferGrowIsMonotonic(t *testing.T) {
	buf := arena.NewBuffer(8)
	_ = arena.AllocSlice[int](buf, 64)
	peak := buf.Peak()
	assert.Greater(t, peak, buf.Cap())

	buf.Grow(maxInt(peak, buf.Cap()))
	assert.GreaterOrEqual(t, buf.Cap(), peak)
}

func TestResetRewindsCursorAndPeak(t *testing.T) {
	buf := arena.NewBuffer(4096)
	_ = arena.AllocSlice[int](buf, 8)
	peak := buf.Peak()
	assert.Greater(t, peak, 0)

	buf.Reset()
	assert.Equal(t, 0, buf.Peak())

	_ = arena.AllocSlice[int](buf, 8)
	assert.Equal(t, peak, buf.Peak())
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
