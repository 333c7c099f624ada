package timetable_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusforge/scheduga/timetable"
)

func mustRequest(t *testing.T, id, professor uint64, complexity int, groups []uint64, classrooms []timetable.ClassroomAddress) timetable.SubjectRequest {
	t.Helper()
	r, err := timetable.NewSubjectRequest(id, professor, complexity, nil, groups, classrooms)
	require.NoError(t, err)
	return r
}

func TestNewScheduleDataDedupAndSort(t *testing.T) {
	r0 := mustRequest(t, 5, 1, 1, []uint64{1}, nil)
	r1 := mustRequest(t, 1, 2, 1, []uint64{2}, nil)
	r1dup := mustRequest(t, 1, 2, 1, []uint64{2}, nil)

	data, err := timetable.NewScheduleData([]timetable.SubjectRequest{r0, r1, r1dup}, nil)
	require.NoError(t, err)

	reqs := data.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, uint64(1), reqs[0].ID())
	assert.Equal(t, uint64(5), reqs[1].ID())
}

func TestNewScheduleDataRejectsEmpty(t *testing.T) {
	_, err := timetable.NewScheduleData(nil, nil)
	assert.ErrorIs(t, err, timetable.ErrEmptyCatalog)
}

func TestIndexOfUnknown(t *testing.T) {
	r0 := mustRequest(t, 3, 1, 1, nil, nil)
	data, err := timetable.NewScheduleData([]timetable.SubjectRequest{r0}, nil)
	require.NoError(t, err)

	idx, err := data.IndexOf(3)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	_, err = data.IndexOf(999)
	assert.True(t, errors.Is(err, timetable.ErrUnknownRequest))
}

func TestReverseIndices(t *testing.T) {
	r0 := mustRequest(t, 0, 1, 1, []uint64{10, 20}, nil)
	r1 := mustRequest(t, 1, 1, 1, []uint64{20}, nil)
	data, err := timetable.NewScheduleData([]timetable.SubjectRequest{r0, r1}, nil)
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{0, 1}, data.ProfessorRequests(1))
	assert.ElementsMatch(t, []int{0}, data.GroupRequests(10))
	assert.ElementsMatch(t, []int{0, 1}, data.GroupRequests(20))
}

func TestLockedSlot(t *testing.T) {
	r0 := mustRequest(t, 3, 1, 1, nil, nil)
	data, err := timetable.NewScheduleData([]timetable.SubjectRequest{r0}, []timetable.Lock{{SubjectRequestID: 3, Slot: 17}})
	require.NoError(t, err)

	slot, ok := data.LockedSlot(3)
	require.True(t, ok)
	assert.Equal(t, timetable.Slot(17), slot)

	_, ok = data.LockedSlot(999)
	assert.False(t, ok)
}
