package timetable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusforge/scheduga/timetable"
)

func TestNewSubjectRequestDedupsAndSorts(t *testing.T) {
	classrooms := []timetable.ClassroomAddress{
		{Building: 0, Room: 3}, {Building: 0, Room: 1}, {Building: 0, Room: 1},
	}
	req, err := timetable.NewSubjectRequest(0, 1, 2, nil, []uint64{3, 1, 1, 2}, classrooms)
	require.NoError(t, err)

	assert.Equal(t, []uint64{1, 2, 3}, req.Groups())
	assert.Equal(t, []timetable.ClassroomAddress{{Building: 0, Room: 1}, {Building: 0, Room: 3}}, req.Classrooms())
}

func TestNewSubjectRequestRejectsBadComplexity(t *testing.T) {
	_, err := timetable.NewSubjectRequest(0, 1, 0, nil, nil, nil)
	assert.Error(t, err)

	_, err = timetable.NewSubjectRequest(0, 1, timetable.MaxComplexity+1, nil, nil, nil)
	assert.Error(t, err)
}

func TestEmptyWeekDaysMeansAllAdmissible(t *testing.T) {
	req, err := timetable.NewSubjectRequest(0, 1, 1, nil, nil, nil)
	require.NoError(t, err)
	for d := 0; d < timetable.DaysInWeek; d++ {
		assert.True(t, req.AdmitsWeekDay(d))
	}
}

func TestExplicitWeekDays(t *testing.T) {
	req, err := timetable.NewSubjectRequest(0, 1, 1, []bool{true, false, true, false, false, false}, nil, nil)
	require.NoError(t, err)
	assert.True(t, req.AdmitsWeekDay(0))
	assert.False(t, req.AdmitsWeekDay(1))
	assert.True(t, req.AdmitsWeekDay(2))
	// mod DaysInWeek: day 8 maps to weekday 2
	assert.True(t, req.AdmitsWeekDay(8))
}

func TestGroupsIntersect(t *testing.T) {
	a, err := timetable.NewSubjectRequest(0, 1, 1, nil, []uint64{1, 2, 3}, nil)
	require.NoError(t, err)
	b, err := timetable.NewSubjectRequest(1, 2, 1, nil, []uint64{4, 5}, nil)
	require.NoError(t, err)
	c, err := timetable.NewSubjectRequest(2, 2, 1, nil, []uint64{3, 9}, nil)
	require.NoError(t, err)

	assert.False(t, timetable.GroupsIntersect(a, b))
	assert.True(t, timetable.GroupsIntersect(a, c))
}
