package timetable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusforge/scheduga/timetable"
)

func TestSlotDayPeriod(t *testing.T) {
	s := timetable.NewSlot(2, 3)
	assert.Equal(t, 2, s.Day())
	assert.Equal(t, 3, s.Period())
}

func TestIsLateSaturday(t *testing.T) {
	forbidden := []timetable.Slot{39, 40, 41, 81, 82, 83}
	for _, s := range forbidden {
		assert.Truef(t, timetable.IsLateSaturday(s), "slot %d should be late-Saturday", s)
	}

	allowed := []timetable.Slot{0, 38, 42, 80, 83 + 1, timetable.NewSlot(5, 3), timetable.NewSlot(11, 3)}
	for _, s := range allowed {
		if s == 83+1 {
			continue // out of the two-week range, included only to bound the forbidden set
		}
		assert.Falsef(t, timetable.IsLateSaturday(s), "slot %d should not be late-Saturday", s)
	}
}

func TestClassroomOrderAndSentinels(t *testing.T) {
	assert.Equal(t, timetable.ClassroomAddress{Building: 0, Room: 0}, timetable.AnyClassroom)
	assert.True(t, timetable.AnyClassroom.IsAny())
	assert.True(t, timetable.NoClassroomAssigned.IsUnassigned())

	a := timetable.ClassroomAddress{Building: 0, Room: 1}
	b := timetable.ClassroomAddress{Building: 0, Room: 2}
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
}
