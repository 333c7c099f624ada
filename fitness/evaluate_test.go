package fitness_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusforge/scheduga/arena"
	"github.com/campusforge/scheduga/chromosome"
	"github.com/campusforge/scheduga/fitness"
	"github.com/campusforge/scheduga/timetable"
)

func room(building, r uint32) timetable.ClassroomAddress {
	return timetable.ClassroomAddress{Building: building, Room: r}
}

func singleRequestCatalog(t *testing.T, complexity int, group, professor uint64) *timetable.ScheduleData {
	t.Helper()
	req, err := timetable.NewSubjectRequest(0, professor, complexity, nil, []uint64{group}, []timetable.ClassroomAddress{room(0, 1)})
	require.NoError(t, err)
	data, err := timetable.NewScheduleData([]timetable.SubjectRequest{req}, nil)
	require.NoError(t, err)
	return data
}

// TestEvaluatorBaselineScenario6 reproduces spec §8 scenario 6: a single
// request with one group, complexity 2, placed at day 0 period 3 with a
// real classroom, scores exactly the day's max complexity (3*2=6) with no
// gap or building penalties.
func TestEvaluatorBaselineScenario6(t *testing.T) {
	data := singleRequestCatalog(t, 2, 1, 1)
	c := &chromosome.Chromosomes{
		Lessons:    []timetable.Slot{timetable.NewSlot(0, 3)},
		Classrooms: []timetable.ClassroomAddress{room(0, 1)},
	}

	score := fitness.Evaluate(data, c, arena.NewBuffer(arena.DefaultSize))
	assert.Equal(t, 6, score)
}

func TestEvaluatorUnplacedRequestPenalty(t *testing.T) {
	data := singleRequestCatalog(t, 1, 1, 1)
	c := &chromosome.Chromosomes{
		Lessons:    []timetable.Slot{timetable.NoLesson},
		Classrooms: []timetable.ClassroomAddress{timetable.NoClassroomAssigned},
	}

	score := fitness.Evaluate(data, c, nil)
	assert.Equal(t, fitness.NoLessonPenalty, score)
}

func TestEvaluatorMissingClassroomPenalty(t *testing.T) {
	data := singleRequestCatalog(t, 1, 1, 1)
	c := &chromosome.Chromosomes{
		Lessons:    []timetable.Slot{timetable.NewSlot(0, 0)},
		Classrooms: []timetable.ClassroomAddress{timetable.NoClassroomAssigned},
	}

	score := fitness.Evaluate(data, c, nil)
	assert.Equal(t, fitness.NoClassroomPenalty, score)
}

// TestEvaluatorGroupWindowGap places the same group in two lessons on the
// same day three periods apart, which should add (gap=3)*3=9 to the score
// on top of the day's max complexity.
func TestEvaluatorGroupWindowGap(t *testing.T) {
	roomA := []timetable.ClassroomAddress{room(0, 1)}
	r0, err := timetable.NewSubjectRequest(0, 1, 1, nil, []uint64{1}, roomA)
	require.NoError(t, err)
	r1, err := timetable.NewSubjectRequest(1, 2, 1, nil, []uint64{1}, roomA)
	require.NoError(t, err)
	data, err := timetable.NewScheduleData([]timetable.SubjectRequest{r0, r1}, nil)
	require.NoError(t, err)

	c := &chromosome.Chromosomes{
		Lessons:    []timetable.Slot{timetable.NewSlot(0, 0), timetable.NewSlot(0, 3)},
		Classrooms: []timetable.ClassroomAddress{room(0, 1), room(0, 2)},
	}

	score := fitness.Evaluate(data, c, nil)
	// max_complexity: group 1's complexity sum = 0*1 + 3*1 = 3.
	// group window gap: periods {0,3}, gap=3 > 1 -> +9.
	// professor windows: two distinct professors, each with a single
	// occupied period -> no gap (a day's first occupied period never counts).
	assert.Equal(t, 3+9, score)
}

// TestEvaluatorBuildingTransition places one group's two same-day lessons
// in different buildings, consecutively, triggering the transition cost.
func TestEvaluatorBuildingTransition(t *testing.T) {
	r0, err := timetable.NewSubjectRequest(0, 1, 1, nil, []uint64{1}, []timetable.ClassroomAddress{room(0, 1)})
	require.NoError(t, err)
	r1, err := timetable.NewSubjectRequest(1, 1, 1, nil, []uint64{1}, []timetable.ClassroomAddress{room(1, 1)})
	require.NoError(t, err)
	data, err := timetable.NewScheduleData([]timetable.SubjectRequest{r0, r1}, nil)
	require.NoError(t, err)

	c := &chromosome.Chromosomes{
		Lessons:    []timetable.Slot{timetable.NewSlot(0, 0), timetable.NewSlot(0, 1)},
		Classrooms: []timetable.ClassroomAddress{room(0, 1), room(1, 1)},
	}

	score := fitness.Evaluate(data, c, nil)
	// max_complexity: group 1 sum = 0*1 + 1*1 = 1.
	// professor windows: same professor both periods, consecutive -> no gap.
	// building transition: period0 building0 -> period1 building1 -> +64.
	assert.Equal(t, 1+64, score)
}
