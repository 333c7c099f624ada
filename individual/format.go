package individual

import (
	"fmt"
	"strings"

	"github.com/campusforge/scheduga/timetable"
)

// Format renders the individual's chromosomes as a human-readable,
// lesson-by-lesson listing, one line per slot in [0, MaxLessonsCount).
// Supplements the spec: the original ScheduleIndividual.cpp's Print
// wrote straight to std::cout; this is its pure, testable equivalent,
// grounded on the same per-slot grouping.
func (ind *Individual) Format() string {
	var b strings.Builder
	requests := ind.data.Requests()

	for l := 0; l < timetable.MaxLessonsCount; l++ {
		fmt.Fprintf(&b, "Lesson %d: ", l)

		slot := timetable.Slot(l)
		found := false
		for r, lesson := range ind.chromosomes.Lessons {
			if lesson != slot {
				continue
			}
			found = true
			request := requests[r]
			classroom := ind.chromosomes.Classrooms[r]
			fmt.Fprintf(&b, "[s:%d, p:%d, c:(%d, %d), g:{", request.ID(), request.Professor(), classroom.Building, classroom.Room)
			for _, g := range request.Groups() {
				fmt.Fprintf(&b, " %d", g)
			}
			b.WriteString(" }]")
		}
		if !found {
			b.WriteString("-")
		}
		b.WriteByte('\n')
	}

	return b.String()
}
