// Package chromosome implements the dual lesson/classroom vectors that
// make up one candidate timetable, their conflict predicates, and the
// deterministic seeding scan that builds a feasible starting point from a
// ScheduleData catalog (spec §4.E). Grounded on
// original_source/ScheduleIndividual.{h,cpp} (the lineage the spec's §9
// open question selects over the older ScheduleChromosomes.cpp variant;
// see DESIGN.md).
package chromosome

import "github.com/campusforge/scheduga/timetable"

// Chromosomes is a candidate timetable: two parallel vectors indexed by
// request position in the owning ScheduleData, not by request ID.
type Chromosomes struct {
	Lessons    []timetable.Slot
	Classrooms []timetable.ClassroomAddress
}

// New builds a Chromosomes of length n with every position unassigned.
func New(n int) *Chromosomes {
	lessons := make([]timetable.Slot, n)
	classrooms := make([]timetable.ClassroomAddress, n)
	for i := range lessons {
		lessons[i] = timetable.NoLesson
		classrooms[i] = timetable.NoClassroomAssigned
	}
	return &Chromosomes{Lessons: lessons, Classrooms: classrooms}
}

// Clone returns a deep copy.
func (c *Chromosomes) Clone() *Chromosomes {
	out := &Chromosomes{
		Lessons:    append([]timetable.Slot(nil), c.Lessons...),
		Classrooms: append([]timetable.ClassroomAddress(nil), c.Classrooms...),
	}
	return out
}

// Len returns the number of requests this chromosome covers.
func (c *Chromosomes) Len() int { return len(c.Lessons) }
