package timetable

import (
	"fmt"
	"sort"
)

// SubjectRequest is an immutable record describing one required subject
// delivery: who teaches it, how demanding it is, which days and
// classrooms are admissible, and which groups attend it.
type SubjectRequest struct {
	id         uint64
	professor  uint64
	complexity int
	weekDays   [DaysInWeek]bool
	groups     []uint64
	classrooms []ClassroomAddress
}

// NewSubjectRequest builds a SubjectRequest, deduplicating and sorting
// groups and classrooms ascending. An empty weekDays means every weekday
// is admissible. complexity must be in [MinComplexity, MaxComplexity].
func NewSubjectRequest(id, professor uint64, complexity int, weekDays []bool, groups []uint64, classrooms []ClassroomAddress) (SubjectRequest, error) {
	if complexity < MinComplexity || complexity > MaxComplexity {
		return SubjectRequest{}, fmt.Errorf("timetable: request %d: complexity %d out of range [%d, %d]", id, complexity, MinComplexity, MaxComplexity)
	}

	req := SubjectRequest{
		id:         id,
		professor:  professor,
		complexity: complexity,
	}

	if len(weekDays) == 0 {
		for i := range req.weekDays {
			req.weekDays[i] = true
		}
	} else {
		for i := 0; i < DaysInWeek; i++ {
			req.weekDays[i] = i < len(weekDays) && weekDays[i]
		}
	}

	req.groups = dedupSortedUint64(groups)
	req.classrooms = dedupSortedClassrooms(classrooms)

	return req, nil
}

func dedupSortedUint64(in []uint64) []uint64 {
	out := append([]uint64(nil), in...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	out = compactUint64(out)
	return out
}

func compactUint64(sorted []uint64) []uint64 {
	if len(sorted) == 0 {
		return sorted
	}
	w := 1
	for r := 1; r < len(sorted); r++ {
		if sorted[r] != sorted[w-1] {
			sorted[w] = sorted[r]
			w++
		}
	}
	return sorted[:w]
}

func dedupSortedClassrooms(in []ClassroomAddress) []ClassroomAddress {
	out := append([]ClassroomAddress(nil), in...)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	if len(out) == 0 {
		return out
	}
	w := 1
	for r := 1; r < len(out); r++ {
		if out[r] != out[w-1] {
			out[w] = out[r]
			w++
		}
	}
	return out[:w]
}

// ID returns the request's unique identifier.
func (r SubjectRequest) ID() uint64 { return r.id }

// Professor returns the identifier of the professor teaching this request.
func (r SubjectRequest) Professor() uint64 { return r.professor }

// Complexity returns the request's complexity, in [MinComplexity, MaxComplexity].
func (r SubjectRequest) Complexity() int { return r.complexity }

// Groups returns the deduplicated, ascending group identifiers attending this request.
func (r SubjectRequest) Groups() []uint64 { return r.groups }

// Classrooms returns the deduplicated, ascending candidate classrooms.
// An empty result means any classroom is acceptable.
func (r SubjectRequest) Classrooms() []ClassroomAddress { return r.classrooms }

// AdmitsWeekDay reports whether day (mod DaysInWeek) is an admissible
// weekday for this request.
func (r SubjectRequest) AdmitsWeekDay(day int) bool {
	return r.weekDays[((day%DaysInWeek)+DaysInWeek)%DaysInWeek]
}

// HasGroup reports whether g is requested by this request.
func (r SubjectRequest) HasGroup(g uint64) bool {
	i := sort.Search(len(r.groups), func(i int) bool { return r.groups[i] >= g })
	return i < len(r.groups) && r.groups[i] == g
}

// HasClassroom reports whether addr is a candidate classroom for this request.
func (r SubjectRequest) HasClassroom(addr ClassroomAddress) bool {
	i := sort.Search(len(r.classrooms), func(i int) bool { return !r.classrooms[i].Less(addr) })
	return i < len(r.classrooms) && r.classrooms[i] == addr
}

// GroupsIntersect reports whether a and b share at least one group.
// Both group lists are sorted ascending, so this is a linear merge.
func GroupsIntersect(a, b SubjectRequest) bool {
	ag, bg := a.groups, b.groups
	i, j := 0, 0
	for i < len(ag) && j < len(bg) {
		switch {
		case ag[i] < bg[j]:
			i++
		case bg[j] < ag[i]:
			j++
		default:
			return true
		}
	}
	return false
}
