package chromosome

import "github.com/campusforge/scheduga/timetable"

// Seed builds a feasible starting Chromosomes from data: every lock is
// honored first, then every unlocked request is placed by a deterministic
// scan (spec §4.E). Requests for which no feasible slot exists are left
// unassigned (NoLesson / NoClassroomAssigned) — this is the
// feasibility-escape path of spec §7 and is never an error.
func Seed(data *timetable.ScheduleData) (*Chromosomes, error) {
	requests := data.Requests()
	c := New(len(requests))

	locked := make([]bool, len(requests))
	for _, lock := range data.Locks() {
		idx, err := data.IndexOf(lock.SubjectRequestID)
		if err != nil {
			return nil, err
		}

		c.Lessons[idx] = lock.Slot
		locked[idx] = true

		for _, cand := range requests[idx].Classrooms() {
			if !ConflictRoom(c, lock.Slot, cand) {
				c.Classrooms[idx] = cand
				break
			}
		}
	}

	for r := range requests {
		if locked[r] {
			continue
		}
		seedRequest(data, c, r)
	}

	return c, nil
}

// seedRequest performs the deterministic (period, day) scan of spec §4.E
// for one unlocked request. It commits the first slot that also has a
// free candidate classroom (or, for a request with no candidates, the
// first slot at all, with AnyClassroom) and stops there. A slot that only clears the
// professor/group check is still recorded as the lesson placement, but the
// scan keeps going past it in search of a slot with a free classroom too;
// if none ever turns up, the request is left with its last feasible slot
// and NoClassroomAssigned, matching the original InitFromRequest
// (original_source/ScheduleIndividual.cpp:59-92), which never returns
// early on a classroom miss.
func seedRequest(data *timetable.ScheduleData, c *Chromosomes, r int) {
	request := data.Requests()[r]
	candidates := request.Classrooms()

	for period := 0; period < timetable.Periods; period++ {
		for day := 0; day < timetable.DaysInSchedule; day++ {
			if !request.AdmitsWeekDay(day) {
				continue
			}

			slot := timetable.NewSlot(day, period)
			if timetable.IsLateSaturday(slot) {
				continue
			}

			if ConflictSlot(data, c, r, slot) {
				continue
			}

			c.Lessons[r] = slot

			if len(candidates) == 0 {
				c.Classrooms[r] = timetable.AnyClassroom
				return
			}

			for _, cand := range candidates {
				if !ConflictRoom(c, slot, cand) {
					c.Classrooms[r] = cand
					return
				}
			}
		}
	}
}
