package chromosome

import "github.com/campusforge/scheduga/timetable"

// ConflictSlot reports whether placing request r at slot would clash with
// some other request r' already occupying that slot, by shared professor
// or overlapping groups (spec §4.E, invariant I4's professor/group half).
func ConflictSlot(data *timetable.ScheduleData, c *Chromosomes, r int, slot timetable.Slot) bool {
	requests := data.Requests()
	self := requests[r]

	for rp, lesson := range c.Lessons {
		if rp == r || lesson != slot {
			continue
		}
		other := requests[rp]
		if self.Professor() == other.Professor() || timetable.GroupsIntersect(self, other) {
			return true
		}
	}
	return false
}

// ConflictRoom reports whether addr is already occupied by some request
// at slot. addr == Any never conflicts (it is a wildcard).
func ConflictRoom(c *Chromosomes, slot timetable.Slot, addr timetable.ClassroomAddress) bool {
	if addr.IsAny() {
		return false
	}
	for rp, classroom := range c.Classrooms {
		if classroom == addr && c.Lessons[rp] == slot {
			return true
		}
	}
	return false
}

// ConflictFull combines ConflictSlot with a classroom check: when r's
// classroom is the Any wildcard it reduces to ConflictSlot; otherwise it
// also rejects slots where r's own classroom is already taken.
func ConflictFull(data *timetable.ScheduleData, c *Chromosomes, r int, slot timetable.Slot) bool {
	if ConflictSlot(data, c, r, slot) {
		return true
	}
	if c.Classrooms[r].IsAny() {
		return false
	}
	return ConflictRoom(c, slot, c.Classrooms[r])
}
