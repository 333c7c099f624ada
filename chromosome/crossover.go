package chromosome

import "github.com/campusforge/scheduga/timetable"

// ReadyToCrossover reports whether swapping request r's (lesson, classroom)
// pair between first and second would keep both feasible (spec §4.G). The
// check is symmetric in first/second by construction.
func ReadyToCrossover(dataFirst, dataSecond *timetable.ScheduleData, first, second *Chromosomes, r int) bool {
	firstLesson, firstClassroom := first.Lessons[r], first.Classrooms[r]
	secondLesson, secondClassroom := second.Lessons[r], second.Classrooms[r]

	if ConflictRoom(first, secondLesson, secondClassroom) || ConflictRoom(second, firstLesson, firstClassroom) {
		return false
	}

	if ConflictFull(dataFirst, first, r, secondLesson) || ConflictFull(dataSecond, second, r, firstLesson) {
		return false
	}

	return true
}

// Crossover swaps request r's (lesson, classroom) pair between first and
// second unconditionally. Callers must check ReadyToCrossover first.
// Applying Crossover twice with the same r is an involution: it restores
// the original pair.
func Crossover(first, second *Chromosomes, r int) {
	first.Lessons[r], second.Lessons[r] = second.Lessons[r], first.Lessons[r]
	first.Classrooms[r], second.Classrooms[r] = second.Classrooms[r], first.Classrooms[r]
}
