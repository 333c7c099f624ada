// Package timetable holds the time/space primitives and request catalog
// shared by every individual in the genetic algorithm: slot arithmetic,
// classroom addresses, subject requests, locks, and the ScheduleData
// catalog that indexes them.
package timetable

import "math"

// Constants that are part of the external contract (spec §6).
const (
	Periods         = 7
	DaysInWeek      = 6
	DaysInSchedule  = DaysInWeek * 2
	MaxLessonsCount = Periods * DaysInSchedule

	MinComplexity = 1
	MaxComplexity = 4
)

// NoLesson marks a request with no assigned slot.
const NoLesson = Slot(math.MaxUint32)

// NotEvaluated marks an individual whose fitness cache is stale.
const NotEvaluated = -1

// lateSaturdaySlots are the forbidden slots of spec §3 and §6: the last
// three periods of each Saturday in the two-week schedule (days 5 and 11).
var lateSaturdaySlots = map[Slot]struct{}{
	39: {}, 40: {}, 41: {},
	81: {}, 82: {}, 83: {},
}
