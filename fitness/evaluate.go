// Package fitness implements the evaluator of spec §4.F: a two-pass scan
// that turns one candidate Chromosomes into a single integer cost, lower
// being better. Every per-day accumulator is a flatmap.Map whose initial
// backing slice is cut from the caller's arena.Buffer; a map that grows
// past that initial capacity continues on the general heap.
// Grounded on original_source/ScheduleIndividual.cpp's EvaluateSchedule.
package fitness

import (
	"math"

	"github.com/campusforge/scheduga/arena"
	"github.com/campusforge/scheduga/chromosome"
	"github.com/campusforge/scheduga/flatmap"
	"github.com/campusforge/scheduga/timetable"
)

// noBuilding is the "no building" sentinel for the per-group building
// array, distinct from any real ClassroomAddress.Building value.
const noBuilding = math.MaxUint32

// NoLessonPenalty is added per unplaced request (spec §4.F pass 1).
const NoLessonPenalty = 100

// NoClassroomPenalty is added once per group of every request placed
// without a classroom (spec §4.F pass 1).
const NoClassroomPenalty = 100

// windowGapGroupWeight and windowGapProfessorWeight scale the per-gap
// penalty in pass 2 steps 2 and 3 of spec §4.F.
const (
	windowGapGroupWeight     = 3
	windowGapProfessorWeight = 2
	buildingTransitionCost   = 64
)

type periodBitmap [timetable.Periods]bool
type periodBuildings [timetable.Periods]uint32

// dayMaps bundles the four per-day accumulators pass 1 fills and pass 2
// consumes, one set per schedule day.
type dayMaps struct {
	complexity       *flatmap.Map[uint64, int]
	groupWindows     *flatmap.Map[uint64, periodBitmap]
	professorWindows *flatmap.Map[uint64, periodBitmap]
	groupBuildings   *flatmap.Map[uint64, periodBuildings]
}

func newDayMaps(buf *arena.Buffer, capacityHint int) dayMaps {
	return dayMaps{
		complexity:       flatmap.NewMap[uint64, int](buf, capacityHint),
		groupWindows:     flatmap.NewMap[uint64, periodBitmap](buf, capacityHint),
		professorWindows: flatmap.NewMap[uint64, periodBitmap](buf, capacityHint),
		groupBuildings:   flatmap.NewMap[uint64, periodBuildings](buf, capacityHint),
	}
}

// Evaluate scores one candidate schedule against data, using buf as the
// scratch arena for every per-day accumulator (spec §4.F). buf may be nil,
// in which case the accumulators fall back to the heap.
func Evaluate(data *timetable.ScheduleData, c *chromosome.Chromosomes, buf *arena.Buffer) int {
	const perDayCapacityHint = 8

	days := make([]dayMaps, timetable.DaysInSchedule)
	for d := range days {
		days[d] = newDayMaps(buf, perDayCapacityHint)
	}

	score := 0
	requests := data.Requests()

	for r, request := range requests {
		lesson := c.Lessons[r]
		if lesson == timetable.NoLesson {
			score += NoLessonPenalty
			continue
		}

		day, period := lesson.Day(), lesson.Period()
		dm := &days[day]

		profWindow := dm.professorWindows.At(request.Professor())
		profWindow[period] = true

		for _, g := range request.Groups() {
			*dm.complexity.At(g) += period * request.Complexity()

			groupWindow := dm.groupWindows.At(g)
			groupWindow[period] = true

			buildings := buildingsBucket(dm.groupBuildings, g)

			if c.Classrooms[r].IsUnassigned() {
				score += NoClassroomPenalty
				continue
			}
			buildings[period] = c.Classrooms[r].Building
		}
	}

	maxComplexity := 0
	for d := range days {
		dm := &days[d]

		for _, e := range dm.complexity.Entries() {
			if e.Val > maxComplexity {
				maxComplexity = e.Val
			}
		}

		score += scanWindowGaps(dm.groupWindows, windowGapGroupWeight)
		score += scanWindowGaps(dm.professorWindows, windowGapProfessorWeight)
		score += scanBuildingTransitions(dm.groupBuildings)
	}

	return score + maxComplexity
}

// buildingsBucket returns the periodBuildings bucket for g within m,
// seeding it with noBuilding in every period on first touch. Mirrors
// EvaluateSchedule's lower_bound/emplace_hint pattern: zero is a
// legitimate building id, so the bucket cannot rely on its zero value to
// mean "untouched" the way complexity and the bitmap maps do.
func buildingsBucket(m *flatmap.Map[uint64, periodBuildings], g uint64) *periodBuildings {
	i := m.LowerBound(g)
	entries := m.Entries()
	if i < len(entries) && entries[i].Key == g {
		return &entries[i].Val
	}

	var fresh periodBuildings
	for p := range fresh {
		fresh[p] = noBuilding
	}
	i = m.EmplaceHint(i, g, fresh)
	return &m.Entries()[i].Val
}

// scanWindowGaps applies spec §4.F pass 2 steps 2/3 to one day's bitmap
// map: for each key's occupied periods, left to right, add weight*gap for
// every gap wider than one period since the previous occupied period. The
// first occupied period of a day never itself counts as a gap — a gap is
// only defined between two occupied periods (spec glossary, "Window /
// gap"), so a lone lesson late in the day scores no penalty here.
func scanWindowGaps(m *flatmap.Map[uint64, periodBitmap], weight int) int {
	total := 0
	for _, e := range m.Entries() {
		prev := 0
		seen := false
		for period, occupied := range e.Val {
			if !occupied {
				continue
			}
			if seen {
				if gap := period - prev; gap > 1 {
					total += gap * weight
				}
			}
			prev = period
			seen = true
		}
	}
	return total
}

// scanBuildingTransitions applies spec §4.F pass 2 step 4 to one day's
// building-array map.
func scanBuildingTransitions(m *flatmap.Map[uint64, periodBuildings]) int {
	total := 0
	for _, e := range m.Entries() {
		prevBuilding := uint32(noBuilding)
		for _, current := range e.Val {
			if current != noBuilding && prevBuilding != noBuilding && current != prevBuilding {
				total += buildingTransitionCost
			}
			prevBuilding = current
		}
	}
	return total
}
