// Package datagen generates synthetic SubjectRequest catalogs for
// benchmarking the GA driver. Grounded on
// original_source/ScheduleCommon.cpp's ScheduleDataGenerator; reinstated
// as ambient CLI tooling (spec.md §1 names "random test-data generation
// for benchmarks" out of the core library's scope), used only by
// cmd/scheduga's "gen" subcommand and never imported by the core
// packages.
package datagen

import (
	"math/rand"

	"github.com/campusforge/scheduga/timetable"
)

// Options bounds the random catalog's shape. Grounded on the four
// constructor parameters of ScheduleDataGenerator: min/max groups per
// request and min/max classrooms per request.
type Options struct {
	RequestCount       int
	MinGroupsCount     int
	MaxGroupsCount     int
	MinClassroomsCount int
	MaxClassroomsCount int
	MaxProfessorID     int
	MaxGroupID         int
	MaxBuildingID      int
	MaxRoomID          int
}

// DefaultOptions mirrors the bounds the teacher's generator used in
// practice (GenerateRandomClassrooms: buildings in [0,5], rooms in
// [0,1000]).
func DefaultOptions(requestCount int) Options {
	return Options{
		RequestCount:       requestCount,
		MinGroupsCount:     1,
		MaxGroupsCount:     4,
		MinClassroomsCount: 1,
		MaxClassroomsCount: 3,
		MaxProfessorID:     requestCount,
		MaxGroupID:         requestCount * 3,
		MaxBuildingID:      5,
		MaxRoomID:          1000,
	}
}

// Generate builds opts.RequestCount random, feasible SubjectRequests
// with sequential IDs 0..RequestCount-1 and no locks, the Go equivalent
// of ScheduleDataGenerator::GenerateSubjectRequests.
func Generate(rng *rand.Rand, opts Options) ([]timetable.SubjectRequest, error) {
	requests := make([]timetable.SubjectRequest, 0, opts.RequestCount)
	for i := 0; i < opts.RequestCount; i++ {
		req, err := timetable.NewSubjectRequest(
			uint64(i),
			randomID(rng, opts.MaxProfessorID),
			randomComplexity(rng),
			randomWeekDays(rng),
			randomIDs(rng, randomCount(rng, opts.MinGroupsCount, opts.MaxGroupsCount), opts.MaxGroupID),
			randomClassrooms(rng, randomCount(rng, opts.MinClassroomsCount, opts.MaxClassroomsCount), opts.MaxBuildingID, opts.MaxRoomID),
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func randomComplexity(rng *rand.Rand) int {
	return timetable.MinComplexity + rng.Intn(timetable.MaxComplexity-timetable.MinComplexity+1)
}

func randomWeekDays(rng *rand.Rand) []bool {
	days := make([]bool, timetable.DaysInWeek)
	for i := range days {
		days[i] = rng.Intn(2) == 1
	}
	return days
}

func randomID(rng *rand.Rand, maxID int) uint64 {
	if maxID <= 0 {
		return 0
	}
	return uint64(rng.Intn(maxID + 1))
}

func randomIDs(rng *rand.Rand, n, maxID int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = randomID(rng, maxID)
	}
	return out
}

func randomCount(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}

func randomClassrooms(rng *rand.Rand, n, maxBuilding, maxRoom int) []timetable.ClassroomAddress {
	out := make([]timetable.ClassroomAddress, n)
	for i := range out {
		out[i] = timetable.ClassroomAddress{
			Building: uint32(randomID(rng, maxBuilding)),
			Room:     uint32(randomID(rng, maxRoom)),
		}
	}
	return out
}
