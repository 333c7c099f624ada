// Package individual implements one candidate solution: its chromosomes,
// cached fitness, private RNG, and scratch evaluation buffer (spec
// §4.G). Grounded on original_source/ScheduleIndividual.{h,cpp}'s
// ScheduleIndividual, adapted from the original's single shared
// std::mt19937 (seeded once per individual from a std::random_device)
// into a per-individual *rand.Rand so the mutation and evaluation
// regions (spec §5) can run one goroutine per individual without a
// shared-state data race — the teacher's own global math/rand.Seed
// style (cli.go, main.go) would serialize every goroutine on one lock.
package individual

import (
	"math/rand"

	"github.com/campusforge/scheduga/arena"
	"github.com/campusforge/scheduga/chromosome"
	"github.com/campusforge/scheduga/fitness"
	"github.com/campusforge/scheduga/timetable"
)

// Individual is one candidate timetable plus the private state a
// generational loop needs to mutate, evaluate, and cross it with others.
type Individual struct {
	data        *timetable.ScheduleData
	chromosomes *chromosome.Chromosomes
	fitness     int
	rng         *rand.Rand
	buf         *arena.Buffer
}

// New seeds a fresh Individual from data, evaluating it once so its
// fitness cache starts warm (spec §4.H initialization).
func New(data *timetable.ScheduleData, seed int64) (*Individual, error) {
	c, err := chromosome.Seed(data)
	if err != nil {
		return nil, err
	}
	ind := &Individual{
		data:        data,
		chromosomes: c,
		fitness:     timetable.NotEvaluated,
		rng:         rand.New(rand.NewSource(seed)),
		buf:         arena.NewBuffer(arena.DefaultSize),
	}
	ind.Evaluate()
	return ind, nil
}

// Clone returns a deep, independently mutable copy. The clone gets its
// own RNG seeded from the parent's generator (not a copy of its state),
// so clones of clones still diverge, and its own scratch buffer sized to
// the parent's current capacity.
func (ind *Individual) Clone() *Individual {
	return &Individual{
		data:        ind.data,
		chromosomes: ind.chromosomes.Clone(),
		fitness:     ind.fitness,
		rng:         rand.New(rand.NewSource(ind.rng.Int63())),
		buf:         arena.NewBuffer(ind.buf.Cap()),
	}
}

// Chromosomes exposes the candidate timetable for read-only inspection.
func (ind *Individual) Chromosomes() *chromosome.Chromosomes { return ind.chromosomes }

// Fitness returns the cached fitness, or NotEvaluated if the cache is stale.
func (ind *Individual) Fitness() int { return ind.fitness }

// MutationProbability draws a uniform integer in [0, 100] for the caller
// to compare against a configured mutation_chance (spec §4.G).
func (ind *Individual) MutationProbability() int { return ind.rng.Intn(101) }

// Evaluate returns the cached fitness if present, otherwise scores the
// current chromosomes against the private scratch buffer, grows the
// buffer to its post-evaluation peak, caches, and returns the result
// (spec §4.G, invariant I7).
func (ind *Individual) Evaluate() int {
	if ind.fitness != timetable.NotEvaluated {
		return ind.fitness
	}

	ind.buf.Reset()
	ind.fitness = fitness.Evaluate(ind.data, ind.chromosomes, ind.buf)

	if grown := ind.buf.Peak(); grown > ind.buf.Cap() {
		ind.buf.Grow(grown)
	}
	return ind.fitness
}

// Mutate rolls one request and, with equal probability, either changes
// its classroom or its lesson. Both paths are feasibility-preserving
// no-ops when no valid choice is found within their retry bound (spec §7
// "feasibility-escape"). On success the fitness cache is invalidated.
func (ind *Individual) Mutate() {
	r := ind.rng.Intn(len(ind.data.Requests()))
	if ind.rng.Intn(2) == 0 {
		ind.changeClassroom(r)
	} else {
		ind.changeLesson(r)
	}
}

func (ind *Individual) changeClassroom(r int) {
	candidates := ind.data.Requests()[r].Classrooms()
	if len(candidates) == 0 {
		return
	}

	lesson := ind.chromosomes.Lessons[r]
	chosen := candidates[ind.rng.Intn(len(candidates))]
	for try := 1; try < len(candidates) && chromosome.ConflictRoom(ind.chromosomes, lesson, chosen); try++ {
		chosen = candidates[ind.rng.Intn(len(candidates))]
	}
	if chromosome.ConflictRoom(ind.chromosomes, lesson, chosen) {
		return
	}

	ind.chromosomes.Classrooms[r] = chosen
	ind.fitness = timetable.NotEvaluated
}

func (ind *Individual) changeLesson(r int) {
	if _, locked := ind.data.LockedSlot(ind.data.Requests()[r].ID()); locked {
		return
	}

	request := ind.data.Requests()[r]
	var slot timetable.Slot
	feasible := false

	for try := 0; try < timetable.MaxLessonsCount; try++ {
		candidate := timetable.Slot(ind.rng.Intn(timetable.MaxLessonsCount))
		if !request.AdmitsWeekDay(candidate.Day()) || timetable.IsLateSaturday(candidate) {
			continue
		}
		if chromosome.ConflictFull(ind.data, ind.chromosomes, r, candidate) {
			continue
		}
		slot, feasible = candidate, true
		break
	}
	if !feasible {
		return
	}

	ind.chromosomes.Lessons[r] = slot
	ind.fitness = timetable.NotEvaluated
}

// Crossover attempts to swap one randomly chosen request's (lesson,
// classroom) pair with other. Both individuals must share the same
// ScheduleData (the GA driver only ever crosses members of the same
// population). On rejection neither chromosome changes.
func (ind *Individual) Crossover(other *Individual) {
	r := ind.rng.Intn(len(ind.data.Requests()))
	if !chromosome.ReadyToCrossover(ind.data, other.data, ind.chromosomes, other.chromosomes, r) {
		return
	}

	chromosome.Crossover(ind.chromosomes, other.chromosomes, r)
	ind.fitness = timetable.NotEvaluated
	other.fitness = timetable.NotEvaluated
}
