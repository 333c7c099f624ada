// Package ga implements the generational loop of spec §4.H: it owns a
// population of individual.Individual values and drives them through
// mutation, selection, crossover, re-evaluation, and replacement each
// generation. Grounded on original_source/ScheduleGA.{h,cpp}'s
// ScheduleGA::Start.
package ga

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand"
	"sort"

	"github.com/campusforge/scheduga/individual"
	"github.com/campusforge/scheduga/timetable"
)

// Run builds a population of cfg.IndividualsCount clones of one seeded
// individual, drives them through cfg.IterationsCount generations, and
// returns them sorted ascending by fitness — element [0] of the returned
// slice is the best schedule found (spec §4.H "Termination").
func Run(data *timetable.ScheduleData, cfg Config, opts ...Option) ([]*individual.Individual, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	masterSeed, err := entropySeed()
	if err != nil {
		return nil, fmt.Errorf("ga: reading entropy seed: %w", err)
	}
	master := mrand.New(mrand.NewSource(masterSeed))

	base, err := individual.New(data, master.Int63())
	if err != nil {
		return nil, err
	}

	population := make([]*individual.Individual, cfg.IndividualsCount)
	population[0] = base
	for i := 1; i < len(population); i++ {
		population[i] = base.Clone()
	}

	selectionCount := int(cfg.SelectionCount)
	mutationChance := int(cfg.MutationChance)

	for iteration := uint(0); iteration < cfg.IterationsCount; iteration++ {
		// 1. mutate, in parallel, independent across individuals.
		forEachParallel(len(population), func(i int) {
			ind := population[i]
			if ind.MutationProbability() <= mutationChance {
				ind.Mutate()
				ind.Evaluate()
			}
		})

		// 2. rank the top selection_count individuals to the front.
		sortByFitness(population)

		// 3. crossover, sequentially, crossover_count times. An empty
		// elite band (selection_count == 0) has no first parent to draw,
		// so there is nothing to cross this generation.
		if selectionCount > 0 {
			for i := uint(0); i < cfg.CrossoverCount; i++ {
				first := population[master.Intn(selectionCount)]
				second := population[master.Intn(len(population))]
				first.Crossover(second)
			}
		}

		// 4. re-evaluate, in parallel, across the whole population.
		forEachParallel(len(population), func(i int) {
			population[i].Evaluate()
		})

		// 5. replace the worst selection_count individuals with fresh
		// copies of the current elite front, preserving it for the next
		// generation's mutation pass (spec §4.H step 5, I8 monotonicity).
		sortByFitness(population)
		tailStart := len(population) - selectionCount
		for i := 0; i < selectionCount; i++ {
			population[tailStart+i] = population[i].Clone()
		}

		if o.progress != nil {
			fitnesses := make([]int, len(population))
			for i, ind := range population {
				fitnesses[i] = ind.Fitness()
			}
			o.progress(int(iteration), fitnesses)
		}
	}

	sortByFitness(population)
	return population, nil
}

// sortByFitness reorders population ascending by cached fitness. The
// source uses std::nth_element for the two in-loop reorderings (spec
// §4.H steps 2 and 5 only need the selection_count boundary correct, not
// a full order) and std::sort only once at the end; a full sort here
// satisfies every one of those boundary guarantees as a special case, at
// the cost of the nth_element's better asymptotics.
func sortByFitness(population []*individual.Individual) {
	sort.Slice(population, func(i, j int) bool {
		return population[i].Fitness() < population[j].Fitness()
	})
}

// entropySeed draws a fresh generator seed from the system entropy
// source (spec §6: "Randomness source: seeded from a system entropy
// source at the start of Start").
func entropySeed() (int64, error) {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}
