package ga

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the sentinel wrapped by every Config.Validate
// rejection, so callers can test for it with errors.Is (spec §7).
var ErrInvalidConfig = errors.New("ga: invalid configuration")

// Config is the five-parameter knob set of the generational loop (spec
// §4.H, §6 "Input: GA parameters").
type Config struct {
	IndividualsCount uint
	IterationsCount  uint
	SelectionCount   uint
	CrossoverCount   uint
	MutationChance   uint
}

// DefaultConfig returns the spec's stated defaults: 1000/1100/360/220/49.
func DefaultConfig() Config {
	return Config{
		IndividualsCount: 1000,
		IterationsCount:  1100,
		SelectionCount:   360,
		CrossoverCount:   220,
		MutationChance:   49,
	}
}

// Validate rejects the three configurations spec §6 names explicitly.
func (c Config) Validate() error {
	if c.IndividualsCount == 0 {
		return fmt.Errorf("%w: individuals_count must be greater than zero", ErrInvalidConfig)
	}
	if c.SelectionCount >= c.IndividualsCount {
		return fmt.Errorf("%w: selection_count (%d) must be less than individuals_count (%d)", ErrInvalidConfig, c.SelectionCount, c.IndividualsCount)
	}
	if c.MutationChance > 100 {
		return fmt.Errorf("%w: mutation_chance must be in [0, 100], got %d", ErrInvalidConfig, c.MutationChance)
	}
	return nil
}
