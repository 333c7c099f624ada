package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusforge/scheduga/ga"
	"github.com/campusforge/scheduga/internal/config"
)

func TestLoadAppliesDefaults(t *testing.T) {
	for _, key := range []string{
		"SCHEDUGA_ENV", "SCHEDUGA_INDIVIDUALS_COUNT", "SCHEDUGA_ITERATIONS_COUNT",
		"SCHEDUGA_SELECTION_COUNT", "SCHEDUGA_CROSSOVER_COUNT", "SCHEDUGA_MUTATION_CHANCE",
	} {
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.EnvDevelopment, cfg.Env)
	assert.Equal(t, ga.DefaultConfig(), cfg.GA)
}

func TestLoadHonorsEnvironmentOverride(t *testing.T) {
	require.NoError(t, os.Setenv("SCHEDUGA_INDIVIDUALS_COUNT", "42"))
	defer os.Unsetenv("SCHEDUGA_INDIVIDUALS_COUNT")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.EqualValues(t, 42, cfg.GA.IndividualsCount)
}
