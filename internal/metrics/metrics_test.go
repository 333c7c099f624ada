package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusforge/scheduga/internal/metrics"
)

func TestObserveGenerationUpdatesBestFitness(t *testing.T) {
	registry := prometheus.NewRegistry()
	recorder := metrics.NewRecorder(registry)

	recorder.ObserveGeneration("run-1", []int{30, 10, 20})

	families, err := registry.Gather()
	require.NoError(t, err)

	var best *dto.MetricFamily
	var generations *dto.MetricFamily
	for _, f := range families {
		switch f.GetName() {
		case "scheduga_best_fitness":
			best = f
		case "scheduga_generation_total":
			generations = f
		}
	}

	require.NotNil(t, best)
	require.Len(t, best.Metric, 1)
	assert.Equal(t, float64(10), best.Metric[0].GetGauge().GetValue())

	require.NotNil(t, generations)
	require.Len(t, generations.Metric, 1)
	assert.Equal(t, float64(1), generations.Metric[0].GetCounter().GetValue())
}
