// Package metrics instruments the generational loop with Prometheus
// gauges and counters, served over the standard library's net/http the
// way the teacher serves its own results (web.go), substituting a
// /metrics endpoint for the teacher's schedule-viewer endpoints.
package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder bundles the metrics one ga.Run emits, labeled by the run's
// correlation UUID (spec GLOSSARY "Run").
type Recorder struct {
	generations      *prometheus.CounterVec
	bestFitness      *prometheus.GaugeVec
	populationScores *prometheus.HistogramVec
}

// NewRecorder registers the scheduga_* collectors against registry. Pass
// prometheus.NewRegistry() for an isolated test registry, or
// prometheus.DefaultRegisterer to serve them process-wide.
func NewRecorder(registerer prometheus.Registerer) *Recorder {
	factory := promauto.With(registerer)
	return &Recorder{
		generations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "scheduga_generation_total",
			Help: "Number of GA generations completed, labeled by run.",
		}, []string{"run"}),
		bestFitness: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "scheduga_best_fitness",
			Help: "Fitness of the best individual after the most recent generation, labeled by run.",
		}, []string{"run"}),
		populationScores: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "scheduga_population_fitness",
			Help:    "Distribution of fitness across the population after the most recent generation, labeled by run.",
			Buckets: prometheus.DefBuckets,
		}, []string{"run"}),
	}
}

// ObserveGeneration records one completed generation: the running
// per-run generation counter, the current best fitness, and the full
// population's fitness distribution.
func (r *Recorder) ObserveGeneration(runID string, fitnesses []int) {
	r.generations.WithLabelValues(runID).Inc()
	if len(fitnesses) == 0 {
		return
	}

	best := fitnesses[0]
	for _, f := range fitnesses {
		if f < best {
			best = f
		}
		r.populationScores.WithLabelValues(runID).Observe(float64(f))
	}
	r.bestFitness.WithLabelValues(runID).Set(float64(best))
}

// Serve starts an HTTP server exposing the registered collectors on
// addr's "/metrics" path. It runs until ctx is cancelled.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	server := &http.Server{Addr: addr, Handler: mux}
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		return server.Shutdown(context.Background())
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
