package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/campusforge/scheduga/ga"
	"github.com/campusforge/scheduga/individual"
	"github.com/campusforge/scheduga/internal/catalogio"
	"github.com/campusforge/scheduga/internal/config"
	"github.com/campusforge/scheduga/internal/logging"
	"github.com/campusforge/scheduga/internal/metrics"
	"github.com/campusforge/scheduga/timetable"
)

func newRunCommand() *cobra.Command {
	var (
		catalogPath string
		metricsAddr string
		workers     int

		individualsCount uint
		iterationsCount  uint
		selectionCount   uint
		crossoverCount   uint
		mutationChance   uint
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "run the genetic algorithm over a catalog and print the best schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}

			// CLI flags override the environment/.env-derived config, the
			// teacher's own flag-over-default layering (cli.go).
			flags := cmd.Flags()
			if flags.Changed("metrics-addr") {
				cfg.MetricsAddr = metricsAddr
			}
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			if flags.Changed("individuals") {
				cfg.GA.IndividualsCount = individualsCount
			}
			if flags.Changed("iterations") {
				cfg.GA.IterationsCount = iterationsCount
			}
			if flags.Changed("selection") {
				cfg.GA.SelectionCount = selectionCount
			}
			if flags.Changed("crossover") {
				cfg.GA.CrossoverCount = crossoverCount
			}
			if flags.Changed("mutation-chance") {
				cfg.GA.MutationChance = mutationChance
			}

			logger, err := logging.New(cfg)
			if err != nil {
				return fmt.Errorf("building logger: %w", err)
			}
			defer logger.Sync()

			requests, locks, err := catalogio.Load(catalogPath)
			if err != nil {
				return fmt.Errorf("loading catalog %q: %w", catalogPath, err)
			}
			data, err := timetable.NewScheduleData(requests, locks)
			if err != nil {
				return fmt.Errorf("building schedule data: %w", err)
			}

			runID := uuid.NewString()
			logger.Info("starting run",
				zap.String("run_id", runID),
				zap.Int("requests", len(data.Requests())),
				zap.Uint("individuals", cfg.GA.IndividualsCount),
				zap.Uint("iterations", cfg.GA.IterationsCount))

			ga.SetWorkerCount(cfg.Workers)

			var recorder *metrics.Recorder
			if cfg.MetricsAddr != "" {
				recorder = metrics.NewRecorder(prometheus.DefaultRegisterer)
				ctx, cancel := context.WithCancel(cmd.Context())
				defer cancel()
				go func() {
					if err := metrics.Serve(ctx, cfg.MetricsAddr); err != nil {
						logger.Error("metrics server stopped", zap.Error(err))
					}
				}()
			}

			opts := []ga.Option{
				ga.WithProgress(func(generation int, fitnesses []int) {
					best := fitnesses[0]
					for _, f := range fitnesses {
						if f < best {
							best = f
						}
					}
					logger.Debug("generation complete",
						zap.String("run_id", runID),
						zap.Int("generation", generation),
						zap.Int("best_fitness", best))
					if recorder != nil {
						recorder.ObserveGeneration(runID, fitnesses)
					}
				}),
			}

			population, err := ga.Run(data, cfg.GA, opts...)
			if err != nil {
				return fmt.Errorf("running genetic algorithm: %w", err)
			}

			best := population[0]
			logger.Info("run complete", zap.String("run_id", runID), zap.Int("best_fitness", best.Fitness()))
			return printBest(best)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&catalogPath, "catalog", "catalog.csv", "path to the request/lock catalog (.csv or .json)")
	flags.StringVar(&metricsAddr, "metrics-addr", "", "address to serve Prometheus metrics on (empty disables)")
	flags.IntVar(&workers, "workers", 0, "number of worker goroutines (0 = runtime.NumCPU())")
	flags.UintVar(&individualsCount, "individuals", 0, "population size")
	flags.UintVar(&iterationsCount, "iterations", 0, "number of generations")
	flags.UintVar(&selectionCount, "selection", 0, "elite count preserved each generation")
	flags.UintVar(&crossoverCount, "crossover", 0, "number of crossover attempts each generation")
	flags.UintVar(&mutationChance, "mutation-chance", 0, "mutation probability threshold in [0, 100]")

	return cmd
}

func printBest(best *individual.Individual) error {
	_, err := fmt.Fprint(os.Stdout, best.Format())
	return err
}
