package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/campusforge/scheduga/internal/catalogio"
	"github.com/campusforge/scheduga/internal/datagen"
)

func newGenCommand() *cobra.Command {
	var (
		outPath   string
		count     int
		seed      int64
		useSeed   bool
		minGroups int
		maxGroups int
		minClass  int
		maxClass  int
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "generate a synthetic request catalog for benchmarking",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 {
				return fmt.Errorf("count must be > 0")
			}

			s := seed
			if !useSeed {
				s = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(s))

			opts := datagen.DefaultOptions(count)
			if cmd.Flags().Changed("min-groups") {
				opts.MinGroupsCount = minGroups
			}
			if cmd.Flags().Changed("max-groups") {
				opts.MaxGroupsCount = maxGroups
			}
			if cmd.Flags().Changed("min-classrooms") {
				opts.MinClassroomsCount = minClass
			}
			if cmd.Flags().Changed("max-classrooms") {
				opts.MaxClassroomsCount = maxClass
			}

			requests, err := datagen.Generate(rng, opts)
			if err != nil {
				return fmt.Errorf("generating catalog: %w", err)
			}

			out, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("creating %q: %w", outPath, err)
			}
			defer out.Close()

			return catalogio.WriteJSON(out, requests, nil)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&outPath, "out", "catalog.json", "output path for the generated catalog")
	flags.IntVarP(&count, "count", "n", 100, "number of subject requests to generate")
	flags.Int64Var(&seed, "seed", 0, "RNG seed (default: derived from the current time)")
	flags.BoolVar(&useSeed, "use-seed", false, "use --seed instead of a time-derived seed")
	flags.IntVar(&minGroups, "min-groups", 1, "minimum groups per request")
	flags.IntVar(&maxGroups, "max-groups", 4, "maximum groups per request")
	flags.IntVar(&minClass, "min-classrooms", 1, "minimum candidate classrooms per request")
	flags.IntVar(&maxClass, "max-classrooms", 3, "maximum candidate classrooms per request")

	return cmd
}
