package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/campusforge/scheduga/arena"
	"github.com/campusforge/scheduga/fitness"
	"github.com/campusforge/scheduga/internal/catalogio"
	"github.com/campusforge/scheduga/timetable"
)

func newScoreCommand() *cobra.Command {
	var (
		catalogPath    string
		assignmentPath string
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "score a fixed catalog+assignment pair without running the genetic algorithm",
		RunE: func(cmd *cobra.Command, args []string) error {
			requests, locks, err := catalogio.Load(catalogPath)
			if err != nil {
				return fmt.Errorf("loading catalog %q: %w", catalogPath, err)
			}
			data, err := timetable.NewScheduleData(requests, locks)
			if err != nil {
				return fmt.Errorf("building schedule data: %w", err)
			}

			assignmentFile, err := os.Open(assignmentPath)
			if err != nil {
				return fmt.Errorf("opening %q: %w", assignmentPath, err)
			}
			defer assignmentFile.Close()

			chromosomes, err := catalogio.LoadAssignment(assignmentFile, data)
			if err != nil {
				return fmt.Errorf("loading assignment %q: %w", assignmentPath, err)
			}

			buf := arena.NewBuffer(arena.DefaultSize)
			score := fitness.Evaluate(data, chromosomes, buf)

			fmt.Printf("fitness: %d\n", score)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&catalogPath, "catalog", "catalog.csv", "path to the request/lock catalog (.csv or .json)")
	flags.StringVar(&assignmentPath, "assignment", "assignment.json", "path to the fixed (lesson, classroom) assignment JSON file")

	return cmd
}
