// Command scheduga is the CLI entrypoint: run drives the GA to produce a
// timetable, gen emits a synthetic catalog for benchmarking, and score
// reports the fitness of a fixed assignment without running the GA.
// Grounded on the teacher's cli.go: one root cobra.Command with a
// subcommand per mode of operation, each subcommand's flags bound to
// local vars in its constructor.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "scheduga",
		Short: "Genetic-algorithm university timetable solver",
		Long: "Builds a feasible, low-conflict course timetable from a catalog of subject\n" +
			"requests using a generational genetic algorithm.",
	}

	root.AddCommand(newRunCommand())
	root.AddCommand(newGenCommand())
	root.AddCommand(newScoreCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
