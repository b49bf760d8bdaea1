package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"wasi-apps/internal/datasets"
	"wasi-apps/internal/services"
)

func (a *app) benchCommand() *cobra.Command {
	var (
		size     int
		runs     int
		parallel int
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Solve many random samples concurrently and report timings",
		Long: `bench repeats "tsp rand <size>" --runs times with up to --parallel solves
in flight and prints aggregate solve timings. With a fixed --seed the
samples are identical across invocations.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := datasets.Lookup(a.dataset)
			if err != nil {
				return err
			}

			planner, err := a.planner()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			if a.cfg.SolveTimeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, a.cfg.SolveTimeout)
				defer cancel()
			}

			report, err := services.Bench(ctx, services.BenchRequest{
				Source:     ds.Name,
				Points:     ds.Points(),
				SampleSize: size,
				Runs:       runs,
				Parallel:   parallel,
				Seed:       a.seed,
			}, planner)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "runs: %d, sample: %d, solver: %s, parallel: %d\n", report.Runs, size, planner.Solver.Name(), parallel); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(out, "wall: %s, mean solve: %s, max solve: %s\n", report.Wall, report.Mean, report.Max); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "shortest: %g, longest: %g\n", report.Shortest, report.Longest)
			return err
		},
	}

	cmd.Flags().IntVarP(&size, "size", "n", 8, "cities per sample")
	cmd.Flags().IntVar(&runs, "runs", 100, "number of samples to solve")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", runtime.NumCPU(), "solves in flight")

	return cmd
}
