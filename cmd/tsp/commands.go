package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wasi-apps/internal/adapters/csvcodec"
	"wasi-apps/internal/adapters/solver"
	"wasi-apps/internal/datasets"
	"wasi-apps/internal/domain"
	"wasi-apps/internal/services"
)

// bruteForceWarnSize is the sample size above which an unbounded brute
// force solve is unlikely to finish in reasonable time.
const bruteForceWarnSize = 12

// countArg parses the <n> argument of write and rand.
func countArg(arg string) (int, error) {
	n, err := strconv.ParseUint(arg, 10, 31)
	if err != nil {
		return 0, usageErrorf("invalid count %q: %w", arg, err)
	}
	return int(n), nil
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageErrorf("%s takes no arguments, got %q", cmd.Name(), args)
	}
	return nil
}

func exactlyOneArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return usageErrorf("%s expects one count argument, got %d", cmd.Name(), len(args))
	}
	return nil
}

func (a *app) writeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "write <n>",
		Short: "Print a random sample of n cities as headerless x,y,name CSV",
		Args:  exactlyOneArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := countArg(args[0])
			if err != nil {
				return err
			}

			sample, err := a.sample(n)
			if err != nil {
				return err
			}

			if err := csvcodec.Encode(cmd.OutOrStdout(), sample); err != nil {
				return fmt.Errorf("write: %w", err)
			}
			return nil
		},
	}
}

func (a *app) randCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rand <n>",
		Short: "Solve a random sample of n cities",
		Args:  exactlyOneArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := countArg(args[0])
			if err != nil {
				return err
			}

			sample, err := a.sample(n)
			if err != nil {
				return err
			}

			return a.solveAndPrint(cmd, a.dataset, sample)
		},
	}
}

func (a *app) readCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "read",
		Short: "Solve the cities read as x,y,name CSV from standard input",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := csvcodec.Decode(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read: %w", err)
			}

			return a.solveAndPrint(cmd, "stdin", points)
		},
	}
}

// sample draws n entries from the selected dataset.
func (a *app) sample(n int) ([]domain.NamedPoint, error) {
	ds, err := datasets.Lookup(a.dataset)
	if err != nil {
		return nil, err
	}

	sample, err := services.Sample(services.NewRand(a.seed), ds.Points(), n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ds.Name, err)
	}
	return sample, nil
}

func (a *app) solveAndPrint(cmd *cobra.Command, source string, points []domain.NamedPoint) error {
	ctx := cmd.Context()

	planner, err := a.planner()
	if err != nil {
		return err
	}

	if planner.Solver.Name() == solver.NameBruteForce && len(points) > bruteForceWarnSize && a.cfg.SolveTimeout == 0 {
		a.logger.Warn("brute force over a large sample may not finish; consider --timeout or --solver 2opt",
			zap.Int("points", len(points)))
	}

	if a.cfg.SolveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.SolveTimeout)
		defer cancel()
	}

	plan, err := planner.Plan(ctx, source, points)
	if plan != nil {
		if _, werr := fmt.Fprintln(cmd.OutOrStdout(), services.FormatPlan(plan)); werr != nil {
			return fmt.Errorf("print route: %w", werr)
		}
	}
	return err
}

// planner builds the solver and, when enabled, opens the route archive.
func (a *app) planner() (*services.Planner, error) {
	s, err := solver.New(a.solver)
	if err != nil {
		return nil, err
	}

	if !a.archive {
		return services.NewPlanner(s, nil), nil
	}

	store, err := a.openArchive()
	if err != nil {
		return nil, err
	}
	return services.NewPlanner(s, store), nil
}
