package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wasi-apps/internal/config"
	"wasi-apps/internal/platform/obs"
	"wasi-apps/internal/ports"
)

const usageLine = "unknown arguments! tsp { write [n] | rand [n] | read }"

// usageError marks errors caused by missing or malformed arguments.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// app carries everything the subcommands share for one invocation.
type app struct {
	cfg    config.Config
	dotenv bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// persistent flags
	dataset string
	solver  string
	seed    int64
	verbose bool
	archive bool

	logger  *zap.Logger
	store   ports.RouteArchive
	closers []io.Closer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	loaded, err := config.LoadDotEnv()
	if err != nil {
		return a.report(err)
	}
	a.dotenv = loaded

	a.cfg, err = config.FromEnv()
	if err != nil {
		return a.report(err)
	}

	root := a.rootCommand()
	root.SetArgs(args)
	err = root.ExecuteContext(ctx)
	a.close()

	return a.report(err)
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "tsp",
		Short: "Sample city datasets and solve travelling salesman tours",
		Long: `tsp samples random subsets of a compiled-in city dataset and finds the
shortest closed tour through them.

  tsp write <n>   print a random sample of n cities as x,y,name CSV
  tsp rand <n>    solve a random sample of n cities
  tsp read        solve the cities read as CSV from standard input

The default brute-force solver is exact but factorial in n; use
--timeout or a heuristic solver (--solver nearest|2opt) for large samples.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageErrorf("unknown command %q", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return usageErrorf("missing command")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := obs.NewLogger(a.cfg.LogLevel, a.verbose)
			if err != nil {
				return err
			}
			a.logger = logger

			if a.dotenv {
				logger.Debug("loaded .env file")
			}

			ctx := obs.WithLogger(cmd.Context(), logger)
			ctx = obs.WithRunID(ctx, uuid.NewString())
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := root.PersistentFlags()
	flags.StringVar(&a.dataset, "dataset", a.cfg.Dataset, "dataset to sample from (wg59, sgb128)")
	flags.StringVar(&a.solver, "solver", a.cfg.Solver, "tour solver (brute, heldkarp, nearest, 2opt)")
	flags.Int64Var(&a.seed, "seed", 0, "random seed; 0 seeds from the clock")
	flags.DurationVar(&a.cfg.SolveTimeout, "timeout", a.cfg.SolveTimeout, "abort solving after this long (0 = never)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&a.archive, "archive", a.cfg.ArchiveDriver != "", "record solved routes in the route archive")

	root.AddCommand(
		a.writeCommand(),
		a.randCommand(),
		a.readCommand(),
		a.benchCommand(),
		a.historyCommand(),
	)

	return root
}

// report prints err (if any) to stderr and maps it to an exit code.
func (a *app) report(err error) int {
	if err == nil {
		return 0
	}

	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprintf(a.stderr, "%v\n%s\n", err, usageLine)
		return 1
	}

	fmt.Fprintf(a.stderr, "error: %v\n", err)
	return 1
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && a.logger != nil {
			a.logger.Warn("close failed", zap.Error(err))
		}
	}
	a.closers = nil

	if a.logger != nil {
		_ = a.logger.Sync()
	}
}
