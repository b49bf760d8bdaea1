package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wasi-apps/internal/config"
	"wasi-apps/internal/fibonacci"
	"wasi-apps/internal/platform/obs"
)

const missingRank = "fibonacci rank required in first argument!"

var errMissingRank = errors.New(missingRank)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// positionalRanks moves negative integers such as "-5" behind "--" so the
// flag parser reads them as ranks instead of shorthand flags. Every flag is
// boolean, so any other token that does not start with '-' is positional too.
func positionalRanks(args []string) []string {
	var flags, positional []string
	for i, arg := range args {
		if arg == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if _, err := strconv.Atoi(arg); err == nil || !strings.HasPrefix(arg, "-") {
			positional = append(positional, arg)
			continue
		}
		flags = append(flags, arg)
	}

	if len(positional) == 0 {
		return flags
	}
	return append(append(flags, "--"), positional...)
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		fast    bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "fibonacci <rank>",
		Short: "Print the Fibonacci number of the given rank",
		Long: `fibonacci prints F(rank). The default algorithm is the naive recursion,
which is exponential in rank and exists to generate CPU load; --fast uses
the linear arbitrary-precision loop instead.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errMissingRank
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			rank, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse rank %q: %w", args[0], err)
			}

			logger, err := obs.NewLogger(config.Get(config.EnvLogLevel, config.DefaultLogLevel), verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx := obs.WithLogger(cmd.Context(), logger)
			defer obs.Time(ctx, "fibonacci")(&err)
			logger.Debug("computing", zap.Int("rank", rank), zap.Bool("fast", fast))

			if fast {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), fibonacci.Fast(rank).String())
				return err
			}

			if rank > fibonacci.MaxRecursiveRank {
				return fmt.Errorf("rank %d overflows the recursive algorithm (max %d); use --fast", rank, fibonacci.MaxRecursiveRank)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), fibonacci.Recursive(rank))
			return err
		},
	}

	cmd.SetArgs(positionalRanks(args))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().BoolVar(&fast, "fast", false, "use the linear algorithm")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errMissingRank) {
			fmt.Fprintln(stderr, missingRank)
		} else {
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return 1
	}
	return 0
}
