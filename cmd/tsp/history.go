package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"wasi-apps/internal/services"
)

func (a *app) historyCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the most recently archived routes",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openArchive()
			if err != nil {
				return err
			}

			routes, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("history: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(routes) == 0 {
				_, err := fmt.Fprintln(out, "no archived routes")
				return err
			}

			for _, r := range routes {
				if _, err := fmt.Fprintf(out, "#%d %s %s %s n=%d elapsed=%s\n",
					r.RouteID,
					r.Plan.SolvedAt.Format(time.RFC3339),
					r.Plan.Solver,
					r.Plan.Source,
					r.PointCount,
					r.Plan.Elapsed,
				); err != nil {
					return err
				}
				if _, err := fmt.Fprintf(out, "  %s\n", services.FormatPlan(&r.Plan)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "number of routes to show")

	return cmd
}
