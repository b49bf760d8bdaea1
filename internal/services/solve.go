package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"wasi-apps/internal/domain"
	"wasi-apps/internal/ports"
)

// Solve hands the coordinates of points to solver and resolves the returned
// index order back to the named entries.
//
// The coordinate slice is derived from points immediately before solving,
// so index i always names the coordinate the solver saw at i.
func Solve(
	ctx context.Context,
	solver ports.Solver,
	source string,
	points []domain.NamedPoint,
) (*domain.RoutePlan, error) {
	if solver == nil {
		return nil, errors.New("solve: solver must be non-nil")
	}

	start := time.Now()
	route, err := solver.Solve(ctx, domain.Coordinates(points))
	if err != nil {
		return nil, fmt.Errorf("solve: %s over %d points: %w", solver.Name(), len(points), err)
	}

	// Solvers are external collaborators; do not trust the permutation blindly.
	if err := route.Validate(len(points)); err != nil {
		return nil, fmt.Errorf("solve: %s returned a bad route: %w", solver.Name(), err)
	}

	stops := make([]domain.NamedPoint, len(route.Order))
	for pos, idx := range route.Order {
		stops[pos] = points[idx]
	}

	return &domain.RoutePlan{
		Solver:   solver.Name(),
		Source:   source,
		Stops:    stops,
		Distance: route.Distance,
		SolvedAt: start.UTC(),
		Elapsed:  time.Since(start),
	}, nil
}

// FormatPlan renders the one-line summary printed by the solve modes:
//
//	Path distance: 42.5, route: ["A", "B", "C"]
func FormatPlan(plan *domain.RoutePlan) string {
	quoted := make([]string, len(plan.Stops))
	for i, s := range plan.Stops {
		quoted[i] = strconv.Quote(s.Name)
	}

	return fmt.Sprintf(
		"Path distance: %s, route: [%s]",
		strconv.FormatFloat(plan.Distance, 'f', -1, 64),
		strings.Join(quoted, ", "),
	)
}
