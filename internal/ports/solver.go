package ports

import (
	"context"
	"wasi-apps/internal/domain"
)

// Contract for computing a closed tour over a set of points.
// Implementations only see coordinates; callers map the returned
// index order back to names.
type Solver interface {
	// Name identifies the algorithm in output and archived routes.
	Name() string
	// Return a permutation of point indices and its closed-tour distance.
	Solve(ctx context.Context, points []domain.Point) (domain.Route, error)
}
