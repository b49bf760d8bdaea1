package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidArgument is wrapped by every argument check in the pipeline.
var ErrInvalidArgument = errors.New("invalid argument")

// Represents the visiting order produced by a solver.
// Order is an open permutation of point indices (the start is not repeated);
// Distance includes the closing leg back to Order[0].
type Route struct {
	Order    []int
	Distance float64
}

// Validate checks that the route visits each of the n indices exactly once.
func (r Route) Validate(n int) error {
	if len(r.Order) != n {
		return fmt.Errorf("validate route: %w: route has %d stops, want %d", ErrInvalidArgument, len(r.Order), n)
	}

	seen := make([]bool, n)
	for pos, idx := range r.Order {
		if idx < 0 || idx >= n {
			return fmt.Errorf("validate route: %w: index %d at position %d out of range", ErrInvalidArgument, idx, pos)
		}
		if seen[idx] {
			return fmt.Errorf("validate route: %w: index %d visited twice", ErrInvalidArgument, idx)
		}
		seen[idx] = true
	}

	return nil
}

// TourLength returns the closed-tour length of order over points.
func TourLength(points []Point, order []int) float64 {
	if len(order) < 2 {
		return 0
	}

	total := 0.0
	for i := 1; i < len(order); i++ {
		total += points[order[i-1]].Distance(points[order[i]])
	}
	total += points[order[len(order)-1]].Distance(points[order[0]])
	return total
}

// Represents a solved route with names resolved for display or storage.
// A RoutePlan is immutable planning data and contains no side effects.
type RoutePlan struct {
	Solver   string
	Source   string
	Stops    []NamedPoint
	Distance float64
	SolvedAt time.Time
	Elapsed  time.Duration
}

// Names of the stops in visiting order.
func (p *RoutePlan) Names() []string {
	names := make([]string, len(p.Stops))
	for i, s := range p.Stops {
		names[i] = s.Name
	}
	return names
}
