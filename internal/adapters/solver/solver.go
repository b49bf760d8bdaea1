// Package solver provides the tour-optimization adapters behind
// ports.Solver. The exact solvers (brute force, Held–Karp) return the
// global optimum; the heuristics (nearest neighbor, 2-opt) trade optimality
// for polynomial running time.
package solver

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"wasi-apps/internal/domain"
	"wasi-apps/internal/ports"
)

const (
	NameBruteForce      = "brute"
	NameHeldKarp        = "heldkarp"
	NameNearestNeighbor = "nearest"
	NameTwoOpt          = "2opt"
)

var (
	ErrUnknownSolver = fmt.Errorf("unknown solver: %w", domain.ErrInvalidArgument)
	ErrTooManyPoints = errors.New("too many points for solver")
)

// New returns the solver registered under name (case-insensitive).
func New(name string) (ports.Solver, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameBruteForce:
		return BruteForce{}, nil
	case NameHeldKarp:
		return HeldKarp{}, nil
	case NameNearestNeighbor:
		return NearestNeighbor{}, nil
	case NameTwoOpt:
		return TwoOpt{}, nil
	default:
		return nil, fmt.Errorf("new solver %q: %w (known: %s)", name, ErrUnknownSolver, strings.Join(Names(), ", "))
	}
}

func Names() []string {
	return []string{NameBruteForce, NameHeldKarp, NameNearestNeighbor, NameTwoOpt}
}

// validatePoints rejects coordinates that would make distances NaN or Inf.
func validatePoints(points []domain.Point) error {
	for i, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return fmt.Errorf("point %d (%v, %v): %w: coordinates must be finite", i, p.X, p.Y, domain.ErrInvalidArgument)
		}
	}
	return nil
}

// trivialRoute handles n < 2, where every solver agrees on the answer.
func trivialRoute(points []domain.Point) (domain.Route, bool) {
	switch len(points) {
	case 0:
		return domain.Route{Order: []int{}, Distance: 0}, true
	case 1:
		return domain.Route{Order: []int{0}, Distance: 0}, true
	}
	return domain.Route{}, false
}

// distanceMatrix precomputes all pairwise Euclidean distances.
func distanceMatrix(points []domain.Point) [][]float64 {
	n := len(points)
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dist := points[i].Distance(points[j])
			d[i][j] = dist
			d[j][i] = dist
		}
	}
	return d
}

// finish builds the Route for order, recomputing the distance along it.
func finish(points []domain.Point, order []int) (domain.Route, error) {
	r := domain.Route{Order: order, Distance: domain.TourLength(points, order)}
	if err := r.Validate(len(points)); err != nil {
		return domain.Route{}, err
	}
	return r, nil
}
