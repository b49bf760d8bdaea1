package solver

import (
	"context"
	"fmt"
	"math"

	"wasi-apps/internal/domain"
)

// NearestNeighbor builds a tour with a greedy nearest-neighbor walk.
//
// The walk starts at index 0 and always moves to the closest unvisited
// point. It does not attempt global optimization; it also serves as the
// seed tour for 2-opt.
type NearestNeighbor struct{}

func (NearestNeighbor) Name() string { return NameNearestNeighbor }

func (NearestNeighbor) Solve(ctx context.Context, points []domain.Point) (domain.Route, error) {
	if err := validatePoints(points); err != nil {
		return domain.Route{}, fmt.Errorf("nearest neighbor: %w", err)
	}
	if r, ok := trivialRoute(points); ok {
		return r, nil
	}
	if err := ctx.Err(); err != nil {
		return domain.Route{}, fmt.Errorf("nearest neighbor: %w", err)
	}

	return finish(points, nearestNeighborOrder(points))
}

func nearestNeighborOrder(points []domain.Point) []int {
	n := len(points)
	visited := make([]bool, n)
	order := make([]int, 0, n)

	current := 0
	visited[0] = true
	order = append(order, 0)

	for len(order) < n {
		best := -1
		minDist := math.Inf(1)

		// Strict comparison keeps the lowest index on ties (deterministic).
		for next := 0; next < n; next++ {
			if visited[next] {
				continue
			}
			if dist := points[current].Distance(points[next]); best < 0 || dist < minDist {
				minDist = dist
				best = next
			}
		}

		visited[best] = true
		order = append(order, best)
		current = best
	}

	return order
}
