package solver

import (
	"context"
	"fmt"
	"math"

	"wasi-apps/internal/domain"
)

// ctxCheckInterval bounds how many search nodes are expanded between
// cancellation checks. Must be a power of two.
const ctxCheckInterval = 1 << 16

// BruteForce searches every tour that starts at index 0 and keeps the
// shortest one. Branches whose partial length already reaches the best
// complete tour are cut, which never discards an optimal tour because
// distances are non-negative. Among equally short tours the first one in
// lexicographic order wins.
//
// Cost is factorial in the number of points; callers should bound the
// search with a context deadline for anything beyond a dozen points.
type BruteForce struct{}

func (BruteForce) Name() string { return NameBruteForce }

func (BruteForce) Solve(ctx context.Context, points []domain.Point) (domain.Route, error) {
	if err := validatePoints(points); err != nil {
		return domain.Route{}, fmt.Errorf("brute force: %w", err)
	}
	if r, ok := trivialRoute(points); ok {
		return r, nil
	}
	if err := ctx.Err(); err != nil {
		return domain.Route{}, fmt.Errorf("brute force: %w", err)
	}

	n := len(points)
	d := distanceMatrix(points)

	best := math.Inf(1)
	bestOrder := make([]int, n)
	cur := make([]int, 1, n)
	used := make([]bool, n)
	used[0] = true

	var expanded uint64

	var search func(partial float64) error
	search = func(partial float64) error {
		expanded++
		if expanded&(ctxCheckInterval-1) == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		last := cur[len(cur)-1]
		if len(cur) == n {
			if total := partial + d[last][0]; total < best {
				best = total
				copy(bestOrder, cur)
			}
			return nil
		}

		for next := 1; next < n; next++ {
			if used[next] {
				continue
			}
			cost := partial + d[last][next]
			if cost >= best {
				continue
			}

			used[next] = true
			cur = append(cur, next)
			if err := search(cost); err != nil {
				return err
			}
			cur = cur[:len(cur)-1]
			used[next] = false
		}
		return nil
	}

	if err := search(0); err != nil {
		return domain.Route{}, fmt.Errorf("brute force: search %d points: %w", n, err)
	}

	return finish(points, bestOrder)
}
