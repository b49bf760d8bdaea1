package solver

import (
	"context"
	"fmt"

	"wasi-apps/internal/domain"
)

const (
	// Moves must shorten the tour by more than twoOptEps to be accepted,
	// which keeps floating-point noise from cycling.
	twoOptEps = 1e-9
	// maxTwoOptPasses bounds the number of full scans.
	maxTwoOptPasses = 10_000
)

// TwoOpt improves a nearest-neighbor tour with first-improvement 2-opt.
//
// For cut positions 1 ≤ i < k ≤ n−1 with a=T[i−1], b=T[i], c=T[k],
// d=T[(k+1) mod n], reversing T[i..k] changes the length by
// Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d). The scan restarts after every
// accepted move and stops at a local optimum. The start stays at index 0.
type TwoOpt struct{}

func (TwoOpt) Name() string { return NameTwoOpt }

func (TwoOpt) Solve(ctx context.Context, points []domain.Point) (domain.Route, error) {
	if err := validatePoints(points); err != nil {
		return domain.Route{}, fmt.Errorf("2-opt: %w", err)
	}
	if r, ok := trivialRoute(points); ok {
		return r, nil
	}

	order := nearestNeighborOrder(points)
	n := len(order)
	if n < 4 {
		return finish(points, order)
	}

	w := distanceMatrix(points)

	for pass := 0; pass < maxTwoOptPasses; pass++ {
		if err := ctx.Err(); err != nil {
			return domain.Route{}, fmt.Errorf("2-opt: pass %d: %w", pass, err)
		}

		improved := false
		for i := 1; i <= n-2 && !improved; i++ {
			for k := i + 1; k <= n-1; k++ {
				a, b, c, d := order[i-1], order[i], order[k], order[(k+1)%n]
				delta := w[a][c] + w[b][d] - w[a][b] - w[c][d]
				if delta < -twoOptEps {
					reverse(order[i : k+1])
					improved = true
					break
				}
			}
		}
		if !improved {
			break
		}
	}

	return finish(points, order)
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
