package solver

import (
	"context"
	"fmt"
	"math"

	"wasi-apps/internal/domain"
)

// MaxHeldKarpPoints caps the DP table at 2^16 subsets.
const MaxHeldKarpPoints = 16

// HeldKarp solves the tour exactly with the Held–Karp dynamic program.
//
// dp[mask][j] is the shortest path that starts at 0, visits exactly the
// points in mask and ends at j. The tour is closed by returning from the
// best j back to 0.
//
// Time O(n²·2ⁿ), memory O(n·2ⁿ).
type HeldKarp struct{}

func (HeldKarp) Name() string { return NameHeldKarp }

func (HeldKarp) Solve(ctx context.Context, points []domain.Point) (domain.Route, error) {
	if err := validatePoints(points); err != nil {
		return domain.Route{}, fmt.Errorf("held-karp: %w", err)
	}
	if r, ok := trivialRoute(points); ok {
		return r, nil
	}

	n := len(points)
	if n > MaxHeldKarpPoints {
		return domain.Route{}, fmt.Errorf("held-karp: %w: %d points, limit %d", ErrTooManyPoints, n, MaxHeldKarpPoints)
	}

	d := distanceMatrix(points)
	allMask := (1 << n) - 1

	dp := make([][]float64, 1<<n)
	parent := make([][]int, 1<<n)
	for mask := range dp {
		dp[mask] = make([]float64, n)
		parent[mask] = make([]int, n)
		for j := range dp[mask] {
			dp[mask][j] = math.Inf(1)
			parent[mask][j] = -1
		}
	}
	dp[1][0] = 0

	for mask := 1; mask <= allMask; mask++ {
		if mask&0xff == 0 {
			if err := ctx.Err(); err != nil {
				return domain.Route{}, fmt.Errorf("held-karp: %w", err)
			}
		}
		// subsets without the start vertex are unreachable
		if mask&1 == 0 {
			continue
		}

		for j := 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev := mask ^ (1 << j)
			for k := 0; k < n; k++ {
				if prev&(1<<k) == 0 || math.IsInf(dp[prev][k], 1) {
					continue
				}
				if cand := dp[prev][k] + d[k][j]; cand < dp[mask][j] {
					dp[mask][j] = cand
					parent[mask][j] = k
				}
			}
		}
	}

	best := math.Inf(1)
	last := -1
	for j := 1; j < n; j++ {
		if total := dp[allMask][j] + d[j][0]; total < best {
			best = total
			last = j
		}
	}
	if last < 0 {
		return domain.Route{}, fmt.Errorf("held-karp: no tour found over %d points", n)
	}

	order := make([]int, n)
	mask := allMask
	j := last
	for i := n - 1; i >= 1; i-- {
		order[i] = j
		p := parent[mask][j]
		mask ^= 1 << j
		j = p
	}
	order[0] = 0

	return finish(points, order)
}
