package services

import (
	"fmt"
	"math/rand"
	"time"

	"wasi-apps/internal/domain"
)

// NewRand returns the entropy source for sampling. A zero seed means
// "seed from the clock"; any other seed makes runs reproducible.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Sample selects n distinct entries uniformly at random without replacement.
//
// It runs a Fisher–Yates shuffle truncated to the first n positions on a
// copy of points: position i is swapped with a uniform pick from [i, len).
// Every n-combination is reachable and the result comes back in shuffle
// order, not input order. points itself is never modified.
//
// Requesting more entries than available is an error rather than a clamp.
func Sample(rng *rand.Rand, points []domain.NamedPoint, n int) ([]domain.NamedPoint, error) {
	if n < 0 {
		return nil, fmt.Errorf("sample: %w: count %d must not be negative", domain.ErrInvalidArgument, n)
	}
	if n > len(points) {
		return nil, fmt.Errorf("sample: %w: count %d exceeds dataset size %d", domain.ErrInvalidArgument, n, len(points))
	}
	if rng == nil {
		return nil, fmt.Errorf("sample: %w: random source is nil", domain.ErrInvalidArgument)
	}

	pool := make([]domain.NamedPoint, len(points))
	copy(pool, points)

	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:n:n], nil
}
