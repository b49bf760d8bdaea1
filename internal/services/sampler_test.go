package services

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wasi-apps/internal/datasets"
	"wasi-apps/internal/domain"
)

func TestSampleDistinctMembers(t *testing.T) {
	pts := datasets.WG59().Points()
	rng := rand.New(rand.NewSource(1))

	for _, n := range []int{0, 1, 5, 30, 59} {
		got, err := Sample(rng, pts, n)
		require.NoError(t, err)
		require.Len(t, got, n)

		seen := make(map[domain.NamedPoint]bool, n)
		for _, p := range got {
			assert.False(t, seen[p], "duplicate %q", p.Name)
			seen[p] = true
			assert.Contains(t, pts, p)
		}
	}
}

func TestSampleBounds(t *testing.T) {
	pts := datasets.WG59().Points()
	rng := rand.New(rand.NewSource(1))

	_, err := Sample(rng, pts, 60)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = Sample(rng, pts, -1)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = Sample(nil, pts, 1)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	got, err := Sample(rng, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSampleLeavesInputUntouched(t *testing.T) {
	pts := datasets.SGB128().Points()
	before := append([]domain.NamedPoint(nil), pts...)

	_, err := Sample(rand.New(rand.NewSource(9)), pts, 100)
	require.NoError(t, err)
	assert.Equal(t, before, pts)
}

func TestSampleIsReproducibleWithSeed(t *testing.T) {
	pts := datasets.WG59().Points()

	a, err := Sample(NewRand(1234), pts, 10)
	require.NoError(t, err)
	b, err := Sample(NewRand(1234), pts, 10)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSampleSelectionIsRoughlyUniform(t *testing.T) {
	pts := make([]domain.NamedPoint, 10)
	for i := range pts {
		pts[i] = domain.NewNamedPoint(float64(i), 0, string(rune('a'+i)))
	}

	const trials = 20000
	rng := rand.New(rand.NewSource(77))
	counts := make(map[string]int)
	firsts := make(map[string]int)
	for i := 0; i < trials; i++ {
		got, err := Sample(rng, pts, 3)
		require.NoError(t, err)
		firsts[got[0].Name]++
		for _, p := range got {
			counts[p.Name]++
		}
	}

	// each element is picked with probability 3/10 and leads with 1/10
	for _, p := range pts {
		assert.InDelta(t, 0.3, float64(counts[p.Name])/trials, 0.03, p.Name)
		assert.InDelta(t, 0.1, float64(firsts[p.Name])/trials, 0.02, p.Name)
	}
}
