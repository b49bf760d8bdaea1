package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"wasi-apps/internal/domain"
)

type BenchRequest struct {
	Source     string
	Points     []domain.NamedPoint
	SampleSize int
	Runs       int
	Parallel   int
	Seed       int64
}

type BenchReport struct {
	Runs     int
	Wall     time.Duration
	Mean     time.Duration
	Max      time.Duration
	Shortest float64
	Longest  float64
}

// Bench repeatedly samples SampleSize points and plans a route for each
// sample, keeping at most Parallel runs in flight. Every run draws from its
// own random stream derived from Seed, so a fixed seed yields the same
// samples regardless of scheduling.
func Bench(ctx context.Context, req BenchRequest, planner *Planner) (*BenchReport, error) {
	if planner == nil {
		return nil, errors.New("bench: planner must be non-nil")
	}
	if req.Runs < 1 {
		return nil, fmt.Errorf("bench: %w: runs must be positive, got %d", domain.ErrInvalidArgument, req.Runs)
	}
	if req.Parallel < 1 {
		return nil, fmt.Errorf("bench: %w: parallel must be positive, got %d", domain.ErrInvalidArgument, req.Parallel)
	}

	base := req.Seed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	elapsed := make([]time.Duration, req.Runs)
	distances := make([]float64, req.Runs)

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(req.Parallel)

	for run := 0; run < req.Runs; run++ {
		run := run
		g.Go(func() error {
			rng := NewRand(deriveSeed(base, uint64(run)))

			sample, err := Sample(rng, req.Points, req.SampleSize)
			if err != nil {
				return fmt.Errorf("bench: run %d: %w", run, err)
			}

			plan, err := planner.Plan(ctx, req.Source, sample)
			if err != nil {
				return fmt.Errorf("bench: run %d: %w", run, err)
			}

			elapsed[run] = plan.Elapsed
			distances[run] = plan.Distance
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &BenchReport{Runs: req.Runs, Wall: time.Since(start), Shortest: distances[0], Longest: distances[0]}
	var total time.Duration
	for i, d := range elapsed {
		total += d
		report.Max = max(report.Max, d)
		report.Shortest = min(report.Shortest, distances[i])
		report.Longest = max(report.Longest, distances[i])
	}
	report.Mean = total / time.Duration(req.Runs)

	return report, nil
}

// deriveSeed mixes a parent seed and a stream id with the SplitMix64
// finalizer so neighbouring runs get uncorrelated streams. The result is
// never zero, which NewRand would treat as "seed from the clock".
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		x = 1
	}
	return int64(x)
}
