package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"wasi-apps/internal/domain"
	"wasi-apps/internal/platform/obs"
	"wasi-apps/internal/ports"
)

// Planner runs the solve step of the pipeline and, when an archive is
// configured, records every solved route.
type Planner struct {
	Solver  ports.Solver
	Archive ports.RouteArchive
}

func NewPlanner(solver ports.Solver, archive ports.RouteArchive) *Planner {
	return &Planner{Solver: solver, Archive: archive}
}

// Plan solves points and archives the result. Archive failures are
// reported as errors; the plan is still returned so callers can print it.
func (p *Planner) Plan(
	ctx context.Context,
	source string,
	points []domain.NamedPoint,
) (_ *domain.RoutePlan, err error) {
	defer obs.Time(ctx, "route.plan")(&err)

	if p == nil || p.Solver == nil {
		return nil, errors.New("plan route: solver must be non-nil")
	}

	plan, err := Solve(ctx, p.Solver, source, points)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	obs.Logger(ctx).Debug("route solved",
		zap.String("solver", plan.Solver),
		zap.String("source", plan.Source),
		zap.Int("points", len(plan.Stops)),
		zap.Float64("distance", plan.Distance),
		zap.Duration("elapsed", plan.Elapsed),
	)

	if p.Archive == nil {
		return plan, nil
	}

	id, err := p.Archive.Save(ctx, plan)
	if err != nil {
		return plan, fmt.Errorf("plan route: archive: %w", err)
	}
	obs.Logger(ctx).Debug("route archived", zap.Int64("route_id", id))

	return plan, nil
}
