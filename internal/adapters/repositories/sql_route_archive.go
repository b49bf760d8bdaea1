package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"wasi-apps/internal/domain"
	"wasi-apps/internal/platform/obs"
	"wasi-apps/internal/ports"
)

// SQLRouteArchive is a Postgres-backed RouteArchive (pgx stdlib driver).
type SQLRouteArchive struct {
	DB *sql.DB
}

func NewSQLRouteArchive(db *sql.DB) *SQLRouteArchive {
	return &SQLRouteArchive{DB: db}
}

// Store a solved route and its stops in one transaction.
func (s *SQLRouteArchive) Save(ctx context.Context, plan *domain.RoutePlan) (_ int64, err error) {
	defer obs.Time(ctx, "archive.sql.Save")(&err)

	if s.DB == nil {
		return 0, errors.New("route archive: db is nil")
	}
	if plan == nil {
		return 0, errors.New("save route: plan must be non-nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("save route: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var id int64
	err = tx.QueryRowContext(ctx, `
	INSERT INTO routes (solver, source, distance, point_count, solved_at, elapsed_us)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING route_id;
	`,
		plan.Solver,
		plan.Source,
		plan.Distance,
		len(plan.Stops),
		plan.SolvedAt.UTC(),
		plan.Elapsed.Microseconds(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("save route: insert route: %w", err)
	}

	err = insertStops(ctx, tx, `
	INSERT INTO route_stops (route_id, position, name, x, y)
	VALUES ($1, $2, $3, $4, $5);
	`, id, plan.Stops)
	if err != nil {
		return 0, fmt.Errorf("save route: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("save route: commit: %w", err)
	}

	return id, nil
}

// Return the most recently archived routes, newest first.
func (s *SQLRouteArchive) Recent(ctx context.Context, limit int) (_ []ports.ArchivedRoute, err error) {
	defer obs.Time(ctx, "archive.sql.Recent")(&err)

	if s.DB == nil {
		return nil, errors.New("route archive: db is nil")
	}
	if limit <= 0 {
		return []ports.ArchivedRoute{}, nil
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT route_id, solver, source, distance, point_count, solved_at, elapsed_us
	FROM routes
	ORDER BY route_id DESC
	LIMIT $1;
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent routes: query routes table: %w", err)
	}
	defer rows.Close()

	routes := make([]ports.ArchivedRoute, 0, limit)
	for rows.Next() {
		var r ports.ArchivedRoute
		var elapsedUS int64
		if err := rows.Scan(
			&r.RouteID,
			&r.Plan.Solver,
			&r.Plan.Source,
			&r.Plan.Distance,
			&r.PointCount,
			&r.Plan.SolvedAt,
			&elapsedUS,
		); err != nil {
			return nil, fmt.Errorf("recent routes: scan row: %w", err)
		}
		r.Plan.SolvedAt = r.Plan.SolvedAt.UTC()
		r.Plan.Elapsed = time.Duration(elapsedUS) * time.Microsecond
		routes = append(routes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("recent routes: row iteration: %w", err)
	}
	rows.Close()

	err = loadStops(ctx, s.DB, `
	SELECT name, x, y
	FROM route_stops
	WHERE route_id = $1
	ORDER BY position;
	`, routes)
	if err != nil {
		return nil, fmt.Errorf("recent routes: %w", err)
	}

	return routes, nil
}
