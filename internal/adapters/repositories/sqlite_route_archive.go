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

// SQLite-backed implementation of the RouteArchive port.
// Timestamps are stored as RFC 3339 text in UTC.
type SqliteRouteArchive struct{ DB *sql.DB }

func NewSqliteRouteArchive(db *sql.DB) *SqliteRouteArchive {
	return &SqliteRouteArchive{DB: db}
}

// Store a solved route and its stops in one transaction.
func (s *SqliteRouteArchive) Save(ctx context.Context, plan *domain.RoutePlan) (_ int64, err error) {
	defer obs.Time(ctx, "archive.sqlite.Save")(&err)

	if s.DB == nil {
		return 0, errors.New("sqlite route archive: DB is nil")
	}
	if plan == nil {
		return 0, errors.New("save route: plan must be non-nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("save route: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
	INSERT INTO routes (
		solver,
		source,
		distance,
		point_count,
		solved_at,
		elapsed_us
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`,
		plan.Solver,
		plan.Source,
		plan.Distance,
		len(plan.Stops),
		plan.SolvedAt.UTC().Format(time.RFC3339Nano),
		plan.Elapsed.Microseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("save route: insert route: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("save route: last insert id: %w", err)
	}

	err = insertStops(ctx, tx, `
	INSERT INTO route_stops (route_id, position, name, x, y)
	VALUES (?, ?, ?, ?, ?);
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
func (s *SqliteRouteArchive) Recent(ctx context.Context, limit int) (_ []ports.ArchivedRoute, err error) {
	defer obs.Time(ctx, "archive.sqlite.Recent")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite route archive: DB is nil")
	}
	if limit <= 0 {
		return []ports.ArchivedRoute{}, nil
	}

	rows, err := s.DB.QueryContext(ctx, `
	SELECT
		route_id,
		solver,
		source,
		distance,
		point_count,
		solved_at,
		elapsed_us
	FROM routes
	ORDER BY route_id DESC
	LIMIT ?;
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent routes: query routes table: %w", err)
	}
	defer rows.Close()

	routes := make([]ports.ArchivedRoute, 0, limit)
	for rows.Next() {
		var r ports.ArchivedRoute
		var solvedAt string
		var elapsedUS int64
		if err := rows.Scan(
			&r.RouteID,
			&r.Plan.Solver,
			&r.Plan.Source,
			&r.Plan.Distance,
			&r.PointCount,
			&solvedAt,
			&elapsedUS,
		); err != nil {
			return nil, fmt.Errorf("recent routes: scan row: %w", err)
		}

		r.Plan.SolvedAt, err = time.Parse(time.RFC3339Nano, solvedAt)
		if err != nil {
			return nil, fmt.Errorf("recent routes: route_id=%d: parse solved_at %q: %w", r.RouteID, solvedAt, err)
		}
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
	WHERE route_id = ?
	ORDER BY position;
	`, routes)
	if err != nil {
		return nil, fmt.Errorf("recent routes: %w", err)
	}

	return routes, nil
}
