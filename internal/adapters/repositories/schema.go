package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Dialect selects the SQL flavour of the archive schema and queries.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// ParseDialect accepts the driver names used in configuration.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sqlite", "sqlite3":
		return DialectSQLite, nil
	case "postgres", "postgresql", "pgx":
		return DialectPostgres, nil
	default:
		return "", fmt.Errorf("parse dialect: unsupported archive driver %q", s)
	}
}

// Initialize the route archive schema. Safe to run on every start.
func InitSchema(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	var statements []string
	switch dialect {
	case DialectSQLite:
		statements = []string{
			`
	CREATE TABLE IF NOT EXISTS routes (
		route_id INTEGER PRIMARY KEY AUTOINCREMENT,
		solver TEXT NOT NULL,
		source TEXT NOT NULL,
		distance REAL NOT NULL,
		point_count INTEGER NOT NULL,
		solved_at TEXT NOT NULL,
		elapsed_us INTEGER NOT NULL
	);
	`,
			`
	CREATE TABLE IF NOT EXISTS route_stops (
		route_id INTEGER NOT NULL REFERENCES routes(route_id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		x REAL NOT NULL,
		y REAL NOT NULL,
		PRIMARY KEY (route_id, position)
	);
	`,
		}
	case DialectPostgres:
		statements = []string{
			`
	CREATE TABLE IF NOT EXISTS routes (
		route_id BIGSERIAL PRIMARY KEY,
		solver TEXT NOT NULL,
		source TEXT NOT NULL,
		distance DOUBLE PRECISION NOT NULL,
		point_count INTEGER NOT NULL,
		solved_at TIMESTAMPTZ NOT NULL,
		elapsed_us BIGINT NOT NULL
	);
	`,
			`
	CREATE TABLE IF NOT EXISTS route_stops (
		route_id BIGINT NOT NULL REFERENCES routes(route_id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		x DOUBLE PRECISION NOT NULL,
		y DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (route_id, position)
	);
	`,
		}
	default:
		return fmt.Errorf("init schema: unsupported dialect %q", dialect)
	}

	statements = append(statements, `
	CREATE INDEX IF NOT EXISTS idx_routes_solver_distance
	ON routes(solver, distance);
	`)

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
