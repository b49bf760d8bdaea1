package repositories

import (
	"database/sql"
	"fmt"

	"wasi-apps/internal/platform/db"
	"wasi-apps/internal/ports"
)

// Open connects to the archive database for driver and returns the dialect
// its queries must use. The schema is not touched.
func Open(driver, dsn string) (*sql.DB, Dialect, error) {
	dialect, err := ParseDialect(driver)
	if err != nil {
		return nil, "", err
	}

	var conn *sql.DB
	switch dialect {
	case DialectPostgres:
		conn, err = db.Open(dsn)
	default:
		conn, err = db.OpenSQLite(dsn)
	}
	if err != nil {
		return nil, "", fmt.Errorf("open archive: %w", err)
	}

	return conn, dialect, nil
}

// NewRouteArchive picks the archive adapter matching dialect.
func NewRouteArchive(conn *sql.DB, dialect Dialect) ports.RouteArchive {
	if dialect == DialectPostgres {
		return NewSQLRouteArchive(conn)
	}
	return NewSqliteRouteArchive(conn)
}
