package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"wasi-apps/internal/domain"
	"wasi-apps/internal/ports"
)

// insertStops writes the stops of one route with a prepared statement.
func insertStops(ctx context.Context, tx *sql.Tx, query string, routeID int64, stops []domain.NamedPoint) error {
	if len(stops) == 0 {
		return nil
	}

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("insert route stops: db prepare: %w", err)
	}
	defer stmt.Close()

	for pos, s := range stops {
		if _, err := stmt.ExecContext(ctx, routeID, pos, s.Name, s.X, s.Y); err != nil {
			return fmt.Errorf("insert route stops route_id=%d position=%d: %w", routeID, pos, err)
		}
	}

	return nil
}

// loadStops fills in the stops of every route. Routes are read first and
// their rows closed before this runs, so a single-connection pool is fine.
func loadStops(ctx context.Context, db *sql.DB, query string, routes []ports.ArchivedRoute) error {
	for i := range routes {
		rows, err := db.QueryContext(ctx, query, routes[i].RouteID)
		if err != nil {
			return fmt.Errorf("load route stops: query route_id=%d: %w", routes[i].RouteID, err)
		}

		stops := make([]domain.NamedPoint, 0, routes[i].PointCount)
		for rows.Next() {
			var name string
			var x, y float64
			if err := rows.Scan(&name, &x, &y); err != nil {
				rows.Close()
				return fmt.Errorf("load route stops: scan row: %w", err)
			}
			stops = append(stops, domain.NewNamedPoint(x, y, name))
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return fmt.Errorf("load route stops: row iteration: %w", err)
		}
		rows.Close()

		routes[i].Plan.Stops = stops
	}

	return nil
}
