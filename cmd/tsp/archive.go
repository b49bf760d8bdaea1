package main

import (
	"fmt"

	"go.uber.org/zap"

	"wasi-apps/internal/adapters/repositories"
	"wasi-apps/internal/ports"
)

// openArchive connects to the configured archive database and makes sure
// the schema exists. The connection is closed when the command finishes.
func (a *app) openArchive() (ports.RouteArchive, error) {
	if a.store != nil {
		return a.store, nil
	}

	driver, dsn, err := a.cfg.ArchiveTarget()
	if err != nil {
		return nil, err
	}

	conn, dialect, err := repositories.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, conn)

	if err := repositories.InitSchema(conn, dialect); err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	a.store = repositories.NewRouteArchive(conn, dialect)
	a.logger.Debug("route archive ready", zap.String("driver", string(dialect)))
	return a.store, nil
}
