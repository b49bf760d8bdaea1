package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"wasi-apps/internal/adapters/csvcodec"
	"wasi-apps/internal/adapters/repositories"
	"wasi-apps/internal/adapters/solver"
	"wasi-apps/internal/config"
	"wasi-apps/internal/platform/obs"
	"wasi-apps/internal/ports"
	"wasi-apps/internal/services"
)

// dbtool prepares the route archive: it creates the schema and, when
// TSP_SEED_CSV names a file, solves that file once and archives the result.
func main() {
	loaded, dotenvErr := config.LoadDotEnv()

	logger, err := obs.NewLogger(config.Get(config.EnvLogLevel, "info"), false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dbtool: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if dotenvErr != nil {
		logger.Fatal("load .env", zap.Error(dotenvErr))
	}
	if !loaded {
		logger.Info("no .env file found (using environment variables)")
	}

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Fatal("read config", zap.Error(err))
	}

	driver, dsn, err := cfg.ArchiveTarget()
	if err != nil {
		logger.Fatal("resolve archive", zap.Error(err))
	}

	conn, dialect, err := repositories.Open(driver, dsn)
	if err != nil {
		logger.Fatal("open archive", zap.Error(err))
	}
	defer conn.Close()

	logger.Info("initializing archive schema", zap.String("driver", string(dialect)))
	if err := repositories.InitSchema(conn, dialect); err != nil {
		logger.Fatal("schema initialization failed", zap.Error(err))
	}
	logger.Info("schema ready")

	seedPath := config.Get(config.EnvSeedCSV, "")
	if seedPath == "" {
		return
	}

	ctx := obs.WithLogger(context.Background(), logger)
	archive := repositories.NewRouteArchive(conn, dialect)
	if err := seedFromCSV(ctx, cfg, archive, seedPath); err != nil {
		logger.Fatal("seeding failed", zap.String("path", seedPath), zap.Error(err))
	}
	logger.Info("seeding complete", zap.String("path", seedPath))
}

func seedFromCSV(ctx context.Context, cfg config.Config, archive ports.RouteArchive, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	points, err := csvcodec.Decode(f)
	if err != nil {
		return err
	}

	s, err := solver.New(cfg.Solver)
	if err != nil {
		return err
	}

	if cfg.SolveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.SolveTimeout)
		defer cancel()
	}

	_, err = services.NewPlanner(s, archive).Plan(ctx, path, points)
	return err
}
