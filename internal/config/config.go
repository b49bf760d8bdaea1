// Package config reads runtime settings from the environment, optionally
// seeded from a .env file. Command-line flags override these values.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDataset       = "TSP_DATASET"
	EnvSolver        = "TSP_SOLVER"
	EnvSolveTimeout  = "TSP_SOLVE_TIMEOUT"
	EnvArchiveDriver = "TSP_ARCHIVE_DRIVER"
	EnvArchiveDSN    = "TSP_ARCHIVE_DSN"
	EnvLogLevel      = "LOG_LEVEL"

	// Read by dbtool only.
	EnvSeedCSV = "TSP_SEED_CSV"

	DefaultDataset   = "wg59"
	DefaultSolver    = "brute"
	DefaultSQLiteDSN = "data/routes.db"
	DefaultLogLevel  = "warn"
)

type Config struct {
	Dataset  string
	Solver   string
	LogLevel string
	// Zero means no deadline.
	SolveTimeout time.Duration
	// Empty means archiving is off unless requested on the command line.
	ArchiveDriver string
	ArchiveDSN    string
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// LoadDotEnv loads variables from the given files (default ".env") without
// overriding ones already set. A missing file is not an error; it reports
// whether anything was loaded.
func LoadDotEnv(paths ...string) (bool, error) {
	if err := godotenv.Load(paths...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("load dotenv: %w", err)
	}
	return true, nil
}

// FromEnv builds a Config from the current environment.
func FromEnv() (Config, error) {
	cfg := Config{
		Dataset:       Get(EnvDataset, DefaultDataset),
		Solver:        Get(EnvSolver, DefaultSolver),
		LogLevel:      Get(EnvLogLevel, DefaultLogLevel),
		ArchiveDriver: Get(EnvArchiveDriver, ""),
		ArchiveDSN:    Get(EnvArchiveDSN, ""),
	}

	if raw := Get(EnvSolveTimeout, ""); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("config: %s=%q: %w", EnvSolveTimeout, raw, err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("config: %s=%q: must not be negative", EnvSolveTimeout, raw)
		}
		cfg.SolveTimeout = d
	}

	return cfg, nil
}

// ArchiveTarget resolves the archive driver and DSN, applying the SQLite
// default path. Postgres has no sensible default and requires a DSN.
func (c Config) ArchiveTarget() (driver, dsn string, err error) {
	driver = strings.ToLower(strings.TrimSpace(c.ArchiveDriver))
	if driver == "" {
		driver = "sqlite"
	}

	dsn = strings.TrimSpace(c.ArchiveDSN)
	switch driver {
	case "sqlite", "sqlite3":
		if dsn == "" {
			dsn = DefaultSQLiteDSN
		}
	default:
		if dsn == "" {
			return "", "", fmt.Errorf("config: %s is required for archive driver %q", EnvArchiveDSN, driver)
		}
	}

	return driver, dsn, nil
}
