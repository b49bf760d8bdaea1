package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvDataset, EnvSolver, EnvSolveTimeout, EnvArchiveDriver, EnvArchiveDSN, EnvLogLevel} {
		t.Setenv(k, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Dataset:  DefaultDataset,
		Solver:   DefaultSolver,
		LogLevel: DefaultLogLevel,
	}, cfg)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDataset, "sgb128")
	t.Setenv(EnvSolver, "2opt")
	t.Setenv(EnvSolveTimeout, "1m30s")
	t.Setenv(EnvArchiveDriver, "postgres")
	t.Setenv(EnvArchiveDSN, "postgres://localhost/routes")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "sgb128", cfg.Dataset)
	assert.Equal(t, "2opt", cfg.Solver)
	assert.Equal(t, 90*time.Second, cfg.SolveTimeout)

	driver, dsn, err := cfg.ArchiveTarget()
	require.NoError(t, err)
	assert.Equal(t, "postgres", driver)
	assert.Equal(t, "postgres://localhost/routes", dsn)
}

func TestFromEnvRejectsBadTimeout(t *testing.T) {
	clearEnv(t)

	t.Setenv(EnvSolveTimeout, "soon")
	_, err := FromEnv()
	require.Error(t, err)

	t.Setenv(EnvSolveTimeout, "-1s")
	_, err = FromEnv()
	require.Error(t, err)
}

func TestArchiveTarget(t *testing.T) {
	driver, dsn, err := Config{}.ArchiveTarget()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", driver)
	assert.Equal(t, DefaultSQLiteDSN, dsn)

	_, _, err = Config{ArchiveDriver: "postgres"}.ArchiveTarget()
	require.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	loaded, err := LoadDotEnv(filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.False(t, loaded)

	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("TSP_SOLVER=heldkarp\nTSP_DATASET=sgb128\n"), 0o600))
	t.Setenv(EnvDataset, "wg59")
	// t.Setenv restores the original value; unset so the file can supply it
	require.NoError(t, os.Unsetenv(EnvSolver))

	loaded, err = LoadDotEnv(path)
	require.NoError(t, err)
	assert.True(t, loaded)

	assert.Equal(t, "heldkarp", Get(EnvSolver, ""))
	// variables already present in the environment win over the file
	assert.Equal(t, "wg59", Get(EnvDataset, ""))
}
