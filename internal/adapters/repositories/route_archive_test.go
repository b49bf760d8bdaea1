package repositories

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wasi-apps/internal/domain"
	"wasi-apps/internal/platform/db"
	"wasi-apps/internal/ports"
)

func samplePlan(solver string, distance float64, names ...string) *domain.RoutePlan {
	stops := make([]domain.NamedPoint, len(names))
	for i, n := range names {
		stops[i] = domain.NewNamedPoint(float64(i)+0.25, 10-float64(i)*1.5, n)
	}
	return &domain.RoutePlan{
		Solver:   solver,
		Source:   "wg59",
		Stops:    stops,
		Distance: distance,
		SolvedAt: time.Date(2026, 1, 1, 8, 0, 0, 123456000, time.UTC),
		Elapsed:  1500 * time.Microsecond,
	}
}

func exerciseArchive(t *testing.T, archive ports.RouteArchive) {
	t.Helper()
	ctx := context.Background()

	first := samplePlan("brute", 12.5, "Augsburg", "Youngstown, OH", `quote "q"`)
	second := samplePlan("nearest", 3.75, "Bonn")
	empty := samplePlan("brute", 0)

	id1, err := archive.Save(ctx, first)
	require.NoError(t, err)
	id2, err := archive.Save(ctx, second)
	require.NoError(t, err)
	id3, err := archive.Save(ctx, empty)
	require.NoError(t, err)
	assert.Less(t, id1, id2)
	assert.Less(t, id2, id3)

	got, err := archive.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, id3, got[0].RouteID)
	assert.Empty(t, got[0].Plan.Stops)

	assert.Equal(t, id2, got[1].RouteID)
	assert.Equal(t, 1, got[1].PointCount)
	assert.Equal(t, second.Stops, got[1].Plan.Stops)
	assert.Equal(t, "nearest", got[1].Plan.Solver)
	assert.Equal(t, "wg59", got[1].Plan.Source)
	assert.Equal(t, 3.75, got[1].Plan.Distance)
	assert.True(t, second.SolvedAt.Equal(got[1].Plan.SolvedAt))
	assert.Equal(t, second.Elapsed, got[1].Plan.Elapsed)

	all, err := archive.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, first.Stops, all[2].Plan.Stops)

	none, err := archive.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = archive.Save(ctx, nil)
	require.Error(t, err)
}

func openTestSQLite(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.OpenSQLite(filepath.Join(t.TempDir(), "routes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestSqliteRouteArchive(t *testing.T) {
	conn := openTestSQLite(t)
	require.NoError(t, InitSchema(conn, DialectSQLite))
	// schema creation is idempotent
	require.NoError(t, InitSchema(conn, DialectSQLite))

	exerciseArchive(t, NewSqliteRouteArchive(conn))
}

func TestSqliteRouteArchiveWithoutDB(t *testing.T) {
	_, err := NewSqliteRouteArchive(nil).Save(context.Background(), samplePlan("brute", 1))
	require.Error(t, err)
	_, err = NewSqliteRouteArchive(nil).Recent(context.Background(), 1)
	require.Error(t, err)
}

func TestPostgresRouteArchive(t *testing.T) {
	dsn := os.Getenv("TSP_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TSP_TEST_POSTGRES_DSN not set")
	}

	conn, err := db.Open(dsn)
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Exec(`DROP TABLE IF EXISTS route_stops;`)
	require.NoError(t, err)
	_, err = conn.Exec(`DROP TABLE IF EXISTS routes;`)
	require.NoError(t, err)
	require.NoError(t, InitSchema(conn, DialectPostgres))

	exerciseArchive(t, NewSQLRouteArchive(conn))
}

func TestInitSchemaRejectsUnknownDialect(t *testing.T) {
	require.Error(t, InitSchema(openTestSQLite(t), Dialect("oracle")))
	require.Error(t, InitSchema(nil, DialectSQLite))
}

func TestParseDialect(t *testing.T) {
	for in, want := range map[string]Dialect{
		"sqlite":     DialectSQLite,
		" SQLite3 ":  DialectSQLite,
		"postgres":   DialectPostgres,
		"postgresql": DialectPostgres,
		"pgx":        DialectPostgres,
	} {
		got, err := ParseDialect(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseDialect("mysql")
	require.Error(t, err)
}

func TestOpenPicksAdapter(t *testing.T) {
	conn, dialect, err := Open("sqlite3", filepath.Join(t.TempDir(), "nested", "routes.db"))
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, DialectSQLite, dialect)

	require.NoError(t, InitSchema(conn, dialect))
	archive := NewRouteArchive(conn, dialect)
	assert.IsType(t, &SqliteRouteArchive{}, archive)

	id, err := archive.Save(context.Background(), samplePlan("2opt", 2, "a", "b"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	_, _, err = Open("mysql", "whatever")
	require.Error(t, err)
}
