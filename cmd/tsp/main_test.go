package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wasi-apps/internal/adapters/csvcodec"
	"wasi-apps/internal/config"
	"wasi-apps/internal/datasets"
)

type result struct {
	code   int
	stdout string
	stderr string
}

// clearEnv blanks every setting the CLI reads; config treats empty as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		config.EnvDataset,
		config.EnvSolver,
		config.EnvSolveTimeout,
		config.EnvArchiveDriver,
		config.EnvArchiveDSN,
		config.EnvLogLevel,
	} {
		t.Setenv(k, "")
	}
}

// failFirstWriter rejects its first write and accepts the rest.
type failFirstWriter struct {
	failed bool
	buf    bytes.Buffer
}

func (w *failFirstWriter) Write(p []byte) (int, error) {
	if !w.failed {
		w.failed = true
		return 0, errors.New("stdout closed")
	}
	return w.buf.Write(p)
}

func runCLI(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var out, errb bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errb)
	return result{code: code, stdout: out.String(), stderr: errb.String()}
}

func TestWriteEmitsRequestedRows(t *testing.T) {
	clearEnv(t)
	res := runCLI(t, "", "write", "5")
	require.Equal(t, 0, res.code, res.stderr)

	lines := strings.Split(strings.TrimRight(res.stdout, "\n"), "\n")
	assert.Len(t, lines, 5)

	got, err := csvcodec.Decode(strings.NewReader(res.stdout))
	require.NoError(t, err)
	all := datasets.WG59().Points()
	for _, p := range got {
		assert.Contains(t, all, p)
	}
}

func TestWriteIsReproducibleWithSeed(t *testing.T) {
	clearEnv(t)
	a := runCLI(t, "", "write", "7", "--seed", "42", "--dataset", "sgb128")
	b := runCLI(t, "", "--seed", "42", "--dataset", "sgb128", "write", "7")
	require.Equal(t, 0, a.code, a.stderr)
	assert.Equal(t, a.stdout, b.stdout)
}

func TestRandZeroPrintsEmptyRoute(t *testing.T) {
	clearEnv(t)
	res := runCLI(t, "", "rand", "0")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "Path distance: 0, route: []\n", res.stdout)
}

func TestRandSolvesSample(t *testing.T) {
	clearEnv(t)
	res := runCLI(t, "", "rand", "5", "--seed", "3")
	require.Equal(t, 0, res.code, res.stderr)
	assert.True(t, strings.HasPrefix(res.stdout, "Path distance: "), res.stdout)
	assert.Equal(t, 4, strings.Count(res.stdout, ", \""), res.stdout)
}

func TestReadSolvesStdin(t *testing.T) {
	clearEnv(t)
	csv := "0,0,sw\n1,1,ne\n1,0,se\n0,1,\"north, west\"\n"

	res := runCLI(t, csv, "read")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "Path distance: 4, route: [\"sw\", \"se\", \"ne\", \"north, west\"]\n", res.stdout)

	res = runCLI(t, csv, "read", "--solver", "heldkarp")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Path distance: 4,")
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	clearEnv(t)
	written := runCLI(t, "", "write", "6", "--seed", "11")
	require.Equal(t, 0, written.code, written.stderr)

	solved := runCLI(t, written.stdout, "read")
	require.Equal(t, 0, solved.code, solved.stderr)

	sample, err := csvcodec.Decode(strings.NewReader(written.stdout))
	require.NoError(t, err)
	for _, p := range sample {
		assert.Contains(t, solved.stdout, `"`+p.Name+`"`)
	}
}

func TestUsageErrors(t *testing.T) {
	clearEnv(t)
	cases := [][]string{
		{},
		{"fly"},
		{"write"},
		{"write", "abc"},
		{"write", "-1"},
		{"rand", "1", "2"},
		{"read", "extra"},
		{"rand", "3", "--no-such-flag"},
	}

	for _, args := range cases {
		t.Run(strings.Join(args, "_"), func(t *testing.T) {
			res := runCLI(t, "", args...)
			assert.Equal(t, 1, res.code)
			assert.Contains(t, res.stderr, usageLine)
			assert.Empty(t, res.stdout)
		})
	}
}

func TestRuntimeErrors(t *testing.T) {
	clearEnv(t)
	res := runCLI(t, "", "write", "60")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "error: ")
	assert.Contains(t, res.stderr, "exceeds dataset size 59")
	assert.NotContains(t, res.stderr, usageLine)

	res = runCLI(t, "1,2,a\nx,2,b\n", "read")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "csv line 2, column x")

	res = runCLI(t, "", "rand", "3", "--solver", "annealing")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "unknown solver")

	res = runCLI(t, "", "rand", "3", "--dataset", "atlantis")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "unknown dataset")
}

func TestSolveTimeout(t *testing.T) {
	clearEnv(t)
	res := runCLI(t, "", "rand", "40", "--timeout", "20ms", "--seed", "1")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "context deadline exceeded")
}

func TestArchiveAndHistory(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvArchiveDriver, "sqlite")
	t.Setenv(config.EnvArchiveDSN, filepath.Join(t.TempDir(), "routes.db"))

	empty := runCLI(t, "", "history")
	require.Equal(t, 0, empty.code, empty.stderr)
	assert.Equal(t, "no archived routes\n", empty.stdout)

	solved := runCLI(t, "", "rand", "4", "--seed", "8", "--solver", "nearest")
	require.Equal(t, 0, solved.code, solved.stderr)

	hist := runCLI(t, "", "history", "--limit", "5")
	require.Equal(t, 0, hist.code, hist.stderr)
	assert.Contains(t, hist.stdout, "#1 ")
	assert.Contains(t, hist.stdout, "nearest wg59 n=4")
	assert.Contains(t, hist.stdout, "  "+strings.TrimSpace(solved.stdout))
}

func TestBench(t *testing.T) {
	clearEnv(t)
	res := runCLI(t, "", "bench", "-n", "5", "--runs", "6", "-p", "3", "--seed", "2")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "runs: 6, sample: 5, solver: brute, parallel: 3")
	assert.Contains(t, res.stdout, "mean solve:")

	res = runCLI(t, "", "bench", "--runs", "0")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "runs must be positive")
}

func TestOutputWriteFailuresAreReported(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvArchiveDriver, "sqlite")
	t.Setenv(config.EnvArchiveDSN, filepath.Join(t.TempDir(), "routes.db"))

	solved := runCLI(t, "", "rand", "3", "--seed", "4", "--solver", "nearest")
	require.Equal(t, 0, solved.code, solved.stderr)

	for _, args := range [][]string{
		{"history"},
		{"bench", "-n", "3", "--runs", "2", "-p", "1", "--seed", "1", "--archive=false"},
	} {
		t.Run(args[0], func(t *testing.T) {
			out := &failFirstWriter{}
			var errb bytes.Buffer
			code := run(args, strings.NewReader(""), out, &errb)

			assert.Equal(t, 1, code)
			assert.Contains(t, errb.String(), "error: stdout closed")
		})
	}
}
