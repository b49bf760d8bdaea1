package obs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTimeLogsRunIDAndError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := WithRunID(WithLogger(context.Background(), zap.New(core)), "run-1")

	func() (err error) {
		defer Time(ctx, "route.solve")(&err)
		return errors.New("boom")
	}()
	func() (err error) {
		defer Time(ctx, "route.save")(&err)
		return nil
	}()

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, "run-1", fields["run_id"])
	assert.Equal(t, "route.solve", fields["op"])
	assert.Equal(t, "boom", fields["error"])

	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
	assert.Equal(t, "route.save", entries[1].ContextMap()["op"])
}

func TestLoggerDefaultsToNop(t *testing.T) {
	assert.NotNil(t, Logger(context.Background()))
}

func TestNewLogger(t *testing.T) {
	l, err := NewLogger("", false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	l, err = NewLogger("info", true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	_, err = NewLogger("chatty", false)
	require.Error(t, err)
}
