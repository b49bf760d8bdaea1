package obs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type ctxKey string

const (
	RunIDKey  ctxKey = "run_id"
	loggerKey ctxKey = "logger"
)

// WithLogger attaches l to ctx for use by Time and Logger.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// WithRunID tags ctx so every timed operation logs the same run_id.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey, runID)
}

// Logger returns the logger carried by ctx, or a no-op logger.
func Logger(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
		return l
	}
	return zap.NewNop()
}

// Time starts timing op and returns a func that logs the duration and the
// error pointed to by errp. Use it as
//
//	defer obs.Time(ctx, "route.solve")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	runID, _ := ctx.Value(RunIDKey).(string)
	l := Logger(ctx)

	return func(errp *error) {
		fields := []zap.Field{
			zap.String("run_id", runID),
			zap.String("op", name),
			zap.Duration("dur", time.Since(start)),
		}

		if errp != nil && *errp != nil {
			l.Warn("operation failed", append(fields, zap.Error(*errp))...)
			return
		}
		l.Debug("operation done", fields...)
	}
}
