package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"moa/config"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Capacity checks and version-guarded saves sit on the join hot path,
// so anything slower than this is worth surfacing.
const gormSlowQueryThreshold = 200 * time.Millisecond

// gormSlogLogger adapts the application slog.Logger to gorm's
// logger.Interface so query logs share handlers with the rest of the
// service. Record-not-found is an expected outcome on lookups and is
// never logged as an error.
type gormSlogLogger struct {
	logger *slog.Logger
	level  logger.LogLevel
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger: baseLogger,
		level:  level,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) printf(ctx context.Context, gate logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.logger == nil || l.level < gate {
		return
	}

	l.logger.LogAttrs(ctx, level, "GORM message",
		slog.String("message", fmt.Sprintf(msg, args...)),
	)
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		l.traceLog(ctx, slog.LevelError, "GORM query failed", sqlAndRowsFn, elapsed,
			slog.String("error", err.Error()))
	case elapsed > gormSlowQueryThreshold && l.level >= logger.Warn:
		l.traceLog(ctx, slog.LevelWarn, "GORM slow query", sqlAndRowsFn, elapsed,
			slog.Duration("slowThreshold", gormSlowQueryThreshold))
	case l.level >= logger.Info:
		l.traceLog(ctx, slog.LevelInfo, "GORM query", sqlAndRowsFn, elapsed)
	}
}

func (l *gormSlogLogger) traceLog(ctx context.Context, level slog.Level, msg string, sqlAndRowsFn func() (string, int64), elapsed time.Duration, extra ...slog.Attr) {
	sql, rows := sqlAndRowsFn()

	attrs := make([]slog.Attr, 0, 3+len(extra))
	attrs = append(attrs,
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	)
	attrs = append(attrs, extra...)

	l.logger.LogAttrs(ctx, level, msg, attrs...)
}
