package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/calvin-79/food-delivery-tracking/config"
	deliverycontext "github.com/calvin-79/food-delivery-tracking/internal/delivery/context"
	"github.com/calvin-79/food-delivery-tracking/internal/errors"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// queryLogger routes gorm output to the request-scoped slog logger, so query
// lines carry the same request_id and caller as the use case logs.
type queryLogger struct {
	fallback *slog.Logger
	level    gormlogger.LogLevel
	slow     time.Duration
}

func newGormSlogLogger(fallback *slog.Logger, cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = gormlogger.Info
	}

	return &queryLogger{
		fallback: fallback,
		level:    level,
		slow:     slowQueryThreshold,
	}
}

func (l *queryLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, msg, args...)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, msg, args...)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, msg, args...)
}

// Trace logs failed statements, slow statements, and in debug mode every statement.
// A missing row is a NotFound answer for the caller, not a storage failure.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.level == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		l.query(ctx, slog.LevelError, "Storage query failed", sqlAndRowsFn, elapsed, slog.String("error", err.Error()))
	case elapsed > l.slow && l.level >= gormlogger.Warn:
		l.query(ctx, slog.LevelWarn, "Slow storage query", sqlAndRowsFn, elapsed, slog.Duration("threshold", l.slow))
	case l.level >= gormlogger.Info:
		l.query(ctx, slog.LevelDebug, "Storage query", sqlAndRowsFn, elapsed)
	}
}

func (l *queryLogger) query(ctx context.Context, level slog.Level, msg string, sqlAndRowsFn func() (string, int64), elapsed time.Duration, extra ...slog.Attr) {
	sql, rows := sqlAndRowsFn()
	attrs := append([]slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}, extra...)

	l.loggerFor(ctx).LogAttrs(ctx, level, msg, attrs...)
}

func (l *queryLogger) printf(ctx context.Context, min gormlogger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < min {
		return
	}

	l.loggerFor(ctx).LogAttrs(ctx, level, "Storage message", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *queryLogger) loggerFor(ctx context.Context) *slog.Logger {
	fallback := l.fallback
	if fallback == nil {
		fallback = slog.Default()
	}

	return deliverycontext.GetLoggerOrDefault(ctx, fallback).With(slog.String("component", "gorm"))
}
