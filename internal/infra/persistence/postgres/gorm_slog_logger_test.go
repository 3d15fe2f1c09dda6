package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/calvin-79/food-delivery-tracking/config"
	deliverycontext "github.com/calvin-79/food-delivery-tracking/internal/delivery/context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (*bytes.Buffer, logger.Interface) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return &buf, newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return "SELECT * FROM items", 2 }

	t.Run("error is logged", func(t *testing.T) {
		buf, l := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn, errors.New("connection reset"))
		assert.Contains(t, buf.String(), "Storage query failed")
		assert.Contains(t, buf.String(), "connection reset")
	})

	t.Run("record not found is ignored", func(t *testing.T) {
		buf, l := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("slow query warns", func(t *testing.T) {
		buf, l := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
		assert.Contains(t, buf.String(), "Slow storage query")
	})

	t.Run("fast query only in debug", func(t *testing.T) {
		buf, l := newBufferedGormLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Empty(t, buf.String())

		buf, l = newBufferedGormLogger(true)
		l.Trace(context.Background(), time.Now(), sqlFn, nil)
		assert.Contains(t, buf.String(), "Storage query")
	})
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	_, l := newBufferedGormLogger(false)

	var requestBuf bytes.Buffer
	requestLogger := slog.New(slog.NewTextHandler(&requestBuf, nil)).With(slog.String("request_id", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), requestLogger)

	l.Trace(ctx, time.Now(), func() (string, int64) { return "SELECT 1", 1 }, errors.New("boom"))

	assert.Contains(t, requestBuf.String(), "request_id=req-42")
	assert.Contains(t, requestBuf.String(), "component=gorm")
	assert.Contains(t, requestBuf.String(), "Storage query failed")
}

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(&pgconn.PgError{Code: "23505"}, "insert")))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueConstraintViolation(nil))
	assert.False(t, isUniqueConstraintViolation(errors.New("other")))
}
