package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/calvin-79/food-delivery-tracking/internal/domain/repository"
	"github.com/calvin-79/food-delivery-tracking/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
)

type recordingShutdowner struct {
	calls int
}

func (s *recordingShutdowner) Shutdown(...fx.ShutdownOption) error {
	s.calls++

	return nil
}

func TestRecoverMiddleware(t *testing.T) {
	tests := []struct {
		name          string
		panicValue    any
		wantShutdowns int
	}{
		{
			name:          "corrupted counter stops the app",
			panicValue:    errors.Wrapf(repository.ErrCounterCorrupted, "id counter holds %d bytes", 3),
			wantShutdowns: 1,
		},
		{
			name:          "other panics only fail the request",
			panicValue:    "boom",
			wantShutdowns: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			shutdowner := &recordingShutdowner{}

			e := echo.New()
			e.HTTPErrorHandler = NewErrorMiddleware(logger).HandleHTTPError
			e.Use(NewRecoverMiddleware(logger, shutdowner))
			e.GET("/panic", func(echo.Context) error {
				panic(tt.panicValue)
			})

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, tt.wantShutdowns, shutdowner.calls)
		})
	}
}
