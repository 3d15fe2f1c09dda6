package middleware

import (
	"log/slog"

	deliverycontext "github.com/calvin-79/food-delivery-tracking/internal/delivery/context"
	"github.com/calvin-79/food-delivery-tracking/internal/domain/repository"
	"github.com/calvin-79/food-delivery-tracking/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

const exitCodeCorruptedStore = 1

// NewRecoverMiddleware turns panics into 500 responses. A corrupted id counter
// cannot be recovered from, so it also stops the application.
func NewRecoverMiddleware(logger *slog.Logger, shutdowner fx.Shutdowner) echo.MiddlewareFunc {
	return echomiddleware.RecoverWithConfig(echomiddleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			if errors.Is(err, repository.ErrCounterCorrupted) {
				logger.Error("Id counter is corrupted, shutting down",
					slog.String("request_id", deliverycontext.GetRequestID(c)),
					slog.Any("error", err),
				)
				if shutdownErr := shutdowner.Shutdown(fx.ExitCode(exitCodeCorruptedStore)); shutdownErr != nil {
					logger.Error("Failed to request shutdown", slog.Any("error", shutdownErr))
				}

				return err
			}

			logger.Error("Recovered from panic",
				slog.String("request_id", deliverycontext.GetRequestID(c)),
				slog.Any("error", err),
				slog.String("stack", string(stack)),
			)

			return err
		},
	})
}
