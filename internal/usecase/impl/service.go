// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "github.com/calvin-79/food-delivery-tracking/internal/delivery/context"
	domainerrors "github.com/calvin-79/food-delivery-tracking/internal/domain/errors"
	"github.com/calvin-79/food-delivery-tracking/internal/domain/service"
	"github.com/calvin-79/food-delivery-tracking/internal/errors"
)

// loggerFor returns a request-scoped logger if available, otherwise the fallback.
func loggerFor(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback)
}

// validatePayload turns tag violations into an InvalidPayload carrying the readable message.
func validatePayload(validator service.PayloadValidator, payload any) error {
	if err := validator.Validate(payload); err != nil {
		return domainerrors.ErrInvalidPayload.Newf("%s", err.Error())
	}

	return nil
}

// storageError reports a failed store call as DATABASE_EXECUTE_FAILED. Nil and
// errors that already carry a kind pass through unchanged.
func storageError(err error, details string) error {
	if err == nil {
		return nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.NewDatabaseExecuteError(errors.WithStack(err), details)
}
