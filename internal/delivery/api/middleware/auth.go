package middleware

import (
	"log/slog"
	"strings"

	"github.com/calvin-79/food-delivery-tracking/internal/delivery/api/response"
	deliverycontext "github.com/calvin-79/food-delivery-tracking/internal/delivery/context"
	"github.com/calvin-79/food-delivery-tracking/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates callers with a Bearer access token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the access token and stores the caller identity on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || strings.TrimSpace(tokenString) == "" {
			return response.Unauthorized(c, "INVALID_TOKEN_FORMAT", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			m.logger.Debug("Access token rejected",
				slog.String("request_id", deliverycontext.GetRequestID(c)),
				slog.Any("error", err),
			)

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetCaller(c, claims.Subject)

		ctx := c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("caller", claims.Subject))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))

		return next(c)
	}
}

// GetCaller returns the identity authenticated by Authenticate.
func GetCaller(c echo.Context) (string, bool) {
	return deliverycontext.GetCaller(c)
}
