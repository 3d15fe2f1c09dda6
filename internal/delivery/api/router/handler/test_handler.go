package handler

import (
	"net/http"

	"github.com/calvin-79/food-delivery-tracking/internal/delivery/api/middleware"
	"github.com/calvin-79/food-delivery-tracking/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// TestHandler handles test endpoints for middleware validation
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// TestAuthMiddleware tests the authentication middleware
// This endpoint requires a valid JWT token in the Authorization header
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	// Caller identity is set by the auth middleware
	identity, ok := middleware.GetCaller(c)
	if !ok {
		return missingCaller(c)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Authentication middleware test successful",
		"caller":  identity,
		"status":  "authenticated",
	})
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	})
}
