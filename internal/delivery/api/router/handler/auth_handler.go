package handler

import (
	"net/http"

	"github.com/calvin-79/food-delivery-tracking/internal/delivery/api/response"
	"github.com/calvin-79/food-delivery-tracking/internal/errors"
	"github.com/calvin-79/food-delivery-tracking/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandler issues caller identities and their tokens.
type AuthHandler struct {
	uc usecase.IdentityUsecase
}

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	IdentityUC usecase.IdentityUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{uc: params.IdentityUC}
}

// Register handles principal registration.
func (h *AuthHandler) Register(c echo.Context) error {
	var input usecase.CredentialsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output)
}

// Login handles the login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.CredentialsInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}

// RefreshToken handles the token refresh request.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var input usecase.RefreshInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}

	output, err := h.uc.Refresh(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}
