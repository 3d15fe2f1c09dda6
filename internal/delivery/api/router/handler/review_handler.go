package handler

import (
	"fmt"
	"net/http"

	"github.com/calvin-79/food-delivery-tracking/internal/delivery/api/middleware"
	"github.com/calvin-79/food-delivery-tracking/internal/delivery/api/response"
	"github.com/calvin-79/food-delivery-tracking/internal/errors"
	"github.com/calvin-79/food-delivery-tracking/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandler handles review endpoints.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
}

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{reviewUC: params.ReviewUC}
}

// CreateReview records a review written by a client owned by the caller.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	identity, ok := middleware.GetCaller(c)
	if !ok {
		return missingCaller(c)
	}

	var input usecase.ReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	review, err := h.reviewUC.CreateReview(c.Request().Context(), identity, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review)
}

// GetReview returns one review.
func (h *ReviewHandler) GetReview(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}

	review, err := h.reviewUC.GetReview(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review)
}

// ListReviews returns every review.
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	reviews, err := h.reviewUC.ListReviews(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews)
}

// DeleteReview removes a review written by a client owned by the caller.
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	identity, ok := middleware.GetCaller(c)
	if !ok {
		return missingCaller(c)
	}

	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}

	review, err := h.reviewUC.DeleteReview(c.Request().Context(), identity, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Review id: %d deleted", id),
		"review":  review,
	})
}
