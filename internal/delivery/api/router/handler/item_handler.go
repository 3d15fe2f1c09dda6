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

// ItemHandler handles food item endpoints.
type ItemHandler struct {
	itemUC   usecase.ItemUsecase
	reviewUC usecase.ReviewUsecase
}

// ItemHandlerParams holds dependencies for ItemHandler, injected by Fx.
type ItemHandlerParams struct {
	fx.In

	ItemUC   usecase.ItemUsecase
	ReviewUC usecase.ReviewUsecase
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(params ItemHandlerParams) *ItemHandler {
	return &ItemHandler{
		itemUC:   params.ItemUC,
		reviewUC: params.ReviewUC,
	}
}

// CreateItem adds a food item owned by the caller.
func (h *ItemHandler) CreateItem(c echo.Context) error {
	identity, ok := middleware.GetCaller(c)
	if !ok {
		return missingCaller(c)
	}

	var input usecase.ItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}

	item, err := h.itemUC.CreateItem(c.Request().Context(), identity, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item)
}

// GetItem returns one food item.
func (h *ItemHandler) GetItem(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}

	item, err := h.itemUC.GetItem(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item)
}

// ListItems returns every food item.
func (h *ItemHandler) ListItems(c echo.Context) error {
	items, err := h.itemUC.ListItems(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items)
}

// SearchItems filters items by the "category" query parameter.
func (h *ItemHandler) SearchItems(c echo.Context) error {
	items, err := h.itemUC.SearchItems(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items)
}

// DeleteItem removes an item owned by the caller along with its reviews.
func (h *ItemHandler) DeleteItem(c echo.Context) error {
	identity, ok := middleware.GetCaller(c)
	if !ok {
		return missingCaller(c)
	}

	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}

	output, err := h.itemUC.DeleteItem(c.Request().Context(), identity, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message":         fmt.Sprintf("Food item id: %d deleted", id),
		"item":            output.Item,
		"removed_reviews": output.RemovedReviews,
	})
}

// ListItemReviews returns the reviews of one item.
func (h *ItemHandler) ListItemReviews(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}

	reviews, err := h.reviewUC.ListReviewsByItem(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews)
}
