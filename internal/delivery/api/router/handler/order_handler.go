package handler

import (
	"net/http"

	"github.com/calvin-79/food-delivery-tracking/internal/delivery/api/middleware"
	"github.com/calvin-79/food-delivery-tracking/internal/delivery/api/response"
	"github.com/calvin-79/food-delivery-tracking/internal/domain/service"
	"github.com/calvin-79/food-delivery-tracking/internal/errors"
	"github.com/calvin-79/food-delivery-tracking/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandler handles order endpoints.
type OrderHandler struct {
	orderUC   usecase.OrderUsecase
	qrService service.QRCodeService
}

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC   usecase.OrderUsecase
	QRService service.QRCodeService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC:   params.OrderUC,
		qrService: params.QRService,
	}
}

// CreateOrder places an order for a client owned by the caller.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	identity, ok := middleware.GetCaller(c)
	if !ok {
		return missingCaller(c)
	}

	var input usecase.OrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), identity, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// GetOrder returns one order.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order)
}

// ListOrders returns every order.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUC.ListOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// UpdateOrderStatus replaces the status text of an undelivered order.
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	identity, ok := middleware.GetCaller(c)
	if !ok {
		return missingCaller(c)
	}

	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}

	var input usecase.OrderStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order status input")
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), identity, id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order)
}

// ConfirmDelivery marks an order as delivered.
func (h *OrderHandler) ConfirmDelivery(c echo.Context) error {
	identity, ok := middleware.GetCaller(c)
	if !ok {
		return missingCaller(c)
	}

	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}

	order, err := h.orderUC.ConfirmDelivery(c.Request().Context(), identity, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order)
}

// GetOrderQR renders a PNG QR code linking to the order's tracking URL.
func (h *OrderHandler) GetOrderQR(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}

	if _, err := h.orderUC.GetOrder(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	png, err := h.qrService.GenerateOrderQR(id)
	if err != nil {
		return errors.Wrapf(err, "failed to generate QR code for order %d", id)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
