package handler

import (
	"net/http"

	"github.com/calvin-79/food-delivery-tracking/internal/delivery/api/middleware"
	"github.com/calvin-79/food-delivery-tracking/internal/delivery/api/response"
	"github.com/calvin-79/food-delivery-tracking/internal/errors"
	"github.com/calvin-79/food-delivery-tracking/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ClientHandler handles client endpoints.
type ClientHandler struct {
	clientUC usecase.ClientUsecase
	orderUC  usecase.OrderUsecase
}

// ClientHandlerParams holds dependencies for ClientHandler, injected by Fx.
type ClientHandlerParams struct {
	fx.In

	ClientUC usecase.ClientUsecase
	OrderUC  usecase.OrderUsecase
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(params ClientHandlerParams) *ClientHandler {
	return &ClientHandler{
		clientUC: params.ClientUC,
		orderUC:  params.OrderUC,
	}
}

// CreateClient registers a client owned by the caller.
func (h *ClientHandler) CreateClient(c echo.Context) error {
	identity, ok := middleware.GetCaller(c)
	if !ok {
		return missingCaller(c)
	}

	var input usecase.ClientInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client input")
	}

	client, err := h.clientUC.CreateClient(c.Request().Context(), identity, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, client)
}

// GetClient returns one client.
func (h *ClientHandler) GetClient(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}

	client, err := h.clientUC.GetClient(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, client)
}

// ListClients returns every client.
func (h *ClientHandler) ListClients(c echo.Context) error {
	clients, err := h.clientUC.ListClients(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, clients)
}

// ListClientOrders returns the orders placed by one client.
func (h *ClientHandler) ListClientOrders(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return invalidID(c)
	}

	orders, err := h.orderUC.ListOrdersByClient(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders)
}
