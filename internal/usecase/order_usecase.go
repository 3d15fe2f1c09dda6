package usecase

import (
	"context"

	"github.com/calvin-79/food-delivery-tracking/internal/domain/entity"
)

// OrderLineInput is one (item, quantity) pair of an order request.
type OrderLineInput struct {
	ItemID   uint64 `json:"item_id"`
	Quantity uint64 `json:"quantity"`
}

// OrderInput defines the data required to place an order.
type OrderInput struct {
	ClientID uint64           `json:"client_id"`
	Items    []OrderLineInput `json:"items"`
}

// OrderStatusInput replaces the free-text status of an order.
type OrderStatusInput struct {
	Status string `json:"status" validate:"required,notblank"`
}

// OrderUsecase defines the order business operations.
type OrderUsecase interface {
	CreateOrder(ctx context.Context, caller string, input *OrderInput) (*entity.Order, error)
	GetOrder(ctx context.Context, id uint64) (*entity.Order, error)
	ListOrders(ctx context.Context) ([]*entity.Order, error)
	ListOrdersByClient(ctx context.Context, clientID uint64) ([]*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, caller string, id uint64, input *OrderStatusInput) (*entity.Order, error)

	// ConfirmDelivery moves a placed order to the terminal delivered state.
	ConfirmDelivery(ctx context.Context, caller string, id uint64) (*entity.Order, error)
}
