package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/bits"
	"time"

	deliverycontext "github.com/calvin-79/food-delivery-tracking/internal/delivery/context"
	"github.com/calvin-79/food-delivery-tracking/internal/domain/constants"
	"github.com/calvin-79/food-delivery-tracking/internal/domain/entity"
	domainerrors "github.com/calvin-79/food-delivery-tracking/internal/domain/errors"
	"github.com/calvin-79/food-delivery-tracking/internal/domain/repository"
	"github.com/calvin-79/food-delivery-tracking/internal/domain/service"
	"github.com/calvin-79/food-delivery-tracking/internal/errors"
	"github.com/calvin-79/food-delivery-tracking/internal/usecase"

	"go.uber.org/fx"
)

type orderService struct {
	txManager repository.TransactionManager
	validator service.PayloadValidator
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Validator service.PayloadValidator
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		validator: params.Validator,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// CreateOrder prices the requested items and stores a placed order. Item ids
// missing from the store add nothing to the total but stay in the item map.
func (srv *orderService) CreateOrder(ctx context.Context, caller string, input *usecase.OrderInput) (*entity.Order, error) {
	if len(input.Items) == 0 {
		return nil, domainerrors.ErrInvalidPayload.Newf("Cannot create an order with no items.")
	}
	if err := validatePayload(srv.validator, input); err != nil {
		return nil, err
	}

	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := authorizeClient(ctx, repoFactory.NewClientRepository(), input.ClientID, caller); err != nil {
			return err
		}

		id, err := repoFactory.NewIDAllocator().NextID(ctx)
		if err != nil {
			return storageError(err, "failed to allocate order id")
		}

		quantities := make(map[uint64]uint64, len(input.Items))
		for _, line := range input.Items {
			quantities[line.ItemID] = line.Quantity
		}

		total, err := orderTotal(ctx, repoFactory.NewItemRepository(), quantities)
		if err != nil {
			return err
		}

		order = &entity.Order{
			ID:        id,
			ClientID:  input.ClientID,
			Items:     quantities,
			Total:     total,
			Status:    constants.OrderStatusPlaced,
			Delivered: false,
		}

		return storageError(repoFactory.NewOrderRepository().Insert(ctx, id, order), "failed to insert order")
	})
	if err != nil {
		return nil, storageError(err, "transaction failed")
	}

	loggerFor(ctx, srv.logger).Info("Order placed",
		slog.Uint64("order_id", order.ID),
		slog.Uint64("client_id", order.ClientID),
		slog.Uint64("total", order.Total),
	)
	srv.publish(ctx, constants.EventOrderPlaced, order)

	return order, nil
}

func (srv *orderService) GetOrder(ctx context.Context, id uint64) (*entity.Order, error) {
	var order *entity.Order
	err := srv.txManager.Read(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		order, err = findOrder(ctx, repoFactory.NewOrderRepository(), id)

		return err
	})

	return order, storageError(err, "transaction failed")
}

func (srv *orderService) ListOrders(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.scanOrders(ctx)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, domainerrors.ErrNotFound.Newf("no orders could be found")
	}

	return orders, nil
}

func (srv *orderService) ListOrdersByClient(ctx context.Context, clientID uint64) ([]*entity.Order, error) {
	orders, err := srv.scanOrders(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*entity.Order, 0, len(orders))
	for _, order := range orders {
		if order.ClientID == clientID {
			matched = append(matched, order)
		}
	}
	if len(matched) == 0 {
		return nil, domainerrors.ErrNotFound.Newf("no orders could be found for client_id: %d", clientID)
	}

	return matched, nil
}

func (srv *orderService) UpdateOrderStatus(ctx context.Context, caller string, id uint64, input *usecase.OrderStatusInput) (*entity.Order, error) {
	if err := validatePayload(srv.validator, input); err != nil {
		return nil, err
	}
	if input.Status == constants.OrderStatusDelivered {
		return nil, domainerrors.ErrInvalidPayload.Newf("status %q is set by delivery confirmation only", input.Status)
	}

	order, err := srv.transition(ctx, caller, id, func(order *entity.Order) {
		order.Status = input.Status
	})
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, constants.EventOrderStatusChanged, order)

	return order, nil
}

// ConfirmDelivery flips delivered and the status marker in one store update.
func (srv *orderService) ConfirmDelivery(ctx context.Context, caller string, id uint64) (*entity.Order, error) {
	order, err := srv.transition(ctx, caller, id, func(order *entity.Order) {
		order.Delivered = true
		order.Status = constants.OrderStatusDelivered
	})
	if err != nil {
		return nil, err
	}

	loggerFor(ctx, srv.logger).Info("Order delivered", slog.Uint64("order_id", id))
	srv.publish(ctx, constants.EventOrderDelivered, order)

	return order, nil
}

// transition applies mutate to an undelivered order owned by caller's client.
func (srv *orderService) transition(ctx context.Context, caller string, id uint64, mutate func(*entity.Order)) (*entity.Order, error) {
	var order *entity.Order
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		var err error
		order, err = findOrder(ctx, orderRepo, id)
		if err != nil {
			return err
		}

		if _, err := authorizeClient(ctx, repoFactory.NewClientRepository(), order.ClientID, caller); err != nil {
			return err
		}

		if order.Delivered {
			return domainerrors.ErrAlreadyDelivered.Newf("order id: %d is already delivered", id)
		}

		mutate(order)

		return storageError(orderRepo.Insert(ctx, id, order), "failed to update order")
	})
	if err != nil {
		return nil, storageError(err, "transaction failed")
	}

	return order, nil
}

func (srv *orderService) scanOrders(ctx context.Context) ([]*entity.Order, error) {
	var orders []*entity.Order
	err := srv.txManager.Read(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		orders, err = repoFactory.NewOrderRepository().Scan(ctx)

		return storageError(err, "failed to scan orders")
	})

	return orders, storageError(err, "transaction failed")
}

// publish is best effort: the order is already committed.
func (srv *orderService) publish(ctx context.Context, eventType string, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventType:  eventType,
		OrderID:    order.ID,
		ClientID:   order.ClientID,
		Status:     order.Status,
		Delivered:  order.Delivered,
		Total:      order.Total,
		OccurredAt: srv.now().UTC(),
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		loggerFor(ctx, srv.logger).Warn("Failed to publish order event",
			slog.String("event_type", eventType),
			slog.Uint64("order_id", order.ID),
			slog.Any("error", err),
		)
	}
}

// orderTotal sums price×quantity over the items present in the store.
func orderTotal(ctx context.Context, itemRepo repository.ItemRepository, quantities map[uint64]uint64) (uint64, error) {
	var total uint64
	for itemID, quantity := range quantities {
		item, err := itemRepo.Get(ctx, itemID)
		if errors.Is(err, repository.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return 0, storageError(err, fmt.Sprintf("failed to get item %d", itemID))
		}

		hi, line := bits.Mul64(item.Price, quantity)
		if hi != 0 {
			return 0, domainerrors.ErrInvalidPayload.Newf("order total overflows for item id: %d", itemID)
		}

		var carry uint64
		total, carry = bits.Add64(total, line, 0)
		if carry != 0 {
			return 0, domainerrors.ErrInvalidPayload.Newf("order total overflows")
		}
	}

	return total, nil
}

func findOrder(ctx context.Context, repo repository.OrderRepository, id uint64) (*entity.Order, error) {
	order, err := repo.Get(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, domainerrors.ErrNotFound.Newf("no order could be found for id: %d", id)
	}

	return order, storageError(err, "failed to get order")
}
