package service

import (
	"context"
	"time"
)

// OrderEvent describes one order lifecycle transition published after commit
type OrderEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventType  string    `json:"event_type"`
	OrderID    uint64    `json:"order_id"`
	ClientID   uint64    `json:"client_id"`
	Status     string    `json:"status"`
	Delivered  bool      `json:"delivered"`
	Total      uint64    `json:"total"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for downstream consumers
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
