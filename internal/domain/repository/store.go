// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"github.com/calvin-79/food-delivery-tracking/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for entity persistence.
var (
	// ErrRecordNotFound is returned by Get and Remove when no record has the id.
	ErrRecordNotFound = errors.New("record not found")
	// ErrCounterCorrupted means the persisted id counter cannot be decoded.
	// The allocator panics with it; it is never returned as a normal error.
	ErrCounterCorrupted = errors.New("id counter corrupted")
)

// Store is an ordered mapping from numeric id to record, one per entity kind.
type Store[T any] interface {
	// Insert writes record at id, replacing any existing record.
	Insert(ctx context.Context, id uint64, record *T) error

	// Get returns the record at id or ErrRecordNotFound.
	Get(ctx context.Context, id uint64) (*T, error)

	// Scan returns every record in ascending id order.
	Scan(ctx context.Context) ([]*T, error)

	// Remove deletes the record at id and returns it, or ErrRecordNotFound.
	Remove(ctx context.Context, id uint64) (*T, error)
}

// ClientRepository stores clients.
type ClientRepository = Store[entity.Client]

// ItemRepository stores food items.
type ItemRepository = Store[entity.Item]

// OrderRepository stores orders.
type OrderRepository = Store[entity.Order]

// ReviewRepository stores reviews.
type ReviewRepository = Store[entity.Review]

// IDAllocator hands out identifiers shared by every entity kind.
type IDAllocator interface {
	// NextID returns the current counter value and advances it. The first id is 0.
	NextID(ctx context.Context) (uint64, error)
}
