package usecase

import (
	"context"

	"github.com/calvin-79/food-delivery-tracking/internal/domain/entity"
)

// ItemInput defines the data required to create a food item.
type ItemInput struct {
	Name        string `json:"name" validate:"min=2"`
	Description string `json:"description" validate:"min=4"`
	Price       uint64 `json:"price"`
	Category    string `json:"category"`
}

// DeleteItemOutput reports what an item deletion removed.
type DeleteItemOutput struct {
	Item           *entity.Item `json:"item"`
	RemovedReviews []uint64     `json:"removed_reviews"`
}

// ItemUsecase defines the food item business operations.
type ItemUsecase interface {
	CreateItem(ctx context.Context, caller string, input *ItemInput) (*entity.Item, error)
	GetItem(ctx context.Context, id uint64) (*entity.Item, error)
	ListItems(ctx context.Context) ([]*entity.Item, error)

	// SearchItems returns items whose category or description contains term.
	SearchItems(ctx context.Context, term string) ([]*entity.Item, error)

	// DeleteItem removes the item and every review of it.
	DeleteItem(ctx context.Context, caller string, id uint64) (*DeleteItemOutput, error)
}
