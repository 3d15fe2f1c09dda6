package usecase

import (
	"context"

	"github.com/calvin-79/food-delivery-tracking/internal/domain/entity"
)

// ReviewInput defines the data required to review a food item.
type ReviewInput struct {
	ClientID uint64 `json:"client_id"`
	ItemID   uint64 `json:"item_id"`
	Rating   uint64 `json:"rating" validate:"min=1,max=5"`
	Comment  string `json:"comment"`
}

// ReviewUsecase defines the review business operations.
type ReviewUsecase interface {
	CreateReview(ctx context.Context, caller string, input *ReviewInput) (*entity.Review, error)
	GetReview(ctx context.Context, id uint64) (*entity.Review, error)
	ListReviews(ctx context.Context) ([]*entity.Review, error)
	ListReviewsByItem(ctx context.Context, itemID uint64) ([]*entity.Review, error)
	DeleteReview(ctx context.Context, caller string, id uint64) (*entity.Review, error)
}
