package impl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/calvin-79/food-delivery-tracking/internal/domain/entity"
	domainerrors "github.com/calvin-79/food-delivery-tracking/internal/domain/errors"
	"github.com/calvin-79/food-delivery-tracking/internal/domain/repository"
	"github.com/calvin-79/food-delivery-tracking/internal/domain/service"
	"github.com/calvin-79/food-delivery-tracking/internal/errors"
	"github.com/calvin-79/food-delivery-tracking/internal/usecase"

	"go.uber.org/fx"
)

type reviewService struct {
	txManager repository.TransactionManager
	validator service.PayloadValidator
	logger    *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Validator service.PayloadValidator
	Logger    *slog.Logger
}

// NewReviewService creates a new review service instance
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager: params.TxManager,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

// CreateReview binds the review to a client the caller owns and to an existing item.
func (srv *reviewService) CreateReview(ctx context.Context, caller string, input *usecase.ReviewInput) (*entity.Review, error) {
	if err := validatePayload(srv.validator, input); err != nil {
		return nil, err
	}

	var review *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := authorizeClient(ctx, repoFactory.NewClientRepository(), input.ClientID, caller); err != nil {
			return err
		}
		if _, err := findItem(ctx, repoFactory.NewItemRepository(), input.ItemID); err != nil {
			return err
		}

		id, err := repoFactory.NewIDAllocator().NextID(ctx)
		if err != nil {
			return storageError(err, "failed to allocate review id")
		}

		review = &entity.Review{
			ID:       id,
			ClientID: input.ClientID,
			ItemID:   input.ItemID,
			Rating:   input.Rating,
			Comment:  input.Comment,
		}

		return storageError(repoFactory.NewReviewRepository().Insert(ctx, id, review), "failed to insert review")
	})
	if err != nil {
		return nil, storageError(err, "transaction failed")
	}

	loggerFor(ctx, srv.logger).Info("Review created",
		slog.Uint64("review_id", review.ID),
		slog.Uint64("item_id", review.ItemID),
	)

	return review, nil
}

func (srv *reviewService) GetReview(ctx context.Context, id uint64) (*entity.Review, error) {
	var review *entity.Review
	err := srv.txManager.Read(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		review, err = findReview(ctx, repoFactory.NewReviewRepository(), id)

		return err
	})

	return review, storageError(err, "transaction failed")
}

func (srv *reviewService) ListReviews(ctx context.Context) ([]*entity.Review, error) {
	reviews, err := srv.scanReviews(ctx)
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return nil, domainerrors.ErrNotFound.Newf("no reviews could be found")
	}

	return reviews, nil
}

func (srv *reviewService) ListReviewsByItem(ctx context.Context, itemID uint64) ([]*entity.Review, error) {
	reviews, err := srv.scanReviews(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*entity.Review, 0, len(reviews))
	for _, review := range reviews {
		if review.ItemID == itemID {
			matched = append(matched, review)
		}
	}
	if len(matched) == 0 {
		return nil, domainerrors.ErrNotFound.Newf("no reviews could be found for item_id: %d", itemID)
	}

	return matched, nil
}

func (srv *reviewService) DeleteReview(ctx context.Context, caller string, id uint64) (*entity.Review, error) {
	var removed *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.NewReviewRepository()

		review, err := findReview(ctx, reviewRepo, id)
		if err != nil {
			return err
		}

		if _, err := authorizeClient(ctx, repoFactory.NewClientRepository(), review.ClientID, caller); err != nil {
			return err
		}

		removed, err = reviewRepo.Remove(ctx, id)

		return storageError(err, fmt.Sprintf("Review id: %d could not be deleted", id))
	})
	if err != nil {
		return nil, storageError(err, "transaction failed")
	}

	loggerFor(ctx, srv.logger).Info("Review deleted", slog.Uint64("review_id", id))

	return removed, nil
}

func (srv *reviewService) scanReviews(ctx context.Context) ([]*entity.Review, error) {
	var reviews []*entity.Review
	err := srv.txManager.Read(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		reviews, err = repoFactory.NewReviewRepository().Scan(ctx)

		return storageError(err, "failed to scan reviews")
	})

	return reviews, storageError(err, "transaction failed")
}

func findReview(ctx context.Context, repo repository.ReviewRepository, id uint64) (*entity.Review, error) {
	review, err := repo.Get(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, domainerrors.ErrNotFound.Newf("no review could be found for id: %d", id)
	}

	return review, storageError(err, "failed to get review")
}
