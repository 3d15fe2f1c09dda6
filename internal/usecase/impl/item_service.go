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

type itemService struct {
	txManager repository.TransactionManager
	validator service.PayloadValidator
	logger    *slog.Logger
}

// ItemServiceParams holds dependencies for ItemService, injected by Fx.
type ItemServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Validator service.PayloadValidator
	Logger    *slog.Logger
}

// NewItemService creates a new item service instance
func NewItemService(params ItemServiceParams) usecase.ItemUsecase {
	return &itemService{
		txManager: params.TxManager,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

func (srv *itemService) CreateItem(ctx context.Context, caller string, input *usecase.ItemInput) (*entity.Item, error) {
	if err := validatePayload(srv.validator, input); err != nil {
		return nil, err
	}

	var item *entity.Item
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		id, err := repoFactory.NewIDAllocator().NextID(ctx)
		if err != nil {
			return storageError(err, "failed to allocate item id")
		}

		item = &entity.Item{
			ID:          id,
			Owner:       caller,
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Category:    input.Category,
		}

		return storageError(repoFactory.NewItemRepository().Insert(ctx, id, item), "failed to insert item")
	})
	if err != nil {
		return nil, storageError(err, "transaction failed")
	}

	loggerFor(ctx, srv.logger).Info("Food item created", slog.Uint64("item_id", item.ID))

	return item, nil
}

func (srv *itemService) GetItem(ctx context.Context, id uint64) (*entity.Item, error) {
	var item *entity.Item
	err := srv.txManager.Read(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		item, err = findItem(ctx, repoFactory.NewItemRepository(), id)

		return err
	})

	return item, storageError(err, "transaction failed")
}

func (srv *itemService) ListItems(ctx context.Context) ([]*entity.Item, error) {
	items, err := srv.scanItems(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domainerrors.ErrNotFound.Newf("no Food items could be found")
	}

	return items, nil
}

func (srv *itemService) SearchItems(ctx context.Context, term string) ([]*entity.Item, error) {
	items, err := srv.scanItems(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*entity.Item, 0, len(items))
	for _, item := range items {
		if item.MatchesCategory(term) {
			matched = append(matched, item)
		}
	}
	if len(matched) == 0 {
		return nil, domainerrors.ErrNotFound.Newf("no Food items for category: %s could be found", term)
	}

	return matched, nil
}

// DeleteItem removes the item's reviews and then the item in one transaction.
func (srv *itemService) DeleteItem(ctx context.Context, caller string, id uint64) (*usecase.DeleteItemOutput, error) {
	output := &usecase.DeleteItemOutput{RemovedReviews: []uint64{}}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		itemRepo := repoFactory.NewItemRepository()
		reviewRepo := repoFactory.NewReviewRepository()

		item, err := findItem(ctx, itemRepo, id)
		if err != nil {
			return err
		}
		if !item.IsOwnedBy(caller) {
			return domainerrors.ErrUnauthorized.Newf("Caller is not the item owner of the item with id=%d", id)
		}

		reviews, err := reviewRepo.Scan(ctx)
		if err != nil {
			return storageError(err, "failed to scan reviews")
		}

		for _, review := range reviews {
			if review.ItemID != id {
				continue
			}
			if _, err := reviewRepo.Remove(ctx, review.ID); err != nil {
				return storageError(err, fmt.Sprintf("failed to remove review %d", review.ID))
			}
			output.RemovedReviews = append(output.RemovedReviews, review.ID)
		}

		output.Item, err = itemRepo.Remove(ctx, id)

		return storageError(err, fmt.Sprintf("Food item id: %d could not be deleted", id))
	})
	if err != nil {
		return nil, storageError(err, "transaction failed")
	}

	loggerFor(ctx, srv.logger).Info("Food item deleted",
		slog.Uint64("item_id", id),
		slog.Int("removed_reviews", len(output.RemovedReviews)),
	)

	return output, nil
}

func (srv *itemService) scanItems(ctx context.Context) ([]*entity.Item, error) {
	var items []*entity.Item
	err := srv.txManager.Read(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		items, err = repoFactory.NewItemRepository().Scan(ctx)

		return storageError(err, "failed to scan items")
	})

	return items, storageError(err, "transaction failed")
}

func findItem(ctx context.Context, repo repository.ItemRepository, id uint64) (*entity.Item, error) {
	item, err := repo.Get(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, domainerrors.ErrNotFound.Newf("no Food item could be found for id: %d", id)
	}

	return item, storageError(err, "failed to get item")
}
