package impl

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/calvin-79/food-delivery-tracking/config"
	"github.com/calvin-79/food-delivery-tracking/internal/domain/entity"
	"github.com/calvin-79/food-delivery-tracking/internal/domain/repository"
	"github.com/calvin-79/food-delivery-tracking/internal/errors"
	"github.com/calvin-79/food-delivery-tracking/internal/infra/auth"
	"github.com/calvin-79/food-delivery-tracking/internal/infra/persistence/bolt"
	"github.com/calvin-79/food-delivery-tracking/internal/infra/validator"
	mockService "github.com/calvin-79/food-delivery-tracking/internal/mocks/service"
	"github.com/calvin-79/food-delivery-tracking/internal/usecase"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	ownerIdentity    = "7b0d7c3e-1f7e-4b55-9a3c-0d6f9a1e2b01"
	strangerIdentity = "c2a9e0b4-55f1-4d0e-8f7e-3b4a6c8d9e02"
)

// serviceFixtures wires every use case to one bolt file in t.TempDir().
type serviceFixtures struct {
	txManager repository.TransactionManager
	publisher *mockService.MockEventPublisher

	clients  usecase.ClientUsecase
	items    usecase.ItemUsecase
	orders   usecase.OrderUsecase
	reviews  usecase.ReviewUsecase
	identity usecase.IdentityUsecase
}

func createTestServices(t *testing.T) serviceFixtures {
	t.Helper()

	db, err := bolt.Open(filepath.Join(t.TempDir(), "fooddelivery.db"), time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	txManager := bolt.NewTransactionManager(db)
	payloadValidator := validator.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := mockService.NewMockEventPublisher(t)

	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost, AccessTTL: time.Minute, RefreshTTL: time.Hour}}
	cfg.SecretKey.Access = "access-secret-for-tests"
	cfg.SecretKey.Refresh = "refresh-secret-for-tests"
	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return serviceFixtures{
		txManager: txManager,
		publisher: publisher,
		clients: NewClientService(ClientServiceParams{
			TxManager: txManager, Validator: payloadValidator, Logger: logger,
		}),
		items: NewItemService(ItemServiceParams{
			TxManager: txManager, Validator: payloadValidator, Logger: logger,
		}),
		orders: NewOrderService(OrderServiceParams{
			TxManager: txManager, Validator: payloadValidator, Publisher: publisher, Logger: logger,
		}),
		reviews: NewReviewService(ReviewServiceParams{
			TxManager: txManager, Validator: payloadValidator, Logger: logger,
		}),
		identity: NewIdentityService(IdentityServiceParams{
			TxManager:    txManager,
			Validator:    payloadValidator,
			Hasher:       auth.NewBcryptHasher(cfg),
			TokenService: tokenService,
			Logger:       logger,
		}),
	}
}

// nextID reports the id the allocator would hand out next. It allocates inside
// a transaction that is then rolled back, so the counter does not move.
func (f serviceFixtures) nextID(t *testing.T) uint64 {
	t.Helper()

	errRollback := errors.New("rollback")
	var next uint64
	err := f.txManager.Execute(context.Background(), func(repoFactory repository.RepositoryFactory) error {
		var err error
		next, err = repoFactory.NewIDAllocator().NextID(context.Background())
		if err != nil {
			return err
		}

		return errRollback
	})
	require.ErrorIs(t, err, errRollback)

	return next
}

// storeSizes returns the record count of clients, items, orders and reviews.
func (f serviceFixtures) storeSizes(t *testing.T) [4]int {
	t.Helper()

	var sizes [4]int
	ctx := context.Background()
	require.NoError(t, f.txManager.Read(ctx, func(repoFactory repository.RepositoryFactory) error {
		clients, err := repoFactory.NewClientRepository().Scan(ctx)
		if err != nil {
			return err
		}
		items, err := repoFactory.NewItemRepository().Scan(ctx)
		if err != nil {
			return err
		}
		orders, err := repoFactory.NewOrderRepository().Scan(ctx)
		if err != nil {
			return err
		}
		reviews, err := repoFactory.NewReviewRepository().Scan(ctx)
		sizes = [4]int{len(clients), len(items), len(orders), len(reviews)}

		return err
	}))

	return sizes
}

func (f serviceFixtures) seedClient(t *testing.T, owner string) *entity.Client {
	t.Helper()

	client, err := f.clients.CreateClient(context.Background(), owner, &usecase.ClientInput{
		Name:    "Ada",
		Address: "12 Harbour Road",
		Phone:   "+1 555 0100",
		Email:   "ada@example.com",
	})
	require.NoError(t, err)

	return client
}

func (f serviceFixtures) seedItem(t *testing.T, owner string, price uint64, category string) *entity.Item {
	t.Helper()

	item, err := f.items.CreateItem(context.Background(), owner, &usecase.ItemInput{
		Name:        "Dish",
		Description: "Freshly made",
		Price:       price,
		Category:    category,
	})
	require.NoError(t, err)

	return item
}

func (f serviceFixtures) seedReview(t *testing.T, owner string, clientID, itemID uint64) *entity.Review {
	t.Helper()

	review, err := f.reviews.CreateReview(context.Background(), owner, &usecase.ReviewInput{
		ClientID: clientID,
		ItemID:   itemID,
		Rating:   4,
		Comment:  "tasty",
	})
	require.NoError(t, err)

	return review
}
