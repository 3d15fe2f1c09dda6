package impl

import (
	"context"
	"log/slog"

	"github.com/calvin-79/food-delivery-tracking/internal/domain/entity"
	domainerrors "github.com/calvin-79/food-delivery-tracking/internal/domain/errors"
	"github.com/calvin-79/food-delivery-tracking/internal/domain/repository"
	"github.com/calvin-79/food-delivery-tracking/internal/domain/service"
	"github.com/calvin-79/food-delivery-tracking/internal/errors"
	"github.com/calvin-79/food-delivery-tracking/internal/usecase"

	"go.uber.org/fx"
)

type clientService struct {
	txManager repository.TransactionManager
	validator service.PayloadValidator
	logger    *slog.Logger
}

// ClientServiceParams holds dependencies for ClientService, injected by Fx.
type ClientServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Validator service.PayloadValidator
	Logger    *slog.Logger
}

// NewClientService creates a new client service instance
func NewClientService(params ClientServiceParams) usecase.ClientUsecase {
	return &clientService{
		txManager: params.TxManager,
		validator: params.Validator,
		logger:    params.Logger,
	}
}

func (srv *clientService) CreateClient(ctx context.Context, caller string, input *usecase.ClientInput) (*entity.Client, error) {
	if err := validatePayload(srv.validator, input); err != nil {
		return nil, err
	}

	var client *entity.Client
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		id, err := repoFactory.NewIDAllocator().NextID(ctx)
		if err != nil {
			return storageError(err, "failed to allocate client id")
		}

		client = &entity.Client{
			ID:      id,
			Owner:   caller,
			Name:    input.Name,
			Address: input.Address,
			Phone:   input.Phone,
			Email:   input.Email,
		}

		return storageError(repoFactory.NewClientRepository().Insert(ctx, id, client), "failed to insert client")
	})
	if err != nil {
		return nil, storageError(err, "transaction failed")
	}

	loggerFor(ctx, srv.logger).Info("Client created", slog.Uint64("client_id", client.ID))

	return client, nil
}

func (srv *clientService) GetClient(ctx context.Context, id uint64) (*entity.Client, error) {
	var client *entity.Client
	err := srv.txManager.Read(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		client, err = findClient(ctx, repoFactory.NewClientRepository(), id)

		return err
	})

	return client, storageError(err, "transaction failed")
}

func (srv *clientService) ListClients(ctx context.Context) ([]*entity.Client, error) {
	var clients []*entity.Client
	err := srv.txManager.Read(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		clients, err = repoFactory.NewClientRepository().Scan(ctx)

		return storageError(err, "failed to scan clients")
	})
	if err != nil {
		return nil, storageError(err, "transaction failed")
	}
	if len(clients) == 0 {
		return nil, domainerrors.ErrNotFound.Newf("no clients could be found")
	}

	return clients, nil
}

// findClient maps a missing record to NotFound.
func findClient(ctx context.Context, repo repository.ClientRepository, id uint64) (*entity.Client, error) {
	client, err := repo.Get(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, domainerrors.ErrNotFound.Newf("no client could be found for id: %d", id)
	}

	return client, storageError(err, "failed to get client")
}

// authorizeClient resolves the client and checks that caller owns it.
func authorizeClient(ctx context.Context, repo repository.ClientRepository, clientID uint64, caller string) (*entity.Client, error) {
	client, err := findClient(ctx, repo, clientID)
	if err != nil {
		return nil, err
	}
	if !client.IsOwnedBy(caller) {
		return nil, domainerrors.ErrUnauthorized.Newf("Caller is not the client's principal")
	}

	return client, nil
}
