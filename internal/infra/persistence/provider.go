// Package persistence selects the storage backend named by storage.driver.
package persistence

import (
	"log/slog"

	"github.com/calvin-79/food-delivery-tracking/config"
	"github.com/calvin-79/food-delivery-tracking/internal/domain/constants"
	"github.com/calvin-79/food-delivery-tracking/internal/domain/repository"
	"github.com/calvin-79/food-delivery-tracking/internal/errors"
	"github.com/calvin-79/food-delivery-tracking/internal/infra/persistence/bolt"
	"github.com/calvin-79/food-delivery-tracking/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewTransactionManager opens the configured store and returns the transaction
// manager every use case runs through.
func NewTransactionManager(params Params) (repository.TransactionManager, error) {
	driver := params.Config.Storage.Driver

	switch driver {
	case constants.StorageDriverBolt:
		db, err := bolt.New(bolt.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return bolt.NewTransactionManager(db), nil

	case constants.StorageDriverPostgres:
		if params.Config.Postgres == nil {
			return nil, errors.New("postgres section is required for the postgres storage driver")
		}

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewTransactionManager(db), nil

	default:
		return nil, errors.Errorf("unknown storage driver: %s", driver)
	}
}
