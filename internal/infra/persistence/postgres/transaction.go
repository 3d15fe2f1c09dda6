// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"database/sql"

	"github.com/calvin-79/food-delivery-tracking/internal/domain/entity"
	"github.com/calvin-79/food-delivery-tracking/internal/domain/repository"
	"github.com/calvin-79/food-delivery-tracking/internal/errors"
	"github.com/calvin-79/food-delivery-tracking/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory holds one GORM transaction and hands out repositories bound to it.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.run(ctx, nil, fn)
}

// Read runs fn in a read-only transaction.
func (tm *gormTransactionManager) Read(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (tm *gormTransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(repository.RepositoryFactory) error) error {
	var tx *gorm.DB
	if opts != nil {
		tx = tm.db.WithContext(ctx).Begin(opts)
	} else {
		tx = tm.db.WithContext(ctx).Begin()
	}
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// Roll back on panic, then re-panic so the recover middleware sees it.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}

func (f *gormRepositoryFactory) NewClientRepository() repository.ClientRepository {
	return newStore[entity.Client](f.tx, model.TableClients)
}

func (f *gormRepositoryFactory) NewItemRepository() repository.ItemRepository {
	return newStore[entity.Item](f.tx, model.TableItems)
}

func (f *gormRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return newStore[entity.Order](f.tx, model.TableOrders)
}

func (f *gormRepositoryFactory) NewReviewRepository() repository.ReviewRepository {
	return newStore[entity.Review](f.tx, model.TableReviews)
}

func (f *gormRepositoryFactory) NewIDAllocator() repository.IDAllocator {
	return &gormIDAllocator{db: f.tx}
}

func (f *gormRepositoryFactory) NewPrincipalRepository() repository.PrincipalRepository {
	return NewPrincipalRepository(f.tx)
}
