package bolt

import (
	"context"

	"github.com/calvin-79/food-delivery-tracking/internal/domain/entity"
	"github.com/calvin-79/food-delivery-tracking/internal/domain/repository"

	bbolt "go.etcd.io/bbolt"
)

// boltTransactionManager implements repository.TransactionManager. bbolt allows
// one writer at a time and any number of readers, which gives mutating calls
// exclusive turns without explicit locks.
type boltTransactionManager struct {
	db *bbolt.DB
}

// boltRepositoryFactory binds repositories to one bolt transaction.
type boltRepositoryFactory struct {
	tx *bbolt.Tx
}

// NewTransactionManager is the constructor for boltTransactionManager.
func NewTransactionManager(db *bbolt.DB) repository.TransactionManager {
	return &boltTransactionManager{db: db}
}

// Execute runs fn in a read-write transaction. bbolt rolls back when fn returns
// an error or panics.
func (tm *boltTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return tm.db.Update(func(tx *bbolt.Tx) error {
		return fn(&boltRepositoryFactory{tx: tx})
	})
}

// Read runs fn in a read-only transaction.
func (tm *boltTransactionManager) Read(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return tm.db.View(func(tx *bbolt.Tx) error {
		return fn(&boltRepositoryFactory{tx: tx})
	})
}

func (f *boltRepositoryFactory) NewClientRepository() repository.ClientRepository {
	return newStore[entity.Client](f.tx, bucketClients)
}

func (f *boltRepositoryFactory) NewItemRepository() repository.ItemRepository {
	return newStore[entity.Item](f.tx, bucketItems)
}

func (f *boltRepositoryFactory) NewOrderRepository() repository.OrderRepository {
	return newStore[entity.Order](f.tx, bucketOrders)
}

func (f *boltRepositoryFactory) NewReviewRepository() repository.ReviewRepository {
	return newStore[entity.Review](f.tx, bucketReviews)
}

func (f *boltRepositoryFactory) NewIDAllocator() repository.IDAllocator {
	return &idAllocator{tx: f.tx}
}

func (f *boltRepositoryFactory) NewPrincipalRepository() repository.PrincipalRepository {
	return &principalRepository{tx: f.tx}
}
