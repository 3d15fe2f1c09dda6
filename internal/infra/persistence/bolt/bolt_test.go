package bolt

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/calvin-79/food-delivery-tracking/internal/domain/entity"
	"github.com/calvin-79/food-delivery-tracking/internal/domain/repository"
	"github.com/calvin-79/food-delivery-tracking/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bbolt "go.etcd.io/bbolt"
)

func openTestDB(t *testing.T) (*bbolt.DB, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data", "test.db")
	db, err := Open(path, time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db, path
}

func TestStore_InsertGetRemove(t *testing.T) {
	db, _ := openTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	item := &entity.Item{ID: 3, Owner: "owner", Name: "Pizza", Description: "Cheese", Price: 10, Category: "italian"}
	require.NoError(t, tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.NewItemRepository().Insert(ctx, item.ID, item)
	}))

	require.NoError(t, tm.Read(ctx, func(f repository.RepositoryFactory) error {
		got, err := f.NewItemRepository().Get(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, item, got)

		_, err = f.NewClientRepository().Get(ctx, 3)
		assert.ErrorIs(t, err, repository.ErrRecordNotFound)

		return nil
	}))

	require.NoError(t, tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		removed, err := f.NewItemRepository().Remove(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, item, removed)

		_, err = f.NewItemRepository().Remove(ctx, 3)
		assert.ErrorIs(t, err, repository.ErrRecordNotFound)

		return nil
	}))
}

func TestStore_ScanReturnsAscendingIDOrder(t *testing.T) {
	db, _ := openTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	ids := []uint64{256, 1, 70000, 2}
	require.NoError(t, tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.NewReviewRepository()
		for _, id := range ids {
			if err := repo.Insert(ctx, id, &entity.Review{ID: id, ItemID: 1, Rating: 4}); err != nil {
				return err
			}
		}

		return nil
	}))

	var scanned []uint64
	require.NoError(t, tm.Read(ctx, func(f repository.RepositoryFactory) error {
		reviews, err := f.NewReviewRepository().Scan(ctx)
		for _, review := range reviews {
			scanned = append(scanned, review.ID)
		}

		return err
	}))
	assert.Equal(t, []uint64{1, 2, 256, 70000}, scanned)
}

func TestStore_ScanEmpty(t *testing.T) {
	db, _ := openTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	require.NoError(t, tm.Read(ctx, func(f repository.RepositoryFactory) error {
		orders, err := f.NewOrderRepository().Scan(ctx)
		assert.Empty(t, orders)

		return err
	}))
}

func TestStore_ScanReportsCorruptRecordID(t *testing.T) {
	db, _ := openTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	require.NoError(t, tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.NewOrderRepository().Insert(ctx, 1, &entity.Order{ID: 1, ClientID: 1, Status: "placed"})
	}))
	require.NoError(t, db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketOrders).Put(idKey(5), []byte("{not json"))
	}))

	err := tm.Read(ctx, func(f repository.RepositoryFactory) error {
		_, err := f.NewOrderRepository().Scan(ctx)

		return err
	})
	assert.ErrorContains(t, err, "decode orders record 5")
}

func TestStore_ScanRejectsMalformedKey(t *testing.T) {
	db, _ := openTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	require.NoError(t, db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketItems).Put([]byte("abc"), []byte("{}"))
	}))

	err := tm.Read(ctx, func(f repository.RepositoryFactory) error {
		_, err := f.NewItemRepository().Scan(ctx)

		return err
	})
	assert.ErrorContains(t, err, "items bucket holds a 3 byte key")
}

func TestIDAllocator_SharedAndMonotonic(t *testing.T) {
	db, path := openTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	var got []uint64
	for range 3 {
		require.NoError(t, tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			id, err := f.NewIDAllocator().NextID(ctx)
			got = append(got, id)

			return err
		}))
	}
	assert.Equal(t, []uint64{0, 1, 2}, got)

	// counter survives reopening the file
	require.NoError(t, db.Close())
	reopened, err := Open(path, time.Second)
	require.NoError(t, err)
	defer reopened.Close()

	require.NoError(t, NewTransactionManager(reopened).Execute(ctx, func(f repository.RepositoryFactory) error {
		id, err := f.NewIDAllocator().NextID(ctx)
		assert.Equal(t, uint64(3), id)

		return err
	}))
}

func TestIDAllocator_RolledBackWithTransaction(t *testing.T) {
	db, _ := openTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()
	errBoom := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		id, err := f.NewIDAllocator().NextID(ctx)
		require.NoError(t, err)
		require.NoError(t, f.NewClientRepository().Insert(ctx, id, &entity.Client{ID: id, Name: "ghost"}))

		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	require.NoError(t, db.View(func(tx *bbolt.Tx) error {
		assert.Equal(t, uint64(0), counterValue(tx.Bucket(bucketMeta)))

		return nil
	}))

	require.NoError(t, tm.Read(ctx, func(f repository.RepositoryFactory) error {
		clients, err := f.NewClientRepository().Scan(ctx)
		assert.Empty(t, clients)

		return err
	}))
}

func TestIDAllocator_CorruptedCounterPanics(t *testing.T) {
	db, _ := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMeta).Put(keyIDCounter, []byte{1, 2, 3})
	}))

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		_ = NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
			_, err := f.NewIDAllocator().NextID(ctx)

			return err
		})
	}()

	err, ok := recovered.(error)
	require.True(t, ok, "expected panic with an error value, got %v", recovered)
	assert.ErrorIs(t, err, repository.ErrCounterCorrupted)
}

func TestTransactionManager_CanceledContext(t *testing.T) {
	db, _ := openTestDB(t)
	tm := NewTransactionManager(db)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := tm.Execute(ctx, func(repository.RepositoryFactory) error {
		called = true

		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestPrincipalRepository(t *testing.T) {
	db, _ := openTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	principal := &entity.Principal{
		ID:         uuid.New(),
		Name:       "alice",
		SecretHash: "$2a$04$hash",
		CreatedAt:  time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	require.NoError(t, tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.NewPrincipalRepository().CreatePrincipal(ctx, principal)
	}))

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.NewPrincipalRepository().CreatePrincipal(ctx, &entity.Principal{ID: uuid.New(), Name: "alice"})
	})
	assert.ErrorIs(t, err, repository.ErrDuplicatePrincipal)

	require.NoError(t, tm.Read(ctx, func(f repository.RepositoryFactory) error {
		got, err := f.NewPrincipalRepository().FindPrincipalByName(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, principal, got)

		_, err = f.NewPrincipalRepository().FindPrincipalByName(ctx, "bob")
		assert.ErrorIs(t, err, repository.ErrPrincipalNotFound)

		return nil
	}))
}
