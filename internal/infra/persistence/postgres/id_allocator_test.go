package postgres

import (
	"context"
	"math"
	"testing"

	"github.com/calvin-79/food-delivery-tracking/internal/domain/entity"
	"github.com/calvin-79/food-delivery-tracking/internal/domain/repository"
	"github.com/calvin-79/food-delivery-tracking/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterID(t *testing.T) {
	id, err := counterID(0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), id)

	id, err = counterID(41)
	require.NoError(t, err)
	assert.Equal(t, uint64(41), id)

	_, err = counterID(math.MaxInt64)
	assert.EqualError(t, err, "id space exhausted")
}

func TestCounterID_NegativePanics(t *testing.T) {
	var recovered any
	func() {
		defer func() { recovered = recover() }()
		_, _ = counterID(-3)
	}()

	err, ok := recovered.(error)
	require.True(t, ok, "expected panic with an error value, got %v", recovered)
	assert.True(t, errors.Is(err, repository.ErrCounterCorrupted))
	assert.Contains(t, err.Error(), "id sequence holds -3")
}

func TestGormStore_IDOutOfRange(t *testing.T) {
	store := newStore[entity.Order](nil, model.TableOrders)
	ctx := context.Background()

	err := store.Insert(ctx, math.MaxInt64+1, &entity.Order{})
	assert.True(t, errors.Is(err, errIDOutOfRange))

	_, err = store.Get(ctx, math.MaxUint64)
	assert.True(t, errors.Is(err, repository.ErrRecordNotFound))

	_, err = store.Remove(ctx, math.MaxUint64)
	assert.True(t, errors.Is(err, repository.ErrRecordNotFound))

	assert.NoError(t, checkStorableID(math.MaxInt64))
}
