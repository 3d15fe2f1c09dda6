package impl

import (
	"context"
	"testing"

	domainerrors "github.com/calvin-79/food-delivery-tracking/internal/domain/errors"
	"github.com/calvin-79/food-delivery-tracking/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemService_CreateThenGet(t *testing.T) {
	fx := createTestServices(t)

	created := fx.seedItem(t, ownerIdentity, 12, "pizza")

	got, err := fx.items.GetItem(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, ownerIdentity, got.Owner)
}

func TestItemService_CreateInvalidPayload(t *testing.T) {
	fx := createTestServices(t)

	_, err := fx.items.CreateItem(context.Background(), ownerIdentity, &usecase.ItemInput{
		Name:        "Soup",
		Description: "hot",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPayload)
	assert.Equal(t, uint64(0), fx.nextID(t))
}

func TestItemService_ListAndSearch(t *testing.T) {
	fx := createTestServices(t)
	ctx := context.Background()

	_, err := fx.items.ListItems(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	pizza := fx.seedItem(t, ownerIdentity, 10, "pizza")
	sushi := fx.seedItem(t, ownerIdentity, 20, "japanese")

	items, err := fx.items.ListItems(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	found, err := fx.items.SearchItems(ctx, "pizz")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, pizza.ID, found[0].ID)

	// description matches too
	found, err = fx.items.SearchItems(ctx, "Freshly")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	_, err = fx.items.SearchItems(ctx, "burger")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.EqualError(t, err, "no Food items for category: burger could be found")

	assert.NotEqual(t, pizza.ID, sushi.ID)
}

func TestItemService_DeleteCascadesReviews(t *testing.T) {
	fx := createTestServices(t)
	ctx := context.Background()

	client := fx.seedClient(t, ownerIdentity)
	doomed := fx.seedItem(t, ownerIdentity, 10, "pizza")
	kept := fx.seedItem(t, ownerIdentity, 5, "salad")

	r1 := fx.seedReview(t, ownerIdentity, client.ID, doomed.ID)
	r2 := fx.seedReview(t, ownerIdentity, client.ID, kept.ID)
	r3 := fx.seedReview(t, ownerIdentity, client.ID, doomed.ID)

	output, err := fx.items.DeleteItem(ctx, ownerIdentity, doomed.ID)
	require.NoError(t, err)
	assert.Equal(t, doomed, output.Item)
	assert.ElementsMatch(t, []uint64{r1.ID, r3.ID}, output.RemovedReviews)

	_, err = fx.items.GetItem(ctx, doomed.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	for _, id := range []uint64{r1.ID, r3.ID} {
		_, err = fx.reviews.GetReview(ctx, id)
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	}

	remaining, err := fx.reviews.ListReviews(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, r2, remaining[0])
}

func TestItemService_DeleteUnauthorized(t *testing.T) {
	fx := createTestServices(t)
	ctx := context.Background()

	client := fx.seedClient(t, ownerIdentity)
	item := fx.seedItem(t, ownerIdentity, 10, "pizza")
	fx.seedReview(t, ownerIdentity, client.ID, item.ID)
	before := fx.storeSizes(t)

	_, err := fx.items.DeleteItem(ctx, strangerIdentity, item.ID)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.Equal(t, before, fx.storeSizes(t))
}

func TestItemService_DeleteMissing(t *testing.T) {
	fx := createTestServices(t)

	_, err := fx.items.DeleteItem(context.Background(), ownerIdentity, 99)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
