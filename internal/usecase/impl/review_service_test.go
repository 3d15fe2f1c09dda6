package impl

import (
	"context"
	"testing"

	domainerrors "github.com/calvin-79/food-delivery-tracking/internal/domain/errors"
	"github.com/calvin-79/food-delivery-tracking/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewService_CreateThenGet(t *testing.T) {
	fx := createTestServices(t)
	ctx := context.Background()

	client := fx.seedClient(t, ownerIdentity)
	item := fx.seedItem(t, ownerIdentity, 10, "pizza")

	review := fx.seedReview(t, ownerIdentity, client.ID, item.ID)

	got, err := fx.reviews.GetReview(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, review, got)
}

func TestReviewService_CreateRejected(t *testing.T) {
	fx := createTestServices(t)
	ctx := context.Background()

	client := fx.seedClient(t, ownerIdentity)
	item := fx.seedItem(t, ownerIdentity, 10, "pizza")
	counter := fx.nextID(t)

	tests := []struct {
		name    string
		caller  string
		input   *usecase.ReviewInput
		wantErr error
	}{
		{
			name:    "rating out of range",
			caller:  ownerIdentity,
			input:   &usecase.ReviewInput{ClientID: client.ID, ItemID: item.ID, Rating: 6},
			wantErr: domainerrors.ErrInvalidPayload,
		},
		{
			name:    "unknown item",
			caller:  ownerIdentity,
			input:   &usecase.ReviewInput{ClientID: client.ID, ItemID: 404, Rating: 3},
			wantErr: domainerrors.ErrNotFound,
		},
		{
			name:    "unknown client",
			caller:  ownerIdentity,
			input:   &usecase.ReviewInput{ClientID: 404, ItemID: item.ID, Rating: 3},
			wantErr: domainerrors.ErrNotFound,
		},
		{
			name:    "caller does not own client",
			caller:  strangerIdentity,
			input:   &usecase.ReviewInput{ClientID: client.ID, ItemID: item.ID, Rating: 3},
			wantErr: domainerrors.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.reviews.CreateReview(ctx, tt.caller, tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, counter, fx.nextID(t))
		})
	}
}

func TestReviewService_ListReviews(t *testing.T) {
	fx := createTestServices(t)
	ctx := context.Background()

	_, err := fx.reviews.ListReviews(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	client := fx.seedClient(t, ownerIdentity)
	pizza := fx.seedItem(t, ownerIdentity, 10, "pizza")
	salad := fx.seedItem(t, ownerIdentity, 5, "salad")
	onPizza := fx.seedReview(t, ownerIdentity, client.ID, pizza.ID)
	fx.seedReview(t, ownerIdentity, client.ID, salad.ID)

	all, err := fx.reviews.ListReviews(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byItem, err := fx.reviews.ListReviewsByItem(ctx, pizza.ID)
	require.NoError(t, err)
	assert.Equal(t, onPizza, byItem[0])
	assert.Len(t, byItem, 1)

	_, err = fx.reviews.ListReviewsByItem(ctx, client.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.EqualError(t, err, "no reviews could be found for item_id: 0")
}

func TestReviewService_DeleteReview(t *testing.T) {
	fx := createTestServices(t)
	ctx := context.Background()

	client := fx.seedClient(t, ownerIdentity)
	item := fx.seedItem(t, ownerIdentity, 10, "pizza")
	review := fx.seedReview(t, ownerIdentity, client.ID, item.ID)

	_, err := fx.reviews.DeleteReview(ctx, strangerIdentity, review.ID)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	_, err = fx.reviews.GetReview(ctx, review.ID)
	require.NoError(t, err)

	removed, err := fx.reviews.DeleteReview(ctx, ownerIdentity, review.ID)
	require.NoError(t, err)
	assert.Equal(t, review, removed)

	_, err = fx.reviews.DeleteReview(ctx, ownerIdentity, review.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
