package impl

import (
	"context"
	"testing"

	domainerrors "github.com/calvin-79/food-delivery-tracking/internal/domain/errors"
	"github.com/calvin-79/food-delivery-tracking/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityService_RegisterAndLogin(t *testing.T) {
	fx := createTestServices(t)
	ctx := context.Background()
	credentials := &usecase.CredentialsInput{Name: "alice", Secret: "s3cret-secret"}

	registered, err := fx.identity.Register(ctx, credentials)
	require.NoError(t, err)
	require.NotNil(t, registered.Principal)
	assert.Equal(t, "alice", registered.Principal.Name)
	assert.NotEqual(t, credentials.Secret, registered.Principal.SecretHash)
	assert.NotEmpty(t, registered.AccessToken)
	assert.NotEmpty(t, registered.RefreshToken)

	loggedIn, err := fx.identity.Login(ctx, credentials)
	require.NoError(t, err)
	assert.Equal(t, registered.Principal.ID, loggedIn.Principal.ID)

	_, err = fx.identity.Login(ctx, &usecase.CredentialsInput{Name: "alice", Secret: "wrong-secret"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = fx.identity.Login(ctx, &usecase.CredentialsInput{Name: "bob", Secret: "s3cret-secret"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestIdentityService_RegisterRejected(t *testing.T) {
	fx := createTestServices(t)
	ctx := context.Background()

	_, err := fx.identity.Register(ctx, &usecase.CredentialsInput{Name: "al", Secret: "s3cret-secret"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPayload)

	_, err = fx.identity.Register(ctx, &usecase.CredentialsInput{Name: "alice", Secret: "short"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPayload)

	_, err = fx.identity.Register(ctx, &usecase.CredentialsInput{Name: "alice", Secret: "s3cret-secret"})
	require.NoError(t, err)

	_, err = fx.identity.Register(ctx, &usecase.CredentialsInput{Name: "alice", Secret: "another-secret"})
	assert.ErrorIs(t, err, domainerrors.ErrPrincipalAlreadyExists)
}

func TestIdentityService_Refresh(t *testing.T) {
	fx := createTestServices(t)
	ctx := context.Background()

	registered, err := fx.identity.Register(ctx, &usecase.CredentialsInput{Name: "alice", Secret: "s3cret-secret"})
	require.NoError(t, err)

	refreshed, err := fx.identity.Refresh(ctx, &usecase.RefreshInput{RefreshToken: registered.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = fx.identity.Refresh(ctx, &usecase.RefreshInput{RefreshToken: registered.AccessToken})
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)

	_, err = fx.identity.Refresh(ctx, &usecase.RefreshInput{})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPayload)
}
