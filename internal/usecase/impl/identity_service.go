package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/calvin-79/food-delivery-tracking/internal/domain/entity"
	domainerrors "github.com/calvin-79/food-delivery-tracking/internal/domain/errors"
	"github.com/calvin-79/food-delivery-tracking/internal/domain/repository"
	"github.com/calvin-79/food-delivery-tracking/internal/domain/service"
	"github.com/calvin-79/food-delivery-tracking/internal/errors"
	"github.com/calvin-79/food-delivery-tracking/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// identityService implements the IdentityUsecase interface.
type identityService struct {
	txManager    repository.TransactionManager
	validator    service.PayloadValidator
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Validator    service.PayloadValidator
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		txManager:    params.TxManager,
		validator:    params.Validator,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *identityService) Register(ctx context.Context, input *usecase.CredentialsInput) (*usecase.AuthOutput, error) {
	if err := validatePayload(srv.validator, input); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Secret)
	if err != nil {
		loggerFor(ctx, srv.logger).Error("Failed to hash secret", slog.Any("error", err))

		return nil, domainerrors.ErrSecretHashFailed
	}

	principal := &entity.Principal{
		ID:         uuid.New(),
		Name:       input.Name,
		SecretHash: hash,
		CreatedAt:  time.Now().UTC(),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewPrincipalRepository().CreatePrincipal(ctx, principal)
	})
	if errors.Is(err, repository.ErrDuplicatePrincipal) {
		return nil, domainerrors.ErrPrincipalAlreadyExists.Newf("principal name %q is already taken", input.Name)
	}
	if err != nil {
		return nil, storageError(err, "failed to create principal")
	}

	loggerFor(ctx, srv.logger).Info("Principal registered", slog.String("principal_id", principal.Identity()))

	return srv.issue(principal, principal.Identity())
}

func (srv *identityService) Login(ctx context.Context, input *usecase.CredentialsInput) (*usecase.AuthOutput, error) {
	var principal *entity.Principal
	err := srv.txManager.Read(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		principal, err = repoFactory.NewPrincipalRepository().FindPrincipalByName(ctx, input.Name)

		return err
	})
	if errors.Is(err, repository.ErrPrincipalNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, storageError(err, "failed to find principal")
	}

	if !srv.hasher.Check(input.Secret, principal.SecretHash) {
		loggerFor(ctx, srv.logger).Warn("Secret mismatch on login", slog.String("principal_id", principal.Identity()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issue(principal, principal.Identity())
}

func (srv *identityService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.AuthOutput, error) {
	if err := validatePayload(srv.validator, input); err != nil {
		return nil, err
	}

	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		loggerFor(ctx, srv.logger).Debug("Refresh token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	return srv.issue(nil, claims.Subject)
}

func (srv *identityService) issue(principal *entity.Principal, identity string) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthOutput{
		Principal:    principal,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
