package postgres

import (
	"context"

	"github.com/calvin-79/food-delivery-tracking/internal/domain/entity"
	"github.com/calvin-79/food-delivery-tracking/internal/domain/repository"
	"github.com/calvin-79/food-delivery-tracking/internal/errors"
	"github.com/calvin-79/food-delivery-tracking/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type principalRepository struct {
	db *gorm.DB
}

// NewPrincipalRepository creates a principal repository bound to db (a pool or a transaction).
func NewPrincipalRepository(db *gorm.DB) repository.PrincipalRepository {
	return &principalRepository{db: db}
}

func (repo *principalRepository) CreatePrincipal(ctx context.Context, principal *entity.Principal) error {
	err := repo.db.WithContext(ctx).Create(fromPrincipalDomain(principal)).Error
	if isUniqueConstraintViolation(err) {
		return repository.ErrDuplicatePrincipal
	}

	return errors.Wrap(err, "create principal")
}

func (repo *principalRepository) FindPrincipalByName(ctx context.Context, name string) (*entity.Principal, error) {
	var data model.PrincipalModel
	err := repo.db.WithContext(ctx).Where("name = ?", name).Take(&data).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrPrincipalNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find principal")
	}

	return toPrincipalDomain(&data), nil
}

// --- Mapper Functions ---

func toPrincipalDomain(data *model.PrincipalModel) *entity.Principal {
	return &entity.Principal{
		ID:         data.ID,
		Name:       data.Name,
		SecretHash: data.SecretHash,
		CreatedAt:  data.CreatedAt,
	}
}

func fromPrincipalDomain(data *entity.Principal) *model.PrincipalModel {
	return &model.PrincipalModel{
		ID:         data.ID,
		Name:       data.Name,
		SecretHash: data.SecretHash,
		CreatedAt:  data.CreatedAt,
	}
}
