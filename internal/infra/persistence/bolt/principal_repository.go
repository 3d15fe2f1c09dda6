package bolt

import (
	"context"
	"encoding/json"
	"time"

	"github.com/calvin-79/food-delivery-tracking/internal/domain/entity"
	"github.com/calvin-79/food-delivery-tracking/internal/domain/repository"
	"github.com/calvin-79/food-delivery-tracking/internal/errors"

	"github.com/google/uuid"
	bbolt "go.etcd.io/bbolt"
)

// principalRecord is the stored form; entity.Principal hides the hash from JSON.
type principalRecord struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	SecretHash string    `json:"secret_hash"`
	CreatedAt  time.Time `json:"created_at"`
}

type principalRepository struct {
	tx *bbolt.Tx
}

func (repo *principalRepository) CreatePrincipal(_ context.Context, principal *entity.Principal) error {
	b, err := bucket(repo.tx, bucketPrincipals)
	if err != nil {
		return err
	}

	key := []byte(principal.Name)
	if b.Get(key) != nil {
		return repository.ErrDuplicatePrincipal
	}

	data, err := json.Marshal(fromPrincipalDomain(principal))
	if err != nil {
		return errors.Wrap(err, "encode principal")
	}

	return errors.Wrap(b.Put(key, data), "put principal")
}

func (repo *principalRepository) FindPrincipalByName(_ context.Context, name string) (*entity.Principal, error) {
	b, err := bucket(repo.tx, bucketPrincipals)
	if err != nil {
		return nil, err
	}

	data := b.Get([]byte(name))
	if data == nil {
		return nil, repository.ErrPrincipalNotFound
	}

	var record principalRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.Wrap(err, "decode principal")
	}

	return toPrincipalDomain(&record), nil
}

// --- Mapper Functions ---

func toPrincipalDomain(data *principalRecord) *entity.Principal {
	return &entity.Principal{
		ID:         data.ID,
		Name:       data.Name,
		SecretHash: data.SecretHash,
		CreatedAt:  data.CreatedAt,
	}
}

func fromPrincipalDomain(data *entity.Principal) *principalRecord {
	return &principalRecord{
		ID:         data.ID,
		Name:       data.Name,
		SecretHash: data.SecretHash,
		CreatedAt:  data.CreatedAt,
	}
}
