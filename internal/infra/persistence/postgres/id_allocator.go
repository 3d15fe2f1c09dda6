package postgres

import (
	"context"
	"math"

	"github.com/calvin-79/food-delivery-tracking/internal/domain/repository"
	"github.com/calvin-79/food-delivery-tracking/internal/errors"
	"github.com/calvin-79/food-delivery-tracking/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const entityIDSequence = "entity_id"

// errIDOutOfRange is returned for ids the bigint id columns cannot hold.
var errIDOutOfRange = errors.New("id exceeds the postgres bigint range")

// gormIDAllocator keeps the shared counter in one row of the sequences table.
// The row is locked FOR UPDATE so concurrent transactions queue behind each other.
type gormIDAllocator struct {
	db *gorm.DB
}

func (a *gormIDAllocator) NextID(ctx context.Context) (uint64, error) {
	db := a.db.WithContext(ctx)

	seed := &model.SequenceModel{Name: entityIDSequence}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(seed).Error; err != nil {
		return 0, errors.Wrap(err, "seed id sequence")
	}

	var seq model.SequenceModel
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("name = ?", entityIDSequence).
		Take(&seq).Error
	if err != nil {
		return 0, errors.Wrap(err, "lock id sequence")
	}

	id, err := counterID(seq.Value)
	if err != nil {
		return 0, err
	}

	err = db.Model(&model.SequenceModel{}).
		Where("name = ?", entityIDSequence).
		Update("value", seq.Value+1).Error
	if err != nil {
		return 0, errors.Wrap(err, "advance id sequence")
	}

	return id, nil
}

// counterID converts the stored counter to the id it hands out. A negative
// value cannot come from NextID, so ids could no longer be guaranteed unique
// and it panics like the bolt counter does.
func counterID(value int64) (uint64, error) {
	if value < 0 {
		panic(errors.Wrapf(repository.ErrCounterCorrupted, "id sequence holds %d", value))
	}
	if value == math.MaxInt64 {
		return 0, errors.New("id space exhausted")
	}

	return uint64(value), nil
}

func checkStorableID(id uint64) error {
	if id > math.MaxInt64 {
		return errors.Wrapf(errIDOutOfRange, "id %d", id)
	}

	return nil
}

var _ repository.IDAllocator = (*gormIDAllocator)(nil)
