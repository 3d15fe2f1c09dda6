package postgres

import (
	"context"
	"encoding/json"

	"github.com/calvin-79/food-delivery-tracking/internal/domain/repository"
	"github.com/calvin-79/food-delivery-tracking/internal/errors"
	"github.com/calvin-79/food-delivery-tracking/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormStore implements repository.Store over one entity table.
type gormStore[T any] struct {
	db    *gorm.DB
	table string
}

func newStore[T any](db *gorm.DB, table string) repository.Store[T] {
	return &gormStore[T]{db: db, table: table}
}

func (s *gormStore[T]) Insert(ctx context.Context, id uint64, record *T) error {
	if err := checkStorableID(id); err != nil {
		return err
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return errors.Wrapf(err, "encode %s record %d", s.table, id)
	}

	row := &model.RecordModel{ID: id, Payload: string(payload)}
	err = s.db.WithContext(ctx).Table(s.table).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(row).Error

	return errors.Wrapf(err, "upsert %s record %d", s.table, id)
}

func (s *gormStore[T]) Get(ctx context.Context, id uint64) (*T, error) {
	if checkStorableID(id) != nil {
		return nil, repository.ErrRecordNotFound
	}

	var row model.RecordModel
	err := s.db.WithContext(ctx).Table(s.table).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrRecordNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get %s record %d", s.table, id)
	}

	return s.decode(&row)
}

func (s *gormStore[T]) Scan(ctx context.Context) ([]*T, error) {
	var rows []model.RecordModel
	if err := s.db.WithContext(ctx).Table(s.table).Order("id").Find(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "scan %s", s.table)
	}

	records := make([]*T, 0, len(rows))
	for i := range rows {
		record, err := s.decode(&rows[i])
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func (s *gormStore[T]) Remove(ctx context.Context, id uint64) (*T, error) {
	record, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Table(s.table).Where("id = ?", id).Delete(&model.RecordModel{}).Error; err != nil {
		return nil, errors.Wrapf(err, "delete %s record %d", s.table, id)
	}

	return record, nil
}

func (s *gormStore[T]) decode(row *model.RecordModel) (*T, error) {
	record := new(T)
	if err := json.Unmarshal([]byte(row.Payload), record); err != nil {
		return nil, errors.Wrapf(err, "decode %s record %d", s.table, row.ID)
	}

	return record, nil
}
