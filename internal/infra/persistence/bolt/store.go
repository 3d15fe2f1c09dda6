package bolt

import (
	"context"
	"encoding/binary"
	"encoding/json"

	"github.com/calvin-79/food-delivery-tracking/internal/domain/repository"
	"github.com/calvin-79/food-delivery-tracking/internal/errors"

	bbolt "go.etcd.io/bbolt"
)

// boltStore implements repository.Store over one bucket of a transaction.
// Values are JSON documents; bolt memory is only valid inside the transaction,
// so every read decodes immediately.
type boltStore[T any] struct {
	tx     *bbolt.Tx
	bucket []byte
}

func newStore[T any](tx *bbolt.Tx, name []byte) repository.Store[T] {
	return &boltStore[T]{tx: tx, bucket: name}
}

func (s *boltStore[T]) Insert(_ context.Context, id uint64, record *T) error {
	b, err := bucket(s.tx, s.bucket)
	if err != nil {
		return err
	}

	data, err := json.Marshal(record)
	if err != nil {
		return errors.Wrapf(err, "encode %s record %d", s.bucket, id)
	}

	return errors.Wrapf(b.Put(idKey(id), data), "put %s record %d", s.bucket, id)
}

func (s *boltStore[T]) Get(_ context.Context, id uint64) (*T, error) {
	b, err := bucket(s.tx, s.bucket)
	if err != nil {
		return nil, err
	}

	data := b.Get(idKey(id))
	if data == nil {
		return nil, repository.ErrRecordNotFound
	}

	return s.decode(id, data)
}

func (s *boltStore[T]) Scan(_ context.Context) ([]*T, error) {
	b, err := bucket(s.tx, s.bucket)
	if err != nil {
		return nil, err
	}

	var records []*T
	c := b.Cursor()
	for k, v := c.First(); k != nil; k, v = c.Next() {
		if len(k) != 8 {
			return nil, errors.Errorf("%s bucket holds a %d byte key", s.bucket, len(k))
		}

		record, err := s.decode(binary.BigEndian.Uint64(k), v)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func (s *boltStore[T]) Remove(_ context.Context, id uint64) (*T, error) {
	b, err := bucket(s.tx, s.bucket)
	if err != nil {
		return nil, err
	}

	key := idKey(id)
	data := b.Get(key)
	if data == nil {
		return nil, repository.ErrRecordNotFound
	}

	record, err := s.decode(id, data)
	if err != nil {
		return nil, err
	}

	if err := b.Delete(key); err != nil {
		return nil, errors.Wrapf(err, "delete %s record %d", s.bucket, id)
	}

	return record, nil
}

func (s *boltStore[T]) decode(id uint64, data []byte) (*T, error) {
	record := new(T)
	if err := json.Unmarshal(data, record); err != nil {
		return nil, errors.Wrapf(err, "decode %s record %d", s.bucket, id)
	}

	return record, nil
}
