package bolt

import (
	"context"
	"encoding/binary"
	"math"

	"github.com/calvin-79/food-delivery-tracking/internal/domain/repository"
	"github.com/calvin-79/food-delivery-tracking/internal/errors"

	bbolt "go.etcd.io/bbolt"
)

// idAllocator keeps one 8-byte counter cell in the meta bucket. bbolt's own
// NextSequence starts at 1, ids here start at 0.
type idAllocator struct {
	tx *bbolt.Tx
}

func (a *idAllocator) NextID(_ context.Context) (uint64, error) {
	b, err := bucket(a.tx, bucketMeta)
	if err != nil {
		return 0, err
	}

	current := counterValue(b)
	if current == math.MaxUint64 {
		return 0, errors.New("id space exhausted")
	}

	if err := b.Put(keyIDCounter, idKey(current+1)); err != nil {
		return 0, errors.Wrap(err, "advance id counter")
	}

	return current, nil
}

// counterValue panics on a malformed cell: ids could no longer be guaranteed
// unique, so the process must not keep serving.
func counterValue(b *bbolt.Bucket) uint64 {
	data := b.Get(keyIDCounter)
	if data == nil {
		return 0
	}
	if len(data) != 8 {
		panic(errors.Wrapf(repository.ErrCounterCorrupted, "counter cell holds %d bytes", len(data)))
	}

	return binary.BigEndian.Uint64(data)
}
