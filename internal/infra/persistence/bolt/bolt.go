// Package bolt implements the persistence layer on an embedded bbolt file:
// one bucket per entity kind, keys are big-endian ids so cursor order is id order.
package bolt

import (
	"context"
	"encoding/binary"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/calvin-79/food-delivery-tracking/config"
	"github.com/calvin-79/food-delivery-tracking/internal/errors"

	bbolt "go.etcd.io/bbolt"
	"go.uber.org/fx"
)

var (
	bucketClients    = []byte("clients")
	bucketItems      = []byte("items")
	bucketOrders     = []byte("orders")
	bucketReviews    = []byte("reviews")
	bucketPrincipals = []byte("principals")
	bucketMeta       = []byte("meta")

	keyIDCounter = []byte("id_counter")
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bolt file and closes it when the app stops.
func New(params Params) (*bbolt.DB, error) {
	boltCfg := params.Config.Storage.Bolt

	db, err := Open(boltCfg.Path, boltCfg.Timeout)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Opened bolt store", slog.String("path", boltCfg.Path))

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing bolt store")

			return errors.WithStack(db.Close())
		},
	})

	return db, nil
}

// Open opens (or creates) the file at path and makes sure every bucket exists.
func Open(path string, timeout time.Duration) (*bbolt.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, errors.Wrapf(err, "create directory for %s", path)
		}
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: timeout})
	if err != nil {
		return nil, errors.Wrapf(err, "open bolt file %s", path)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketClients, bucketItems, bucketOrders, bucketReviews, bucketPrincipals, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return errors.Wrapf(err, "create bucket %s", name)
			}
		}

		return nil
	})
	if err != nil {
		_ = db.Close()

		return nil, err
	}

	return db, nil
}

func idKey(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)

	return key
}

func bucket(tx *bbolt.Tx, name []byte) (*bbolt.Bucket, error) {
	b := tx.Bucket(name)
	if b == nil {
		return nil, errors.Errorf("bucket %s does not exist", name)
	}

	return b, nil
}
