package store

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"go.etcd.io/bbolt"
	"go.uber.org/zap"
)

var runsBucket = []byte("runs")

type boltStore struct {
	db     *bbolt.DB
	logger *zap.Logger
}

func openBbolt(path string, logger *zap.Logger) (*boltStore, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open bbolt %s", path)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(runsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create bucket")
	}
	logger.Debug("store opened", zap.String("path", path))
	return &boltStore{db: db, logger: logger}, nil
}

func (s *boltStore) Put(ctx context.Context, rec *Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(runsBucket)
		if rec.ID == 0 {
			id, err := b.NextSequence()
			if err != nil {
				return errors.Wrap(err, "next sequence")
			}
			rec.ID = id
		}
		val, err := encodeRecord(rec)
		if err != nil {
			return err
		}
		return b.Put(encodeKey(rec.ID), val)
	})
}

func (s *boltStore) List(ctx context.Context, limit int) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var records []Record
	err := s.db.View(func(tx *bbolt.Tx) error {
		c := tx.Bucket(runsBucket).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(records) >= limit {
				break
			}
			rec, err := decodeRecord(v)
			if err != nil {
				return err
			}
			records = append(records, rec)
		}
		return nil
	})
	return records, err
}

func (s *boltStore) Close() error {
	return errors.Wrap(s.db.Close(), "close bbolt")
}
