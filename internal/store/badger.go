package store

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/badger/v3"
	"go.uber.org/zap"
)

type badgerStore struct {
	db     *badger.DB
	logger *zap.Logger

	mu     sync.Mutex // ID 할당 직렬화
	lastID uint64
}

func openBadger(dir string, logger *zap.Logger) (*badgerStore, error) {
	opts := badger.DefaultOptions(dir).WithLogger(newKVLogger(logger))
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open badger %s", dir)
	}

	s := &badgerStore{db: db, logger: logger}
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Reverse: true})
		defer it.Close()
		it.Rewind()
		if !it.Valid() {
			return nil
		}
		id, err := decodeKey(it.Item().Key())
		s.lastID = id
		return err
	})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "load last id")
	}
	logger.Debug("store opened", zap.String("path", dir), zap.Uint64("last_id", s.lastID))
	return s, nil
}

func (s *badgerStore) Put(ctx context.Context, rec *Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	id := rec.ID
	if id == 0 {
		id = s.lastID + 1
	}
	stored := *rec
	stored.ID = id
	val, err := encodeRecord(&stored)
	if err != nil {
		return err
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(encodeKey(id), val)
	})
	if err != nil {
		return errors.Wrap(err, "badger put")
	}

	rec.ID = id
	if id > s.lastID {
		s.lastID = id
	}
	return nil
}

func (s *badgerStore) List(ctx context.Context, limit int) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var records []Record
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if limit > 0 && len(records) >= limit {
				break
			}
			val, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			rec, err := decodeRecord(val)
			if err != nil {
				return err
			}
			records = append(records, rec)
		}
		return nil
	})
	return records, errors.Wrap(err, "badger list")
}

func (s *badgerStore) Close() error {
	return errors.Wrap(s.db.Close(), "close badger")
}
