package store

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"go.uber.org/zap"
)

type pebbleStore struct {
	db     *pebble.DB
	logger *zap.Logger

	mu     sync.Mutex // ID 할당 직렬화
	lastID uint64
}

func openPebble(dir string, logger *zap.Logger) (*pebbleStore, error) {
	db, err := pebble.Open(dir, &pebble.Options{Logger: newKVLogger(logger)})
	if err != nil {
		return nil, errors.Wrapf(err, "open pebble %s", dir)
	}

	s := &pebbleStore{db: db, logger: logger}
	iter, err := db.NewIter(&pebble.IterOptions{})
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "pebble iter")
	}
	if iter.Last() {
		s.lastID, err = decodeKey(iter.Key())
	}
	if cerr := iter.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "load last id")
	}
	logger.Debug("store opened", zap.String("path", dir), zap.Uint64("last_id", s.lastID))
	return s, nil
}

func (s *pebbleStore) Put(ctx context.Context, rec *Record) error {
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
	if err := s.db.Set(encodeKey(id), val, pebble.Sync); err != nil {
		return errors.Wrap(err, "pebble put")
	}

	rec.ID = id
	if id > s.lastID {
		s.lastID = id
	}
	return nil
}

func (s *pebbleStore) List(ctx context.Context, limit int) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	iter, err := s.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "pebble iter")
	}

	var records []Record
	for valid := iter.Last(); valid; valid = iter.Prev() {
		if limit > 0 && len(records) >= limit {
			break
		}
		// Value()는 다음 이동 전까지만 유효하지만 decodeRecord가 바로 복사한다
		rec, err := decodeRecord(iter.Value())
		if err != nil {
			iter.Close()
			return nil, err
		}
		records = append(records, rec)
	}
	return records, errors.Wrap(iter.Close(), "pebble list")
}

func (s *pebbleStore) Close() error {
	return errors.Wrap(s.db.Close(), "close pebble")
}
