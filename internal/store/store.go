// Package store 정렬 실행 기록을 KV 저장소(bbolt, BadgerDB, PebbleDB)에 남긴다.
//
// 키는 8바이트 big-endian ID라서 바이트 순서가 곧 ID 순서다. 값은 JSON.
package store

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

const keySize = 8

// 백엔드 이름
const (
	BackendNone   = "none"
	BackendBbolt  = "bbolt"
	BackendBadger = "badger"
	BackendPebble = "pebble"
)

// ErrUnknownBackend 지원하지 않는 백엔드 이름
var ErrUnknownBackend = errors.New("unknown store backend")

// Record 정렬 한 번의 실행 기록
type Record struct {
	ID         uint64        `json:"id"`
	StartedAt  time.Time     `json:"started_at"`
	Input      string        `json:"input"`
	Output     string        `json:"output"`
	Algorithm  string        `json:"algorithm"`
	Count      int           `json:"count"`
	Duration   time.Duration `json:"duration"`
	AllocBytes uint64        `json:"alloc_bytes"`
}

// Store 실행 기록 저장소
type Store interface {
	// Put ID가 0이면 새 ID를 할당해 rec.ID에 채운다
	Put(ctx context.Context, rec *Record) error
	// List 최신 순으로 최대 limit개. limit <= 0이면 전부
	List(ctx context.Context, limit int) ([]Record, error)
	Close() error
}

// Open backend 이름으로 저장소를 연다
func Open(backend, path string, logger *zap.Logger) (Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("backend", backend))

	switch backend {
	case BackendNone, "":
		return nopStore{}, nil
	case BackendBbolt:
		return openBbolt(path, logger)
	case BackendBadger:
		return openBadger(path, logger)
	case BackendPebble:
		return openPebble(path, logger)
	}
	return nil, errors.Wrapf(ErrUnknownBackend, "%q", backend)
}

func encodeKey(id uint64) []byte {
	key := make([]byte, keySize)
	binary.BigEndian.PutUint64(key, id)
	return key
}

func decodeKey(key []byte) (uint64, error) {
	if len(key) != keySize {
		return 0, errors.Newf("bad key length %d", len(key))
	}
	return binary.BigEndian.Uint64(key), nil
}

func encodeRecord(rec *Record) ([]byte, error) {
	val, err := json.Marshal(rec)
	return val, errors.Wrap(err, "encode record")
}

func decodeRecord(val []byte) (Record, error) {
	var rec Record
	err := json.Unmarshal(val, &rec)
	return rec, errors.Wrap(err, "decode record")
}

type nopStore struct{}

func (nopStore) Put(ctx context.Context, _ *Record) error { return ctx.Err() }

func (nopStore) List(ctx context.Context, _ int) ([]Record, error) { return nil, ctx.Err() }

func (nopStore) Close() error { return nil }

// kvLogger 저장소 라이브러리 로그를 zap으로 보낸다 (badger, pebble 공용)
type kvLogger struct {
	s *zap.SugaredLogger
}

func newKVLogger(logger *zap.Logger) kvLogger {
	return kvLogger{s: logger.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

func (l kvLogger) Errorf(format string, args ...interface{})   { l.s.Errorf(format, args...) }
func (l kvLogger) Warningf(format string, args ...interface{}) { l.s.Warnf(format, args...) }
func (l kvLogger) Infof(format string, args ...interface{})    { l.s.Debugf(format, args...) }
func (l kvLogger) Debugf(format string, args ...interface{})   { l.s.Debugf(format, args...) }
func (l kvLogger) Fatalf(format string, args ...interface{})   { l.s.Fatalf(format, args...) }
