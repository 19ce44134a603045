package storage

import (
	"fmt"
	"log/slog"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

type kvdb interface {
	Get(key []byte, ro *opt.ReadOptions) ([]byte, error)
	Put(key, value []byte, wo *opt.WriteOptions) error
	Delete(key []byte, wo *opt.WriteOptions) error
	Has(key []byte, ro *opt.ReadOptions) (bool, error)
}

// KVDB is the local persistent key-value store backing the
// identity repository.
type KVDB struct {
	*leveldb.DB
}

func NewKVDB(path string) (KVDB, error) {
	const op = "KVDB"
	log := slog.With("op", op)

	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return KVDB{}, fmt.Errorf("%s: failed to open: %w", op, err)
	}
	log.Info("key-value store is available", "path", path)
	return KVDB{db}, nil
}

func (s KVDB) Close() {
	const op = "KVDB.Close"
	log := slog.With("op", op)

	log.Info("closing key-value store...")

	if err := s.DB.Close(); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("key-value store is closed")
}
