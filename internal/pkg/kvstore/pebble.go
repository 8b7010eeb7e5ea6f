package kvstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/cockroachdb/pebble"
	"github.com/rs/zerolog"
)

// PebbleStore persists keys in an embedded pebble database on local disk.
// Operations after Close return ErrClosed.
type PebbleStore struct {
	mu     sync.RWMutex
	db     *pebble.DB
	ns     namespace
	logger zerolog.Logger
}

// NewPebbleStore opens (or creates) a pebble database at path.
func NewPebbleStore(path, ns string, logger zerolog.Logger) (*PebbleStore, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("Failed to open pebble store")
		return nil, fmt.Errorf("failed to open pebble store: %w", err)
	}
	logger.Info().Str("path", path).Msg("Pebble store opened")
	return &PebbleStore{db: db, ns: namespace(ns), logger: logger}, nil
}

// open holds the read lock until the returned release is called so Close
// waits for in-flight operations.
func (s *PebbleStore) open() (*pebble.DB, func(), error) {
	s.mu.RLock()
	if s.db == nil {
		s.mu.RUnlock()
		return nil, nil, ErrClosed
	}
	return s.db, s.mu.RUnlock, nil
}

func (s *PebbleStore) Get(_ context.Context, key string) ([]byte, error) {
	db, release, err := s.open()
	if err != nil {
		return nil, err
	}
	defer release()

	v, closer, err := db.Get([]byte(s.ns.key(key)))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("pebble get %s: %w", key, err)
	}
	defer closer.Close()
	return append([]byte(nil), v...), nil
}

func (s *PebbleStore) Set(_ context.Context, key string, value []byte) error {
	db, release, err := s.open()
	if err != nil {
		return err
	}
	defer release()

	if err := db.Set([]byte(s.ns.key(key)), value, pebble.Sync); err != nil {
		return fmt.Errorf("pebble set %s: %w", key, err)
	}
	return nil
}

func (s *PebbleStore) Delete(_ context.Context, key string) error {
	db, release, err := s.open()
	if err != nil {
		return err
	}
	defer release()

	if err := db.Delete([]byte(s.ns.key(key)), pebble.Sync); err != nil {
		return fmt.Errorf("pebble delete %s: %w", key, err)
	}
	return nil
}

func (s *PebbleStore) Keys(_ context.Context) ([]string, error) {
	db, release, err := s.open()
	if err != nil {
		return nil, err
	}
	defer release()

	iter, err := db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, fmt.Errorf("pebble iterator: %w", err)
	}
	defer iter.Close()

	prefix := []byte(s.ns.prefix())
	var keys []string
	for iter.SeekGE(prefix); iter.Valid(); iter.Next() {
		if !bytes.HasPrefix(iter.Key(), prefix) {
			break
		}
		if k, ok := s.ns.strip(string(iter.Key())); ok {
			keys = append(keys, k)
		}
	}
	return keys, iter.Error()
}

func (s *PebbleStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	s.logger.Info().Msg("Pebble store closed")
	return err
}
