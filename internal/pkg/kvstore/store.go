// Package kvstore provides the key-value backends behind the persisted
// application state. Every backend scopes its keys under a namespace so that
// listing and clearing only ever touch this application's entries.
package kvstore

import (
	"context"
	"errors"
	"strings"
)

// ErrNotFound is returned by Get when the key is absent.
var ErrNotFound = errors.New("kvstore: key not found")

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("kvstore: store closed")

// Store is a flat key-value store with independent, idempotent per-key writes.
// Keys passed in and returned are un-namespaced.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context) ([]string, error)
	Close() error
}

// namespace turns app keys into backend keys and back.
type namespace string

func (n namespace) key(k string) string {
	if n == "" {
		return k
	}
	return string(n) + ":" + k
}

func (n namespace) prefix() string {
	if n == "" {
		return ""
	}
	return string(n) + ":"
}

func (n namespace) strip(k string) (string, bool) {
	p := n.prefix()
	if !strings.HasPrefix(k, p) {
		return "", false
	}
	return strings.TrimPrefix(k, p), true
}
