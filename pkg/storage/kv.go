package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

// KV is the durable key-value store behind the feed state. Every value is a
// single JSON-serializable document; absence of a key is reported as
// ErrNotFound, never as an empty value.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
