package storage

import (
	"context"
	"sync"
)

// MemoryKV keeps all documents in a map. Used in tests and as a
// throwaway backend when no durable store is configured.
type MemoryKV struct {
	mu   *sync.Mutex
	data map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{mu: &sync.Mutex{}, data: make(map[string]string)}
}

func (kv *MemoryKV) Get(ctx context.Context, key string) (string, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	value, ok := kv.data[key]
	if !ok {
		return "", ErrNotFound
	}

	return value, nil
}

func (kv *MemoryKV) Set(ctx context.Context, key, value string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.data[key] = value
	return nil
}

func (kv *MemoryKV) Remove(ctx context.Context, key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	delete(kv.data, key)
	return nil
}
