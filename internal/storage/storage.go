// Package storage persists the application's key-value records. Every record
// (the complaint collection, the theme preference) is a single serialized
// value under one key, so the backends only need Get and Set.
package storage

import (
	"context"
	"sync"
)

// KeyValue is the minimal contract a backend must satisfy. Get reports
// found=false with a nil error when the key has never been written.
type KeyValue interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

// MemoryKV keeps values in process memory. It is the default backend and the
// one used by tests.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryKV creates an empty in-memory backend.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
