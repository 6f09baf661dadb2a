package repositories

import (
	"context"
	"sync"
)

// MemoryStore keeps the collections in a plain map. It is the default
// backend and the substitute stores use in tests. The single mutex makes
// every Update a critical section, which covers the per-key atomicity the
// Store contract asks for.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (m *MemoryStore) Read(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryStore) Write(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.set(key, value)
	return nil
}

func (m *MemoryStore) Update(ctx context.Context, key string, fn func(current []byte) ([]byte, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next, err := fn(m.data[key])
	if err != nil {
		return err
	}
	m.set(key, next)
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

func (m *MemoryStore) set(key string, value []byte) {
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
}
