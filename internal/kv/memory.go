// internal/kv/memory.go
package kv

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store used by tests and previews. It keeps
// the same single-writer contract as the SQLite store.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[Key][]byte
	closed  bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[Key][]byte)}
}

func (s *MemoryStore) Get(ctx context.Context, key Key) ([]byte, bool, error) {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, false, ErrClosed
	}
	value, ok := s.entries[key]
	if !ok {
		return nil, false, nil
	}
	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, true, nil
}

func (s *MemoryStore) Put(ctx context.Context, key Key, value []byte) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	copied := make([]byte, len(value))
	copy(copied, value)
	s.entries[key] = copied
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, key Key) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	delete(s.entries, key)
	return nil
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
