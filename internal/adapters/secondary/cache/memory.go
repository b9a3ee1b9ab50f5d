package cache

import (
	"context"
	"sync"

	ports "aivault-portal/internal/core/ports/output"
)

// MemoryStore is an unbounded map of URL to response body. Entries live until Clear.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string][]byte)}
}

var _ ports.ResponseCache = (*MemoryStore)(nil)

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	body, ok := s.entries[key]
	return body, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, body []byte) error {
	cp := make([]byte, len(body))
	copy(cp, body)

	s.mu.Lock()
	s.entries[key] = cp
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	s.entries = make(map[string][]byte)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Len(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries), nil
}
