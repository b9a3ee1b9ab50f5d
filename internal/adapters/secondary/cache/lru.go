package cache

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	ports "aivault-portal/internal/core/ports/output"
)

// LRUStore bounds the number of cached responses. Clear semantics are the same as
// MemoryStore; only the least recently used entry is dropped when the bound is hit.
type LRUStore struct {
	entries *lru.Cache[string, []byte]
}

func NewLRUStore(size int) (*LRUStore, error) {
	c, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, fmt.Errorf("create lru cache: %w", err)
	}
	return &LRUStore{entries: c}, nil
}

var _ ports.ResponseCache = (*LRUStore)(nil)

func (s *LRUStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	body, ok := s.entries.Get(key)
	return body, ok, nil
}

func (s *LRUStore) Set(_ context.Context, key string, body []byte) error {
	cp := make([]byte, len(body))
	copy(cp, body)
	s.entries.Add(key, cp)
	return nil
}

func (s *LRUStore) Clear(_ context.Context) error {
	s.entries.Purge()
	return nil
}

func (s *LRUStore) Len(_ context.Context) (int, error) {
	return s.entries.Len(), nil
}
