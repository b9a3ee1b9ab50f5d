package cache

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aivault-portal/internal/config"
	ports "aivault-portal/internal/core/ports/output"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, "test:"), mr
}

func stores(t *testing.T) map[string]ports.ResponseCache {
	t.Helper()
	lruStore, err := NewLRUStore(16)
	require.NoError(t, err)
	redisStore, _ := newRedisStore(t)
	return map[string]ports.ResponseCache{
		"memory": NewMemoryStore(),
		"lru":    lruStore,
		"redis":  redisStore,
	}
}

func TestStores_SetGetClear(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := s.Get(ctx, "http://api/business/1")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Set(ctx, "http://api/business/1", []byte(`{"name":"Acme"}`)))
			require.NoError(t, s.Set(ctx, "http://api/services/?business_id=1", []byte(`[]`)))

			body, ok, err := s.Get(ctx, "http://api/business/1")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.JSONEq(t, `{"name":"Acme"}`, string(body))

			n, err := s.Len(ctx)
			require.NoError(t, err)
			assert.Equal(t, 2, n)

			require.NoError(t, s.Clear(ctx))

			n, err = s.Len(ctx)
			require.NoError(t, err)
			assert.Equal(t, 0, n)
			_, ok, _ = s.Get(ctx, "http://api/business/1")
			assert.False(t, ok)
		})
	}
}

func TestMemoryStore_CopiesBody(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	body := []byte(`{"a":1}`)
	require.NoError(t, s.Set(ctx, "k", body))

	body[2] = 'b'

	got, _, _ := s.Get(ctx, "k")
	assert.Equal(t, `{"a":1}`, string(got))
}

func TestLRUStore_EvictsOldest(t *testing.T) {
	ctx := context.Background()
	s, err := NewLRUStore(2)
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, "a", []byte("1")))
	require.NoError(t, s.Set(ctx, "b", []byte("2")))
	require.NoError(t, s.Set(ctx, "c", []byte("3")))

	_, ok, _ := s.Get(ctx, "a")
	assert.False(t, ok)
	n, _ := s.Len(ctx)
	assert.Equal(t, 2, n)
}

func TestLRUStore_InvalidSize(t *testing.T) {
	_, err := NewLRUStore(0)
	assert.Error(t, err)
}

func TestRedisStore_ClearOnlyTouchesPrefix(t *testing.T) {
	ctx := context.Background()
	s, mr := newRedisStore(t)
	require.NoError(t, mr.Set("other:key", "keep"))
	for i := 0; i < 600; i++ {
		require.NoError(t, s.Set(ctx, fmt.Sprintf("http://api/business/%d", i), []byte("{}")))
	}

	require.NoError(t, s.Clear(ctx))

	n, err := s.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	v, err := mr.Get("other:key")
	require.NoError(t, err)
	assert.Equal(t, "keep", v)
}

func TestRedisStore_ConnectionErrorSurfaces(t *testing.T) {
	s, mr := newRedisStore(t)
	mr.Close()

	_, _, err := s.Get(context.Background(), "k")
	assert.Error(t, err)
}

func TestNew_SelectsBackend(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	mem, err := New(ctx, &config.CacheConfig{Backend: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, mem)

	bounded, err := New(ctx, &config.CacheConfig{Backend: "lru", LRUSize: 8})
	require.NoError(t, err)
	assert.IsType(t, &LRUStore{}, bounded)

	shared, err := New(ctx, &config.CacheConfig{Backend: "redis", Redis: config.RedisConfig{Addr: mr.Addr()}})
	require.NoError(t, err)
	assert.IsType(t, &RedisStore{}, shared)

	_, err = New(ctx, &config.CacheConfig{Backend: "memcached"})
	assert.Error(t, err)
}
