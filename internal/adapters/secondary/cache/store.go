package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"aivault-portal/internal/config"
	ports "aivault-portal/internal/core/ports/output"
)

const (
	BackendMemory = "memory"
	BackendLRU    = "lru"
	BackendRedis  = "redis"
)

// New builds the response cache selected by configuration.
func New(ctx context.Context, cfg *config.CacheConfig) (ports.ResponseCache, error) {
	switch cfg.Backend {
	case "", BackendMemory:
		return NewMemoryStore(), nil
	case BackendLRU:
		return NewLRUStore(cfg.LRUSize)
	case BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("ping redis %s: %w", cfg.Redis.Addr, err)
		}
		log.WithField("addr", cfg.Redis.Addr).Info("redis response cache connected")
		return NewRedisStore(client, cfg.Redis.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
