package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	platformredis "jyotish/internal/platform/redis"
)

// RedisStore backs the response cache with Redis so a fleet of instances
// shares one cache.
type RedisStore struct {
	client *platformredis.Client
}

// NewRedisStore wraps an already-connected client.
func NewRedisStore(client *platformredis.Client) *RedisStore {
	return &RedisStore{client: client}
}

const keyPrefix = "jyotish:resp:"

// Get returns the value for key if present.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

// Set stores value under key with the given TTL.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, keyPrefix+key, value, ttl).Err()
}
