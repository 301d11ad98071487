package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces engine cache entries inside a shared Redis instance.
const keyPrefix = "seogen:decision:"

// Redis is a cache backed by a shared Redis instance, for build farms where
// several workers want to reuse each other's canonical decisions. Entries
// carry a TTL instead of explicit FIFO eviction; Redis handles expiry.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a Redis-backed cache. A non-positive ttl stores entries
// without expiry.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

// Get returns the cached value for key.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("cache get %q: %w", key, err)
	}

	return value, true, nil
}

// Put stores a value with the configured TTL.
func (r *Redis) Put(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, keyPrefix+key, value, r.ttl).Err(); err != nil {
		return fmt.Errorf("cache put %q: %w", key, err)
	}

	return nil
}

// Evict removes a single key.
func (r *Redis) Evict(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("cache evict %q: %w", key, err)
	}

	return nil
}

// Len returns the number of engine cache entries currently stored.
func (r *Redis) Len(ctx context.Context) (int, error) {
	var (
		cursor uint64
		count  int
	)

	for {
		keys, next, err := r.client.Scan(ctx, cursor, keyPrefix+"*", 100).Result()
		if err != nil {
			return 0, fmt.Errorf("cache scan: %w", err)
		}

		count += len(keys)

		cursor = next
		if cursor == 0 {
			return count, nil
		}
	}
}
