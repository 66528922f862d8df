package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrCacheNotAvailable = errors.New("cache not available")
	ErrCacheNotFound     = errors.New("cache entry not found")
)

// DefaultTTL is the record cache lifetime used by repositories.
const DefaultTTL = 5 * time.Minute

// Helper provides common caching operations for repositories. A nil Redis
// client degrades to a no-op so the service runs without a cache.
type Helper struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewHelper creates a cache helper with the given key prefix.
func NewHelper(client *redis.Client, prefix string, ttl time.Duration) *Helper {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Helper{client: client, prefix: prefix, ttl: ttl}
}

func (h *Helper) key(k string) string {
	return fmt.Sprintf("%s%s", h.prefix, k)
}

// Get retrieves and unmarshals a cached value into dest.
func (h *Helper) Get(ctx context.Context, key string, dest any) error {
	if h == nil || h.client == nil {
		return ErrCacheNotAvailable
	}

	data, err := h.client.Get(ctx, h.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheNotFound
		}
		return fmt.Errorf("cache get error: %w", err)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("cache unmarshal error: %w", err)
	}
	return nil
}

// Set marshals and stores a value. Failures degrade gracefully.
func (h *Helper) Set(ctx context.Context, key string, value any) error {
	if h == nil || h.client == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal error: %w", err)
	}
	return h.client.Set(ctx, h.key(key), data, h.ttl).Err()
}

// Delete removes a cached value.
func (h *Helper) Delete(ctx context.Context, key string) error {
	if h == nil || h.client == nil {
		return nil
	}
	return h.client.Del(ctx, h.key(key)).Err()
}

// HealthCheck pings the cache backend.
func (h *Helper) HealthCheck(ctx context.Context) error {
	if h == nil || h.client == nil {
		return ErrCacheNotAvailable
	}
	return h.client.Ping(ctx).Err()
}
