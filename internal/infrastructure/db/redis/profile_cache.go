package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/usermgmt/identity-service/internal/api/metrics"
	"github.com/usermgmt/identity-service/internal/core/domain"
)

// ProfileCache stores profile projections in Redis, keyed by email.
// Key format: profile:<email>. Entries have no TTL; mutations evict.
type ProfileCache struct {
	client *redis.Client
}

func NewProfileCache(client *redis.Client) *ProfileCache {
	return &ProfileCache{client: client}
}

// Get returns the cached projection, or (nil, nil) on a miss.
func (c *ProfileCache) Get(ctx context.Context, email string) (*domain.Profile, error) {
	raw, err := c.client.Get(ctx, c.key(email)).Bytes()
	if err == redis.Nil {
		metrics.CacheRequestsTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var p domain.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	metrics.CacheRequestsTotal.WithLabelValues("hit").Inc()
	return &p, nil
}

func (c *ProfileCache) Put(ctx context.Context, email string, profile *domain.Profile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, c.key(email), raw, 0).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (c *ProfileCache) Evict(ctx context.Context, email string) error {
	if err := c.client.Del(ctx, c.key(email)).Err(); err != nil {
		return fmt.Errorf("cache evict: %w", err)
	}
	return nil
}

func (c *ProfileCache) key(email string) string {
	return "profile:" + email
}
