package cache

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/persistence"
)

const (
	customizationsPrefix = "storefront:customizations:"
	quotesPrefix         = "storefront:quotes:"
)

// ListingCache is a read-through cache for per-email listing responses.
// Every operation degrades to a miss when Redis is unavailable; a cache
// failure never fails the request.
type ListingCache struct {
	redis  *persistence.Redis
	ttl    time.Duration
	logger *zap.Logger
}

// NewListingCache builds a cache over the shared Redis client.
func NewListingCache(redis *persistence.Redis, ttl time.Duration, logger *zap.Logger) *ListingCache {
	return &ListingCache{redis: redis, ttl: ttl, logger: logger}
}

// GetCustomizations loads a cached customization listing into dest.
func (c *ListingCache) GetCustomizations(ctx context.Context, email string, dest any) bool {
	return c.get(ctx, customizationsPrefix+email, dest)
}

// SetCustomizations stores a customization listing.
func (c *ListingCache) SetCustomizations(ctx context.Context, email string, value any) {
	c.set(ctx, customizationsPrefix+email, value)
}

// InvalidateCustomizations drops the cached listing after a write.
func (c *ListingCache) InvalidateCustomizations(ctx context.Context, email string) {
	c.invalidate(ctx, customizationsPrefix+email)
}

// GetQuotes loads a cached quote listing into dest.
func (c *ListingCache) GetQuotes(ctx context.Context, email string, dest any) bool {
	return c.get(ctx, quotesPrefix+email, dest)
}

// SetQuotes stores a quote listing.
func (c *ListingCache) SetQuotes(ctx context.Context, email string, value any) {
	c.set(ctx, quotesPrefix+email, value)
}

// InvalidateQuotes drops the cached listing after a write.
func (c *ListingCache) InvalidateQuotes(ctx context.Context, email string) {
	c.invalidate(ctx, quotesPrefix+email)
}

func (c *ListingCache) get(ctx context.Context, key string, dest any) bool {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return false
	}
	payload, err := c.redis.Client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		c.logger.Warn("corrupt cache entry", zap.String("key", key), zap.Error(err))
		c.invalidate(ctx, key)
		return false
	}
	return true
}

func (c *ListingCache) set(ctx context.Context, key string, value any) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.redis.Client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *ListingCache) invalidate(ctx context.Context, key string) {
	if c == nil || c.redis == nil || c.redis.Client == nil {
		return
	}
	if err := c.redis.Client.Del(ctx, key).Err(); err != nil {
		c.logger.Warn("cache invalidate failed", zap.String("key", key), zap.Error(err))
	}
}
