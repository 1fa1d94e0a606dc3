package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/spec-kit/storefront-service/internal/cache"
	"github.com/spec-kit/storefront-service/internal/domain"
)

// Without a reachable Redis every read is a miss and writes are no-ops;
// callers fall through to the store.
func TestListingCacheDegradesWithoutRedis(t *testing.T) {
	listings := cache.NewListingCache(nil, time.Minute, zap.NewNop())
	ctx := context.Background()

	var customizations []domain.Customization
	assert.False(t, listings.GetCustomizations(ctx, "a@b.com", &customizations))

	listings.SetCustomizations(ctx, "a@b.com", []domain.Customization{{ID: "c1"}})
	assert.False(t, listings.GetCustomizations(ctx, "a@b.com", &customizations))

	listings.InvalidateCustomizations(ctx, "a@b.com")

	var quotes []domain.Quote
	assert.False(t, listings.GetQuotes(ctx, "a@b.com", &quotes))
	listings.SetQuotes(ctx, "a@b.com", []domain.Quote{{ID: "q1"}})
	listings.InvalidateQuotes(ctx, "a@b.com")
}
