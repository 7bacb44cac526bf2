package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"whatsorder/config"
	"whatsorder/internal/domain/constants"
	"whatsorder/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, cfg *config.CacheConfig) Params {
	t.Helper()

	return Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{Cache: cfg},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestStorefrontKey(t *testing.T) {
	assert.Equal(t, "whatsorder:storefront:mama-cass-kitchen", storefrontKey("mama-cass-kitchen"))
}

func TestNoopCatalogCache_AlwaysMisses(t *testing.T) {
	ctx := context.Background()
	cache := noopCatalogCache{}

	require.NoError(t, cache.SetStorefront(ctx, "shop", nil))
	_, err := cache.GetStorefront(ctx, "shop")
	assert.ErrorIs(t, err, service.ErrCacheMiss)
	assert.NoError(t, cache.Invalidate(ctx, "shop"))
	assert.NoError(t, cache.Close())
}

func TestNewCatalogCache(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		cache, err := NewCatalogCache(newParams(t, nil))
		require.NoError(t, err)
		assert.IsType(t, noopCatalogCache{}, cache)
	})

	t.Run("redis", func(t *testing.T) {
		cache, err := NewCatalogCache(newParams(t, &config.CacheConfig{
			Provider: constants.CacheProviderRedis,
			Address:  "localhost:6379",
		}))
		require.NoError(t, err)
		assert.IsType(t, &redisCatalogCache{}, cache)
	})

	t.Run("redis without address", func(t *testing.T) {
		_, err := NewCatalogCache(newParams(t, &config.CacheConfig{Provider: constants.CacheProviderRedis}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "address is required")
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewCatalogCache(newParams(t, &config.CacheConfig{Provider: "memcached"}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown cache provider")
	})
}
