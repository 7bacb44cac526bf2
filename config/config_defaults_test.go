package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsOptionalSections(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	require.NotNil(t, cfg.Persistence)
	require.NotNil(t, cfg.Identity)
	require.NotNil(t, cfg.Catalog)
	require.NotNil(t, cfg.Orders)
	require.NotNil(t, cfg.Storefront)
	require.NotNil(t, cfg.QRCode)
	require.NotNil(t, cfg.Metrics)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, DriverPostgres, cfg.Persistence.Driver)
	assert.Equal(t, IdentityProviderSupabase, cfg.Identity.Provider)
	assert.Equal(t, "sb-access-token", cfg.Identity.CookieName)
	assert.Equal(t, 50, cfg.Catalog.MaxProducts)
	assert.Equal(t, 20, cfg.Catalog.MaxServices)
	assert.Equal(t, "₦", cfg.Storefront.CurrencySymbol)
	assert.Equal(t, "Sent via WhatsOrder", cfg.Storefront.Signature)
	assert.False(t, cfg.Orders.VerifyBusiness)
	assert.Equal(t, "http://localhost:3000", cfg.Storefront.PublicBaseURL)
	assert.Nil(t, cfg.Cache)
	assert.Nil(t, cfg.Storage)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Catalog:    &CatalogConfig{MaxProducts: 5, MaxServices: 2},
		Orders:     &OrdersConfig{RateLimit: 3},
		Storefront: &StorefrontConfig{CurrencySymbol: "$", PublicBaseURL: "https://shop.example/"},
		Storage:    &StorageConfig{BucketURL: "mem://", PublicBaseURL: "https://cdn.example/"},
		Cache:      &CacheConfig{Provider: "redis"},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, 5, cfg.Catalog.MaxProducts)
	assert.Equal(t, 2, cfg.Catalog.MaxServices)
	assert.Equal(t, 4, cfg.Orders.Burst)
	assert.Equal(t, "$", cfg.Storefront.CurrencySymbol)
	assert.Equal(t, "https://shop.example", cfg.Storefront.PublicBaseURL)
	assert.Equal(t, "https://cdn.example", cfg.Storage.PublicBaseURL)
	assert.Equal(t, int64(defaultMaxUploadSize), cfg.Storage.MaxUploadSize)
	assert.Equal(t, defaultCacheTTL, cfg.Cache.TTL)
}
