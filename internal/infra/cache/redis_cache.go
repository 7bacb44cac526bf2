package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"whatsorder/config"
	"whatsorder/internal/domain/entity"
	"whatsorder/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const storefrontKeyPrefix = "whatsorder:storefront:"

func storefrontKey(slug string) string {
	return storefrontKeyPrefix + slug
}

type redisCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// newRedisCatalogCache stores storefront snapshots as JSON strings with a TTL.
func newRedisCatalogCache(cfg *config.CacheConfig, logger *slog.Logger) *redisCatalogCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,

		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		MaxRetries:   cfg.MaxRetries,
	})

	return &redisCatalogCache{
		client: client,
		ttl:    cfg.TTL,
		logger: logger,
	}
}

func (c *redisCatalogCache) GetStorefront(ctx context.Context, slug string) (*entity.Storefront, error) {
	raw, err := c.client.Get(ctx, storefrontKey(slug)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, service.ErrCacheMiss
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get storefront %s", slug)
	}

	var storefront entity.Storefront
	if err := json.Unmarshal(raw, &storefront); err != nil {
		// A snapshot written by an older build is treated as absent.
		c.logger.Warn("Discarding undecodable storefront snapshot",
			slog.String("slug", slug),
			slog.Any("error", err),
		)

		return nil, service.ErrCacheMiss
	}

	return &storefront, nil
}

func (c *redisCatalogCache) SetStorefront(ctx context.Context, slug string, storefront *entity.Storefront) error {
	raw, err := json.Marshal(storefront)
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.Wrapf(c.client.Set(ctx, storefrontKey(slug), raw, c.ttl).Err(), "set storefront %s", slug)
}

func (c *redisCatalogCache) Invalidate(ctx context.Context, slug string) error {
	return errors.Wrapf(c.client.Del(ctx, storefrontKey(slug)).Err(), "invalidate storefront %s", slug)
}

func (c *redisCatalogCache) Ping(ctx context.Context) error {
	return errors.WithStack(c.client.Ping(ctx).Err())
}

func (c *redisCatalogCache) Close() error {
	return errors.WithStack(c.client.Close())
}
