package cache

import (
	"context"
	"log/slog"

	"whatsorder/config"
	"whatsorder/internal/domain/constants"
	"whatsorder/internal/domain/entity"
	"whatsorder/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopCatalogCache always misses so reads fall through to the database.
type noopCatalogCache struct{}

func (noopCatalogCache) GetStorefront(context.Context, string) (*entity.Storefront, error) {
	return nil, service.ErrCacheMiss
}

func (noopCatalogCache) SetStorefront(context.Context, string, *entity.Storefront) error {
	return nil
}

func (noopCatalogCache) Invalidate(context.Context, string) error {
	return nil
}

func (noopCatalogCache) Close() error {
	return nil
}

type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewCatalogCache selects the cache backend from configuration.
func NewCatalogCache(params Params) (service.CatalogCache, error) {
	cfg := params.Config.Cache
	logger := params.Logger.With(slog.String("component", "cache"))

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Storefront cache disabled")

		return noopCatalogCache{}, nil
	}

	if cfg.Provider != constants.CacheProviderRedis {
		return nil, errors.Errorf("unknown cache provider: %s", cfg.Provider)
	}
	if cfg.Address == "" {
		return nil, errors.New("address is required for redis cache")
	}

	cache := newRedisCatalogCache(cfg, logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// An unreachable cache degrades to database reads.
			if err := cache.Ping(ctx); err != nil {
				logger.Warn("Redis not reachable at startup",
					slog.String("address", cfg.Address),
					slog.Any("error", err),
				)

				return nil
			}
			logger.Info("Storefront cache connected",
				slog.String("address", cfg.Address),
				slog.Duration("ttl", cfg.TTL),
			)

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return cache.Close()
		},
	})

	return cache, nil
}
