package service

import (
	"context"

	"whatsorder/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCacheMiss is returned when no snapshot is cached for a slug.
var ErrCacheMiss = errors.New("cache miss")

// CatalogCache stores public storefront snapshots keyed by slug.
type CatalogCache interface {
	GetStorefront(ctx context.Context, slug string) (*entity.Storefront, error)
	SetStorefront(ctx context.Context, slug string, storefront *entity.Storefront) error

	// Invalidate drops the snapshot for a slug after a catalog mutation.
	Invalidate(ctx context.Context, slug string) error

	Close() error
}
