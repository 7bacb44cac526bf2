package storage

import (
	"context"
	"log/slog"

	"whatsorder/config"
	"whatsorder/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStorage returns a nil storage when uploads are not configured.
func NewImageStorage(params Params) (service.ImageStorage, error) {
	cfg := params.Config.Storage
	logger := params.Logger.With(slog.String("component", "storage"))

	if cfg == nil || cfg.BucketURL == "" {
		logger.Info("Image uploads disabled, no bucket configured")

		return nil, nil
	}
	if cfg.PublicBaseURL == "" {
		return nil, errors.New("public base URL is required for image storage")
	}

	storage, err := NewBlobImageStorage(params.Ctx, cfg.BucketURL, cfg.PublicBaseURL, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("Image storage ready",
		slog.String("public_base_url", cfg.PublicBaseURL),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return storage.Close()
		},
	})

	return storage, nil
}
