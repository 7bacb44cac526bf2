package main

import (
	"context"
	"log/slog"
	"os"

	"whatsorder/config"
	"whatsorder/internal/delivery"
	"whatsorder/internal/delivery/api"
	"whatsorder/internal/delivery/api/middleware"
	"whatsorder/internal/delivery/api/router/handler"
	"whatsorder/internal/domain/service"
	"whatsorder/internal/infra/auth"
	"whatsorder/internal/infra/cache"
	logs "whatsorder/internal/infra/log"
	"whatsorder/internal/infra/metrics"
	"whatsorder/internal/infra/persistence"
	"whatsorder/internal/infra/pubsub"
	"whatsorder/internal/infra/qrcode"
	"whatsorder/internal/infra/storage"
	"whatsorder/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewIdentityVerifier,
			cache.NewCatalogCache,
			storage.NewImageStorage,
			newQRCodeService,
		),
		pubsub.Module,
	)
}

func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewBusinessService,
			impl.NewCategoryService,
			impl.NewProductService,
			impl.NewOfferingService,
			impl.NewOrderService,
			impl.NewProfileService,
			impl.NewStorefrontService,
			impl.NewUploadService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewBusinessHandler,
			handler.NewCategoryHandler,
			handler.NewProductHandler,
			handler.NewServiceHandler,
			handler.NewOrderHandler,
			handler.NewProfileHandler,
			handler.NewUploadHandler,
			handler.NewStorefrontHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
