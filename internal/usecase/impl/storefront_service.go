package impl

import (
	"context"
	"fmt"
	"log/slog"

	"whatsorder/config"
	ctxutil "whatsorder/internal/delivery/context"
	"whatsorder/internal/domain/entity"
	domainerrors "whatsorder/internal/domain/errors"
	"whatsorder/internal/domain/repository"
	"whatsorder/internal/domain/service"
	"whatsorder/internal/storefront"
	"whatsorder/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type storefrontService struct {
	businessRepo  repository.BusinessRepository
	categoryRepo  repository.CategoryRepository
	productRepo   repository.ProductRepository
	serviceRepo   repository.ServiceRepository
	orders        usecase.OrderUsecase
	cache         service.CatalogCache
	qrService     service.QRCodeService
	composer      *storefront.Composer
	publicBaseURL string
	logger        *slog.Logger
}

// StorefrontServiceParams holds dependencies for StorefrontService, injected by Fx.
type StorefrontServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	ServiceRepo  repository.ServiceRepository
	Orders       usecase.OrderUsecase
	Cache        service.CatalogCache
	QRService    service.QRCodeService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewStorefrontService is the constructor for storefrontService.
func NewStorefrontService(params StorefrontServiceParams) usecase.StorefrontUsecase {
	return &storefrontService{
		businessRepo: params.BusinessRepo,
		categoryRepo: params.CategoryRepo,
		productRepo:  params.ProductRepo,
		serviceRepo:  params.ServiceRepo,
		orders:       params.Orders,
		cache:        params.Cache,
		qrService:    params.QRService,
		composer: storefront.NewComposer(
			storefront.WithCurrencySymbol(params.Config.Storefront.CurrencySymbol),
			storefront.WithSignature(params.Config.Storefront.Signature),
		),
		publicBaseURL: params.Config.Storefront.PublicBaseURL,
		logger:        params.Logger,
	}
}

func (srv *storefrontService) log(ctx context.Context) *slog.Logger {
	return ctxutil.GetLoggerOrDefault(ctx, srv.logger)
}

// GetStorefront serves the snapshot cache-aside. Cache errors only cost a
// database read.
func (srv *storefrontService) GetStorefront(ctx context.Context, slug string) (*entity.Storefront, error) {
	if _, err := entity.ParseSlug(slug); err != nil {
		return nil, domainerrors.ErrBusinessNotFound
	}

	if srv.cache != nil {
		cached, err := srv.cache.GetStorefront(ctx, slug)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, service.ErrCacheMiss) {
			srv.log(ctx).Warn("Storefront cache read failed", slog.String("slug", slug), slog.Any("error", err))
		}
	}

	sf, err := srv.loadStorefront(ctx, slug)
	if err != nil {
		return nil, err
	}

	if srv.cache != nil {
		if err := srv.cache.SetStorefront(ctx, slug, sf); err != nil {
			srv.log(ctx).Warn("Storefront cache write failed", slog.String("slug", slug), slog.Any("error", err))
		}
	}

	return sf, nil
}

func (srv *storefrontService) loadStorefront(ctx context.Context, slug string) (*entity.Storefront, error) {
	business, err := srv.businessRepo.FindBusinessBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by slug")
	}

	products, err := srv.productRepo.ListProducts(ctx, business.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	services, err := srv.serviceRepo.ListServices(ctx, business.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	categories, err := srv.categoryRepo.ListCategories(ctx, business.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return &entity.Storefront{
		Business:   business.Public(),
		Products:   products,
		Services:   services,
		Categories: categories,
	}, nil
}

// GetStorefrontQR encodes the public page URL of an existing storefront.
func (srv *storefrontService) GetStorefrontQR(ctx context.Context, slug string) ([]byte, error) {
	sf, err := srv.GetStorefront(ctx, slug)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateLinkQR(srv.publicBaseURL + "/" + sf.Business.Slug)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate storefront QR code")
	}

	return png, nil
}

// Checkout replays the cart through a storefront session, so the message and
// link match what the storefront page would produce.
func (srv *storefrontService) Checkout(ctx context.Context, slug string, input *usecase.CheckoutInput) (*storefront.Submission, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("cart is required")
	}

	sf, err := srv.GetStorefront(ctx, slug)
	if err != nil {
		return nil, err
	}

	session := storefront.NewSession(sf, srv.composer, &orderLogAdapter{orders: srv.orders},
		storefront.WithLogger(srv.log(ctx)),
	)

	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("quantity for product %d must be positive", item.ProductID))
		}
		if _, err := session.SetQuantity(item.ProductID, session.Quantity(item.ProductID)+item.Quantity); err != nil {
			if errors.Is(err, storefront.ErrUnknownProduct) {
				return nil, domainerrors.ErrValidationFailed.WithDetails(
					fmt.Sprintf("product %d is not in this storefront", item.ProductID))
			}

			return nil, errors.Wrap(err, "failed to add item")
		}
	}

	if err := session.OpenCheckout(); err != nil {
		return nil, checkoutError(err)
	}

	submission, err := session.Submit(ctx, input.Customer)
	if err != nil {
		return nil, checkoutError(err)
	}

	srv.log(ctx).Info("Checkout composed",
		slog.Int64("business_id", sf.Business.ID),
		slog.Int("lines", len(submission.Lines)),
		slog.String("total", submission.Total.StringFixed(2)),
	)

	return submission, nil
}

func checkoutError(err error) error {
	switch {
	case errors.Is(err, storefront.ErrEmptyCart):
		return domainerrors.ErrValidationFailed.WithDetails("cart is empty")
	case errors.Is(err, storefront.ErrCustomerDetailsRequired):
		return domainerrors.ErrValidationFailed.WithDetails("customer name and phone are required")
	}

	return errors.Wrap(err, "failed to submit checkout")
}

// orderLogAdapter lets a storefront session log through the order use case.
type orderLogAdapter struct {
	orders usecase.OrderUsecase
}

func (a *orderLogAdapter) LogOrder(ctx context.Context, record *storefront.OrderLog) error {
	input := &usecase.LogOrderInput{
		BusinessID:   record.BusinessID,
		TotalPrice:   record.TotalPrice.InexactFloat64(),
		ItemsSummary: record.ItemsSummary,
	}
	if record.CustomerNote != "" {
		input.CustomerNote = &record.CustomerNote
	}

	_, err := a.orders.LogOrder(ctx, input)

	return err
}
