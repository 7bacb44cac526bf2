package impl

import (
	"context"
	"log/slog"

	"whatsorder/config"
	ctxutil "whatsorder/internal/delivery/context"
	"whatsorder/internal/domain/entity"
	domainerrors "whatsorder/internal/domain/errors"
	"whatsorder/internal/domain/repository"
	"whatsorder/internal/domain/service"
	"whatsorder/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type productService struct {
	txManager    repository.TransactionManager
	businessRepo repository.BusinessRepository
	productRepo  repository.ProductRepository
	invalidator  storefrontInvalidator
	maxProducts  int
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	BusinessRepo repository.BusinessRepository
	ProductRepo  repository.ProductRepository
	Cache        service.CatalogCache
	Config       *config.Config
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:    params.TxManager,
		businessRepo: params.BusinessRepo,
		productRepo:  params.ProductRepo,
		invalidator:  storefrontInvalidator{cache: params.Cache, logger: params.Logger},
		maxProducts:  params.Config.Catalog.MaxProducts,
		logger:       params.Logger,
	}
}

func (srv *productService) ListProducts(ctx context.Context, ownerID string) ([]*entity.Product, error) {
	business, ok, err := findOwnerBusinessForList(ctx, srv.businessRepo, ownerID)
	if err != nil || !ok {
		return []*entity.Product{}, err
	}

	products, err := srv.productRepo.ListProducts(ctx, business.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// CreateProduct counts and inserts while holding the business row lock, so
// concurrent creators cannot overshoot the cap.
func (srv *productService) CreateProduct(ctx context.Context, ownerID string, input *usecase.ProductInput) (*entity.Product, error) {
	business, err := findOwnerBusiness(ctx, srv.businessRepo, ownerID)
	if err != nil {
		return nil, err
	}

	product, err := entity.NewProduct(business.ID, toProductFields(input))
	if err != nil {
		return nil, validationError(err)
	}

	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		if err := txRepoFactory.NewBusinessRepository().LockBusiness(ctx, business.ID); err != nil {
			return errors.Wrap(err, "failed to lock business")
		}

		if err := checkCategory(ctx, txRepoFactory.NewCategoryRepository(), business.ID, product.CategoryID); err != nil {
			return err
		}

		productRepo := txRepoFactory.NewProductRepository()
		count, err := productRepo.CountProducts(ctx, business.ID)
		if err != nil {
			return errors.Wrap(err, "failed to count products")
		}
		if count >= int64(srv.maxProducts) {
			return domainerrors.ErrProductLimitExceeded
		}

		return productRepo.CreateProduct(ctx, product)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrProductLimitExceeded) {
			ctxutil.GetLoggerOrDefault(ctx, srv.logger).Info("Product limit reached",
				slog.Int64("business_id", business.ID),
				slog.Int("limit", srv.maxProducts),
			)
		}

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.invalidator.invalidate(ctx, business.Slug)

	return product, nil
}

func (srv *productService) UpdateProduct(ctx context.Context, ownerID string, productID int64, input *usecase.ProductInput) (*entity.Product, error) {
	business, err := findOwnerBusiness(ctx, srv.businessRepo, ownerID)
	if err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindProduct(ctx, business.ID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if err := product.ApplyUpdate(toProductFields(input)); err != nil {
		return nil, validationError(err)
	}

	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		if err := checkCategory(ctx, txRepoFactory.NewCategoryRepository(), business.ID, product.CategoryID); err != nil {
			return err
		}

		return txRepoFactory.NewProductRepository().UpdateProduct(ctx, product)
	})
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.invalidator.invalidate(ctx, business.Slug)

	return product, nil
}

func (srv *productService) DeleteProduct(ctx context.Context, ownerID string, productID int64) error {
	business, err := findOwnerBusiness(ctx, srv.businessRepo, ownerID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrBusinessNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return err
	}

	if err := srv.productRepo.DeleteProduct(ctx, business.ID, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.invalidator.invalidate(ctx, business.Slug)

	return nil
}

// checkCategory rejects category ids that do not belong to the business.
func checkCategory(ctx context.Context, repo repository.CategoryRepository, businessID int64, categoryID *int64) error {
	if categoryID == nil {
		return nil
	}

	if _, err := repo.FindCategory(ctx, businessID, *categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrValidationFailed.WithDetails("categoryId does not belong to this business")
		}

		return errors.Wrap(err, "failed to find category")
	}

	return nil
}

func toProductFields(input *usecase.ProductInput) entity.ProductFields {
	if input == nil {
		return entity.ProductFields{}
	}

	return entity.ProductFields{
		Name:       input.Name,
		Price:      input.Price,
		CategoryID: input.CategoryID,
		ImageURL:   input.ImageURL,
	}
}
