package impl

import (
	"context"
	"log/slog"

	"whatsorder/internal/domain/entity"
	"whatsorder/internal/domain/repository"
	"whatsorder/internal/domain/service"
	"whatsorder/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type categoryService struct {
	txManager    repository.TransactionManager
	businessRepo repository.BusinessRepository
	categoryRepo repository.CategoryRepository
	invalidator  storefrontInvalidator
}

// CategoryServiceParams holds dependencies for CategoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	BusinessRepo repository.BusinessRepository
	CategoryRepo repository.CategoryRepository
	Cache        service.CatalogCache
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		txManager:    params.TxManager,
		businessRepo: params.BusinessRepo,
		categoryRepo: params.CategoryRepo,
		invalidator:  storefrontInvalidator{cache: params.Cache, logger: params.Logger},
	}
}

func (srv *categoryService) ListCategories(ctx context.Context, ownerID string) ([]*entity.Category, error) {
	business, ok, err := findOwnerBusinessForList(ctx, srv.businessRepo, ownerID)
	if err != nil || !ok {
		return []*entity.Category{}, err
	}

	categories, err := srv.categoryRepo.ListCategories(ctx, business.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *categoryService) CreateCategory(ctx context.Context, ownerID, name string) (*entity.Category, error) {
	business, err := findOwnerBusiness(ctx, srv.businessRepo, ownerID)
	if err != nil {
		return nil, err
	}

	category, err := entity.NewCategory(business.ID, name)
	if err != nil {
		return nil, validationError(err)
	}

	if err := srv.categoryRepo.CreateCategory(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.invalidator.invalidate(ctx, business.Slug)

	return category, nil
}

// DeleteCategory detaches the category's products and removes it in one
// transaction. Unknown ids and callers without a business succeed.
func (srv *categoryService) DeleteCategory(ctx context.Context, ownerID string, categoryID int64) error {
	business, ok, err := findOwnerBusinessForList(ctx, srv.businessRepo, ownerID)
	if err != nil || !ok {
		return err
	}

	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		if err := txRepoFactory.NewProductRepository().ClearCategory(ctx, business.ID, categoryID); err != nil {
			return errors.Wrap(err, "failed to detach products")
		}

		return txRepoFactory.NewCategoryRepository().DeleteCategory(ctx, business.ID, categoryID)
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete category")
	}

	srv.invalidator.invalidate(ctx, business.Slug)

	return nil
}
