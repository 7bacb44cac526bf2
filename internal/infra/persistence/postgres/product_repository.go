package postgres

import (
	"context"

	"whatsorder/internal/domain/entity"
	domainerrors "whatsorder/internal/domain/errors"
	"whatsorder/internal/domain/repository"
	"whatsorder/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) FindProduct(ctx context.Context, businessID, id int64) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", id, businessID).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) ListProducts(ctx context.Context, businessID int64) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC, id DESC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

func (repo *productRepository) CountProducts(ctx context.Context, businessID int64) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("business_id = ?", businessID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return count, nil
}

func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND business_id = ?", product.ID, product.BusinessID).
		Updates(map[string]any{
			"name":        product.Name,
			"price":       product.Price,
			"category_id": product.CategoryID,
			"image_url":   product.ImageURL,
			"updated_at":  gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	fresh, err := repo.FindProduct(ctx, product.BusinessID, product.ID)
	if err != nil {
		return err
	}
	*product = *fresh

	return nil
}

func (repo *productRepository) DeleteProduct(ctx context.Context, businessID, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", id, businessID).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) ClearCategory(ctx context.Context, businessID, categoryID int64) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("business_id = ? AND category_id = ?", businessID, categoryID).
		Update("category_id", nil).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to detach products from category")
	}

	return nil
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:         data.ID,
		BusinessID: data.BusinessID,
		CategoryID: data.CategoryID,
		Name:       data.Name,
		Price:      data.Price,
		ImageURL:   data.ImageURL,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:         data.ID,
		BusinessID: data.BusinessID,
		CategoryID: data.CategoryID,
		Name:       data.Name,
		Price:      data.Price,
		ImageURL:   data.ImageURL,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
