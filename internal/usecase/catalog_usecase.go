package usecase

import (
	"context"

	"whatsorder/internal/domain/entity"
)

// ProductInput carries owner-supplied product fields.
type ProductInput struct {
	Name       string
	Price      float64
	CategoryID *int64
	ImageURL   *string
}

// OfferingInput carries owner-supplied service fields.
type OfferingInput struct {
	Name          string
	StartingPrice float64
}

// CategoryUsecase manages the caller's categories.
type CategoryUsecase interface {
	// ListCategories returns an empty list when the caller has no business.
	ListCategories(ctx context.Context, ownerID string) ([]*entity.Category, error)
	CreateCategory(ctx context.Context, ownerID, name string) (*entity.Category, error)

	// DeleteCategory is idempotent; products in the category become uncategorized.
	DeleteCategory(ctx context.Context, ownerID string, categoryID int64) error
}

// ProductUsecase manages the caller's products.
type ProductUsecase interface {
	ListProducts(ctx context.Context, ownerID string) ([]*entity.Product, error)

	// CreateProduct fails once the business holds the configured maximum.
	CreateProduct(ctx context.Context, ownerID string, input *ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, ownerID string, productID int64, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, ownerID string, productID int64) error
}

// OfferingUsecase manages the caller's services, the bookable counterpart of products.
type OfferingUsecase interface {
	ListServices(ctx context.Context, ownerID string) ([]*entity.Service, error)
	CreateService(ctx context.Context, ownerID string, input *OfferingInput) (*entity.Service, error)
	UpdateService(ctx context.Context, ownerID string, serviceID int64, input *OfferingInput) (*entity.Service, error)
	DeleteService(ctx context.Context, ownerID string, serviceID int64) error
}
