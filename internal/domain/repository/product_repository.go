package repository

import (
	"context"

	"whatsorder/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrProductNotFound is returned when a product does not exist within the business.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines product persistence, always scoped by business.
type ProductRepository interface {
	// CreateProduct persists a new product.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProduct retrieves a product that belongs to the business.
	FindProduct(ctx context.Context, businessID, id int64) (*entity.Product, error)

	// ListProducts returns the business's products, newest first.
	ListProducts(ctx context.Context, businessID int64) ([]*entity.Product, error)

	// CountProducts returns how many products the business holds.
	CountProducts(ctx context.Context, businessID int64) (int64, error)

	// UpdateProduct saves a product matched by id and business id.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// DeleteProduct removes a product matched by id and business id.
	DeleteProduct(ctx context.Context, businessID, id int64) error

	// ClearCategory detaches every product of the business from a category.
	ClearCategory(ctx context.Context, businessID, categoryID int64) error
}
