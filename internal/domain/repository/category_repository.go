package repository

import (
	"context"

	"whatsorder/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCategoryNotFound is returned when a category does not exist within the business.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines category persistence, always scoped by business.
type CategoryRepository interface {
	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, category *entity.Category) error

	// FindCategory retrieves a category that belongs to the business.
	FindCategory(ctx context.Context, businessID, id int64) (*entity.Category, error)

	// ListCategories returns the business's categories ordered by name.
	ListCategories(ctx context.Context, businessID int64) ([]*entity.Category, error)

	// DeleteCategory removes the category if it exists; a miss is not an error.
	DeleteCategory(ctx context.Context, businessID, id int64) error
}
