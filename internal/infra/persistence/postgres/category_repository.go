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

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) CreateCategory(ctx context.Context, category *entity.Category) error {
	categoryM := &model.CategoryModel{
		BusinessID: category.BusinessID,
		Name:       category.Name,
	}

	if err := repo.db.WithContext(ctx).Create(categoryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt

	return nil
}

func (repo *categoryRepository) FindCategory(ctx context.Context, businessID, id int64) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", id, businessID).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return toCategoryDomain(&categoryM), nil
}

func (repo *categoryRepository) ListCategories(ctx context.Context, businessID int64) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("name ASC, id ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

func (repo *categoryRepository) DeleteCategory(ctx context.Context, businessID, id int64) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", id, businessID).
		Delete(&model.CategoryModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete category")
	}

	return nil
}

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	return &entity.Category{
		ID:         data.ID,
		BusinessID: data.BusinessID,
		Name:       data.Name,
		CreatedAt:  data.CreatedAt,
	}
}
