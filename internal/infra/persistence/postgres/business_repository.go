package postgres

import (
	"context"

	"whatsorder/internal/domain/entity"
	domainerrors "whatsorder/internal/domain/errors"
	"whatsorder/internal/domain/repository"
	"whatsorder/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// businessRepository implements the repository.BusinessRepository interface.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

// CreateBusiness inserts the business. The unique indexes on user_id and slug
// decide concurrent races.
func (repo *businessRepository) CreateBusiness(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Create(businessM).Error; err != nil {
		if conflict := businessConflict(err); conflict != nil {
			return conflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	business.ID = businessM.ID
	business.CreatedAt = businessM.CreatedAt
	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

func (repo *businessRepository) FindBusinessByOwner(ctx context.Context, ownerID string) (*entity.Business, error) {
	return repo.findOne(ctx, "user_id = ?", ownerID)
}

func (repo *businessRepository) FindBusinessBySlug(ctx context.Context, slug string) (*entity.Business, error) {
	return repo.findOne(ctx, "slug = ?", slug)
}

func (repo *businessRepository) FindBusinessByID(ctx context.Context, id int64) (*entity.Business, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *businessRepository) findOne(ctx context.Context, query string, arg any) (*entity.Business, error) {
	var businessM model.BusinessModel

	if err := repo.db.WithContext(ctx).Where(query, arg).First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business")
	}

	return toBusinessDomain(&businessM), nil
}

// UpdateBusiness saves the editable columns. Slug, owner and plan are never written here.
func (repo *businessRepository) UpdateBusiness(ctx context.Context, business *entity.Business) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ?", business.ID).
		Updates(map[string]any{
			"name":            business.Name,
			"description":     business.Description,
			"logo_url":        business.LogoURL,
			"whatsapp_number": business.WhatsAppNumber,
			"updated_at":      gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update business")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return repo.reload(ctx, business)
}

func (repo *businessRepository) reload(ctx context.Context, business *entity.Business) error {
	fresh, err := repo.FindBusinessByID(ctx, business.ID)
	if err != nil {
		return err
	}
	*business = *fresh

	return nil
}

// LockBusiness issues SELECT ... FOR UPDATE on the business row.
func (repo *businessRepository) LockBusiness(ctx context.Context, id int64) error {
	var businessM model.BusinessModel

	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ?", id).
		First(&businessM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrBusinessNotFound
		}

		return errors.Wrap(err, "failed to lock business")
	}

	return nil
}

func toBusinessDomain(data *model.BusinessModel) *entity.Business {
	if data == nil {
		return nil
	}

	return &entity.Business{
		ID:             data.ID,
		OwnerID:        data.UserID,
		Name:           data.Name,
		Slug:           data.Slug,
		Description:    data.Description,
		LogoURL:        data.LogoURL,
		WhatsAppNumber: data.WhatsAppNumber,
		Plan:           entity.Plan(data.Plan),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromBusinessDomain(data *entity.Business) *model.BusinessModel {
	if data == nil {
		return nil
	}

	return &model.BusinessModel{
		ID:             data.ID,
		UserID:         data.OwnerID,
		Name:           data.Name,
		Slug:           data.Slug,
		Description:    data.Description,
		LogoURL:        data.LogoURL,
		WhatsAppNumber: data.WhatsAppNumber,
		Plan:           string(data.Plan),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
