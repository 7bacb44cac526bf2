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

type serviceRepository struct {
	db *gorm.DB
}

// NewServiceRepository is the constructor for serviceRepository.
func NewServiceRepository(db *gorm.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

func (repo *serviceRepository) CreateService(ctx context.Context, service *entity.Service) error {
	serviceM := &model.ServiceModel{
		BusinessID:    service.BusinessID,
		Name:          service.Name,
		StartingPrice: service.StartingPrice,
	}

	if err := repo.db.WithContext(ctx).Create(serviceM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create service")
	}

	service.ID = serviceM.ID
	service.CreatedAt = serviceM.CreatedAt
	service.UpdatedAt = serviceM.UpdatedAt

	return nil
}

func (repo *serviceRepository) FindService(ctx context.Context, businessID, id int64) (*entity.Service, error) {
	var serviceM model.ServiceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", id, businessID).
		First(&serviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service")
	}

	return toServiceDomain(&serviceM), nil
}

func (repo *serviceRepository) ListServices(ctx context.Context, businessID int64) ([]*entity.Service, error) {
	var serviceModels []*model.ServiceModel

	if err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC, id DESC").
		Find(&serviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	services := make([]*entity.Service, 0, len(serviceModels))
	for _, serviceM := range serviceModels {
		services = append(services, toServiceDomain(serviceM))
	}

	return services, nil
}

func (repo *serviceRepository) CountServices(ctx context.Context, businessID int64) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Where("business_id = ?", businessID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count services")
	}

	return count, nil
}

func (repo *serviceRepository) UpdateService(ctx context.Context, service *entity.Service) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Where("id = ? AND business_id = ?", service.ID, service.BusinessID).
		Updates(map[string]any{
			"name":           service.Name,
			"starting_price": service.StartingPrice,
			"updated_at":     gorm.Expr("NOW()"),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	fresh, err := repo.FindService(ctx, service.BusinessID, service.ID)
	if err != nil {
		return err
	}
	*service = *fresh

	return nil
}

func (repo *serviceRepository) DeleteService(ctx context.Context, businessID, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND business_id = ?", id, businessID).
		Delete(&model.ServiceModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

func toServiceDomain(data *model.ServiceModel) *entity.Service {
	return &entity.Service{
		ID:            data.ID,
		BusinessID:    data.BusinessID,
		Name:          data.Name,
		StartingPrice: data.StartingPrice,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
