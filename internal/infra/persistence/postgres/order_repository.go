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

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := &model.OrderModel{
		BusinessID:    order.BusinessID,
		CustomerNote:  order.CustomerNote,
		TotalPrice:    order.TotalPrice,
		ItemsSummary:  order.ItemsSummary,
		PaymentStatus: string(order.PaymentStatus),
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to log order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return nil
}

func (repo *orderRepository) ListOrders(ctx context.Context, businessID int64) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("created_at DESC, id DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, &entity.Order{
			ID:            orderM.ID,
			BusinessID:    orderM.BusinessID,
			CustomerNote:  orderM.CustomerNote,
			TotalPrice:    orderM.TotalPrice,
			ItemsSummary:  orderM.ItemsSummary,
			PaymentStatus: entity.PaymentStatus(orderM.PaymentStatus),
			CreatedAt:     orderM.CreatedAt,
		})
	}

	return orders, nil
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (repo *profileRepository) FindProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return &entity.Profile{
		UserID:              profileM.UserID,
		OnboardingCompleted: profileM.OnboardingCompleted,
		CreatedAt:           profileM.CreatedAt,
		UpdatedAt:           profileM.UpdatedAt,
	}, nil
}

func (repo *profileRepository) CreateProfile(ctx context.Context, profile *entity.Profile) error {
	profileM := &model.ProfileModel{
		UserID:              profile.UserID,
		OnboardingCompleted: profile.OnboardingCompleted,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(profileM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	return nil
}

func (repo *profileRepository) MarkOnboardingCompleted(ctx context.Context, userID string) error {
	profileM := &model.ProfileModel{
		UserID:              userID,
		OnboardingCompleted: true,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"onboarding_completed": true,
				"updated_at":           gorm.Expr("NOW()"),
			}),
		}).
		Create(profileM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to complete onboarding")
	}

	return nil
}
