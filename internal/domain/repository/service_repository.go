package repository

import (
	"context"

	"whatsorder/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrServiceNotFound is returned when a service does not exist within the business.
var ErrServiceNotFound = errors.New("service not found")

// ServiceRepository defines persistence for a business's services.
type ServiceRepository interface {
	CreateService(ctx context.Context, service *entity.Service) error
	FindService(ctx context.Context, businessID, id int64) (*entity.Service, error)

	// ListServices returns the business's services, newest first.
	ListServices(ctx context.Context, businessID int64) ([]*entity.Service, error)
	CountServices(ctx context.Context, businessID int64) (int64, error)

	// UpdateService saves a service matched by id and business id.
	UpdateService(ctx context.Context, service *entity.Service) error

	// DeleteService removes a service matched by id and business id.
	DeleteService(ctx context.Context, businessID, id int64) error
}
