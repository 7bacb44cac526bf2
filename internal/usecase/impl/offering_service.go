package impl

import (
	"context"
	"log/slog"

	"whatsorder/config"
	"whatsorder/internal/domain/entity"
	domainerrors "whatsorder/internal/domain/errors"
	"whatsorder/internal/domain/repository"
	"whatsorder/internal/domain/service"
	"whatsorder/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type offeringService struct {
	txManager    repository.TransactionManager
	businessRepo repository.BusinessRepository
	serviceRepo  repository.ServiceRepository
	invalidator  storefrontInvalidator
	maxServices  int
}

// OfferingServiceParams holds dependencies for OfferingService, injected by Fx.
type OfferingServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	BusinessRepo repository.BusinessRepository
	ServiceRepo  repository.ServiceRepository
	Cache        service.CatalogCache
	Config       *config.Config
	Logger       *slog.Logger
}

// NewOfferingService is the constructor for offeringService.
func NewOfferingService(params OfferingServiceParams) usecase.OfferingUsecase {
	return &offeringService{
		txManager:    params.TxManager,
		businessRepo: params.BusinessRepo,
		serviceRepo:  params.ServiceRepo,
		invalidator:  storefrontInvalidator{cache: params.Cache, logger: params.Logger},
		maxServices:  params.Config.Catalog.MaxServices,
	}
}

func (srv *offeringService) ListServices(ctx context.Context, ownerID string) ([]*entity.Service, error) {
	business, ok, err := findOwnerBusinessForList(ctx, srv.businessRepo, ownerID)
	if err != nil || !ok {
		return []*entity.Service{}, err
	}

	services, err := srv.serviceRepo.ListServices(ctx, business.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	return services, nil
}

func (srv *offeringService) CreateService(ctx context.Context, ownerID string, input *usecase.OfferingInput) (*entity.Service, error) {
	business, err := findOwnerBusiness(ctx, srv.businessRepo, ownerID)
	if err != nil {
		return nil, err
	}

	offering, err := entity.NewService(business.ID, toServiceFields(input))
	if err != nil {
		return nil, validationError(err)
	}

	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		if err := txRepoFactory.NewBusinessRepository().LockBusiness(ctx, business.ID); err != nil {
			return errors.Wrap(err, "failed to lock business")
		}

		serviceRepo := txRepoFactory.NewServiceRepository()
		count, err := serviceRepo.CountServices(ctx, business.ID)
		if err != nil {
			return errors.Wrap(err, "failed to count services")
		}
		if count >= int64(srv.maxServices) {
			return domainerrors.ErrServiceLimitExceeded
		}

		return serviceRepo.CreateService(ctx, offering)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create service")
	}

	srv.invalidator.invalidate(ctx, business.Slug)

	return offering, nil
}

func (srv *offeringService) UpdateService(ctx context.Context, ownerID string, serviceID int64, input *usecase.OfferingInput) (*entity.Service, error) {
	business, err := findOwnerBusiness(ctx, srv.businessRepo, ownerID)
	if err != nil {
		return nil, err
	}

	offering, err := srv.serviceRepo.FindService(ctx, business.ID, serviceID)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, domainerrors.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service")
	}

	if err := offering.ApplyUpdate(toServiceFields(input)); err != nil {
		return nil, validationError(err)
	}

	if err := srv.serviceRepo.UpdateService(ctx, offering); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, domainerrors.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to update service")
	}

	srv.invalidator.invalidate(ctx, business.Slug)

	return offering, nil
}

func (srv *offeringService) DeleteService(ctx context.Context, ownerID string, serviceID int64) error {
	business, err := findOwnerBusiness(ctx, srv.businessRepo, ownerID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrBusinessNotFound) {
			return domainerrors.ErrServiceNotFound
		}

		return err
	}

	if err := srv.serviceRepo.DeleteService(ctx, business.ID, serviceID); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return domainerrors.ErrServiceNotFound
		}

		return errors.Wrap(err, "failed to delete service")
	}

	srv.invalidator.invalidate(ctx, business.Slug)

	return nil
}

func toServiceFields(input *usecase.OfferingInput) entity.ServiceFields {
	if input == nil {
		return entity.ServiceFields{}
	}

	return entity.ServiceFields{
		Name:          input.Name,
		StartingPrice: input.StartingPrice,
	}
}
