package impl

import (
	"context"
	"log/slog"

	ctxutil "whatsorder/internal/delivery/context"
	"whatsorder/internal/domain/entity"
	domainerrors "whatsorder/internal/domain/errors"
	"whatsorder/internal/domain/repository"
	"whatsorder/internal/domain/service"
	"whatsorder/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type businessService struct {
	businessRepo repository.BusinessRepository
	invalidator  storefrontInvalidator
	logger       *slog.Logger
}

// BusinessServiceParams holds dependencies for BusinessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	BusinessRepo repository.BusinessRepository
	Cache        service.CatalogCache
	Logger       *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	return &businessService{
		businessRepo: params.BusinessRepo,
		invalidator:  storefrontInvalidator{cache: params.Cache, logger: params.Logger},
		logger:       params.Logger,
	}
}

func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return ctxutil.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBusiness registers the caller's business. The owner check here gives
// a clean error for the common case; the unique indexes decide races.
func (srv *businessService) CreateBusiness(ctx context.Context, ownerID string, input *usecase.BusinessInput) (*entity.Business, error) {
	business, err := entity.NewBusiness(ownerID, toBusinessFields(input))
	if err != nil {
		return nil, validationError(err)
	}

	_, err = srv.businessRepo.FindBusinessByOwner(ctx, ownerID)
	switch {
	case err == nil:
		return nil, domainerrors.ErrBusinessAlreadyExists
	case !errors.Is(err, repository.ErrBusinessNotFound):
		return nil, errors.Wrap(err, "failed to check existing business")
	}

	if err := srv.businessRepo.CreateBusiness(ctx, business); err != nil {
		switch {
		case errors.Is(err, repository.ErrBusinessAlreadyExists):
			return nil, domainerrors.ErrBusinessAlreadyExists
		case errors.Is(err, repository.ErrSlugTaken):
			return nil, domainerrors.ErrSlugTaken
		}

		return nil, errors.Wrap(err, "failed to create business")
	}

	srv.log(ctx).Info("Business created",
		slog.Int64("business_id", business.ID),
		slog.String("slug", business.Slug),
	)

	return business, nil
}

func (srv *businessService) GetOwnBusiness(ctx context.Context, ownerID string) (*entity.Business, error) {
	return findOwnerBusiness(ctx, srv.businessRepo, ownerID)
}

// UpdateOwnBusiness replaces the editable fields and drops the cached storefront.
func (srv *businessService) UpdateOwnBusiness(ctx context.Context, ownerID string, input *usecase.BusinessInput) (*entity.Business, error) {
	business, err := findOwnerBusiness(ctx, srv.businessRepo, ownerID)
	if err != nil {
		return nil, err
	}

	if err := business.ApplyUpdate(toBusinessFields(input)); err != nil {
		return nil, validationError(err)
	}

	if err := srv.businessRepo.UpdateBusiness(ctx, business); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to update business")
	}

	srv.invalidator.invalidate(ctx, business.Slug)

	return business, nil
}

func toBusinessFields(input *usecase.BusinessInput) entity.BusinessFields {
	if input == nil {
		return entity.BusinessFields{}
	}

	return entity.BusinessFields{
		Name:           input.Name,
		Slug:           input.Slug,
		WhatsAppNumber: input.WhatsAppNumber,
		Description:    input.Description,
		LogoURL:        input.LogoURL,
	}
}
