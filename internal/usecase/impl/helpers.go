// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	ctxutil "whatsorder/internal/delivery/context"
	"whatsorder/internal/domain/entity"
	domainerrors "whatsorder/internal/domain/errors"
	"whatsorder/internal/domain/repository"
	"whatsorder/internal/domain/service"

	"github.com/pkg/errors"
)

// validationError converts a domain parse failure into VALIDATION_FAILED.
func validationError(err error) error {
	var fieldErr *entity.FieldError
	if errors.As(err, &fieldErr) {
		return domainerrors.ErrValidationFailed.WithDetails(fieldErr.Error())
	}

	return err
}

// findOwnerBusiness resolves the caller's business or returns BUSINESS_NOT_FOUND.
func findOwnerBusiness(ctx context.Context, repo repository.BusinessRepository, ownerID string) (*entity.Business, error) {
	business, err := repo.FindBusinessByOwner(ctx, ownerID)
	if errors.Is(err, repository.ErrBusinessNotFound) {
		return nil, domainerrors.ErrBusinessNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find business by owner")
	}

	return business, nil
}

// findOwnerBusinessForList resolves the caller's business; ok is false when
// the caller has none, which list operations report as an empty result.
func findOwnerBusinessForList(ctx context.Context, repo repository.BusinessRepository, ownerID string) (*entity.Business, bool, error) {
	business, err := findOwnerBusiness(ctx, repo, ownerID)
	if errors.Is(err, domainerrors.ErrBusinessNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return business, true, nil
}

// storefrontInvalidator drops the cached storefront of a business after a catalog write.
type storefrontInvalidator struct {
	cache  service.CatalogCache
	logger *slog.Logger
}

func (inv storefrontInvalidator) invalidate(ctx context.Context, slug string) {
	if inv.cache == nil {
		return
	}

	if err := inv.cache.Invalidate(ctx, slug); err != nil {
		ctxutil.GetLoggerOrDefault(ctx, inv.logger).Warn("Failed to invalidate storefront cache",
			slog.String("slug", slug),
			slog.Any("error", err),
		)
	}
}
