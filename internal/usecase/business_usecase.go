// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"whatsorder/internal/domain/entity"
)

// BusinessInput carries owner-supplied business fields. Slug is ignored on update.
type BusinessInput struct {
	Name           string
	Slug           string
	WhatsAppNumber string
	Description    *string
	LogoURL        *string
}

// BusinessUsecase defines tenant management for the authenticated owner.
type BusinessUsecase interface {
	// CreateBusiness registers the caller's one and only business on the free plan.
	CreateBusiness(ctx context.Context, ownerID string, input *BusinessInput) (*entity.Business, error)

	// GetOwnBusiness returns the caller's business.
	GetOwnBusiness(ctx context.Context, ownerID string) (*entity.Business, error)

	// UpdateOwnBusiness replaces name, whatsapp number, description and logo.
	UpdateOwnBusiness(ctx context.Context, ownerID string, input *BusinessInput) (*entity.Business, error)
}
