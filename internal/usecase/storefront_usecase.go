package usecase

import (
	"context"

	"whatsorder/internal/domain/entity"
	"whatsorder/internal/storefront"
)

// CheckoutItem selects a quantity of one product.
type CheckoutItem struct {
	ProductID int64
	Quantity  int
}

// CheckoutInput is a cart submitted to the server-side composer.
type CheckoutInput struct {
	Items    []CheckoutItem
	Customer storefront.Customer
}

// StorefrontUsecase serves the public, unauthenticated side of a business.
type StorefrontUsecase interface {
	// GetStorefront returns the public catalog snapshot for a slug.
	GetStorefront(ctx context.Context, slug string) (*entity.Storefront, error)

	// GetStorefrontQR renders a QR code linking to the public storefront page.
	GetStorefrontQR(ctx context.Context, slug string) ([]byte, error)

	// Checkout composes the WhatsApp order for a cart and logs it without
	// waiting for the log write.
	Checkout(ctx context.Context, slug string, input *CheckoutInput) (*storefront.Submission, error)
}
