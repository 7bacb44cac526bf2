// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"whatsorder/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for business persistence.
var (
	// ErrBusinessNotFound is returned when no business matches the lookup.
	ErrBusinessNotFound = errors.New("business not found")
	// ErrBusinessAlreadyExists is returned when the owner already has a business.
	ErrBusinessAlreadyExists = errors.New("business already exists for owner")
	// ErrSlugTaken is returned when another business holds the slug.
	ErrSlugTaken = errors.New("slug already taken")
)

// BusinessRepository defines the interface for tenant persistence.
type BusinessRepository interface {
	// CreateBusiness persists a new business and fills its id and timestamps.
	// Owner and slug uniqueness are enforced by the store.
	CreateBusiness(ctx context.Context, business *entity.Business) error

	// FindBusinessByOwner retrieves the business owned by an identity subject.
	FindBusinessByOwner(ctx context.Context, ownerID string) (*entity.Business, error)

	// FindBusinessBySlug retrieves a business by its public slug.
	FindBusinessBySlug(ctx context.Context, slug string) (*entity.Business, error)

	// FindBusinessByID retrieves a business by id.
	FindBusinessByID(ctx context.Context, id int64) (*entity.Business, error)

	// UpdateBusiness saves the editable fields of an existing business.
	UpdateBusiness(ctx context.Context, business *entity.Business) error

	// LockBusiness takes a row lock on the business for the rest of the transaction.
	LockBusiness(ctx context.Context, id int64) error
}
