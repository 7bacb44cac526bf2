package repository

import (
	"context"

	"whatsorder/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrProfileNotFound is returned when the user has no profile yet.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository persists per-owner preferences.
type ProfileRepository interface {
	FindProfile(ctx context.Context, userID string) (*entity.Profile, error)

	// CreateProfile inserts the profile; an existing row for the user is left untouched.
	CreateProfile(ctx context.Context, profile *entity.Profile) error

	// MarkOnboardingCompleted sets the onboarding flag, creating the profile if needed.
	MarkOnboardingCompleted(ctx context.Context, userID string) error
}
