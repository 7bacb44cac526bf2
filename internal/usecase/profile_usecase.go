package usecase

import (
	"context"

	"whatsorder/internal/domain/entity"
)

// ProfileUsecase manages per-owner preferences such as the onboarding flag.
type ProfileUsecase interface {
	// GetProfile returns the caller's profile, creating the default one on first access.
	GetProfile(ctx context.Context, userID string) (*entity.Profile, error)

	// CompleteOnboarding marks the first-run setup as done.
	CompleteOnboarding(ctx context.Context, userID string) (*entity.Profile, error)
}
