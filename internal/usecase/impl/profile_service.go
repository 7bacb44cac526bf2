package impl

import (
	"context"
	"log/slog"

	ctxutil "whatsorder/internal/delivery/context"
	"whatsorder/internal/domain/entity"
	"whatsorder/internal/domain/repository"
	"whatsorder/internal/usecase"

	"github.com/pkg/errors"
)

type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(profileRepo repository.ProfileRepository, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (srv *profileService) GetProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindProfile(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	if err := srv.profileRepo.CreateProfile(ctx, &entity.Profile{UserID: userID}); err != nil {
		return nil, errors.Wrap(err, "failed to create profile")
	}
	ctxutil.GetLoggerOrDefault(ctx, srv.logger).Debug("Profile created", slog.String("user_id", userID))

	return srv.reload(ctx, userID)
}

func (srv *profileService) CompleteOnboarding(ctx context.Context, userID string) (*entity.Profile, error) {
	if err := srv.profileRepo.MarkOnboardingCompleted(ctx, userID); err != nil {
		return nil, errors.Wrap(err, "failed to complete onboarding")
	}

	return srv.reload(ctx, userID)
}

func (srv *profileService) reload(ctx context.Context, userID string) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindProfile(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile")
	}

	return profile, nil
}
