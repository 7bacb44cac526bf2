package auth

import (
	"log/slog"

	"whatsorder/config"
	"whatsorder/internal/domain/service"

	"github.com/pkg/errors"
)

// NewIdentityVerifier selects the verifier named by identity.provider.
func NewIdentityVerifier(cfg *config.Config, logger *slog.Logger) (service.IdentityVerifier, error) {
	idCfg := cfg.Identity
	if idCfg == nil {
		return nil, errors.New("identity configuration is missing")
	}
	logger = logger.With(slog.String("component", "identity"))

	switch idCfg.Provider {
	case config.IdentityProviderSupabase:
		if idCfg.ProjectURL == "" || idCfg.APIKey == "" {
			return nil, errors.New("project URL and API key are required for supabase identity provider")
		}
		logger.Info("Verifying credentials remotely", slog.String("project_url", idCfg.ProjectURL))

		return NewSupabaseVerifier(idCfg.ProjectURL, idCfg.APIKey, idCfg.Timeout, logger), nil

	case config.IdentityProviderJWT:
		logger.Info("Verifying credentials with the project JWT secret")

		return NewJWTVerifier(idCfg.JWTSecret, idCfg.Audience)

	case config.IdentityProviderGoogle:
		logger.Info("Verifying Google ID tokens", slog.String("audience", idCfg.Audience))

		return NewGoogleVerifier(idCfg.Audience)

	default:
		return nil, errors.Errorf("unknown identity provider: %s", idCfg.Provider)
	}
}
