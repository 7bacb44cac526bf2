package auth

import (
	"context"

	"whatsorder/config"
	"whatsorder/internal/domain/entity"
	"whatsorder/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

type validateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

type googleVerifier struct {
	audience string
	validate validateFunc
}

// NewGoogleVerifier checks Google-signed ID tokens issued for audience.
func NewGoogleVerifier(audience string) (service.IdentityVerifier, error) {
	if audience == "" {
		return nil, errors.New("audience is required for google identity provider")
	}

	return &googleVerifier{audience: audience, validate: idtoken.Validate}, nil
}

func (v *googleVerifier) Verify(ctx context.Context, token string) (*entity.Identity, error) {
	payload, err := v.validate(ctx, token, v.audience)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidCredential, err.Error())
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return nil, errors.Wrapf(service.ErrInvalidCredential, "invalid issuer: %s", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return nil, errors.Wrap(service.ErrInvalidCredential, "email not verified")
	}
	if payload.Subject == "" {
		return nil, errors.Wrap(service.ErrInvalidCredential, "token has no subject")
	}

	email, _ := payload.Claims["email"].(string)

	return &entity.Identity{
		Subject:  payload.Subject,
		Email:    email,
		Provider: config.IdentityProviderGoogle,
	}, nil
}
