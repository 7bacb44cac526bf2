package auth

import (
	"context"

	"whatsorder/config"
	"whatsorder/internal/domain/entity"
	"whatsorder/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// accessClaims are the claims carried by provider-issued access tokens.
type accessClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

type jwtVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTVerifier validates HS256 access tokens locally with the project secret.
func NewJWTVerifier(secret, audience string) (service.IdentityVerifier, error) {
	if secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if audience != "" {
		opts = append(opts, jwt.WithAudience(audience))
	}

	return &jwtVerifier{
		secret: []byte(secret),
		parser: jwt.NewParser(opts...),
	}, nil
}

func (v *jwtVerifier) Verify(_ context.Context, token string) (*entity.Identity, error) {
	var claims accessClaims
	_, err := v.parser.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidCredential, err.Error())
	}
	if claims.Subject == "" {
		return nil, errors.Wrap(service.ErrInvalidCredential, "token has no subject")
	}

	return &entity.Identity{
		Subject:  claims.Subject,
		Email:    claims.Email,
		Provider: config.IdentityProviderJWT,
	}, nil
}
