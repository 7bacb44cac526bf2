package service

import (
	"context"

	"whatsorder/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrInvalidCredential is returned when the provider rejects a bearer credential.
var ErrInvalidCredential = errors.New("invalid credential")

// IdentityVerifier resolves a bearer credential to a verified identity.
// Implementations must contact or validate against the identity provider on
// every call; results are never cached.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (*entity.Identity, error)
}
