package context

import (
	"context"

	"whatsorder/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyIdentity is the key for the verified caller identity.
const KeyIdentity ContextKey = "identity"

// SetIdentity stores the verified identity on the echo context and its request context.
func SetIdentity(c echo.Context, identity *entity.Identity) {
	c.Set(string(KeyIdentity), identity)
	req := c.Request()
	c.SetRequest(req.WithContext(WithIdentity(req.Context(), identity)))
}

// GetIdentity returns the identity set by the auth middleware.
func GetIdentity(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(string(KeyIdentity)).(*entity.Identity)

	return identity, ok && identity != nil
}

func WithIdentity(ctx context.Context, identity *entity.Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, identity)
}

// IdentityFromContext extracts the identity from a request context.
func IdentityFromContext(ctx context.Context) (*entity.Identity, bool) {
	identity, ok := ctx.Value(KeyIdentity).(*entity.Identity)

	return identity, ok && identity != nil
}
