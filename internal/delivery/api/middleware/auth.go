package middleware

import (
	"log/slog"
	"strings"

	"whatsorder/config"
	ctxutil "whatsorder/internal/delivery/context"
	domainerrors "whatsorder/internal/domain/errors"
	"whatsorder/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the caller through the identity provider on every request.
type AuthMiddleware struct {
	verifier   service.IdentityVerifier
	cookieName string
	logger     *slog.Logger
}

func NewAuthMiddleware(verifier service.IdentityVerifier, cfg *config.Config, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:   verifier,
		cookieName: cfg.Identity.CookieName,
		logger:     logger,
	}
}

// Authenticate rejects requests without a verifiable credential with 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := m.credential(c)
		if token == "" {
			return domainerrors.ErrUnauthorized
		}

		ctx := c.Request().Context()
		identity, err := m.verifier.Verify(ctx, token)
		if err != nil {
			logger := ctxutil.GetLoggerOrDefault(ctx, m.logger)
			if errors.Is(err, service.ErrInvalidCredential) {
				logger.Debug("Credential rejected", slog.Any("error", err))
			} else {
				logger.Error("Identity verification failed", slog.Any("error", err))
			}

			return domainerrors.ErrUnauthorized
		}

		ctxutil.SetIdentity(c, identity)

		return next(c)
	}
}

// credential prefers a Bearer Authorization header, matched case-insensitively,
// and falls back to the session cookie.
func (m *AuthMiddleware) credential(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) > len(bearerPrefix) && strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		if token := strings.TrimSpace(header[len(bearerPrefix):]); token != "" {
			return token
		}
	}

	if m.cookieName == "" {
		return ""
	}
	cookie, err := c.Cookie(m.cookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}
