package handler

import (
	"strconv"

	ctxutil "whatsorder/internal/delivery/context"
	domainerrors "whatsorder/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ownerID returns the verified subject set by the auth middleware.
func ownerID(c echo.Context) (string, error) {
	identity, ok := ctxutil.GetIdentity(c)
	if !ok || identity.Subject == "" {
		return "", domainerrors.ErrUnauthorized
	}

	return identity.Subject, nil
}

// bindAndValidate decodes the JSON body then checks its struct tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			if msg, ok := httpErr.Message.(string); ok {
				return domainerrors.ErrInvalidInput.WithDetails(msg)
			}
		}

		return domainerrors.ErrInvalidInput
	}

	return errors.WithStack(c.Validate(req))
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrInvalidID.WithDetails(name + " must be a positive integer")
	}

	return id, nil
}
