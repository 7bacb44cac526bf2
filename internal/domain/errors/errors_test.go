package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrValidationFailed.WithDetails("slug must match ^[a-z0-9-]+$")

	assert.True(t, stderrors.Is(err, ErrValidationFailed))
	assert.False(t, stderrors.Is(err, ErrSlugTaken))
	assert.Equal(t, "slug must match ^[a-z0-9-]+$", err.Details())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "Invalid input: slug must match ^[a-z0-9-]+$", err.Error())
}

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	wrapped := ErrBusinessNotFound.WrapMessage("loading owner business")

	var appErr AppError
	assert.True(t, stderrors.As(wrapped, &appErr))
	assert.Equal(t, "BUSINESS_NOT_FOUND", appErr.ErrorCode())
	assert.True(t, stderrors.Is(wrapped, ErrBusinessNotFound))
}

func TestDatabaseExecuteError_Unwraps(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert order")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
}
