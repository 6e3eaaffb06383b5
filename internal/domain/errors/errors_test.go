package errors

import (
	"net/http"
	"testing"

	"familytree/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := errors.Wrap(ErrPersonNotFound.WithDetails("id ABC-240101-001"), "update person")

	assert.True(t, errors.Is(err, ErrPersonNotFound))
	assert.False(t, errors.Is(err, ErrInvariantViolation))

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "id ABC-240101-001", appErr.Details())
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(ErrIDCollision.WrapMessage("create")))
	assert.False(t, IsRetryable(ErrPersonNotFound))
	assert.False(t, IsRetryable(errors.New("plain")))
}

func TestStoreError(t *testing.T) {
	cause := errors.New("connection refused")
	err := errors.Wrap(NewStoreError(cause, "find person"), "load snapshot")

	assert.True(t, errors.Is(err, ErrStoreUnavailable))
	assert.True(t, errors.Is(err, cause))

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
	assert.Equal(t, "STORE_UNAVAILABLE", appErr.ErrorCode())
}
