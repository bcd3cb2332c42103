package errors

import (
	"net/http"
	"testing"

	"accounts/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestWithDetails_KeepsIdentity(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("email: is required")

	assert.True(t, errors.Is(detailed, ErrValidationFailed))
	assert.False(t, errors.Is(detailed, ErrUserNotFound))
	assert.Equal(t, "email: is required", detailed.Details())
	assert.Empty(t, ErrValidationFailed.Details(), "predefined value must stay untouched")
}

func TestCodeOf(t *testing.T) {
	assert.Empty(t, CodeOf(nil))
	assert.Equal(t, "USER_NOT_FOUND", CodeOf(errors.Wrap(ErrUserNotFound, "lookup")))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", CodeOf(NewDatabaseExecuteError(assert.AnError, "insert")))
	assert.Equal(t, "INTERNAL_ERROR", CodeOf(assert.AnError))
}

func TestIsUnauthenticated(t *testing.T) {
	assert.True(t, IsUnauthenticated(errors.Wrap(ErrUnauthenticated, "token is expired")))
	assert.True(t, IsUnauthenticated(ErrInvalidCredentials.WrapMessage("unknown email")))
	assert.False(t, IsUnauthenticated(ErrUserNotFound))
}

func TestDatabaseExecuteError(t *testing.T) {
	err := NewDatabaseExecuteError(assert.AnError, "failed to create user")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.True(t, errors.Is(err, assert.AnError))
	assert.Contains(t, err.Error(), "database execution failed")
}
