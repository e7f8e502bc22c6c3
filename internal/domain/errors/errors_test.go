package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKinds_AreDistinct(t *testing.T) {
	kinds := []*BaseError{
		ErrDuplicateEmail,
		ErrInvalidCredentials,
		ErrMissingCredential,
		ErrInvalidToken,
		ErrExpiredToken,
		ErrAccountNotFound,
		ErrForbidden,
	}

	seen := make(map[string]bool, len(kinds))
	for _, kind := range kinds {
		assert.False(t, seen[kind.ErrorCode()], "duplicate error code %s", kind.ErrorCode())
		seen[kind.ErrorCode()] = true

		for _, other := range kinds {
			if other == kind {
				continue
			}
			assert.False(t, errors.Is(kind, other), "%s must not match %s", kind.ErrorCode(), other.ErrorCode())
		}
	}
}

func TestWrapMessage_KeepsKind(t *testing.T) {
	err := ErrExpiredToken.WrapMessage("resolve session")
	err = errors.Wrap(err, "get profile")

	assert.True(t, errors.Is(err, ErrExpiredToken))
	assert.False(t, errors.Is(err, ErrInvalidToken))

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "EXPIRED_TOKEN", appErr.ErrorCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to create account")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "failed to create account", err.Details())
	assert.Contains(t, err.Error(), "connection reset")
	assert.True(t, errors.Is(err, cause))
}

func TestForbiddenIsNotAnAuthenticationFailure(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, ErrForbidden.HTTPCode())
	for _, authErr := range []*BaseError{ErrMissingCredential, ErrInvalidToken, ErrExpiredToken, ErrAccountNotFound} {
		assert.Equal(t, http.StatusUnauthorized, authErr.HTTPCode())
	}
}
