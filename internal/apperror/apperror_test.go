package apperror_test

import (
	"errors"
	"simaset-backend/internal/apperror"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestWrappedErrorsMatchKind verifies each constructor produces an error that
// errors.Is can match against its kind while keeping the detail message.
func TestWrappedErrorsMatchKind(t *testing.T) {
	err := apperror.Validationf("user_id wajib diisi")
	assert.ErrorIs(t, err, apperror.ErrValidation)
	assert.Contains(t, err.Error(), "user_id wajib diisi")

	err = apperror.NotFoundf("peminjaman %d tidak ditemukan", 42)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Contains(t, err.Error(), "42")

	err = apperror.Conflictf("status tidak valid")
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

// TestStoreWrapsCause verifies database errors are tagged as store errors
// without losing the original cause in the message.
func TestStoreWrapsCause(t *testing.T) {
	cause := errors.New("driver: bad connection")

	err := apperror.Store(cause)

	assert.ErrorIs(t, err, apperror.ErrStore)
	assert.Contains(t, err.Error(), "bad connection")
}

// TestStoreNilPassthrough verifies wrapping a nil error stays nil so call
// sites can wrap unconditionally.
func TestStoreNilPassthrough(t *testing.T) {
	assert.NoError(t, apperror.Store(nil))
}

// TestKindsAreDistinct guards against two kinds ever matching each other.
func TestKindsAreDistinct(t *testing.T) {
	assert.NotErrorIs(t, apperror.Validationf("x"), apperror.ErrNotFound)
	assert.NotErrorIs(t, apperror.NotFoundf("x"), apperror.ErrConflict)
	assert.NotErrorIs(t, apperror.Conflictf("x"), apperror.ErrStore)
}
