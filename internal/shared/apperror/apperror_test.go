package apperror_test

import (
	"errors"
	"io/fs"
	"net/http"
	"testing"

	"go-payroll/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_WithCause(t *testing.T) {
	sentinel := apperror.New(apperror.CodeIOError, "Failed to write file", http.StatusInternalServerError)

	err := sentinel.WithCause(fs.ErrPermission)

	assert.ErrorIs(t, err, sentinel)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Equal(t, "Failed to write file: permission denied", err.Error())

	t.Run("nil cause returns the sentinel", func(t *testing.T) {
		assert.Same(t, sentinel, sentinel.WithCause(nil))
	})
}

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps its status and code", func(t *testing.T) {
		httpErr := apperror.ToHTTP(apperror.ErrUnauthorized)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
		assert.Equal(t, apperror.CodeUnauthorized, httpErr.Code)
	})

	t.Run("wrapped sentinel resolves to the outer error", func(t *testing.T) {
		inner := apperror.New(apperror.CodeInvalidInput, "bad", http.StatusBadRequest)
		outer := apperror.Wrap(inner, apperror.CodeEmailInvalid, "Invalid email", http.StatusBadRequest)

		httpErr := apperror.ToHTTP(outer)
		assert.Equal(t, apperror.CodeEmailInvalid, httpErr.Code)
		assert.Equal(t, "Invalid email", httpErr.Message)
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.NotContains(t, httpErr.Message, "boom")
	})
}

func TestMapValidationError(t *testing.T) {
	type request struct {
		EmpID string `json:"emp_id" validate:"required"`
	}

	v := validator.New()
	apperror.UseJSONFieldNames(v)

	err := apperror.MapValidationError(v.Struct(request{}))

	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
	assert.Equal(t, "Emp Id is required", appErr.Message)

	t.Run("field tags keep their code and the validation category", func(t *testing.T) {
		type phoneRequest struct {
			Phone string `json:"phone" validate:"phone_in"`
		}

		v := validator.New()
		apperror.UseJSONFieldNames(v)
		require.NoError(t, v.RegisterValidation("phone_in", func(validator.FieldLevel) bool { return false }))

		err := apperror.MapValidationError(v.Struct(phoneRequest{Phone: "1"}))

		var tagErr *apperror.AppError
		require.True(t, errors.As(err, &tagErr))
		assert.Equal(t, apperror.CodePhoneInvalid, tagErr.Code)
		assert.Equal(t, "Phone is invalid", tagErr.Message)
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("required fields share the validation category", func(t *testing.T) {
		assert.ErrorIs(t, err, apperror.ErrValidation)
	})

	t.Run("non validation error", func(t *testing.T) {
		err := apperror.MapValidationError(errors.New("eof"))
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, "Invalid input", appErr.Message)
	})
}
