package validationerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

// ErrValidation is the category every field failure wraps, shared with
// binding-level failures mapped by apperror.
var ErrValidation = apperror.ErrValidation

var (
	ErrEmployeeIDInvalid = apperror.Wrap(
		ErrValidation,
		apperror.CodeEmployeeIDInvalid,
		"Invalid Employee ID. Expected format: EMP-1234",
		http.StatusBadRequest,
	)
	ErrEmailInvalid = apperror.Wrap(
		ErrValidation,
		apperror.CodeEmailInvalid,
		"Invalid email format. Example: abc@gmail.com",
		http.StatusBadRequest,
	)
	ErrPhoneInvalid = apperror.Wrap(
		ErrValidation,
		apperror.CodePhoneInvalid,
		"Invalid phone number. Must be 10 digits starting from 6-9",
		http.StatusBadRequest,
	)
	ErrPasswordWeak = apperror.Wrap(
		ErrValidation,
		apperror.CodePasswordWeak,
		"Weak password. Must contain 8 or more characters, an uppercase letter, a lowercase letter, a number and a special symbol (@ # $ % !)",
		http.StatusBadRequest,
	)
	ErrUnknownKind = apperror.New(
		apperror.CodeInvalidInput,
		"unknown validation kind",
		http.StatusBadRequest,
	)
)
