package employeeerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrMissingName = apperror.New(
		apperror.CodeInvalidInput,
		"Name is required",
		http.StatusBadRequest,
	)
	ErrMissingUsername = apperror.New(
		apperror.CodeInvalidInput,
		"Username is required",
		http.StatusBadRequest,
	)
	ErrPersistFailed = apperror.New(
		apperror.CodeIOError,
		"Error saving employee data",
		http.StatusInternalServerError,
	)
	ErrReadFailed = apperror.New(
		apperror.CodeIOError,
		"Error reading employee data",
		http.StatusInternalServerError,
	)
	ErrCorruptRecord = apperror.New(
		apperror.CodeIOError,
		"Employee data file contains a malformed record",
		http.StatusInternalServerError,
	)
)
