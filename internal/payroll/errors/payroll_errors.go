package payrollerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrNegativeEarning = apperror.New(
		apperror.CodeInvalidInput,
		"salary component values cannot be negative",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"salary component values must be finite numbers",
		http.StatusBadRequest,
	)
	ErrMissingMonth = apperror.New(
		apperror.CodeInvalidInput,
		"month is required",
		http.StatusBadRequest,
	)
	ErrMissingEmployee = apperror.New(
		apperror.CodeInvalidInput,
		"employee is required",
		http.StatusBadRequest,
	)
	ErrAlreadyComputed = apperror.New(
		apperror.CodeInvalidState,
		"salary components are already computed",
		http.StatusConflict,
	)
	ErrCopyMismatch = apperror.New(
		apperror.CodeInternalError,
		"download copy does not match the original payslip",
		http.StatusInternalServerError,
	)
	ErrDownloadExpired = apperror.New(
		apperror.CodeSessionExpired,
		"Download link expired.",
		http.StatusGone,
	)
	ErrInvalidDownloadLink = apperror.New(
		apperror.CodeInvalidInput,
		"invalid download link",
		http.StatusBadRequest,
	)
	ErrInvalidFormat = apperror.New(
		apperror.CodeInvalidInput,
		"format must be text or pdf",
		http.StatusBadRequest,
	)
	ErrExportFailed = apperror.New(
		apperror.CodeIOError,
		"Error during payslip download.",
		http.StatusInternalServerError,
	)
	ErrSigningUnavailable = apperror.New(
		apperror.CodeMisconfigured,
		"download links are not configured",
		http.StatusServiceUnavailable,
	)
)
