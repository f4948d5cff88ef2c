package autherrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeAuthFailed,
		"Invalid username or password",
		http.StatusUnauthorized,
	)
	ErrLockedOut = apperror.New(
		apperror.CodeLockedOut,
		"Account temporarily locked due to failed login attempts",
		http.StatusLocked,
	)
	ErrSessionNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Session not found",
		http.StatusUnauthorized,
	)
	ErrSessionExpired = apperror.New(
		apperror.CodeSessionExpired,
		"Session expired. Please login again.",
		http.StatusUnauthorized,
	)
	ErrSessionStore = apperror.New(
		apperror.CodeServiceUnavailable,
		"Session store unavailable",
		http.StatusServiceUnavailable,
	)
	ErrUnknownRole = apperror.New(
		apperror.CodeInvalidRole,
		"Unknown role",
		http.StatusBadRequest,
	)
)
