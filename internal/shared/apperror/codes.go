package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeConflict     = "CONFLICT"
	CodeInvalidState = "INVALID_STATE"
	CodeTooMany      = "TOO_MANY_REQUESTS"

	// Field validation
	CodeEmployeeIDInvalid = "EMPLOYEE_ID_INVALID"
	CodeEmailInvalid      = "EMAIL_INVALID"
	CodePhoneInvalid      = "PHONE_INVALID"
	CodePasswordWeak      = "PASSWORD_WEAK"

	// Authentication
	CodeAuthFailed     = "AUTH_FAILED"
	CodeLockedOut      = "LOCKED_OUT"
	CodeSessionExpired = "SESSION_EXPIRED"

	// Dashboard
	CodeInvalidRole = "INVALID_ROLE"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeIOError            = "IO_ERROR"
	CodeMisconfigured      = "MISCONFIGURED"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
