package dashboarderrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var ErrInvalidRole = apperror.New(
	apperror.CodeInvalidRole,
	"Invalid Role",
	http.StatusBadRequest,
)
