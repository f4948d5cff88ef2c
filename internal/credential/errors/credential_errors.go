package credentialerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var ErrUnsupportedAlgorithm = apperror.New(
	apperror.CodeMisconfigured,
	"unsupported hash algorithm",
	http.StatusInternalServerError,
)
