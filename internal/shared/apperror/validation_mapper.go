package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// tagCodes maps custom binding tags to the field-specific validation codes.
var tagCodes = map[string]string{
	"empid":           CodeEmployeeIDInvalid,
	"payroll_email":   CodeEmailInvalid,
	"phone_in":        CodePhoneInvalid,
	"strong_password": CodePasswordWeak,
}

// emp_id -> Emp Id
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError converts the first go-playground validation failure
// into an AppError. Anything else becomes a generic invalid input error.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		e := errs[0]
		humanReadableField := formatFieldName(e.Field())

		if code, ok := tagCodes[e.Tag()]; ok {
			return Wrap(ErrValidation, code, humanReadableField+" is invalid", http.StatusBadRequest)
		}

		switch e.Tag() {
		case "required":
			return RequiredField(humanReadableField)
		default:
			return InvalidField(humanReadableField)
		}
	}

	return New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
}
