// Package validation sanitizes and checks the user-supplied fields that
// enter the payroll system: employee ids, emails, phone numbers and
// passwords.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	validationerrors "go-payroll/internal/validation/errors"
)

type Kind string

const (
	KindEmployeeID Kind = "employee_id"
	KindEmail      Kind = "email"
	KindPhone      Kind = "phone"
	KindPassword   Kind = "password"
)

const (
	minPasswordLength = 8
	passwordSpecials  = "@#$%!"
)

var (
	employeeIDPattern = regexp.MustCompile(`^EMP-[0-9]{4}$`)
	emailPattern      = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+$`)
	phonePattern      = regexp.MustCompile(`^[6-9][0-9]{9}$`)
)

// Sanitize trims leading and trailing control characters and ASCII spaces
// (every rune up to U+0020) and drops every interior space. Unicode spaces
// such as U+00A0 are kept and fail the patterns.
func Sanitize(raw string) string {
	return strings.ReplaceAll(strings.TrimFunc(raw, isTrimmable), " ", "")
}

func isTrimmable(r rune) bool { return r <= ' ' }

func ValidateEmployeeID(raw string) (string, error) {
	v := Sanitize(raw)
	if !employeeIDPattern.MatchString(v) {
		return "", validationerrors.ErrEmployeeIDInvalid
	}
	return v, nil
}

func ValidateEmail(raw string) (string, error) {
	v := Sanitize(raw)
	if !emailPattern.MatchString(v) {
		return "", validationerrors.ErrEmailInvalid
	}
	return v, nil
}

func ValidatePhone(raw string) (string, error) {
	v := Sanitize(raw)
	if !phonePattern.MatchString(v) {
		return "", validationerrors.ErrPhoneInvalid
	}
	return v, nil
}

func ValidatePassword(raw string) (string, error) {
	v := Sanitize(raw)
	if !isStrongPassword(v) {
		return "", validationerrors.ErrPasswordWeak
	}
	return v, nil
}

func isStrongPassword(v string) bool {
	if utf8.RuneCountInString(v) < minPasswordLength || strings.ContainsAny(v, "\r\n") {
		return false
	}

	var upper, lower, digit, special bool
	for _, r := range v {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}

	return upper && lower && digit && special
}

// Validate dispatches to the validator for kind.
func Validate(kind Kind, raw string) (string, error) {
	switch kind {
	case KindEmployeeID:
		return ValidateEmployeeID(raw)
	case KindEmail:
		return ValidateEmail(raw)
	case KindPhone:
		return ValidatePhone(raw)
	case KindPassword:
		return ValidatePassword(raw)
	default:
		return "", validationerrors.ErrUnknownKind
	}
}
