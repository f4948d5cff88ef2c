package validation

import (
	"github.com/go-playground/validator/v10"
)

// RegisterRules exposes the field validators as binding tags:
// empid, payroll_email, phone_in and strong_password.
func RegisterRules(v *validator.Validate) error {
	rules := map[string]func(string) (string, error){
		"empid":           ValidateEmployeeID,
		"payroll_email":   ValidateEmail,
		"phone_in":        ValidatePhone,
		"strong_password": ValidatePassword,
	}

	for tag, fn := range rules {
		check := fn
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			_, err := check(fl.Field().String())
			return err == nil
		}); err != nil {
			return err
		}
	}

	return nil
}
