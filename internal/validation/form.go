package validation

// Form is the set of fields collected when an employee signs up.
type Form struct {
	EmployeeID string
	Email      string
	Phone      string
	Password   string
}

// FormKinds lists the form fields in the order they are collected and
// checked.
var FormKinds = []Kind{KindEmployeeID, KindEmail, KindPhone, KindPassword}

// Field returns the address of the value held for kind, or nil for a kind
// the form does not carry.
func (f *Form) Field(kind Kind) *string {
	switch kind {
	case KindEmployeeID:
		return &f.EmployeeID
	case KindEmail:
		return &f.Email
	case KindPhone:
		return &f.Phone
	case KindPassword:
		return &f.Password
	default:
		return nil
	}
}

// ValidateForm checks the fields in FormKinds order and stops at the first
// failure. On success it returns the sanitized form.
func ValidateForm(form Form) (Form, error) {
	var out Form
	for _, kind := range FormKinds {
		v, err := Validate(kind, *form.Field(kind))
		if err != nil {
			return Form{}, err
		}
		*out.Field(kind) = v
	}
	return out, nil
}
