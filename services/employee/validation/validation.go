// Package validation holds the fixed per-field rules an employee draft must
// pass before the store commits it. Rules are pure: they never look at the
// committed collection, so duplicate emails or phones are not rejected here.
package validation

import (
	"strings"

	"employeeform/domain"

	"github.com/asaskevich/govalidator"
)

const (
	FieldName     = "name"
	FieldDOB      = "dob"
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldPhone    = "phone"
)

const (
	emailPattern = `^\S+@\S+\.\S+$`
	phonePattern = `^[0-9]{10}$`
)

// Rule checks one candidate value and returns an error message, or "" when
// the value is valid.
type Rule func(value string) string

var rules = map[string]Rule{
	FieldName: func(v string) string {
		if len(strings.TrimSpace(v)) < 2 {
			return "Name must be at least 2 characters"
		}
		return ""
	},
	FieldDOB: func(v string) string {
		if v == "" {
			return "Date of birth is required"
		}
		return ""
	},
	FieldEmail: func(v string) string {
		if !govalidator.Matches(v, emailPattern) {
			return "Invalid email format"
		}
		return ""
	},
	FieldPassword: func(v string) string {
		if len(v) < 6 {
			return "Password must be at least 6 characters"
		}
		return ""
	},
	FieldPhone: func(v string) string {
		if !govalidator.Matches(v, phonePattern) {
			return "Phone must be exactly 10 digits"
		}
		return ""
	},
}

// Fields lists the validated field names in form order.
var Fields = []string{FieldName, FieldDOB, FieldEmail, FieldPassword, FieldPhone}

// Field validates a single field's candidate value. Unknown fields are
// treated as valid.
func Field(name, value string) string {
	rule, ok := rules[name]
	if !ok {
		return ""
	}
	return rule(value)
}

// Draft runs every rule against the draft and collects failures. The draft
// commits iff the returned map is empty.
func Draft(d domain.Draft) domain.FieldErrors {
	values := map[string]string{
		FieldName:     d.Name,
		FieldDOB:      d.DOB,
		FieldEmail:    d.Email,
		FieldPassword: d.Password,
		FieldPhone:    d.Phone,
	}

	errs := domain.FieldErrors{}
	for name, value := range values {
		if msg := Field(name, value); msg != "" {
			errs[name] = msg
		}
	}
	return errs
}
