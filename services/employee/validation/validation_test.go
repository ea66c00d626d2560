package validation

import (
	"testing"

	"employeeform/domain"

	"github.com/stretchr/testify/assert"
)

func TestFieldBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		wantErr bool
	}{
		{"name length 1 fails", FieldName, "a", true},
		{"name length 2 passes", FieldName, "ab", false},
		{"name is trimmed before the length check", FieldName, "  a  ", true},
		{"dob empty fails", FieldDOB, "", true},
		{"dob any non-empty string passes", FieldDOB, "1990-01-01", false},
		{"email a@b.c passes", FieldEmail, "a@b.c", false},
		{"email without dot fails", FieldEmail, "a@b", true},
		{"email without at fails", FieldEmail, "a.b", true},
		{"password length 5 fails", FieldPassword, "12345", true},
		{"password length 6 passes", FieldPassword, "123456", false},
		{"password is not trimmed", FieldPassword, "1234 6", false},
		{"phone 9 digits fails", FieldPhone, "123456789", true},
		{"phone 10 digits passes", FieldPhone, "1234567890", false},
		{"phone 10 chars with a letter fails", FieldPhone, "12345678a0", true},
		{"phone 11 digits fails", FieldPhone, "12345678901", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := Field(tt.field, tt.value)
			if tt.wantErr {
				assert.NotEmpty(t, msg)
			} else {
				assert.Empty(t, msg)
			}
		})
	}
}

func TestFieldUnknownNameIsValid(t *testing.T) {
	assert.Empty(t, Field("nonsense", ""))
}

func TestDraftCollectsEveryFailure(t *testing.T) {
	errs := Draft(domain.Draft{})

	assert.Len(t, errs, 5)
	for _, field := range Fields {
		assert.Contains(t, errs, field)
	}
}

func TestDraftValidIsEmpty(t *testing.T) {
	errs := Draft(domain.Draft{
		Name:     "Jane Doe",
		DOB:      "1990-01-01",
		Email:    "jane@x.com",
		Password: "secret1",
		Phone:    "1234567890",
	})

	assert.Empty(t, errs)
}
