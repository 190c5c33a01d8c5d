package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jane@acme.com", NormalizeEmail("  Jane@ACME.com "))
	assert.Equal(t, "jane@acme.com", NormalizeEmail("jane@acme.com"))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"jane@acme.com",
		"jane.doe+tag@sub.acme.co.uk",
		"j_1%x-y@mail-server.io",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"jane",
		"jane@",
		"@acme.com",
		"jane@acme",
		"jane @acme.com",
		"jane@acme.c",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"all classes present", "Sup3rSecret!", true},
		{"minimum length boundary", "Aa1#bcde", true},
		{"every allowed symbol counts", "Aa1-bcde", true},
		{"too short", "Aa1#bcd", false},
		{"no uppercase", "sup3rsecret!", false},
		{"no lowercase", "SUP3RSECRET!", false},
		{"no digit", "SuperSecret!", false},
		{"no symbol", "Sup3rSecret", false},
		{"symbol outside the set", "Sup3rSecret_", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidPassword(tt.password))
		})
	}
}

func TestValidateStruct(t *testing.T) {
	type form struct {
		Email string `validate:"required,email"`
		Code  string `validate:"len=6"`
	}

	assert.Nil(t, ValidateStruct(form{Email: "jane@acme.com", Code: "123456"}))

	errs := ValidateStruct(form{Email: "nope", Code: "123"})
	assert.Len(t, errs, 2)
	assert.Equal(t, "Invalid email format", errs["Email"])
	assert.Equal(t, "Must be exactly 6 characters", errs["Code"])
}

func TestFormatValidationErrors(t *testing.T) {
	assert.Equal(t, "", FormatValidationErrors(nil))
	assert.Equal(t, "Email: Invalid email format",
		FormatValidationErrors(map[string]string{"Email": "Invalid email format"}))
}
