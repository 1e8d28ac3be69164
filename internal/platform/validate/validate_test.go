// Copyright (c) 2026 Champa Studio. All rights reserved.
// Author: dev@champa.studio

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/champastudio/champa/internal/platform/apperr"
	"github.com/champastudio/champa/internal/platform/validate"
	"github.com/champastudio/champa/pkg/i18n"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Champa", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Email checks the email format validation rule.
*/
func TestValidator_Email(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		isValid bool
	}{
		{"valid_email", "client@example.la", true},
		{"invalid_format", "invalid-email", false},
		{"missing_domain", "client@", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Email("email", tt.email)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_Equals covers password confirmation: the confirmation field
is the one reported.
*/
func TestValidator_Equals(t *testing.T) {
	v := &validate.Validator{}
	v.Equals("confirm_password", "secret-one", "secret-two")

	err := v.Err()
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "confirm_password", ae.Details[0].Field)

	v = &validate.Validator{}
	v.Equals("confirm_password", "same", "same")
	assert.NoError(t, v.Err())
}

/*
TestValidator_MaxBytes enforces the upload size ceiling locally.
*/
func TestValidator_MaxBytes(t *testing.T) {
	const ceiling = 10 << 20 // 10 MiB

	v := &validate.Validator{}
	v.MaxBytes("file", ceiling+1, ceiling)
	assert.True(t, v.HasErrors())

	v = &validate.Validator{}
	v.MaxBytes("file", ceiling, ceiling)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Localized enforces the default-language invariant on
bilingual fields.
*/
func TestValidator_Localized(t *testing.T) {
	v := &validate.Validator{}
	v.Localized("title", i18n.Text{"en": "Brand Refresh", "lo": "ປັບປຸງແບຣນ"})
	assert.False(t, v.HasErrors())

	v = &validate.Validator{}
	v.Localized("title", i18n.Text{"lo": "ປັບປຸງແບຣນ"})
	assert.True(t, v.HasErrors())
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	// Multi-rule validation
	err := v.
		Required("name", "Noy").
		MinLen("name", "Noy", 2).
		MaxLen("name", "Noy", 50).
		Email("email", "noy@champa.studio").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("name", "").           // Fails
		MinLen("name", "a", 5).         // Fails
		Email("email", "not-an-email"). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}
