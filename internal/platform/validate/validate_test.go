// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chenar-ai/elegant-backend/internal/platform/apperr"
	"github.com/Chenar-ai/elegant-backend/internal/platform/validate"
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
		{"valid_string", "key", "skincare", false},
		{"empty_string", "key", "", true},
		{"whitespace_only", "key", "   ", true},
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
TestValidator_Language checks the supported-language rule.
*/
func TestValidator_Language(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		isValid bool
	}{
		{"english", "en", true},
		{"french", "fr", true},
		{"arabic", "ar", true},
		{"unsupported", "ja", false},
		{"region_subtag_not_normalized", "en-US", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Language("language_code", tt.code)

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_RawJSON checks the opaque references payload rule.
*/
func TestValidator_RawJSON(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		isValid bool
	}{
		{"array", `[{"label":"ISO 22716","url":"https://example.com"}]`, true},
		{"object", `{"a":1}`, true},
		{"empty_passes", "", true},
		{"truncated", `[{"label":`, false},
		{"not_json", `hello`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.RawJSON("references_json", []byte(tt.value))

			if tt.isValid {
				assert.False(t, v.HasErrors())
			} else {
				assert.True(t, v.HasErrors())
			}
		})
	}
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	// Multi-rule validation
	err := v.
		Required("key", "skincare").
		Slug("key", "skincare").
		Language("language_code", "en").
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
		Required("key", "").           // Fails
		Slug("key", "Not A Slug").     // Fails
		Language("language_code", ""). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}
