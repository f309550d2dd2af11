// Copyright (c) 2026 Shelfmark. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/shelfmark/internal/platform/apperr"
	"github.com/taibuivan/shelfmark/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		hasError bool
	}{
		{"valid_string", "Inception", false},
		{"empty_string", "", true},
		{"whitespace_only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required("title", tt.value)

			if tt.hasError {
				err := v.Err()
				require.Error(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, apperr.CodeValidation, ae.Code)
				assert.Equal(t, "title", ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.NoError(t, v.Err())
			}
		})
	}
}

/*
TestValidator_FloatRange checks inclusive bounds and NaN rejection.
*/
func TestValidator_FloatRange(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		isValid bool
	}{
		{"lower_bound", 0, true},
		{"upper_bound", 5, true},
		{"inside", 3.5, true},
		{"below", -0.5, false},
		{"above", 5.5, false},
		{"nan", math.NaN(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.FloatRange("rating", tt.value, 0, 5)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("title", "").
		MaxLen("review_text", "abcdef", 3).
		OneOf("sort", "popularity", "title", "year").
		Custom("rating", true, "Must be a multiple of 0.5").
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 4)
}

/*
TestValidator_Chain_Success tests that passing rules produce no error.
*/
func TestValidator_Chain_Success(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("title", "Dune").
		MaxLen("title", "Dune", 10).
		Range("page", 2, 1, 500).
		OneOf("dir", "asc", "asc", "desc").
		Err()

	assert.NoError(t, err)
}
