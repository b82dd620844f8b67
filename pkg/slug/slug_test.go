// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Chenar-ai/elegant-backend/pkg/slug"
)

/*
TestFrom checks the transliteration and sanitization pipeline.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple_title", "Hydrating Serum", "hydrating-serum"},
		{"accented", "Crème Éclat", "creme-eclat"},
		{"punctuation_runs", "Lips -- & Under Eye!!", "lips-under-eye"},
		{"leading_trailing", "  Hair Filler  ", "hair-filler"},
		{"digits", "SPF 50 Cream", "spf-50-cream"},
		{"already_slug", "hydrating-serum", "hydrating-serum"},
		{"uppercase", "HYDRATING", "hydrating"},
		{"empty", "", ""},
		{"symbols_only", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
