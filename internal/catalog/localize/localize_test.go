// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

package localize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTranslation struct {
	language string
	title    string
}

func (translation fakeTranslation) TranslationLanguage() string {
	return translation.language
}

/*
TestNormalize verifies region subtags are stripped and casing is ignored.
*/
func TestNormalize(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"en", "en"},
		{"EN", "en"},
		{"en-US", "en"},
		{"fr-CA", "fr"},
		{"pt-BR", "pt"},
		{" de ", "de"},
		{"", ""},
	}

	for _, testCase := range testCases {
		t.Run(testCase.input, func(t *testing.T) {
			assert.Equal(t, testCase.expected, Normalize(testCase.input))
		})
	}
}

/*
TestResolve verifies the exact-then-fallback resolution order.
*/
func TestResolve(t *testing.T) {
	translations := []fakeTranslation{
		{language: "en", title: "Hydrating Serum"},
		{language: "fr", title: "Sérum Hydratant"},
	}

	testCases := []struct {
		name          string
		requested     string
		expectedTitle string
		expectedFound bool
	}{
		{
			name:          "exact match",
			requested:     "fr",
			expectedTitle: "Sérum Hydratant",
			expectedFound: true,
		},
		{
			name:          "region subtag resolves to base language",
			requested:     "fr-CA",
			expectedTitle: "Sérum Hydratant",
			expectedFound: true,
		},
		{
			name:          "missing language falls back to default",
			requested:     "ar",
			expectedTitle: "Hydrating Serum",
			expectedFound: true,
		},
		{
			name:          "uppercase request still matches",
			requested:     "EN",
			expectedTitle: "Hydrating Serum",
			expectedFound: true,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			match, found := Resolve(translations, testCase.requested, "en")

			assert.Equal(t, testCase.expectedFound, found)
			assert.Equal(t, testCase.expectedTitle, match.title)
		})
	}
}

/*
TestResolve_NoFallbackAvailable verifies that absence is reported when
neither the requested nor the fallback language is stored.
*/
func TestResolve_NoFallbackAvailable(t *testing.T) {
	translations := []fakeTranslation{
		{language: "fr", title: "Sérum Hydratant"},
	}

	match, found := Resolve(translations, "de", "en")

	assert.False(t, found)
	assert.Empty(t, match.title)
}

/*
TestResolve_Empty verifies behavior on an entity with no translations at all.
*/
func TestResolve_Empty(t *testing.T) {
	_, found := Resolve([]fakeTranslation{}, "en", "en")
	assert.False(t, found)
}
