// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

/*
Package localize resolves which stored translation to show a visitor.

Resolution order for a requested language:

 1. Normalize the code: strip any region subtag ("en-US" becomes "en")
    and lowercase it.
 2. Exact match against the stored translations.
 3. Fall back to the site default language.
 4. Report absence so the caller decides (products are hidden, categories
    are shown untranslated).
*/
package localize

import "strings"

// Translated is any row that carries a language code, such as a category
// or product translation.
type Translated interface {
	TranslationLanguage() string
}

// # Language Codes

// Normalize reduces a client-supplied language tag to the bare lowercase
// primary subtag used as a storage key. "en-US", "EN" and "en" all
// normalize to "en".
func Normalize(code string) string {
	code = strings.TrimSpace(strings.ToLower(code))

	if base, _, found := strings.Cut(code, "-"); found {
		return base
	}
	return code
}

// # Resolution

// Resolve picks the translation for the requested language, falling back
// to the given default language. The second return is false when neither
// language has a stored translation.
//
// The requested code is normalized here so callers can pass raw
// Accept-Language style tags straight through.
func Resolve[T Translated](translations []T, requested, fallback string) (T, bool) {
	requested = Normalize(requested)

	if match, found := exact(translations, requested); found {
		return match, true
	}

	if requested != fallback {
		if match, found := exact(translations, fallback); found {
			return match, true
		}
	}

	var zero T
	return zero, false
}

func exact[T Translated](translations []T, language string) (T, bool) {
	for _, translation := range translations {
		if translation.TranslationLanguage() == language {
			return translation, true
		}
	}

	var zero T
	return zero, false
}
