// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

package category

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Chenar-ai/elegant-backend/internal/catalog"
	"github.com/Chenar-ai/elegant-backend/internal/platform/apperr"
	"github.com/Chenar-ai/elegant-backend/internal/platform/constants"
	"github.com/Chenar-ai/elegant-backend/internal/platform/ctxutil"
	"github.com/Chenar-ai/elegant-backend/pkg/uuidv7"
)

// CacheInvalidator drops cached localized catalogs after a mutation.
type CacheInvalidator interface {
	Invalidate(context context.Context) error
}

// Service implements category business logic on top of a [Repository].
type Service struct {
	repository Repository
	cache      CacheInvalidator
}

// NewService constructs a category [Service].
func NewService(repository Repository, cache CacheInvalidator) *Service {
	return &Service{repository: repository, cache: cache}
}

// # Read Operations

// ListCategories returns the full admin view of the catalog tree.
func (service *Service) ListCategories(context context.Context) ([]*catalog.Category, error) {
	return service.repository.List(context)
}

// GetCategory returns one category with its translations.
func (service *Service) GetCategory(context context.Context, id string) (*catalog.Category, error) {
	return service.repository.FindByID(context, id)
}

// ListCategoryProducts returns the products owned by one category.
func (service *Service) ListCategoryProducts(context context.Context, categoryID string) ([]*catalog.Product, error) {
	return service.repository.ListProducts(context, categoryID)
}

// # Write Operations

// CreateInput carries the payload for [Service.CreateCategory].
type CreateInput struct {
	Key          string                        `json:"key"`
	References   json.RawMessage               `json:"references,omitempty"`
	Translations []catalog.CategoryTranslation `json:"translations"`
}

/*
CreateCategory inserts a new category with its initial translation set.

Description: The key is admin-chosen and must be catalog-unique; a
duplicate surfaces as a conflict. Categories may start with zero
translations and gain them later.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *catalog.Category: The persisted entity with assigned ID and timestamps
  - error: Validation, conflict or persistence failures
*/
func (service *Service) CreateCategory(context context.Context, input CreateInput) (*catalog.Category, error) {
	if err := validateTranslationSet(input.Translations); err != nil {
		return nil, err
	}

	category := &catalog.Category{
		ID:           uuidv7.New(),
		Key:          input.Key,
		References:   input.References,
		Translations: normalizeSet(input.Translations),
	}

	if err := service.repository.Create(context, category); err != nil {
		return nil, err
	}

	service.invalidateCache(context)
	return category, nil
}

// UpdateInput carries the partial patch for [Service.UpdateCategory].
// nil fields are left untouched; a present Translations field replaces
// the stored set wholesale, even when empty.
type UpdateInput struct {
	Key          *string                        `json:"key,omitempty"`
	References   json.RawMessage                `json:"references,omitempty"`
	Translations *[]catalog.CategoryTranslation `json:"translations,omitempty"`
}

/*
UpdateCategory applies a partial patch to an existing category.

Description: Loads the current entity first so omitted fields survive.
When the patch carries a translation set, the old set is discarded and
replaced in the same transaction as the field update.

Parameters:
  - context: context.Context
  - id: string
  - input: UpdateInput

Returns:
  - *catalog.Category: The updated entity
  - error: Not-found, validation, conflict or persistence failures
*/
func (service *Service) UpdateCategory(context context.Context, id string, input UpdateInput) (*catalog.Category, error) {
	category, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if input.Key != nil {
		category.Key = *input.Key
	}
	if input.References != nil {
		category.References = input.References
	}

	replaceTranslations := input.Translations != nil
	if replaceTranslations {
		if err := validateTranslationSet(*input.Translations); err != nil {
			return nil, err
		}
		category.Translations = normalizeSet(*input.Translations)
	}

	if err := service.repository.Update(context, category, replaceTranslations); err != nil {
		return nil, err
	}

	service.invalidateCache(context)
	return category, nil
}

// DeleteCategory removes a category and everything it owns.
func (service *Service) DeleteCategory(context context.Context, id string) error {
	if err := service.repository.Delete(context, id); err != nil {
		return err
	}

	service.invalidateCache(context)
	return nil
}

// # Internal Helpers

// validateTranslationSet rejects unsupported languages, duplicate language
// codes and missing titles before anything reaches the database.
func validateTranslationSet(translations []catalog.CategoryTranslation) error {
	seen := make(map[string]bool, len(translations))

	for _, translation := range translations {
		if !constants.IsSupportedLanguage(translation.LanguageCode) {
			return apperr.ValidationError(fmt.Sprintf("Unsupported language code %q", translation.LanguageCode))
		}
		if seen[translation.LanguageCode] {
			return apperr.ValidationError(fmt.Sprintf("Duplicate translation for language %q", translation.LanguageCode))
		}
		seen[translation.LanguageCode] = true

		if translation.Title == "" {
			return apperr.ValidationError(fmt.Sprintf("Translation %q is missing a title", translation.LanguageCode))
		}
	}

	return nil
}

// normalizeSet guarantees a non-nil slice so JSON output renders [] and
// the store never iterates nil.
func normalizeSet(translations []catalog.CategoryTranslation) []catalog.CategoryTranslation {
	if translations == nil {
		return []catalog.CategoryTranslation{}
	}
	return translations
}

// invalidateCache drops localized catalog cache entries. Failures only
// shorten cache freshness, so they are logged and swallowed.
func (service *Service) invalidateCache(context context.Context) {
	if service.cache == nil {
		return
	}
	if err := service.cache.Invalidate(context); err != nil {
		ctxutil.GetLogger(context).WarnContext(context, "catalog_cache_invalidate_failed", "error", err)
	}
}
