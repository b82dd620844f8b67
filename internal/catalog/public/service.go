// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

package public

import (
	"context"
	"encoding/json"

	"github.com/Chenar-ai/elegant-backend/internal/catalog"
	"github.com/Chenar-ai/elegant-backend/internal/catalog/localize"
	"github.com/Chenar-ai/elegant-backend/internal/platform/constants"
	"github.com/Chenar-ai/elegant-backend/internal/platform/ctxutil"
)

// CatalogSource provides the full catalog tree. The category service
// satisfies it.
type CatalogSource interface {
	ListCategories(context context.Context) ([]*catalog.Category, error)
}

// Cache stores rendered localized catalogs per language.
type Cache interface {
	Get(context context.Context, language string) ([]byte, bool, error)
	Set(context context.Context, language string, payload []byte) error
}

// Service renders the public, single-language view of the catalog.
type Service struct {
	source CatalogSource
	cache  Cache
}

// NewService constructs a public catalog [Service]. cache may be nil,
// which disables caching entirely.
func NewService(source CatalogSource, cache Cache) *Service {
	return &Service{source: source, cache: cache}
}

/*
LocalizedCatalog returns every category localized to the requested
language.

Description: Categories without a usable translation are kept with empty
title and intro so their products stay reachable; products without one
are dropped. Results are cached per normalized supported language, with
unsupported tags sharing the fallback entry, and served from Redis until
the next catalog mutation. Cache failures degrade to a
database read rather than failing the request.

Parameters:
  - context: context.Context
  - language: string (raw client tag, e.g. "en-US")

Returns:
  - []catalog.LocalizedCategory: Localized catalog tree
  - error: Database retrieval failures
*/
func (service *Service) LocalizedCatalog(context context.Context, language string) ([]catalog.LocalizedCategory, error) {
	normalized := localize.Normalize(language)

	// Unsupported tags resolve identically to the fallback language, so
	// collapse them onto its cache key. This keeps the cached key set
	// bounded to the supported languages that Invalidate deletes.
	if !constants.IsSupportedLanguage(normalized) {
		normalized = constants.FallbackLanguage
	}

	// 1. Cache fast-path
	if service.cache != nil {
		payload, hit, err := service.cache.Get(context, normalized)
		if err != nil {
			ctxutil.GetLogger(context).WarnContext(context, "catalog_cache_read_failed", "error", err)
		} else if hit {
			var cached []catalog.LocalizedCategory
			if err := json.Unmarshal(payload, &cached); err == nil {
				return cached, nil
			}
			// Corrupt entry: fall through to a fresh render
		}
	}

	// 2. Full fetch and in-memory resolution
	categories, err := service.source.ListCategories(context)
	if err != nil {
		return nil, err
	}

	localizedCatalog := make([]catalog.LocalizedCategory, 0, len(categories))
	for _, category := range categories {
		localizedCatalog = append(localizedCatalog, localizeCategory(category, normalized))
	}

	// 3. Populate the cache for the next visitor
	if service.cache != nil {
		if payload, err := json.Marshal(localizedCatalog); err == nil {
			if err := service.cache.Set(context, normalized, payload); err != nil {
				ctxutil.GetLogger(context).WarnContext(context, "catalog_cache_write_failed", "error", err)
			}
		}
	}

	return localizedCatalog, nil
}

// localizeCategory flattens one category and its products to a single
// resolved language.
func localizeCategory(category *catalog.Category, language string) catalog.LocalizedCategory {
	localized := catalog.LocalizedCategory{
		ID:         category.ID,
		Key:        category.Key,
		References: category.References,
		Products:   make([]catalog.LocalizedProduct, 0, len(category.Products)),
	}

	// Categories survive untranslated with empty title and intro
	if translation, found := localize.Resolve(category.Translations, language, constants.FallbackLanguage); found {
		localized.Title = translation.Title
		localized.Intro = translation.Intro
	}

	// Products are dropped when no usable translation exists
	for _, product := range category.Products {
		translation, found := localize.Resolve(product.Translations, language, constants.FallbackLanguage)
		if !found {
			continue
		}
		localized.Products = append(localized.Products, catalog.LocalizedProduct{
			ID:          product.ID,
			Key:         product.Key,
			ImageURL:    product.ImageURL,
			Title:       translation.Title,
			Description: translation.Description,
		})
	}

	return localized
}
