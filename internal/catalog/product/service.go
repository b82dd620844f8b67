// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

package product

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Chenar-ai/elegant-backend/internal/catalog"
	"github.com/Chenar-ai/elegant-backend/internal/catalog/localize"
	"github.com/Chenar-ai/elegant-backend/internal/platform/apperr"
	"github.com/Chenar-ai/elegant-backend/internal/platform/constants"
	"github.com/Chenar-ai/elegant-backend/internal/platform/ctxutil"
	requestutil "github.com/Chenar-ai/elegant-backend/internal/platform/request"
	"github.com/Chenar-ai/elegant-backend/pkg/uuidv7"
)

// CacheInvalidator drops cached localized catalogs after a mutation.
type CacheInvalidator interface {
	Invalidate(context context.Context) error
}

// ImageStore is the subset of the image backend the product service needs.
// Both imagestore backends satisfy it.
type ImageStore interface {
	Save(context context.Context, content io.Reader, originalFilename, contentType string) (string, error)
	IsManaged(ref string) bool
	Remove(context context.Context, ref string) error
}

// Service implements product business logic on top of a [Repository]
// and an image storage backend.
type Service struct {
	repository Repository
	images     ImageStore
	cache      CacheInvalidator
}

// NewService constructs a product [Service].
func NewService(repository Repository, images ImageStore, cache CacheInvalidator) *Service {
	return &Service{repository: repository, images: images, cache: cache}
}

// # Read Operations

// ListProducts returns the full admin view of all products.
func (service *Service) ListProducts(context context.Context) ([]*catalog.Product, error) {
	return service.repository.List(context)
}

// GetProduct returns one product with its translations.
func (service *Service) GetProduct(context context.Context, id string) (*catalog.Product, error) {
	return service.repository.FindByID(context, id)
}

/*
ListProductsByLanguage projects every product to a single resolved
language. Products without a translation in the requested or fallback
language are dropped rather than shown untranslated.

Parameters:
  - context: context.Context
  - language: string (raw client tag, normalized internally)

Returns:
  - []catalog.LocalizedProduct: Flattened projections
  - error: Database retrieval failures
*/
func (service *Service) ListProductsByLanguage(context context.Context, language string) ([]catalog.LocalizedProduct, error) {
	products, err := service.repository.List(context)
	if err != nil {
		return nil, err
	}

	localized := make([]catalog.LocalizedProduct, 0, len(products))
	for _, product := range products {
		translation, found := localize.Resolve(product.Translations, language, constants.FallbackLanguage)
		if !found {
			continue
		}
		localized = append(localized, catalog.LocalizedProduct{
			ID:          product.ID,
			Key:         product.Key,
			ImageURL:    product.ImageURL,
			Title:       translation.Title,
			Description: translation.Description,
		})
	}

	return localized, nil
}

// GroupedProducts is the admin "products per category" projection.
type GroupedProducts struct {
	CategoryID  string             `json:"category_id"`
	CategoryKey string             `json:"category_key"`
	Products    []*catalog.Product `json:"products"`
}

// CategoryLister provides the category tree for grouped product views.
type CategoryLister interface {
	ListCategories(context context.Context) ([]*catalog.Category, error)
}

/*
ListProductsGrouped returns all products bucketed by their category, in
category creation order. Categories without products are included with an
empty bucket so the admin table shows them.
*/
func (service *Service) ListProductsGrouped(context context.Context, categories CategoryLister) ([]GroupedProducts, error) {
	tree, err := categories.ListCategories(context)
	if err != nil {
		return nil, err
	}

	groups := make([]GroupedProducts, 0, len(tree))
	for _, category := range tree {
		group := GroupedProducts{
			CategoryID:  category.ID,
			CategoryKey: category.Key,
			Products:    make([]*catalog.Product, 0, len(category.Products)),
		}
		for index := range category.Products {
			group.Products = append(group.Products, &category.Products[index])
		}
		groups = append(groups, group)
	}

	return groups, nil
}

// # Write Operations

// CreateInput carries the payload for [Service.CreateProduct].
type CreateInput struct {
	CategoryID   string
	Translations []catalog.ProductTranslation
	Image        *requestutil.Upload // nil when no image was uploaded
}

/*
CreateProduct uploads the image (if any), derives the product key from
the default-language title and persists everything atomically.

Description: The image upload happens before the database transaction
opens; its durability is independent. If the transaction then fails, the
uploaded object is orphaned. Orphans are logged for later cleanup rather
than deleted, because the failure may be transient and the admin usually
retries immediately.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *catalog.Product: The persisted entity with derived key
  - error: Validation, conflict, storage or persistence failures
*/
func (service *Service) CreateProduct(context context.Context, input CreateInput) (*catalog.Product, error) {
	if err := validateTranslationSet(input.Translations, true); err != nil {
		return nil, err
	}

	// 1. Image upload first, outside the transaction
	var imageURL *string
	if input.Image != nil {
		ref, err := service.uploadImage(context, input.Image)
		if err != nil {
			return nil, err
		}
		imageURL = &ref
	}

	// 2. Persist product, key derivation and translations atomically
	product := &catalog.Product{
		ID:           uuidv7.New(),
		CategoryID:   input.CategoryID,
		ImageURL:     imageURL,
		Translations: input.Translations,
	}

	if err := service.repository.Create(context, product, defaultTitle(input.Translations)); err != nil {
		service.logOrphanedImage(context, imageURL, err)
		return nil, err
	}

	service.invalidateCache(context)
	return product, nil
}

// UpdateInput carries the payload for [Service.UpdateProduct].
//
// Image semantics: a new upload replaces the stored reference; otherwise
// ExistingImage is retained verbatim without consulting the image store;
// if both are absent the image is cleared.
type UpdateInput struct {
	CategoryID    string
	Translations  []catalog.ProductTranslation
	Image         *requestutil.Upload
	ExistingImage string
}

/*
UpdateProduct overwrites a product's category, image and translation set.
The key is never regenerated.

Description: Translation replacement is wholesale; an empty set removes
every stored translation. When a new image replaces a managed one, the
old object is removed best-effort after the database write commits.

Parameters:
  - context: context.Context
  - id: string
  - input: UpdateInput

Returns:
  - *catalog.Product: The updated entity
  - error: Not-found, validation, storage or persistence failures
*/
func (service *Service) UpdateProduct(context context.Context, id string, input UpdateInput) (*catalog.Product, error) {
	if err := validateTranslationSet(input.Translations, false); err != nil {
		return nil, err
	}

	product, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}
	previousImage := product.ImageURL

	// Resolve the new image reference
	var imageURL *string
	switch {
	case input.Image != nil:
		ref, err := service.uploadImage(context, input.Image)
		if err != nil {
			return nil, err
		}
		imageURL = &ref
	case input.ExistingImage != "":
		// Retained verbatim, zero image store calls
		imageURL = &input.ExistingImage
	}

	product.CategoryID = input.CategoryID
	product.ImageURL = imageURL
	product.Translations = input.Translations
	if product.Translations == nil {
		product.Translations = []catalog.ProductTranslation{}
	}

	if err := service.repository.Update(context, product); err != nil {
		// Only a fresh upload can be orphaned; a retained reference is
		// still reachable through the unmodified row.
		if input.Image != nil {
			service.logOrphanedImage(context, imageURL, err)
		}
		return nil, err
	}

	// The old object is unreachable now; drop it if we own it. This
	// covers both replacement by a new upload and clearing the image.
	replaced := input.Image != nil && previousImage != nil && *previousImage != *imageURL
	cleared := imageURL == nil && previousImage != nil
	if replaced || cleared {
		service.removeImage(context, *previousImage)
	}

	service.invalidateCache(context)
	return product, nil
}

// DeleteProduct removes a product, its translations, and its managed
// image object if it has one.
func (service *Service) DeleteProduct(context context.Context, id string) error {
	product, err := service.repository.FindByID(context, id)
	if err != nil {
		return err
	}

	if err := service.repository.Delete(context, id); err != nil {
		return err
	}

	if product.ImageURL != nil {
		service.removeImage(context, *product.ImageURL)
	}

	service.invalidateCache(context)
	return nil
}

// # Internal Helpers

// validateTranslationSet rejects unsupported or duplicate language codes.
// Titles and descriptions may be empty strings. Creation additionally
// requires at least one translation.
func validateTranslationSet(translations []catalog.ProductTranslation, requireNonEmpty bool) error {
	if requireNonEmpty && len(translations) == 0 {
		return apperr.ValidationError("At least one translation is required")
	}

	seen := make(map[string]bool, len(translations))
	for _, translation := range translations {
		if !constants.IsSupportedLanguage(translation.LanguageCode) {
			return apperr.ValidationError(fmt.Sprintf("Unsupported language code %q", translation.LanguageCode))
		}
		if seen[translation.LanguageCode] {
			return apperr.ValidationError(fmt.Sprintf("Duplicate translation for language %q", translation.LanguageCode))
		}
		seen[translation.LanguageCode] = true
	}

	return nil
}

// defaultTitle picks the title the product key is derived from: the
// fallback-language translation when present, otherwise the first one.
func defaultTitle(translations []catalog.ProductTranslation) string {
	for _, translation := range translations {
		if translation.LanguageCode == constants.FallbackLanguage {
			return translation.Title
		}
	}
	if len(translations) > 0 {
		return translations[0].Title
	}
	return ""
}

// uploadImage streams an upload into the image backend.
func (service *Service) uploadImage(context context.Context, upload *requestutil.Upload) (string, error) {
	return service.images.Save(context, bytes.NewReader(upload.Data), upload.Filename, upload.ContentType)
}

// removeImage best-effort deletes a managed image object.
func (service *Service) removeImage(context context.Context, ref string) {
	if !service.images.IsManaged(ref) {
		return
	}
	if err := service.images.Remove(context, ref); err != nil {
		ctxutil.GetLogger(context).WarnContext(context, "product_image_remove_failed",
			slog.String("ref", ref), slog.Any("error", err))
	}
}

// logOrphanedImage records an upload left behind by a failed database write.
func (service *Service) logOrphanedImage(context context.Context, imageURL *string, cause error) {
	if imageURL == nil || !service.images.IsManaged(*imageURL) {
		return
	}
	ctxutil.GetLogger(context).WarnContext(context, "product_image_orphaned",
		slog.String("ref", *imageURL), slog.Any("error", cause))
}

// invalidateCache drops localized catalog cache entries, logging failures.
func (service *Service) invalidateCache(context context.Context) {
	if service.cache == nil {
		return
	}
	if err := service.cache.Invalidate(context); err != nil {
		ctxutil.GetLogger(context).WarnContext(context, "catalog_cache_invalidate_failed", "error", err)
	}
}
