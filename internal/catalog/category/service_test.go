// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

package category

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chenar-ai/elegant-backend/internal/catalog"
	"github.com/Chenar-ai/elegant-backend/internal/platform/apperr"
)

// fakeRepository is an in-memory [Repository] for service tests.
type fakeRepository struct {
	categories map[string]*catalog.Category
	createErr  error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{categories: make(map[string]*catalog.Category)}
}

func (repository *fakeRepository) List(_ context.Context) ([]*catalog.Category, error) {
	var categories []*catalog.Category
	for _, category := range repository.categories {
		categories = append(categories, category)
	}
	return categories, nil
}

func (repository *fakeRepository) FindByID(_ context.Context, id string) (*catalog.Category, error) {
	category, found := repository.categories[id]
	if !found {
		return nil, apperr.NotFound("category")
	}
	clone := *category
	return &clone, nil
}

func (repository *fakeRepository) ListProducts(_ context.Context, categoryID string) ([]*catalog.Product, error) {
	category, found := repository.categories[categoryID]
	if !found {
		return nil, apperr.NotFound("category")
	}
	var products []*catalog.Product
	for index := range category.Products {
		products = append(products, &category.Products[index])
	}
	return products, nil
}

func (repository *fakeRepository) Create(_ context.Context, category *catalog.Category) error {
	if repository.createErr != nil {
		return repository.createErr
	}
	for _, existing := range repository.categories {
		if existing.Key == category.Key {
			return apperr.Conflict("category key already exists")
		}
	}
	clone := *category
	repository.categories[category.ID] = &clone
	return nil
}

func (repository *fakeRepository) Update(_ context.Context, category *catalog.Category, replaceTranslations bool) error {
	stored, found := repository.categories[category.ID]
	if !found {
		return apperr.NotFound("category")
	}
	stored.Key = category.Key
	stored.References = category.References
	if replaceTranslations {
		stored.Translations = category.Translations
	}
	return nil
}

func (repository *fakeRepository) Delete(_ context.Context, id string) error {
	if _, found := repository.categories[id]; !found {
		return apperr.NotFound("category")
	}
	delete(repository.categories, id)
	return nil
}

// countingCache records invalidations.
type countingCache struct {
	invalidations int
}

func (cache *countingCache) Invalidate(_ context.Context) error {
	cache.invalidations++
	return nil
}

/*
TestCreateCategory verifies creation assigns an ID, persists the
translation set and drops the localized cache.
*/
func TestCreateCategory(t *testing.T) {
	repository := newFakeRepository()
	cache := &countingCache{}
	service := NewService(repository, cache)

	category, err := service.CreateCategory(context.Background(), CreateInput{
		Key:        "skincare",
		References: json.RawMessage(`[{"label":"Routine guide"}]`),
		Translations: []catalog.CategoryTranslation{
			{LanguageCode: "en", Title: "Skincare"},
			{LanguageCode: "fr", Title: "Soins de la peau", Intro: "Nos essentiels"},
		},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, category.ID)
	assert.Equal(t, "skincare", category.Key)
	assert.Len(t, category.Translations, 2)
	assert.Equal(t, 1, cache.invalidations)
}

/*
TestCreateCategory_DuplicateKey verifies a second category with the same
key is rejected with a conflict.
*/
func TestCreateCategory_DuplicateKey(t *testing.T) {
	repository := newFakeRepository()
	service := NewService(repository, &countingCache{})

	_, err := service.CreateCategory(context.Background(), CreateInput{Key: "skincare"})
	require.NoError(t, err)

	_, err = service.CreateCategory(context.Background(), CreateInput{Key: "skincare"})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "CONFLICT", appError.Code)
}

/*
TestCreateCategory_Validation verifies unsupported languages, duplicate
language codes and missing titles are rejected before persistence.
*/
func TestCreateCategory_Validation(t *testing.T) {
	testCases := []struct {
		name         string
		translations []catalog.CategoryTranslation
	}{
		{
			name: "unsupported language",
			translations: []catalog.CategoryTranslation{
				{LanguageCode: "xx", Title: "Skincare"},
			},
		},
		{
			name: "duplicate language",
			translations: []catalog.CategoryTranslation{
				{LanguageCode: "en", Title: "Skincare"},
				{LanguageCode: "en", Title: "Skincare again"},
			},
		},
		{
			name: "missing title",
			translations: []catalog.CategoryTranslation{
				{LanguageCode: "en", Title: ""},
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			repository := newFakeRepository()
			service := NewService(repository, &countingCache{})

			_, err := service.CreateCategory(context.Background(), CreateInput{
				Key:          "skincare",
				Translations: testCase.translations,
			})
			require.Error(t, err)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, "VALIDATION_ERROR", appError.Code)
			assert.Empty(t, repository.categories)
		})
	}
}

/*
TestUpdateCategory_WholesaleReplace verifies a present translations field
replaces the stored set entirely, including replacement with an empty set.
*/
func TestUpdateCategory_WholesaleReplace(t *testing.T) {
	repository := newFakeRepository()
	service := NewService(repository, &countingCache{})

	created, err := service.CreateCategory(context.Background(), CreateInput{
		Key: "skincare",
		Translations: []catalog.CategoryTranslation{
			{LanguageCode: "en", Title: "Skincare"},
			{LanguageCode: "fr", Title: "Soins de la peau"},
		},
	})
	require.NoError(t, err)

	// Replace with a single language: the omitted "fr" entry must vanish
	replacement := []catalog.CategoryTranslation{
		{LanguageCode: "en", Title: "Skincare Essentials"},
	}
	updated, err := service.UpdateCategory(context.Background(), created.ID, UpdateInput{
		Translations: &replacement,
	})
	require.NoError(t, err)
	require.Len(t, updated.Translations, 1)
	assert.Equal(t, "Skincare Essentials", updated.Translations[0].Title)

	// Replace with an empty set: no language survives
	empty := []catalog.CategoryTranslation{}
	updated, err = service.UpdateCategory(context.Background(), created.ID, UpdateInput{
		Translations: &empty,
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Translations)

	stored, err := service.GetCategory(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Translations)
}

/*
TestUpdateCategory_PartialPatch verifies omitted fields survive an update
untouched.
*/
func TestUpdateCategory_PartialPatch(t *testing.T) {
	repository := newFakeRepository()
	service := NewService(repository, &countingCache{})

	created, err := service.CreateCategory(context.Background(), CreateInput{
		Key:        "skincare",
		References: json.RawMessage(`[{"label":"Guide"}]`),
		Translations: []catalog.CategoryTranslation{
			{LanguageCode: "en", Title: "Skincare"},
		},
	})
	require.NoError(t, err)

	newKey := "skin-care"
	updated, err := service.UpdateCategory(context.Background(), created.ID, UpdateInput{Key: &newKey})
	require.NoError(t, err)

	assert.Equal(t, "skin-care", updated.Key)
	assert.JSONEq(t, `[{"label":"Guide"}]`, string(updated.References))
	assert.Len(t, updated.Translations, 1)
}

/*
TestUpdateCategory_NotFound verifies patches against unknown ids fail
without touching the cache.
*/
func TestUpdateCategory_NotFound(t *testing.T) {
	cache := &countingCache{}
	service := NewService(newFakeRepository(), cache)

	_, err := service.UpdateCategory(context.Background(), "missing-id", UpdateInput{})
	require.Error(t, err)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "NOT_FOUND", appError.Code)
	assert.Zero(t, cache.invalidations)
}

/*
TestDeleteCategory verifies deletion removes the entity, a repeat delete
reports not found, and each successful mutation drops the cache.
*/
func TestDeleteCategory(t *testing.T) {
	repository := newFakeRepository()
	cache := &countingCache{}
	service := NewService(repository, cache)

	created, err := service.CreateCategory(context.Background(), CreateInput{Key: "skincare"})
	require.NoError(t, err)

	require.NoError(t, service.DeleteCategory(context.Background(), created.ID))
	assert.Equal(t, 2, cache.invalidations)

	err = service.DeleteCategory(context.Background(), created.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	_, err = service.GetCategory(context.Background(), created.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestDeleteCategory_RemovesOwnedProducts verifies the delete takes the
category's products and their translations down with it: afterwards the
product listing for that category reports not found.
*/
func TestDeleteCategory_RemovesOwnedProducts(t *testing.T) {
	repository := newFakeRepository()
	service := NewService(repository, &countingCache{})

	created, err := service.CreateCategory(context.Background(), CreateInput{
		Key: "skincare",
		Translations: []catalog.CategoryTranslation{
			{LanguageCode: "en", Title: "Skincare"},
		},
	})
	require.NoError(t, err)

	repository.categories[created.ID].Products = []catalog.Product{
		{
			ID: "prod-1", Key: "hydrating-serum", CategoryID: created.ID,
			Translations: []catalog.ProductTranslation{
				{LanguageCode: "en", Title: "Hydrating Serum"},
			},
		},
	}

	products, err := service.ListCategoryProducts(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Len(t, products[0].Translations, 1)

	require.NoError(t, service.DeleteCategory(context.Background(), created.ID))

	_, err = service.ListCategoryProducts(context.Background(), created.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
