// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

package product

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chenar-ai/elegant-backend/internal/catalog"
	"github.com/Chenar-ai/elegant-backend/internal/platform/apperr"
	"github.com/Chenar-ai/elegant-backend/internal/platform/ctxutil"
	requestutil "github.com/Chenar-ai/elegant-backend/internal/platform/request"
	"github.com/Chenar-ai/elegant-backend/pkg/keygen"
)

// fakeRepository is an in-memory [Repository] that derives keys with the
// same probing generator as the real store.
type fakeRepository struct {
	products   map[string]*catalog.Product
	categories map[string]bool
	createErr  error
	updateErr  error
}

func newFakeRepository(categoryIDs ...string) *fakeRepository {
	repository := &fakeRepository{
		products:   make(map[string]*catalog.Product),
		categories: make(map[string]bool),
	}
	for _, id := range categoryIDs {
		repository.categories[id] = true
	}
	return repository
}

func (repository *fakeRepository) List(_ context.Context) ([]*catalog.Product, error) {
	var products []*catalog.Product
	for _, product := range repository.products {
		products = append(products, product)
	}
	return products, nil
}

func (repository *fakeRepository) FindByID(_ context.Context, id string) (*catalog.Product, error) {
	product, found := repository.products[id]
	if !found {
		return nil, apperr.NotFound("product")
	}
	clone := *product
	return &clone, nil
}

func (repository *fakeRepository) Create(_ context.Context, product *catalog.Product, keyCandidate string) error {
	if repository.createErr != nil {
		return repository.createErr
	}
	if !repository.categories[product.CategoryID] {
		return apperr.ValidationError("Referenced category does not exist")
	}

	key, err := keygen.Generate(keyCandidate, func(candidate string) (bool, error) {
		for _, existing := range repository.products {
			if existing.Key == candidate {
				return true, nil
			}
		}
		return false, nil
	})
	if err != nil {
		return err
	}
	product.Key = key

	clone := *product
	repository.products[product.ID] = &clone
	return nil
}

func (repository *fakeRepository) Update(_ context.Context, product *catalog.Product) error {
	if repository.updateErr != nil {
		return repository.updateErr
	}
	if _, found := repository.products[product.ID]; !found {
		return apperr.NotFound("product")
	}
	if !repository.categories[product.CategoryID] {
		return apperr.ValidationError("Referenced category does not exist")
	}
	clone := *product
	repository.products[product.ID] = &clone
	return nil
}

func (repository *fakeRepository) Delete(_ context.Context, id string) error {
	if _, found := repository.products[id]; !found {
		return apperr.NotFound("product")
	}
	delete(repository.products, id)
	return nil
}

// countingImageStore records every backend interaction.
type countingImageStore struct {
	saves   int
	removes []string
}

func (store *countingImageStore) Save(_ context.Context, _ io.Reader, originalFilename, _ string) (string, error) {
	store.saves++
	return fmt.Sprintf("/static/products/upload-%d-%s", store.saves, originalFilename), nil
}

func (store *countingImageStore) IsManaged(ref string) bool {
	return strings.HasPrefix(ref, "/static/products/")
}

func (store *countingImageStore) Remove(_ context.Context, ref string) error {
	store.removes = append(store.removes, ref)
	return nil
}

type noopCache struct{}

func (noopCache) Invalidate(_ context.Context) error { return nil }

func englishTranslation(title string) []catalog.ProductTranslation {
	return []catalog.ProductTranslation{
		{LanguageCode: "en", Title: title, Description: "A product"},
	}
}

/*
TestCreateProduct_KeySequence verifies colliding titles produce the
deterministic base, base-1, base-2 key sequence in creation order.
*/
func TestCreateProduct_KeySequence(t *testing.T) {
	repository := newFakeRepository("cat-1")
	service := NewService(repository, &countingImageStore{}, noopCache{})

	expectedKeys := []string{"hydrating-serum", "hydrating-serum-1", "hydrating-serum-2"}

	for _, expected := range expectedKeys {
		product, err := service.CreateProduct(context.Background(), CreateInput{
			CategoryID:   "cat-1",
			Translations: englishTranslation("Hydrating Serum"),
		})
		require.NoError(t, err)
		assert.Equal(t, expected, product.Key)
	}
}

/*
TestCreateProduct_RequiresTranslation verifies an empty translation set is
rejected before any upload or database call.
*/
func TestCreateProduct_RequiresTranslation(t *testing.T) {
	repository := newFakeRepository("cat-1")
	images := &countingImageStore{}
	service := NewService(repository, images, noopCache{})

	_, err := service.CreateProduct(context.Background(), CreateInput{
		CategoryID: "cat-1",
		Image:      &requestutil.Upload{Data: []byte("png"), Filename: "serum.png"},
	})
	require.Error(t, err)

	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	assert.Zero(t, images.saves)
	assert.Empty(t, repository.products)
}

/*
TestCreateProduct_UnknownCategory verifies a dead category reference fails
validation and persists nothing.
*/
func TestCreateProduct_UnknownCategory(t *testing.T) {
	repository := newFakeRepository("cat-1")
	service := NewService(repository, &countingImageStore{}, noopCache{})

	_, err := service.CreateProduct(context.Background(), CreateInput{
		CategoryID:   "cat-missing",
		Translations: englishTranslation("Hydrating Serum"),
	})
	require.Error(t, err)

	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	assert.Empty(t, repository.products)
}

/*
TestCreateProduct_WithImage verifies the upload happens once and its
reference lands on the persisted product.
*/
func TestCreateProduct_WithImage(t *testing.T) {
	repository := newFakeRepository("cat-1")
	images := &countingImageStore{}
	service := NewService(repository, images, noopCache{})

	product, err := service.CreateProduct(context.Background(), CreateInput{
		CategoryID:   "cat-1",
		Translations: englishTranslation("Clay Mask"),
		Image:        &requestutil.Upload{Data: []byte("png"), Filename: "mask.png", ContentType: "image/png"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, images.saves)
	require.NotNil(t, product.ImageURL)
	assert.True(t, strings.HasPrefix(*product.ImageURL, "/static/products/"))
}

/*
TestUpdateProduct_ExistingImagePassthrough verifies supplying the current
reference keeps image_url unchanged with zero image store calls.
*/
func TestUpdateProduct_ExistingImagePassthrough(t *testing.T) {
	repository := newFakeRepository("cat-1")
	images := &countingImageStore{}
	service := NewService(repository, images, noopCache{})

	created, err := service.CreateProduct(context.Background(), CreateInput{
		CategoryID:   "cat-1",
		Translations: englishTranslation("Clay Mask"),
		Image:        &requestutil.Upload{Data: []byte("png"), Filename: "mask.png"},
	})
	require.NoError(t, err)
	currentRef := *created.ImageURL
	savesBefore := images.saves

	updated, err := service.UpdateProduct(context.Background(), created.ID, UpdateInput{
		CategoryID:    "cat-1",
		Translations:  englishTranslation("Clay Mask Deluxe"),
		ExistingImage: currentRef,
	})
	require.NoError(t, err)

	require.NotNil(t, updated.ImageURL)
	assert.Equal(t, currentRef, *updated.ImageURL)
	assert.Equal(t, savesBefore, images.saves)
	assert.Empty(t, images.removes)
}

/*
TestUpdateProduct_ReplaceImage verifies a new upload replaces the stored
reference and the old managed object is removed after the write commits.
*/
func TestUpdateProduct_ReplaceImage(t *testing.T) {
	repository := newFakeRepository("cat-1")
	images := &countingImageStore{}
	service := NewService(repository, images, noopCache{})

	created, err := service.CreateProduct(context.Background(), CreateInput{
		CategoryID:   "cat-1",
		Translations: englishTranslation("Clay Mask"),
		Image:        &requestutil.Upload{Data: []byte("v1"), Filename: "mask.png"},
	})
	require.NoError(t, err)
	oldRef := *created.ImageURL

	updated, err := service.UpdateProduct(context.Background(), created.ID, UpdateInput{
		CategoryID:   "cat-1",
		Translations: englishTranslation("Clay Mask"),
		Image:        &requestutil.Upload{Data: []byte("v2"), Filename: "mask-v2.png"},
	})
	require.NoError(t, err)

	assert.NotEqual(t, oldRef, *updated.ImageURL)
	assert.Equal(t, []string{oldRef}, images.removes)
}

/*
TestUpdateProduct_ClearImage verifies omitting both image fields clears
the stored reference and drops the now-unreachable managed object.
*/
func TestUpdateProduct_ClearImage(t *testing.T) {
	repository := newFakeRepository("cat-1")
	images := &countingImageStore{}
	service := NewService(repository, images, noopCache{})

	created, err := service.CreateProduct(context.Background(), CreateInput{
		CategoryID:   "cat-1",
		Translations: englishTranslation("Clay Mask"),
		Image:        &requestutil.Upload{Data: []byte("png"), Filename: "mask.png"},
	})
	require.NoError(t, err)
	require.NotNil(t, created.ImageURL)

	updated, err := service.UpdateProduct(context.Background(), created.ID, UpdateInput{
		CategoryID:   "cat-1",
		Translations: englishTranslation("Clay Mask"),
	})
	require.NoError(t, err)

	assert.Nil(t, updated.ImageURL)
	assert.Equal(t, []string{*created.ImageURL}, images.removes)
}

/*
TestUpdateProduct_WholesaleReplace verifies an empty translation set wipes
every stored translation.
*/
func TestUpdateProduct_WholesaleReplace(t *testing.T) {
	repository := newFakeRepository("cat-1")
	service := NewService(repository, &countingImageStore{}, noopCache{})

	created, err := service.CreateProduct(context.Background(), CreateInput{
		CategoryID: "cat-1",
		Translations: []catalog.ProductTranslation{
			{LanguageCode: "en", Title: "Clay Mask", Description: ""},
			{LanguageCode: "fr", Title: "Masque d'argile", Description: ""},
		},
	})
	require.NoError(t, err)

	updated, err := service.UpdateProduct(context.Background(), created.ID, UpdateInput{
		CategoryID:   "cat-1",
		Translations: []catalog.ProductTranslation{},
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Translations)

	stored, err := service.GetProduct(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Translations)
}

/*
TestUpdateProduct_FailedWriteKeepsOrphan verifies a database failure after
an upload surfaces the original error and never deletes the new object;
the orphan is only logged.
*/
func TestUpdateProduct_FailedWriteKeepsOrphan(t *testing.T) {
	repository := newFakeRepository("cat-1")
	images := &countingImageStore{}
	service := NewService(repository, images, noopCache{})

	created, err := service.CreateProduct(context.Background(), CreateInput{
		CategoryID:   "cat-1",
		Translations: englishTranslation("Clay Mask"),
	})
	require.NoError(t, err)

	repository.updateErr = apperr.Internal(fmt.Errorf("connection reset"))

	_, err = service.UpdateProduct(context.Background(), created.ID, UpdateInput{
		CategoryID:   "cat-1",
		Translations: englishTranslation("Clay Mask"),
		Image:        &requestutil.Upload{Data: []byte("png"), Filename: "mask.png"},
	})
	require.Error(t, err)

	assert.Equal(t, 1, images.saves)
	assert.Empty(t, images.removes)
}

/*
TestUpdateProduct_FailedWriteWithRetainedImage verifies a database
failure on an update that only retains the current reference leaves the
image alone: no store calls, and no orphan warning for an object the
stored row still points at.
*/
func TestUpdateProduct_FailedWriteWithRetainedImage(t *testing.T) {
	repository := newFakeRepository("cat-1")
	images := &countingImageStore{}
	service := NewService(repository, images, noopCache{})

	created, err := service.CreateProduct(context.Background(), CreateInput{
		CategoryID:   "cat-1",
		Translations: englishTranslation("Clay Mask"),
		Image:        &requestutil.Upload{Data: []byte("png"), Filename: "mask.png"},
	})
	require.NoError(t, err)
	require.NotNil(t, created.ImageURL)

	var logged bytes.Buffer
	ctx := ctxutil.WithLogger(context.Background(),
		slog.New(slog.NewJSONHandler(&logged, nil)))

	repository.updateErr = apperr.Internal(fmt.Errorf("connection reset"))

	_, err = service.UpdateProduct(ctx, created.ID, UpdateInput{
		CategoryID:    "cat-1",
		Translations:  englishTranslation("Clay Mask"),
		ExistingImage: *created.ImageURL,
	})
	require.Error(t, err)

	assert.Equal(t, 1, images.saves)
	assert.Empty(t, images.removes)
	assert.NotContains(t, logged.String(), "product_image_orphaned")
}

/*
TestDeleteProduct verifies deletion removes the row and its managed image,
and a repeat delete reports not found.
*/
func TestDeleteProduct(t *testing.T) {
	repository := newFakeRepository("cat-1")
	images := &countingImageStore{}
	service := NewService(repository, images, noopCache{})

	created, err := service.CreateProduct(context.Background(), CreateInput{
		CategoryID:   "cat-1",
		Translations: englishTranslation("Clay Mask"),
		Image:        &requestutil.Upload{Data: []byte("png"), Filename: "mask.png"},
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteProduct(context.Background(), created.ID))
	assert.Len(t, images.removes, 1)

	err = service.DeleteProduct(context.Background(), created.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestListProductsByLanguage verifies the drop-when-untranslated projection.
*/
func TestListProductsByLanguage(t *testing.T) {
	repository := newFakeRepository("cat-1")
	service := NewService(repository, &countingImageStore{}, noopCache{})

	_, err := service.CreateProduct(context.Background(), CreateInput{
		CategoryID: "cat-1",
		Translations: []catalog.ProductTranslation{
			{LanguageCode: "en", Title: "Hydrating Serum", Description: ""},
			{LanguageCode: "fr", Title: "Sérum Hydratant", Description: ""},
		},
	})
	require.NoError(t, err)

	_, err = service.CreateProduct(context.Background(), CreateInput{
		CategoryID: "cat-1",
		Translations: []catalog.ProductTranslation{
			{LanguageCode: "fr", Title: "Masque d'argile", Description: ""},
		},
	})
	require.NoError(t, err)

	// French: both products appear
	french, err := service.ListProductsByLanguage(context.Background(), "fr")
	require.NoError(t, err)
	assert.Len(t, french, 2)

	// German falls back to English; the french-only product is dropped
	german, err := service.ListProductsByLanguage(context.Background(), "de")
	require.NoError(t, err)
	require.Len(t, german, 1)
	assert.Equal(t, "Hydrating Serum", german[0].Title)
}
