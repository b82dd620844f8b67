// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

/*
Package product manages catalog products, their translations and images.

Products are created and updated through multipart forms because the
admin dashboard submits image binaries alongside the JSON translation
payload in a single request.

# Form Contract

  - category_id: owning category UUID (required)
  - translations: JSON array of {language_code, title, description}
  - image: optional file upload
  - existingImage: optional prior reference, retained verbatim on update
*/
package product

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Chenar-ai/elegant-backend/internal/catalog"
	requestutil "github.com/Chenar-ai/elegant-backend/internal/platform/request"
	"github.com/Chenar-ai/elegant-backend/internal/platform/respond"
	"github.com/Chenar-ai/elegant-backend/internal/platform/validate"
)

// # Handler Implementation

// Handler implements the HTTP layer for product operations.
type Handler struct {
	service    *Service
	categories CategoryLister
}

// NewHandler constructs a new product [Handler].
func NewHandler(service *Service, categories CategoryLister) *Handler {
	return &Handler{service: service, categories: categories}
}

// Routes returns a [chi.Router] configured with product endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listProducts)
	router.Post("/", handler.createProduct)
	router.Get("/by-lang/{lang}", handler.listProductsByLanguage)
	router.Get("/grouped", handler.listProductsGrouped)

	router.Route("/{id}", func(subRouter chi.Router) {
		subRouter.Get("/", handler.getProduct)
		subRouter.Put("/", handler.updateProduct)
		subRouter.Delete("/", handler.deleteProduct)
	})

	return router
}

// # Product Endpoints

/*
GET /api/admin/products.

Description: Retrieves every product with all translations for the admin
dashboard.

Response:
  - 200: []Product: Full admin view
*/
func (handler *Handler) listProducts(writer http.ResponseWriter, request *http.Request) {
	products, err := handler.service.ListProducts(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, products)
}

/*
GET /api/admin/products/by-lang/{lang}.

Description: Retrieves products projected to a single language using the
fallback resolver. Products with no usable translation are omitted.

Request:
  - lang: string (Language tag, e.g. "fr" or "en-US")

Response:
  - 200: []LocalizedProduct: Single-language projection
  - 400: 400: ValidationError: Unsupported language
*/
func (handler *Handler) listProductsByLanguage(writer http.ResponseWriter, request *http.Request) {
	language := requestutil.Param(request, "lang")

	products, err := handler.service.ListProductsByLanguage(request.Context(), language)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, products)
}

/*
GET /api/admin/products/grouped.

Description: Retrieves all products bucketed per category for the admin
overview table. Empty categories are included.

Response:
  - 200: []GroupedProducts: Products per category
*/
func (handler *Handler) listProductsGrouped(writer http.ResponseWriter, request *http.Request) {
	groups, err := handler.service.ListProductsGrouped(request.Context(), handler.categories)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, groups)
}

/*
GET /api/admin/products/{id}.

Description: Retrieves one product with its translation set.

Request:
  - id: string (Product UUID)

Response:
  - 200: Product: Success
  - 404: 404: NotFound: Product not found
*/
func (handler *Handler) getProduct(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	product, err := handler.service.GetProduct(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, product)
}

/*
POST /api/admin/products.

Description: Creates a product from a multipart form. The unique key is
derived server-side from the default-language title; an optional image is
stored before the catalog row is written.

Request (Multipart):
  - category_id: string (Category UUID)
  - translations: string (JSON array, at least one entry)
  - image: file (optional)

Response:
  - 201: Product: Created entity with derived key
  - 400: 400: ValidationError: Invalid form, payload or category
  - 409: 409: Conflict: Derived key collided despite probing
  - 502: 502: StorageError: Image backend failure
*/
func (handler *Handler) createProduct(writer http.ResponseWriter, request *http.Request) {
	input, err := decodeProductForm(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	product, err := handler.service.CreateProduct(request.Context(), CreateInput{
		CategoryID:   input.categoryID,
		Translations: input.translations,
		Image:        input.image,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, product)
}

/*
PUT /api/admin/products/{id}.

Description: Updates a product from a multipart form. Translations are
replaced wholesale. Supplying existingImage keeps the current reference
without touching the image store; supplying neither clears the image.

Request (Multipart):
  - id: string (Product UUID)
  - category_id: string (Category UUID)
  - translations: string (JSON array, may be empty)
  - image: file (optional)
  - existingImage: string (optional)

Response:
  - 200: Product: Updated entity
  - 400: 400: ValidationError: Invalid form, payload or category
  - 404: 404: NotFound: Product not found
  - 502: 502: StorageError: Image backend failure
*/
func (handler *Handler) updateProduct(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	input, err := decodeProductForm(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	product, err := handler.service.UpdateProduct(request.Context(), id, UpdateInput{
		CategoryID:    input.categoryID,
		Translations:  input.translations,
		Image:         input.image,
		ExistingImage: input.existingImage,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, product)
}

/*
DELETE /api/admin/products/{id}.

Description: Deletes a product and its translations. A managed image
object is removed best-effort.

Request:
  - id: string (Product UUID)

Response:
  - 204: No Content: Success
  - 404: 404: NotFound: Product not found
*/
func (handler *Handler) deleteProduct(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	if err := handler.service.DeleteProduct(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Form Decoding

type productForm struct {
	categoryID    string
	translations  []catalog.ProductTranslation
	image         *requestutil.Upload
	existingImage string
}

// decodeProductForm parses and validates the shared multipart contract of
// product create and update.
func decodeProductForm(request *http.Request) (*productForm, error) {
	if err := requestutil.ParseMultipart(request); err != nil {
		return nil, err
	}

	form := &productForm{
		categoryID:    requestutil.FormValue(request, "category_id"),
		existingImage: requestutil.FormValue(request, "existingImage"),
	}

	v := &validate.Validator{}
	v.Required("category_id", form.categoryID).UUID("category_id", form.categoryID)
	if err := v.Err(); err != nil {
		return nil, err
	}

	rawTranslations := requestutil.FormValue(request, "translations")
	if rawTranslations != "" {
		if err := json.Unmarshal([]byte(rawTranslations), &form.translations); err != nil {
			return nil, validate.ErrInvalidJSON
		}
	}

	image, err := requestutil.FormFile(request, "image")
	if err != nil {
		return nil, err
	}
	form.image = image

	return form, nil
}
