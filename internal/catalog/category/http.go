// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

/*
Package category manages catalog categories and their translation sets.

It exposes the admin-facing CRUD surface for the top level of the catalog
tree. All mutations invalidate the localized catalog cache.

# Routing Strategy

  - Admin only: every endpoint here requires an authenticated admin; the
    router is mounted behind the auth middleware in the API server.
  - Public reads of the same data go through the public package instead.
*/
package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/Chenar-ai/elegant-backend/internal/platform/request"
	"github.com/Chenar-ai/elegant-backend/internal/platform/respond"
	"github.com/Chenar-ai/elegant-backend/internal/platform/validate"
)

// # Handler Implementation

// Handler implements the HTTP layer for category operations.
type Handler struct {
	service *Service
}

// NewHandler constructs a new category [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with category endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listCategories)
	router.Post("/", handler.createCategory)

	router.Route("/{id}", func(subRouter chi.Router) {
		subRouter.Get("/", handler.getCategory)
		subRouter.Put("/", handler.updateCategory)
		subRouter.Delete("/", handler.deleteCategory)
		subRouter.Get("/products", handler.listCategoryProducts)
	})

	return router
}

// # Category Endpoints

/*
GET /api/categories.

Description: Retrieves the full catalog tree for the admin dashboard,
with every translation and nested product included.

Response:
  - 200: []Category: Full admin view
*/
func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.ListCategories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, categories)
}

/*
GET /api/categories/{id}.

Description: Retrieves one category with its translation set.

Request:
  - id: string (Category UUID)

Response:
  - 200: Category: Success
  - 404: 404: NotFound: Category not found
*/
func (handler *Handler) getCategory(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	category, err := handler.service.GetCategory(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, category)
}

/*
GET /api/categories/{id}/products.

Description: Retrieves the products owned by one category, untranslated,
for the admin product table.

Request:
  - id: string (Category UUID)

Response:
  - 200: []Product: Success
  - 404: 404: NotFound: Category not found
*/
func (handler *Handler) listCategoryProducts(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	products, err := handler.service.ListCategoryProducts(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, products)
}

/*
POST /api/categories.

Description: Creates a category with an admin-chosen unique key, opaque
reference metadata and an optional initial translation set.

Request (Body):
  - key: string (URL-safe, unique)
  - references: JSON (opaque, optional)
  - translations: []CategoryTranslation (optional)

Response:
  - 201: Category: Created entity
  - 400: 400: ValidationError: Invalid input data
  - 409: 409: Conflict: Key already in use
*/
func (handler *Handler) createCategory(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	v.Required("key", input.Key).Slug("key", input.Key).MaxLen("key", input.Key, 100)
	v.RawJSON("references", input.References)

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.service.CreateCategory(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, category)
}

/*
PUT /api/categories/{id}.

Description: Applies a partial patch. A translations field present in the
body replaces the stored set wholesale; omitting it leaves the set alone.

Request:
  - id: string (Category UUID)
  - body: UpdateInput (JSON, partial)

Response:
  - 200: Category: Updated entity
  - 400: 400: ValidationError: Invalid input data
  - 404: 404: NotFound: Category not found
  - 409: 409: Conflict: Key already in use
*/
func (handler *Handler) updateCategory(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	if input.Key != nil {
		v.Required("key", *input.Key).Slug("key", *input.Key).MaxLen("key", *input.Key, 100)
	}
	v.RawJSON("references", input.References)

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.service.UpdateCategory(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, category)
}

/*
DELETE /api/categories/{id}.

Description: Deletes a category. All its translations, products and
product translations are removed in the same operation.

Request:
  - id: string (Category UUID)

Response:
  - 204: No Content: Success
  - 404: 404: NotFound: Category not found
*/
func (handler *Handler) deleteCategory(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "id")

	if err := handler.service.DeleteCategory(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
