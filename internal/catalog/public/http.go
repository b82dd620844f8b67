// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

/*
Package public serves the visitor-facing, localized view of the catalog.

Unlike the admin packages it exposes no mutations and requires no
authentication; its single endpoint is the hottest path of the API and is
backed by the Redis catalog cache.
*/
package public

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/Chenar-ai/elegant-backend/internal/platform/request"
	"github.com/Chenar-ai/elegant-backend/internal/platform/respond"
)

// Handler implements the public catalog HTTP layer.
type Handler struct {
	service *Service
}

// NewHandler constructs a public catalog [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the public catalog endpoint.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{lang}", handler.localizedCatalog)

	return router
}

/*
GET /api/catalog/{lang}.

Description: Retrieves the whole catalog localized to one language.
Region subtags are tolerated ("en-US" serves "en"); missing translations
fall back to English, then drop products / blank categories.

Request:
  - lang: string (Language tag)

Response:
  - 200: []LocalizedCategory: Localized catalog tree
*/
func (handler *Handler) localizedCatalog(writer http.ResponseWriter, request *http.Request) {
	language := requestutil.Param(request, "lang")

	localizedCatalog, err := handler.service.LocalizedCatalog(request.Context(), language)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, localizedCatalog)
}
