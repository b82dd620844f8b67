// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Chenar-ai/elegant-backend/internal/admin"
	"github.com/Chenar-ai/elegant-backend/internal/catalog/category"
	"github.com/Chenar-ai/elegant-backend/internal/catalog/product"
	"github.com/Chenar-ai/elegant-backend/internal/catalog/public"
	"github.com/Chenar-ai/elegant-backend/internal/contact"
	"github.com/Chenar-ai/elegant-backend/internal/platform/config"
	"github.com/Chenar-ai/elegant-backend/internal/platform/constants"
	"github.com/Chenar-ai/elegant-backend/internal/platform/middleware"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here; no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler. It always returns 200 if the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. It returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Admin handles account routes (signup, login, logout).
	Admin *admin.Handler

	// Category handles the admin category CRUD surface.
	Category *category.Handler

	// Product handles the admin product CRUD surface and projections.
	Product *product.Handler

	// Public serves the localized visitor-facing catalog.
	Public *public.Handler

	// Contact handles the public contact form.
	Contact *contact.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Static Uploads
	// The local image backend serves its upload directory directly.
	if cfg.StorageBackend == config.StorageBackendLocal {
		fileServer := http.FileServer(http.Dir(cfg.UploadDir))
		r.Handle(constants.StaticRoutePrefix+"*", http.StripPrefix(constants.StaticRoutePrefix, fileServer))
	}

	// # Application API
	r.Route("/api", func(api chi.Router) {

		// ## Public surface
		api.Mount("/catalog", h.Public.Routes())
		api.Mount("/contact", h.Contact.Routes())

		// ## Admin surface
		api.Route("/admin", func(adminRouter chi.Router) {

			// Account endpoints stay open; login is how tokens are obtained.
			adminRouter.Mount("/", h.Admin.Routes())

			// Catalog mutations require an authenticated admin.
			adminRouter.Group(func(protected chi.Router) {
				protected.Use(middleware.RequireAuth())
				protected.Mount("/categories", h.Category.Routes())
				protected.Mount("/products", h.Product.Routes())
			})
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
