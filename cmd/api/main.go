// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

// Command api is the entry point for the Elegant catalog API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Select the image storage backend (local disk or R2).
//  7. Wire HTTP handlers.
//  8. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Chenar-ai/elegant-backend/internal/admin"
	"github.com/Chenar-ai/elegant-backend/internal/api"
	"github.com/Chenar-ai/elegant-backend/internal/catalog/cache"
	"github.com/Chenar-ai/elegant-backend/internal/catalog/category"
	"github.com/Chenar-ai/elegant-backend/internal/catalog/product"
	"github.com/Chenar-ai/elegant-backend/internal/catalog/public"
	"github.com/Chenar-ai/elegant-backend/internal/contact"
	"github.com/Chenar-ai/elegant-backend/internal/platform/config"
	"github.com/Chenar-ai/elegant-backend/internal/platform/constants"
	"github.com/Chenar-ai/elegant-backend/internal/platform/migration"
	pgstore "github.com/Chenar-ai/elegant-backend/internal/platform/postgres"
	redisstore "github.com/Chenar-ai/elegant-backend/internal/platform/redis"
	"github.com/Chenar-ai/elegant-backend/internal/platform/sec"
	"github.com/Chenar-ai/elegant-backend/internal/storage/imagestore"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("storage_backend", cfg.StorageBackend),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Token Service ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.SessionSecret, constants.AuthIssuer)
	must(log, err, "initialize token service")

	// ── 7. Image Storage Backend ──────────────────────────────────────────
	var images product.ImageStore
	switch cfg.StorageBackend {
	case config.StorageBackendR2:
		images, err = imagestore.NewRemote(startupCtx, imagestore.RemoteOptions{
			Endpoint:      cfg.R2Endpoint,
			AccessKeyID:   cfg.R2AccessKeyID,
			SecretKey:     cfg.R2SecretKey,
			Bucket:        cfg.R2Bucket,
			PublicBaseURL: cfg.R2PublicBaseURL,
		})
	default:
		images, err = imagestore.NewLocal(cfg.UploadDir)
	}
	must(log, err, "initialize image storage")

	// ── 8. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 9. Domain Wiring ──────────────────────────────────────────────────
	catalogCache := cache.NewLocalizedCatalog(rdb)

	categoryRepository := category.NewPostgresRepository(pool)
	categoryService := category.NewService(categoryRepository, catalogCache)
	categoryHandler := category.NewHandler(categoryService)

	productRepository := product.NewPostgresRepository(pool)
	productService := product.NewService(productRepository, images, catalogCache)
	productHandler := product.NewHandler(productService, categoryService)

	publicService := public.NewService(categoryService, catalogCache)
	publicHandler := public.NewHandler(publicService)

	adminRepository := admin.NewPostgresRepository(pool)
	adminService := admin.NewService(adminRepository, jwtSvc)
	adminHandler := admin.NewHandler(adminService)

	mailer := contact.NewBrevoMailer(cfg.MailerAPIKey, cfg.MailerBaseURL)
	contactService := contact.NewService(mailer, cfg.ContactToEmail)
	contactHandler := contact.NewHandler(contactService)

	// ── 10. HTTP Server ───────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Admin:     adminHandler,
		Category:  categoryHandler,
		Product:   productHandler,
		Public:    publicHandler,
		Contact:   contactHandler,
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, handlers)

	// ── 11. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
