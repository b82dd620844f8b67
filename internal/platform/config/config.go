// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, storage) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Storage backend selectors for [Config.StorageBackend].
const (
	StorageBackendLocal = "local"
	StorageBackendR2    = "r2"
)

// # Configuration Schema

// Config holds all runtime configuration for the Elegant API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// SessionSecret signs admin access tokens (HS256).
	SessionSecret string `env:"SESSION_SECRET,required"`

	// Image storage backend: "local" (disk + /static file server) or
	// "r2" (Cloudflare R2 / any S3-compatible bucket).
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"local"`

	// Local-disk backend settings
	UploadDir string `env:"UPLOAD_DIR" envDefault:"./static/products"`

	// Object Storage (Cloudflare R2 / S3-compatible)
	R2Endpoint      string `env:"R2_ENDPOINT"`
	R2AccessKeyID   string `env:"R2_ACCESS_KEY_ID"`
	R2SecretKey     string `env:"R2_SECRET_ACCESS_KEY"`
	R2Bucket        string `env:"R2_BUCKET"`
	R2PublicBaseURL string `env:"R2_PUBLIC_BASE_URL"`

	// Transactional email (contact form)
	MailerAPIKey  string `env:"MAILER_API_KEY"`
	MailerBaseURL string `env:"MAILER_BASE_URL" envDefault:"https://api.brevo.com/v3"`
	ContactToEmail string `env:"CONTACT_TO_EMAIL"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	// Cross-field checks that struct tags cannot express.
	if cfg.StorageBackend == StorageBackendR2 {
		if cfg.R2Endpoint == "" || cfg.R2AccessKeyID == "" || cfg.R2SecretKey == "" || cfg.R2Bucket == "" || cfg.R2PublicBaseURL == "" {
			return nil, fmt.Errorf("config: STORAGE_BACKEND=r2 requires R2_ENDPOINT, R2_ACCESS_KEY_ID, R2_SECRET_ACCESS_KEY, R2_BUCKET and R2_PUBLIC_BASE_URL")
		}
	} else if cfg.StorageBackend != StorageBackendLocal {
		return nil, fmt.Errorf("config: unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedExtraOrigins returns the comma-separated EXTRA_ORIGINS as a slice.
func (c *Config) AllowedExtraOrigins() []string {
	if c.ExtraOrigins == "" {
		return nil
	}
	parts := strings.Split(c.ExtraOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
