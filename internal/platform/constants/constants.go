// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Localization: The supported language set and fallback language.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "elegant-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	// Product image uploads arrive as multipart bodies, so this is more generous
	// than a pure-JSON API would need.
	DefaultReadTimeout = 30 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Localization

// FallbackLanguage is used when no translation exists for the requested language.
const FallbackLanguage = "en"

// SupportedLanguages is the enumerable set of language codes the catalog
// stores translations for. The frontend language switcher mirrors this list.
var SupportedLanguages = []string{"en", "fr", "ar", "es", "de", "nl", "pt"}

// IsSupportedLanguage reports whether code is one of [SupportedLanguages].
func IsSupportedLanguage(code string) bool {
	for _, supported := range SupportedLanguages {
		if code == supported {
			return true
		}
	}
	return false
}

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in admin JWTs.
	AuthIssuer = "elegant.global"

	// AccessTokenTTL is the lifetime of an admin access token.
	AccessTokenTTL = 60 * time.Minute
)

// # Image Uploads

const (
	// MaxUploadBytes bounds the in-memory portion of a multipart product upload.
	MaxUploadBytes = 10 << 20 // 10 MiB

	// StaticRoutePrefix is where the local image backend serves uploaded files.
	StaticRoutePrefix = "/static/products/"

	// RemoteObjectPrefix is the object-key prefix used by the R2 image backend.
	RemoteObjectPrefix = "products/"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldMessage = "message"
	FieldStatus  = "status"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	// RedisPrefixCatalog keys the cached localized catalog, one entry per
	// normalized language code.
	RedisPrefixCatalog = "catalog:localized:"
)
