// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

// Package ctxkey declares the private context key type shared by the
// middleware chain and the ctxutil accessors.
//
// Using an unexported key type prevents collisions with context values set
// by third-party packages.
package ctxkey

// Key is the context key type for all platform context values.
type Key string

const (
	// KeyRequestID stores the per-request correlation ID.
	KeyRequestID Key = "request_id"

	// KeyLogger stores the request-scoped *slog.Logger.
	KeyLogger Key = "logger"

	// KeyAuthAdmin stores the authenticated admin claims.
	KeyAuthAdmin Key = "auth_admin"
)
