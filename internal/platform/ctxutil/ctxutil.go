// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

// Package ctxutil provides typed accessors for request-scoped context values.
//
// It is the only place that reads or writes [ctxkey] values, keeping the
// rest of the codebase free of unchecked type assertions.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/Chenar-ai/elegant-backend/internal/platform/ctxkey"
	"github.com/Chenar-ai/elegant-backend/internal/platform/sec"
)

// # Request ID

// WithRequestID returns a copy of ctx carrying the correlation ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, requestID)
}

// GetRequestID returns the correlation ID, or "" if none was set.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(ctxkey.KeyRequestID).(string); ok {
		return id
	}
	return ""
}

// # Request Logger

// WithLogger returns a copy of ctx carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger returns the request-scoped logger, falling back to [slog.Default].
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

// # Authenticated Admin

// WithAuthAdmin returns a copy of ctx carrying the verified admin claims.
func WithAuthAdmin(ctx context.Context, claims *sec.AuthClaims) context.Context {
	return context.WithValue(ctx, ctxkey.KeyAuthAdmin, claims)
}

// GetAuthAdmin returns the authenticated admin claims, or nil for anonymous requests.
func GetAuthAdmin(ctx context.Context) *sec.AuthClaims {
	if claims, ok := ctx.Value(ctxkey.KeyAuthAdmin).(*sec.AuthClaims); ok {
		return claims
	}
	return nil
}
