// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Chenar-ai/elegant-backend/internal/platform/ctxutil"
	"github.com/Chenar-ai/elegant-backend/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	// 1. Initially should be empty
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	// 2. Inject and retrieve
	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies logger injection and the default fallback.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()

	// 1. Fallback: never nil
	assert.NotNil(t, ctxutil.GetLogger(ctx))

	// 2. Inject and retrieve the same instance
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Same(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_AuthAdmin verifies admin claims injection and anonymous default.
*/
func TestContext_AuthAdmin(t *testing.T) {
	ctx := context.Background()

	// 1. Anonymous requests carry no claims
	assert.Nil(t, ctxutil.GetAuthAdmin(ctx))

	// 2. Inject and retrieve
	claims := &sec.AuthClaims{AdminID: "admin-1", Email: "admin@elegant.global"}
	ctx = ctxutil.WithAuthAdmin(ctx, claims)
	assert.Same(t, claims, ctxutil.GetAuthAdmin(ctx))
}
