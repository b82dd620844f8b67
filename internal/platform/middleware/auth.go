// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

package middleware

import (
	"net/http"
	"strings"

	"github.com/Chenar-ai/elegant-backend/internal/platform/ctxutil"
	"github.com/Chenar-ai/elegant-backend/internal/platform/sec"
)

// # Admin Authentication

// TokenVerifier validates an access token and returns its claims.
// [sec.TokenService] satisfies it.
type TokenVerifier interface {
	VerifyAccessToken(tokenString string) (*sec.AuthClaims, error)
}

// Authenticate verifies a Bearer access token, if present, and attaches the
// resulting admin claims to the request context. Requests without a token
// pass through as anonymous; rejection is [RequireAuth]'s job.
func Authenticate(tokens TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// 1. Extract the token from the Authorization header
			authHeader := request.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || tokenString == "" {
				writeError(writer, http.StatusUnauthorized, "UNAUTHORIZED", "Malformed Authorization header")
				return
			}

			// 2. Verify signature, issuer and expiry
			claims, err := tokens.VerifyAccessToken(tokenString)
			if err != nil {
				reqLogger := ctxutil.GetLogger(request.Context())
				reqLogger.WarnContext(request.Context(), "auth_token_rejected", "error", err)

				writeError(writer, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired access token")
				return
			}

			// 3. Attach the verified admin to the context
			ctx := ctxutil.WithAuthAdmin(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth rejects requests that did not authenticate as an admin.
// It must be mounted after [Authenticate] in the chain.
func RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			if ctxutil.GetAuthAdmin(request.Context()) == nil {
				writeError(writer, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
