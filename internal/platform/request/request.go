// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction, common body
decoding patterns, and multipart form handling for product image uploads,
ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/Chenar-ai/elegant-backend/internal/platform/apperr"
	"github.com/Chenar-ai/elegant-backend/internal/platform/constants"
	"github.com/Chenar-ai/elegant-backend/internal/platform/ctxutil"
	"github.com/Chenar-ai/elegant-backend/internal/platform/sec"
	"github.com/Chenar-ai/elegant-backend/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter (UUID/slug) from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

// # Multipart Forms

// Upload carries the bytes and metadata of one uploaded file.
type Upload struct {
	Data        []byte
	Filename    string
	ContentType string
}

// Ext returns the lowercase filename extension including the dot, or "".
func (u *Upload) Ext() string {
	return filepath.Ext(u.Filename)
}

/*
ParseMultipart parses the request body as a multipart form.

The in-memory buffer is bounded by [constants.MaxUploadBytes]; larger uploads
spill to temporary files managed by net/http.
*/
func ParseMultipart(request *http.Request) error {
	if err := request.ParseMultipartForm(constants.MaxUploadBytes); err != nil {
		return apperr.ValidationError("Invalid multipart form")
	}
	return nil
}

/*
FormFile extracts a named file from a parsed multipart form.

Returns (nil, nil) when the field is absent: an optional image simply was
not supplied.
*/
func FormFile(request *http.Request, name string) (*Upload, error) {
	file, header, err := request.FormFile(name)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, apperr.ValidationError("Invalid file field: " + name)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, apperr.ValidationError("Failed to read uploaded file")
	}

	return &Upload{
		Data:        data,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	}, nil
}

// FormValue returns a (trimmed-as-sent) multipart/urlencoded form value.
func FormValue(request *http.Request, name string) string {
	return request.FormValue(name)
}

// # Authentication

/*
RequiredAdmin ensures the request is authenticated and returns the admin claims.

Returns:
  - *sec.AuthClaims: The authenticated admin claims
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredAdmin(request *http.Request) (*sec.AuthClaims, error) {

	// Get admin claims injected by the authentication middleware
	claims := ctxutil.GetAuthAdmin(request.Context())

	// If the request is not authenticated, return an error
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	return claims, nil
}
