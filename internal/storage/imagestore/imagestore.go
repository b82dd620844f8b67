// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

/*
Package imagestore abstracts persistence of uploaded product images.

Two interchangeable backends implement [Store]:

  - [Local]: writes files to a directory served by the API under /static.
  - [Remote]: uploads objects to a Cloudflare R2 (S3-compatible) bucket.

The catalog layer only ever sees opaque image references (URL paths or
absolute URLs) and never knows which backend produced them.
*/
package imagestore

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// # Storage Contract

// Store persists uploaded image content and returns a public reference
// suitable for storing on a product row.
type Store interface {

	// Save writes the image content and returns its public reference.
	// The original filename is only consulted for its extension.
	Save(context context.Context, content io.Reader, originalFilename, contentType string) (string, error)

	// IsManaged reports whether ref points at an image this backend owns.
	// References from other backends (or external URLs pasted by admins)
	// are passed through untouched on update.
	IsManaged(ref string) bool

	// Remove deletes a previously saved image. Unmanaged references and
	// already-deleted images are ignored without error.
	Remove(context context.Context, ref string) error
}

// # Naming

// randomFilename returns a collision-free object name preserving the
// extension of the uploaded file. Extensions are normalized to lowercase
// so "photo.JPG" and "photo.jpg" land in the same namespace.
func randomFilename(originalFilename string) string {
	name := strings.ReplaceAll(uuid.New().String(), "-", "")

	ext := strings.ToLower(filepath.Ext(originalFilename))
	if ext == "" {
		ext = ".bin"
	}

	return name + ext
}
