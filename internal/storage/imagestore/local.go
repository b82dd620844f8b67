// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

package imagestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Chenar-ai/elegant-backend/internal/platform/apperr"
	"github.com/Chenar-ai/elegant-backend/internal/platform/constants"
)

// Local stores images on the server filesystem. The API serves the
// upload directory under [constants.StaticRoutePrefix].
type Local struct {
	uploadDir string
}

// NewLocal creates the upload directory if needed and returns the backend.
func NewLocal(uploadDir string) (*Local, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("imagestore: failed to create upload directory %q: %w", uploadDir, err)
	}

	return &Local{uploadDir: uploadDir}, nil
}

/*
Save writes the image to disk under a random filename and returns the
static route the file is served from, e.g. "/static/products/3f2a...c1.png".
*/
func (store *Local) Save(context context.Context, content io.Reader, originalFilename, contentType string) (string, error) {

	// 1. Pick a collision-free name preserving the upload's extension
	filename := randomFilename(originalFilename)
	destination := filepath.Join(store.uploadDir, filename)

	// 2. Create the destination file
	file, err := os.Create(destination)
	if err != nil {
		return "", apperr.Storage(fmt.Errorf("imagestore: create %q: %w", destination, err))
	}

	// 3. Stream the upload onto disk
	if _, err := io.Copy(file, content); err != nil {
		file.Close()
		os.Remove(destination)
		return "", apperr.Storage(fmt.Errorf("imagestore: write %q: %w", destination, err))
	}

	if err := file.Close(); err != nil {
		os.Remove(destination)
		return "", apperr.Storage(fmt.Errorf("imagestore: close %q: %w", destination, err))
	}

	return constants.StaticRoutePrefix + filename, nil
}

// IsManaged reports whether ref is a static route served by this backend.
func (store *Local) IsManaged(ref string) bool {
	return strings.HasPrefix(ref, constants.StaticRoutePrefix)
}

// Remove deletes a previously saved image. Unmanaged references are ignored.
func (store *Local) Remove(context context.Context, ref string) error {
	if !store.IsManaged(ref) {
		return nil
	}

	filename := filepath.Base(strings.TrimPrefix(ref, constants.StaticRoutePrefix))

	if err := os.Remove(filepath.Join(store.uploadDir, filename)); err != nil && !os.IsNotExist(err) {
		return apperr.Storage(fmt.Errorf("imagestore: remove %q: %w", filename, err))
	}

	return nil
}
