// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

package imagestore

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Chenar-ai/elegant-backend/internal/platform/apperr"
	"github.com/Chenar-ai/elegant-backend/internal/platform/constants"
)

// Remote stores images in a Cloudflare R2 bucket (or any S3-compatible
// object store) and returns absolute URLs built from the bucket's public
// base URL.
type Remote struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

// RemoteOptions carries the credentials and addressing for [NewRemote].
type RemoteOptions struct {
	Endpoint      string
	AccessKeyID   string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
}

// NewRemote connects to the object store and ensures the bucket exists.
func NewRemote(context context.Context, options RemoteOptions) (*Remote, error) {

	// 1. Build the S3 client. R2 endpoints are always TLS.
	client, err := minio.New(options.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(options.AccessKeyID, options.SecretKey, ""),
		Secure: true,
	})
	if err != nil {
		return nil, fmt.Errorf("imagestore: failed to create object storage client: %w", err)
	}

	// 2. Create the bucket on first run
	exists, err := client.BucketExists(context, options.Bucket)
	if err != nil {
		return nil, fmt.Errorf("imagestore: failed to check bucket %q: %w", options.Bucket, err)
	}

	if !exists {
		if err := client.MakeBucket(context, options.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("imagestore: failed to create bucket %q: %w", options.Bucket, err)
		}
	}

	return &Remote{
		client:        client,
		bucket:        options.Bucket,
		publicBaseURL: strings.TrimSuffix(options.PublicBaseURL, "/"),
	}, nil
}

/*
Save streams the image into the bucket under the products/ prefix and
returns the public URL, e.g. "https://cdn.elegant.global/products/3f2a...c1.png".
*/
func (store *Remote) Save(context context.Context, content io.Reader, originalFilename, contentType string) (string, error) {

	objectKey := constants.RemoteObjectPrefix + randomFilename(originalFilename)

	// Size -1 streams the body without buffering it in memory first
	_, err := store.client.PutObject(context, store.bucket, objectKey, content, -1, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", apperr.Storage(fmt.Errorf("imagestore: upload %q: %w", objectKey, err))
	}

	return store.publicBaseURL + "/" + objectKey, nil
}

// IsManaged reports whether ref is a public URL under this bucket's base URL.
func (store *Remote) IsManaged(ref string) bool {
	return strings.HasPrefix(ref, store.publicBaseURL+"/"+constants.RemoteObjectPrefix)
}

// Remove deletes a previously uploaded object. Unmanaged references are ignored.
func (store *Remote) Remove(context context.Context, ref string) error {
	if !store.IsManaged(ref) {
		return nil
	}

	objectKey := strings.TrimPrefix(ref, store.publicBaseURL+"/")

	if err := store.client.RemoveObject(context, store.bucket, objectKey, minio.RemoveObjectOptions{}); err != nil {
		return apperr.Storage(fmt.Errorf("imagestore: remove %q: %w", objectKey, err))
	}

	return nil
}
