// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

package product

import (
	"context"

	"github.com/Chenar-ai/elegant-backend/internal/catalog"
)

// Repository defines persistence operations for products and their
// translation sets.
//
// Key derivation happens inside Create's transaction: the uniqueness
// probe and the insert share one transaction so concurrent creates with
// colliding titles cannot race, with the unique index as the backstop.
type Repository interface {

	// List returns all products with nested translations.
	List(context context.Context) ([]*catalog.Product, error)

	// FindByID returns one product with its translations.
	FindByID(context context.Context, id string) (*catalog.Product, error)

	// Create derives the product key from keyCandidate, verifies the
	// category exists, and inserts the product with its translations,
	// all in one transaction. The generated key is written back onto
	// product.Key.
	Create(context context.Context, product *catalog.Product, keyCandidate string) error

	// Update overwrites the product's category, image reference and
	// translation set. The key is never regenerated. Translation
	// replacement is wholesale within the same transaction.
	Update(context context.Context, product *catalog.Product) error

	// Delete removes a product and its translations.
	Delete(context context.Context, id string) error
}
