// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

package category

import (
	"context"

	"github.com/Chenar-ai/elegant-backend/internal/catalog"
)

// Repository defines persistence operations for categories and their
// translation sets.
//
// Every mutating operation runs inside a single database transaction so a
// reader never observes a category separated from its translations.
type Repository interface {

	// List returns all categories with nested translations and products.
	List(context context.Context) ([]*catalog.Category, error)

	// FindByID returns one category with its translations (no products).
	FindByID(context context.Context, id string) (*catalog.Category, error)

	// ListProducts returns the products of one category with translations.
	ListProducts(context context.Context, categoryID string) ([]*catalog.Product, error)

	// Create inserts a category and its initial translation set.
	// A duplicate key surfaces as a conflict.
	Create(context context.Context, category *catalog.Category) error

	// Update overwrites category fields. When replaceTranslations is true
	// the stored translation set is deleted and replaced wholesale with
	// category.Translations, which may be empty.
	Update(context context.Context, category *catalog.Category, replaceTranslations bool) error

	// Delete removes a category, cascading to its translations, products
	// and product translations. Unknown ids surface as not found.
	Delete(context context.Context, id string) error
}
