// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

package category

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Chenar-ai/elegant-backend/internal/catalog"
	"github.com/Chenar-ai/elegant-backend/internal/platform/apperr"
	"github.com/Chenar-ai/elegant-backend/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed category store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Category Retrieval

/*
List returns every category with its full translation set and nested
products, ordered by creation time.

Description: Fetches in three flat queries and assembles the tree in
memory. This keeps the SQL trivial and avoids row duplication from joins;
the whole catalog is small enough to hydrate at once.

Returns:
  - []*catalog.Category: Fully hydrated category tree
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) List(context context.Context) ([]*catalog.Category, error) {

	// 1. Category rows
	const categoryQuery = `
		SELECT id, key, references_blob, created_at, updated_at
		FROM categories
		ORDER BY created_at ASC
	`
	rows, err := repository.db.Query(context, categoryQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}

	var categories []*catalog.Category
	byID := make(map[string]*catalog.Category)

	for rows.Next() {
		category := &catalog.Category{
			Translations: []catalog.CategoryTranslation{},
			Products:     []catalog.Product{},
		}
		err := rows.Scan(&category.ID, &category.Key, &category.References, &category.CreatedAt, &category.UpdatedAt)
		if err != nil {
			rows.Close()
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, category)
		byID[category.ID] = category
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}

	// 2. Category translations
	const translationQuery = `
		SELECT category_id, language_code, title, intro
		FROM category_translations
		ORDER BY language_code ASC
	`
	translationRows, err := repository.db.Query(context, translationQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "list_category_translations")
	}

	for translationRows.Next() {
		var categoryID string
		var translation catalog.CategoryTranslation
		err := translationRows.Scan(&categoryID, &translation.LanguageCode, &translation.Title, &translation.Intro)
		if err != nil {
			translationRows.Close()
			return nil, dberr.Wrap(err, "scan_category_translation")
		}
		if category, found := byID[categoryID]; found {
			category.Translations = append(category.Translations, translation)
		}
	}
	translationRows.Close()
	if err := translationRows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_category_translations")
	}

	// 3. Products with their translations
	products, err := repository.fetchProducts(context, "")
	if err != nil {
		return nil, err
	}

	for _, product := range products {
		if category, found := byID[product.CategoryID]; found {
			category.Products = append(category.Products, *product)
		}
	}

	return categories, nil
}

/*
FindByID retrieves one category with its translation set.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *catalog.Category: Hydrated entity without products
  - error: Not-found or database retrieval failures
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*catalog.Category, error) {
	const query = `
		SELECT id, key, references_blob, created_at, updated_at
		FROM categories
		WHERE id = $1
	`
	category := &catalog.Category{Translations: []catalog.CategoryTranslation{}}
	err := repository.db.QueryRow(context, query, id).Scan(
		&category.ID, &category.Key, &category.References, &category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "category")
	}

	const translationQuery = `
		SELECT language_code, title, intro
		FROM category_translations
		WHERE category_id = $1
		ORDER BY language_code ASC
	`
	rows, err := repository.db.Query(context, translationQuery, id)
	if err != nil {
		return nil, dberr.Wrap(err, "list_category_translations")
	}
	defer rows.Close()

	for rows.Next() {
		var translation catalog.CategoryTranslation
		if err := rows.Scan(&translation.LanguageCode, &translation.Title, &translation.Intro); err != nil {
			return nil, dberr.Wrap(err, "scan_category_translation")
		}
		category.Translations = append(category.Translations, translation)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_category_translations")
	}

	return category, nil
}

/*
ListProducts returns all products belonging to one category.

Parameters:
  - context: context.Context
  - categoryID: string

Returns:
  - []*catalog.Product: Products with nested translations
  - error: Not-found or database retrieval failures
*/
func (repository *PostgresRepository) ListProducts(context context.Context, categoryID string) ([]*catalog.Product, error) {

	// Surface a not-found for unknown categories instead of an empty list
	if _, err := repository.FindByID(context, categoryID); err != nil {
		return nil, err
	}

	return repository.fetchProducts(context, categoryID)
}

// fetchProducts loads products and their translations, optionally scoped
// to one category. An empty categoryID loads the whole catalog.
func (repository *PostgresRepository) fetchProducts(context context.Context, categoryID string) ([]*catalog.Product, error) {
	query := `
		SELECT id, category_id, key, image_url, created_at, updated_at
		FROM products
	`
	args := []any{}
	if categoryID != "" {
		query += ` WHERE category_id = $1`
		args = append(args, categoryID)
	}
	query += ` ORDER BY created_at ASC`

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_products")
	}

	var products []*catalog.Product
	byID := make(map[string]*catalog.Product)

	for rows.Next() {
		product := &catalog.Product{Translations: []catalog.ProductTranslation{}}
		err := rows.Scan(&product.ID, &product.CategoryID, &product.Key, &product.ImageURL, &product.CreatedAt, &product.UpdatedAt)
		if err != nil {
			rows.Close()
			return nil, dberr.Wrap(err, "scan_product")
		}
		products = append(products, product)
		byID[product.ID] = product
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_products")
	}

	if len(products) == 0 {
		return products, nil
	}

	translationQuery := `
		SELECT pt.product_id, pt.language_code, pt.title, pt.description
		FROM product_translations pt
	`
	translationArgs := []any{}
	if categoryID != "" {
		translationQuery += `
			JOIN products p ON pt.product_id = p.id
			WHERE p.category_id = $1
		`
		translationArgs = append(translationArgs, categoryID)
	}
	translationQuery += ` ORDER BY pt.language_code ASC`

	translationRows, err := repository.db.Query(context, translationQuery, translationArgs...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_product_translations")
	}
	defer translationRows.Close()

	for translationRows.Next() {
		var productID string
		var translation catalog.ProductTranslation
		err := translationRows.Scan(&productID, &translation.LanguageCode, &translation.Title, &translation.Description)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_product_translation")
		}
		if product, found := byID[productID]; found {
			product.Translations = append(product.Translations, translation)
		}
	}
	if err := translationRows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_product_translations")
	}

	return products, nil
}

// # Category Mutation

/*
Create inserts a category and its translation set in one transaction.

Description: The unique index on key acts as the conflict backstop; a
23505 violation surfaces as a conflict error through dberr.

Parameters:
  - context: context.Context
  - category: *catalog.Category (ID pre-assigned by the service)

Returns:
  - error: Conflict or persistence failures
*/
func (repository *PostgresRepository) Create(context context.Context, category *catalog.Category) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_category_tx")
	}
	defer transaction.Rollback(context)

	const insertQuery = `
		INSERT INTO categories (id, key, references_blob, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err = transaction.QueryRow(context, insertQuery,
		category.ID, category.Key, category.References,
	).Scan(&category.CreatedAt, &category.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "category")
	}

	if err := insertTranslations(context, transaction, category.ID, category.Translations); err != nil {
		return err
	}

	return transaction.Commit(context)
}

/*
Update overwrites category fields and optionally replaces the whole
translation set inside one transaction.

Description: Translation replacement is delete-all then insert-all, so a
language omitted from the new set is removed. Readers never observe the
intermediate empty set because both steps share the transaction.

Parameters:
  - context: context.Context
  - category: *catalog.Category carrying the new field values
  - replaceTranslations: bool

Returns:
  - error: Not-found, conflict or persistence failures
*/
func (repository *PostgresRepository) Update(context context.Context, category *catalog.Category, replaceTranslations bool) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_update_category_tx")
	}
	defer transaction.Rollback(context)

	const updateQuery = `
		UPDATE categories
		SET key = $2, references_blob = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err = transaction.QueryRow(context, updateQuery,
		category.ID, category.Key, category.References,
	).Scan(&category.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "category")
	}

	if replaceTranslations {
		const deleteQuery = `DELETE FROM category_translations WHERE category_id = $1`
		if _, err := transaction.Exec(context, deleteQuery, category.ID); err != nil {
			return dberr.Wrap(err, "delete_category_translations")
		}

		if err := insertTranslations(context, transaction, category.ID, category.Translations); err != nil {
			return err
		}
	}

	return transaction.Commit(context)
}

/*
Delete removes a category. Translations and products cascade through the
schema's ON DELETE CASCADE constraints.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: Not-found or persistence failures
*/
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	const query = `DELETE FROM categories WHERE id = $1`

	result, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_category")
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("category")
	}

	return nil
}

// insertTranslations bulk-inserts a translation set within a transaction.
func insertTranslations(context context.Context, transaction pgx.Tx, categoryID string, translations []catalog.CategoryTranslation) error {
	const query = `
		INSERT INTO category_translations (category_id, language_code, title, intro)
		VALUES ($1, $2, $3, $4)
	`
	for _, translation := range translations {
		_, err := transaction.Exec(context, query,
			categoryID, translation.LanguageCode, translation.Title, translation.Intro,
		)
		if err != nil {
			return dberr.Wrap(err, "category_translation")
		}
	}

	return nil
}
