// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

package product

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Chenar-ai/elegant-backend/internal/catalog"
	"github.com/Chenar-ai/elegant-backend/internal/platform/apperr"
	"github.com/Chenar-ai/elegant-backend/internal/platform/dberr"
	"github.com/Chenar-ai/elegant-backend/pkg/keygen"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed product store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// # Product Retrieval

/*
List returns every product with its translation set, ordered by creation
time.

Returns:
  - []*catalog.Product: Hydrated products
  - error: Database retrieval failures
*/
func (repository *PostgresRepository) List(context context.Context) ([]*catalog.Product, error) {
	const query = `
		SELECT id, category_id, key, image_url, created_at, updated_at
		FROM products
		ORDER BY created_at ASC
	`
	rows, err := repository.db.Query(context, query)
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

	const translationQuery = `
		SELECT product_id, language_code, title, description
		FROM product_translations
		ORDER BY language_code ASC
	`
	translationRows, err := repository.db.Query(context, translationQuery)
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

/*
FindByID retrieves one product with its translation set.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *catalog.Product: Hydrated entity
  - error: Not-found or database retrieval failures
*/
func (repository *PostgresRepository) FindByID(context context.Context, id string) (*catalog.Product, error) {
	const query = `
		SELECT id, category_id, key, image_url, created_at, updated_at
		FROM products
		WHERE id = $1
	`
	product := &catalog.Product{Translations: []catalog.ProductTranslation{}}
	err := repository.db.QueryRow(context, query, id).Scan(
		&product.ID, &product.CategoryID, &product.Key, &product.ImageURL, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "product")
	}

	const translationQuery = `
		SELECT language_code, title, description
		FROM product_translations
		WHERE product_id = $1
		ORDER BY language_code ASC
	`
	rows, err := repository.db.Query(context, translationQuery, id)
	if err != nil {
		return nil, dberr.Wrap(err, "list_product_translations")
	}
	defer rows.Close()

	for rows.Next() {
		var translation catalog.ProductTranslation
		if err := rows.Scan(&translation.LanguageCode, &translation.Title, &translation.Description); err != nil {
			return nil, dberr.Wrap(err, "scan_product_translation")
		}
		product.Translations = append(product.Translations, translation)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_product_translations")
	}

	return product, nil
}

// # Product Mutation

/*
Create derives the product key and inserts the product with its
translations in one transaction.

Description: The uniqueness probe runs against the open transaction, so
the probe-then-insert sequence cannot race with a concurrent create. If
two transactions still pick the same key, the unique index fires and
surfaces as a conflict through dberr.

Parameters:
  - context: context.Context
  - product: *catalog.Product (ID pre-assigned by the service)
  - keyCandidate: string (default-language title, may be empty)

Returns:
  - error: Validation, conflict or persistence failures
*/
func (repository *PostgresRepository) Create(context context.Context, product *catalog.Product, keyCandidate string) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_create_product_tx")
	}
	defer transaction.Rollback(context)

	// 1. The category must exist before anything is written
	if err := categoryMustExist(context, transaction, product.CategoryID); err != nil {
		return err
	}

	// 2. Derive a catalog-unique key, probing within this transaction
	key, err := keygen.Generate(keyCandidate, func(candidate string) (bool, error) {
		var exists bool
		const probeQuery = `SELECT EXISTS (SELECT 1 FROM products WHERE key = $1)`
		if err := transaction.QueryRow(context, probeQuery, candidate).Scan(&exists); err != nil {
			return false, err
		}
		return exists, nil
	})
	if err != nil {
		return dberr.Wrap(err, "generate_product_key")
	}
	product.Key = key

	// 3. Insert the product row
	const insertQuery = `
		INSERT INTO products (id, category_id, key, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err = transaction.QueryRow(context, insertQuery,
		product.ID, product.CategoryID, product.Key, product.ImageURL,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "product")
	}

	// 4. Insert the initial translation set
	if err := insertTranslations(context, transaction, product.ID, product.Translations); err != nil {
		return err
	}

	return transaction.Commit(context)
}

/*
Update overwrites the product's mutable fields and replaces its whole
translation set in one transaction. The key is left untouched.

Parameters:
  - context: context.Context
  - product: *catalog.Product carrying the new state

Returns:
  - error: Not-found, validation or persistence failures
*/
func (repository *PostgresRepository) Update(context context.Context, product *catalog.Product) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "begin_update_product_tx")
	}
	defer transaction.Rollback(context)

	if err := categoryMustExist(context, transaction, product.CategoryID); err != nil {
		return err
	}

	const updateQuery = `
		UPDATE products
		SET category_id = $2, image_url = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING key, updated_at
	`
	err = transaction.QueryRow(context, updateQuery,
		product.ID, product.CategoryID, product.ImageURL,
	).Scan(&product.Key, &product.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "product")
	}

	const deleteQuery = `DELETE FROM product_translations WHERE product_id = $1`
	if _, err := transaction.Exec(context, deleteQuery, product.ID); err != nil {
		return dberr.Wrap(err, "delete_product_translations")
	}

	if err := insertTranslations(context, transaction, product.ID, product.Translations); err != nil {
		return err
	}

	return transaction.Commit(context)
}

/*
Delete removes a product. Its translations cascade through the schema.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: Not-found or persistence failures
*/
func (repository *PostgresRepository) Delete(context context.Context, id string) error {
	const query = `DELETE FROM products WHERE id = $1`

	result, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_product")
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("product")
	}

	return nil
}

// # Transaction Helpers

// categoryMustExist rejects writes referencing a dead category before any
// row is touched.
func categoryMustExist(context context.Context, transaction pgx.Tx, categoryID string) error {
	var exists bool
	const query = `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`

	if err := transaction.QueryRow(context, query, categoryID).Scan(&exists); err != nil {
		return dberr.Wrap(err, "check_category_exists")
	}

	if !exists {
		return apperr.ValidationError("Referenced category does not exist")
	}

	return nil
}

// insertTranslations bulk-inserts a translation set within a transaction.
func insertTranslations(context context.Context, transaction pgx.Tx, productID string, translations []catalog.ProductTranslation) error {
	const query = `
		INSERT INTO product_translations (product_id, language_code, title, description)
		VALUES ($1, $2, $3, $4)
	`
	for _, translation := range translations {
		_, err := transaction.Exec(context, query,
			productID, translation.LanguageCode, translation.Title, translation.Description,
		)
		if err != nil {
			return dberr.Wrap(err, "product_translation")
		}
	}

	return nil
}
