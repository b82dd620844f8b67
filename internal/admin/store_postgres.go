// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

package admin

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Chenar-ai/elegant-backend/internal/platform/dberr"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed admin store.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
Create inserts a new admin account.

Description: The unique index on email maps duplicate signups to a
conflict error through dberr.

Parameters:
  - context: context.Context
  - admin: *Admin (ID pre-assigned by the service)

Returns:
  - error: Conflict or persistence failures
*/
func (repository *PostgresRepository) Create(context context.Context, admin *Admin) error {
	const query = `
		INSERT INTO admins (id, name, email, hashed_password, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at
	`
	err := repository.db.QueryRow(context, query,
		admin.ID, admin.Name, admin.Email, admin.HashedPassword,
	).Scan(&admin.CreatedAt)

	return dberr.Wrap(err, "admin")
}

/*
FindByEmail retrieves an admin account by its unique email.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *Admin: Hydrated entity including the password digest
  - error: Not-found or database retrieval failures
*/
func (repository *PostgresRepository) FindByEmail(context context.Context, email string) (*Admin, error) {
	const query = `
		SELECT id, name, email, hashed_password, created_at
		FROM admins
		WHERE email = $1
	`
	admin := &Admin{}
	err := repository.db.QueryRow(context, query, email).Scan(
		&admin.ID, &admin.Name, &admin.Email, &admin.HashedPassword, &admin.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "admin")
	}

	return admin, nil
}
