// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

/*
Package admin manages administrator accounts and session tokens.

Administrators are the only authenticated actors in the system; they own
the catalog mutation endpoints. Authentication is a bearer JWT signed
with the application session secret.
*/
package admin

import (
	"context"
	"time"
)

// Admin represents a dashboard administrator account.
type Admin struct {
	ID        string    `json:"id"` // UUIDv7
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`

	// HashedPassword is the bcrypt digest, never serialized.
	HashedPassword string `json:"-"`
}

// Repository defines persistence operations for admin accounts.
type Repository interface {

	// Create inserts a new admin. A duplicate email surfaces as a conflict.
	Create(context context.Context, admin *Admin) error

	// FindByEmail returns the admin with the given email.
	FindByEmail(context context.Context, email string) (*Admin, error)
}
