// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

package admin

import (
	"context"
	"fmt"

	"github.com/Chenar-ai/elegant-backend/internal/platform/apperr"
	"github.com/Chenar-ai/elegant-backend/internal/platform/constants"
	"github.com/Chenar-ai/elegant-backend/internal/platform/sec"
	"github.com/Chenar-ai/elegant-backend/pkg/uuidv7"
)

// Service implements admin account business logic.
type Service struct {
	repository Repository
	tokens     *sec.TokenService
}

// NewService constructs an admin [Service].
func NewService(repository Repository, tokens *sec.TokenService) *Service {
	return &Service{repository: repository, tokens: tokens}
}

/*
Signup registers a new administrator account.

Description: The password is hashed with bcrypt before anything touches
the database. A duplicate email surfaces as a conflict.

Parameters:
  - context: context.Context
  - name: string
  - email: string
  - password: string (plaintext, never stored)

Returns:
  - *Admin: The created account without the password digest exposed
  - error: Conflict or persistence failures
*/
func (service *Service) Signup(context context.Context, name, email, password string) (*Admin, error) {
	hashed, err := sec.HashPassword(password)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("admin_signup_hash_failed: %w", err))
	}

	admin := &Admin{
		ID:             uuidv7.New(),
		Name:           name,
		Email:          email,
		HashedPassword: hashed,
	}

	if err := service.repository.Create(context, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

/*
Login verifies credentials and issues a bearer access token.

Description: Unknown emails and wrong passwords both map to the same
401 so the endpoint does not leak which accounts exist.

Parameters:
  - context: context.Context
  - email: string
  - password: string

Returns:
  - string: Signed JWT access token
  - *Admin: The authenticated account
  - error: Unauthorized or persistence failures
*/
func (service *Service) Login(context context.Context, email, password string) (string, *Admin, error) {
	admin, err := service.repository.FindByEmail(context, email)
	if err != nil {
		// Only an unknown email counts as bad credentials. Persistence
		// failures surface as-is so an outage is not reported as a 401.
		if appError := apperr.As(err); appError != nil && appError.Code == "NOT_FOUND" {
			return "", nil, apperr.Unauthorized("Invalid email or password")
		}
		return "", nil, err
	}

	if !sec.CheckPasswordHash(password, admin.HashedPassword) {
		return "", nil, apperr.Unauthorized("Invalid email or password")
	}

	token, err := service.tokens.GenerateAccessToken(admin.ID, admin.Email, constants.AccessTokenTTL)
	if err != nil {
		return "", nil, apperr.Internal(fmt.Errorf("admin_login_token_failed: %w", err))
	}

	return token, admin, nil
}
