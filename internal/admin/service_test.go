// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

package admin

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chenar-ai/elegant-backend/internal/platform/apperr"
	"github.com/Chenar-ai/elegant-backend/internal/platform/constants"
	"github.com/Chenar-ai/elegant-backend/internal/platform/sec"
)

// fakeRepository is an in-memory admin [Repository].
type fakeRepository struct {
	byEmail map[string]*Admin
	findErr error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byEmail: make(map[string]*Admin)}
}

func (repository *fakeRepository) Create(_ context.Context, admin *Admin) error {
	if _, found := repository.byEmail[admin.Email]; found {
		return apperr.Conflict("admin email already exists")
	}
	clone := *admin
	repository.byEmail[admin.Email] = &clone
	return nil
}

func (repository *fakeRepository) FindByEmail(_ context.Context, email string) (*Admin, error) {
	if repository.findErr != nil {
		return nil, repository.findErr
	}
	admin, found := repository.byEmail[email]
	if !found {
		return nil, apperr.NotFound("admin")
	}
	clone := *admin
	return &clone, nil
}

func newTestService(t *testing.T) (*Service, *sec.TokenService) {
	t.Helper()
	tokens, err := sec.NewTokenService(strings.Repeat("s", 32), constants.AuthIssuer)
	require.NoError(t, err)
	return NewService(newFakeRepository(), tokens), tokens
}

/*
TestSignupAndLogin verifies the full happy path: the account is created
with a hashed password and login returns a verifiable access token.
*/
func TestSignupAndLogin(t *testing.T) {
	service, tokens := newTestService(t)

	admin, err := service.Signup(context.Background(), "Chenar", "info@elegant.global", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, admin.ID)
	assert.NotEqual(t, "correct-horse", admin.HashedPassword)

	token, loggedIn, err := service.Login(context.Background(), "info@elegant.global", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, loggedIn.ID)

	claims, err := tokens.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.AdminID)
	assert.Equal(t, "info@elegant.global", claims.Email)
}

/*
TestSignup_DuplicateEmail verifies a second signup with the same email is
rejected with a conflict.
*/
func TestSignup_DuplicateEmail(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Signup(context.Background(), "Chenar", "info@elegant.global", "correct-horse")
	require.NoError(t, err)

	_, err = service.Signup(context.Background(), "Imposter", "info@elegant.global", "other-pass")
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)
}

/*
TestLogin_InvalidCredentials verifies unknown emails and wrong passwords
produce the same 401.
*/
func TestLogin_InvalidCredentials(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Signup(context.Background(), "Chenar", "info@elegant.global", "correct-horse")
	require.NoError(t, err)

	_, _, err = service.Login(context.Background(), "nobody@elegant.global", "correct-horse")
	require.Error(t, err)
	unknownEmail := apperr.As(err)

	_, _, err = service.Login(context.Background(), "info@elegant.global", "wrong-pass")
	require.Error(t, err)
	wrongPassword := apperr.As(err)

	assert.Equal(t, "UNAUTHORIZED", unknownEmail.Code)
	assert.Equal(t, unknownEmail.Message, wrongPassword.Message)
}

/*
TestLogin_PersistenceFailure verifies a database outage during lookup is
reported as an internal error, not as bad credentials.
*/
func TestLogin_PersistenceFailure(t *testing.T) {
	repository := newFakeRepository()
	tokens, err := sec.NewTokenService(strings.Repeat("s", 32), constants.AuthIssuer)
	require.NoError(t, err)
	service := NewService(repository, tokens)

	repository.findErr = apperr.Internal(fmt.Errorf("connection reset"))

	_, _, err = service.Login(context.Background(), "info@elegant.global", "correct-horse")
	require.Error(t, err)
	assert.Equal(t, "INTERNAL_ERROR", apperr.As(err).Code)
}
