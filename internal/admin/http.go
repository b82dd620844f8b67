// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Chenar-ai/elegant-backend/internal/platform/constants"
	requestutil "github.com/Chenar-ai/elegant-backend/internal/platform/request"
	"github.com/Chenar-ai/elegant-backend/internal/platform/respond"
	"github.com/Chenar-ai/elegant-backend/internal/platform/validate"
)

// # Handler Implementation

// Handler implements the HTTP layer for admin account operations.
type Handler struct {
	service *Service
}

// NewHandler constructs an admin [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the account endpoints. These stay
// outside the auth middleware; logout works with or without a token.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/signup", handler.signup)
	router.Post("/login", handler.login)
	router.Post("/logout", handler.logout)

	return router
}

// # Account Endpoints

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

/*
POST /api/admin/signup.

Description: Registers a new administrator account.

Request (Body):
  - name: string
  - email: string (unique)
  - password: string (min 8 characters)

Response:
  - 201: Admin: Created account
  - 400: 400: ValidationError: Invalid input data
  - 409: 409: Conflict: Email already registered
*/
func (handler *Handler) signup(writer http.ResponseWriter, request *http.Request) {
	var input signupRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	v.Required("name", input.Name).MaxLen("name", input.Name, 120)
	v.Required("email", input.Email).Email("email", input.Email)
	v.Required("password", input.Password).MinLen("password", input.Password, 8)

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	admin, err := handler.service.Signup(request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, admin)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	Admin       *Admin `json:"admin"`
}

/*
POST /api/admin/login.

Description: Verifies credentials and issues a bearer access token valid
for one hour.

Request (Body):
  - email: string
  - password: string

Response:
  - 200: loginResponse: Token and account
  - 400: 400: ValidationError: Invalid input data
  - 401: 401: Unauthorized: Invalid email or password
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	v.Required("email", input.Email).Email("email", input.Email)
	v.Required("password", input.Password)

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, admin, err := handler.service.Login(request.Context(), input.Email, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, loginResponse{AccessToken: token, Admin: admin})
}

/*
POST /api/admin/logout.

Description: Access tokens are stateless, so logout is client-driven: the
dashboard discards its token. The endpoint exists so the frontend has a
uniform call to make.

Response:
  - 200: Message: Success
*/
func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{constants.FieldMessage: "Logged out"})
}
