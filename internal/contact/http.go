// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

package contact

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Chenar-ai/elegant-backend/internal/platform/constants"
	requestutil "github.com/Chenar-ai/elegant-backend/internal/platform/request"
	"github.com/Chenar-ai/elegant-backend/internal/platform/respond"
	"github.com/Chenar-ai/elegant-backend/internal/platform/validate"
)

// Handler implements the contact form HTTP layer.
type Handler struct {
	service *Service
}

// NewHandler constructs a contact [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the contact endpoint.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.submit)

	return router
}

/*
POST /api/contact.

Description: Accepts a contact form submission and forwards it as an
email to the site owner.

Request (Body):
  - name: string
  - email: string
  - subject: string
  - message: string

Response:
  - 200: Message: Success
  - 400: 400: ValidationError: Invalid input data
  - 502: 502: MailerError: Delivery failure
*/
func (handler *Handler) submit(writer http.ResponseWriter, request *http.Request) {
	var input Submission
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	v.Required("name", input.Name).MaxLen("name", input.Name, 120)
	v.Required("email", input.Email).Email("email", input.Email)
	v.Required("subject", input.Subject).MaxLen("subject", input.Subject, 200)
	v.Required("message", input.Message).MaxLen("message", input.Message, 5000)

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Submit(request.Context(), input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{constants.FieldMessage: "Message sent"})
}
