// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Mailer delivers a transactional email.
type Mailer interface {
	Send(context context.Context, email Email) error
}

// Email is one outbound transactional message.
type Email struct {
	SenderName  string
	SenderEmail string
	ToEmail     string
	ReplyTo     string
	Subject     string
	HTMLContent string
}

// BrevoMailer delivers email through the Brevo transactional HTTP API.
type BrevoMailer struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewBrevoMailer constructs a mailer against the given API base URL.
func NewBrevoMailer(apiKey, baseURL string) *BrevoMailer {
	return &BrevoMailer{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// brevoPayload mirrors the POST /smtp/email request schema.
type brevoPayload struct {
	Sender      brevoAddress   `json:"sender"`
	To          []brevoAddress `json:"to"`
	ReplyTo     *brevoAddress  `json:"replyTo,omitempty"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
}

type brevoAddress struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

/*
Send posts the email to the transactional endpoint.

Description: Brevo authenticates with an api-key header. Any non-2xx
response is treated as a delivery failure; the response body is truncated
into the error for the logs.

Parameters:
  - context: context.Context
  - email: Email

Returns:
  - error: Request construction, transport or API failures
*/
func (mailer *BrevoMailer) Send(context context.Context, email Email) error {
	payload := brevoPayload{
		Sender:      brevoAddress{Name: email.SenderName, Email: email.SenderEmail},
		To:          []brevoAddress{{Email: email.ToEmail}},
		Subject:     email.Subject,
		HTMLContent: email.HTMLContent,
	}
	if email.ReplyTo != "" {
		payload.ReplyTo = &brevoAddress{Email: email.ReplyTo}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("mailer: failed to encode payload: %w", err)
	}

	request, err := http.NewRequestWithContext(context, http.MethodPost, mailer.baseURL+"/smtp/email", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("mailer: failed to build request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	request.Header.Set("api-key", mailer.apiKey)

	response, err := mailer.client.Do(request)
	if err != nil {
		return fmt.Errorf("mailer: request failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(response.Body, 512))
		return fmt.Errorf("mailer: api returned status %d: %s", response.StatusCode, string(detail))
	}

	return nil
}
