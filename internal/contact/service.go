// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

/*
Package contact handles the public contact form.

A submission becomes one transactional email to the site owner's inbox,
delivered through an HTTP mail API. Nothing is persisted; the inbox is
the system of record for inquiries.
*/
package contact

import (
	"context"
	"fmt"
	"html"

	"github.com/Chenar-ai/elegant-backend/internal/platform/apperr"
)

// Submission is one contact form payload.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Service turns contact form submissions into outbound email.
type Service struct {
	mailer  Mailer
	toEmail string
}

// NewService constructs a contact [Service] delivering to toEmail.
func NewService(mailer Mailer, toEmail string) *Service {
	return &Service{mailer: mailer, toEmail: toEmail}
}

/*
Submit renders the submission into an HTML email and delivers it.

Description: Visitor-provided values are HTML-escaped before they enter
the message body. The visitor's address becomes the reply-to so the
owner can answer directly. Delivery failures surface as a mailer error.

Parameters:
  - context: context.Context
  - submission: Submission (validated by the HTTP layer)

Returns:
  - error: Mailer failures
*/
func (service *Service) Submit(context context.Context, submission Submission) error {
	content := fmt.Sprintf(
		"<h3>New contact inquiry</h3>"+
			"<p><strong>From:</strong> %s &lt;%s&gt;</p>"+
			"<p><strong>Subject:</strong> %s</p>"+
			"<p>%s</p>",
		html.EscapeString(submission.Name),
		html.EscapeString(submission.Email),
		html.EscapeString(submission.Subject),
		html.EscapeString(submission.Message),
	)

	email := Email{
		SenderName:  "Elegant Global Website",
		SenderEmail: service.toEmail,
		ToEmail:     service.toEmail,
		ReplyTo:     submission.Email,
		Subject:     "Contact form: " + submission.Subject,
		HTMLContent: content,
	}

	if err := service.mailer.Send(context, email); err != nil {
		return apperr.Mailer(err)
	}

	return nil
}
