// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package mailer sends transactional email through the Resend HTTP API.
// A nil *Mailer is safe to use and drops mail silently, so the app runs
// fine without an API key in development.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"time"
)

const apiURL = "https://api.resend.com/emails"

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Mailer sends email notifications via Resend.
type Mailer struct {
	apiKey   string
	from     string
	notifyTo string
	apiURL   string
	client   *http.Client
}

// New creates a Mailer. Returns nil if apiKey is empty, which disables
// all outgoing mail.
func New(apiKey, from, notifyTo string) *Mailer {
	if apiKey == "" {
		return nil
	}
	return &Mailer{
		apiKey:   apiKey,
		from:     from,
		notifyTo: notifyTo,
		apiURL:   apiURL,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// NotifyContactMessage emails the site owner about a new contact form
// submission.
func (m *Mailer) NotifyContactMessage(ctx context.Context, name, email, subject, message string) error {
	if m == nil {
		return nil
	}
	body := fmt.Sprintf(
		`<p><strong>%s</strong> (%s) sent a message:</p><p>%s</p><p>%s</p>`,
		html.EscapeString(name), html.EscapeString(email),
		html.EscapeString(subject), html.EscapeString(message),
	)
	return m.send(ctx, m.notifyTo, "New contact message: "+subject, body)
}

// NotifyDemoRequest emails the site owner about a new project demo request.
func (m *Mailer) NotifyDemoRequest(ctx context.Context, name, email, projectTitle string) error {
	if m == nil {
		return nil
	}
	body := fmt.Sprintf(
		`<p><strong>%s</strong> (%s) requested a demo of <strong>%s</strong>.</p>`,
		html.EscapeString(name), html.EscapeString(email), html.EscapeString(projectTitle),
	)
	return m.send(ctx, m.notifyTo, "Demo request: "+projectTitle, body)
}

// NotifyCommentPending emails the site owner that a comment is waiting
// for moderation.
func (m *Mailer) NotifyCommentPending(ctx context.Context, author, postTitle string) error {
	if m == nil {
		return nil
	}
	body := fmt.Sprintf(
		`<p><strong>%s</strong> commented on <strong>%s</strong>. The comment is pending review.</p>`,
		html.EscapeString(author), html.EscapeString(postTitle),
	)
	return m.send(ctx, m.notifyTo, "Comment pending review on "+postTitle, body)
}

func (m *Mailer) send(ctx context.Context, to, subject, htmlBody string) error {
	payload, err := json.Marshal(sendRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		HTML:    htmlBody,
	})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.apiURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.apiKey)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("resend API error: status %d", resp.StatusCode)
	}

	slog.Debug("email sent", "to", to, "subject", subject)
	return nil
}
