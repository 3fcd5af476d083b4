// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"net/mail"
	"strings"

	"github.com/go-chi/chi/v5"

	"devfolio/internal/mailer"
	"devfolio/internal/models"
	"devfolio/internal/store"
)

// Contacts groups the contact message and demo request HTTP handlers.
type Contacts struct {
	contacts *store.ContactStore
	mail     *mailer.Mailer
}

// NewContacts creates a new Contacts handler group.
func NewContacts(contacts *store.ContactStore, mail *mailer.Mailer) *Contacts {
	return &Contacts{contacts: contacts, mail: mail}
}

// SubmitMessage records a contact form submission and notifies the site
// owner. A notification failure never fails the submission.
func (h *Contacts) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	var m models.ContactMessage
	if err := decodeJSON(r, &m); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(m.Name) == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		respondError(w, http.StatusBadRequest, "a valid email is required")
		return
	}
	if strings.TrimSpace(m.Message) == "" {
		respondError(w, http.StatusBadRequest, "message is required")
		return
	}

	created, err := h.contacts.CreateMessage(&m)
	if err != nil {
		slog.Error("create contact message failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	subject := ""
	if created.Subject != nil {
		subject = *created.Subject
	}
	if err := h.mail.NotifyContactMessage(r.Context(), created.Name, created.Email, subject, created.Message); err != nil {
		slog.Warn("contact notification failed", "error", err)
	}

	respondJSON(w, http.StatusCreated, created)
}

// SubmitDemoRequest records a demo walkthrough request. The project
// reference is optional; an unknown one is rejected rather than stored
// dangling.
func (h *Contacts) SubmitDemoRequest(w http.ResponseWriter, r *http.Request) {
	var d models.DemoRequest
	if err := decodeJSON(r, &d); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(d.Name) == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if _, err := mail.ParseAddress(d.Email); err != nil {
		respondError(w, http.StatusBadRequest, "a valid email is required")
		return
	}

	created, err := h.contacts.CreateDemoRequest(&d)
	if err != nil {
		if store.IsForeignKeyViolation(err) {
			respondError(w, http.StatusBadRequest, "unknown project")
			return
		}
		slog.Error("create demo request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	project := ""
	if created.ProjectID != nil {
		project = created.ProjectID.String()
	}
	if err := h.mail.NotifyDemoRequest(r.Context(), created.Name, created.Email, project); err != nil {
		slog.Warn("demo request notification failed", "error", err)
	}

	respondJSON(w, http.StatusCreated, created)
}

// AdminListMessages returns all contact messages, unread first.
func (h *Contacts) AdminListMessages(w http.ResponseWriter, r *http.Request) {
	items, err := h.contacts.ListMessages()
	if err != nil {
		slog.Error("list contact messages failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

// MarkMessageRead flags a contact message as handled.
func (h *Contacts) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid message id")
		return
	}
	if err := h.contacts.MarkMessageRead(id); err != nil {
		slog.Error("mark message read failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"read": true})
}

// AdminListDemoRequests returns all demo requests, newest first.
func (h *Contacts) AdminListDemoRequests(w http.ResponseWriter, r *http.Request) {
	items, err := h.contacts.ListDemoRequests()
	if err != nil {
		slog.Error("list demo requests failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}
