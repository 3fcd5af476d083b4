// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"devfolio/internal/models"
)

// ContactStore handles inbound contact messages and demo requests.
// Both are append-only from the public side.
type ContactStore struct {
	db *sql.DB
}

// NewContactStore creates a new ContactStore.
func NewContactStore(db *sql.DB) *ContactStore {
	return &ContactStore{db: db}
}

// CreateMessage records a contact form submission.
func (s *ContactStore) CreateMessage(m *models.ContactMessage) (*models.ContactMessage, error) {
	created := &models.ContactMessage{}
	err := s.db.QueryRow(`
		INSERT INTO contact_messages (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, subject, message, is_read, created_at
	`, m.Name, m.Email, m.Subject, m.Message).Scan(
		&created.ID, &created.Name, &created.Email, &created.Subject,
		&created.Message, &created.IsRead, &created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}
	return created, nil
}

// ListMessages returns all contact messages, newest first.
func (s *ContactStore) ListMessages() ([]models.ContactMessage, error) {
	rows, err := s.db.Query(`
		SELECT id, name, email, subject, message, is_read, created_at
		FROM contact_messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	var items []models.ContactMessage
	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.IsRead, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

// MarkMessageRead flags a message as handled.
func (s *ContactStore) MarkMessageRead(id uuid.UUID) error {
	_, err := s.db.Exec(`UPDATE contact_messages SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark message read: %w", err)
	}
	return nil
}

// CreateDemoRequest records a demo walkthrough request.
func (s *ContactStore) CreateDemoRequest(d *models.DemoRequest) (*models.DemoRequest, error) {
	created := &models.DemoRequest{}
	err := s.db.QueryRow(`
		INSERT INTO demo_requests (name, email, company, project_id, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, company, project_id, message, created_at
	`, d.Name, d.Email, d.Company, d.ProjectID, d.Message).Scan(
		&created.ID, &created.Name, &created.Email, &created.Company,
		&created.ProjectID, &created.Message, &created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create demo request: %w", err)
	}
	return created, nil
}

// ListDemoRequests returns all demo requests, newest first.
func (s *ContactStore) ListDemoRequests() ([]models.DemoRequest, error) {
	rows, err := s.db.Query(`
		SELECT id, name, email, company, project_id, message, created_at
		FROM demo_requests ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list demo requests: %w", err)
	}
	defer rows.Close()

	var items []models.DemoRequest
	for rows.Next() {
		var d models.DemoRequest
		if err := rows.Scan(&d.ID, &d.Name, &d.Email, &d.Company, &d.ProjectID, &d.Message, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan demo request: %w", err)
		}
		items = append(items, d)
	}
	return items, rows.Err()
}
