// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"devfolio/internal/models"
)

// ProjectStore handles all project-related database operations.
type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore creates a new ProjectStore with the given database connection.
func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

const projectColumns = `id, title, slug, description, technologies, status, category,
	github_url, live_url, image_url, challenges, solutions, results,
	is_featured, is_flagship, is_demo, is_active, sort_order, created_at, updated_at`

func scanProject(row interface{ Scan(...any) error }) (*models.Project, error) {
	p := &models.Project{}
	var tech []byte
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Description, &tech, &p.Status, &p.Category,
		&p.GithubURL, &p.LiveURL, &p.ImageURL, &p.Challenges, &p.Solutions, &p.Results,
		&p.IsFeatured, &p.IsFlagship, &p.IsDemo, &p.IsActive, &p.SortOrder,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Technologies = scanList(tech)
	return p, nil
}

// List returns projects matching the filter, ordered by sort order then
// creation date. Public callers set ActiveOnly; admin callers see everything.
func (s *ProjectStore) List(f models.ProjectFilter) ([]models.Project, error) {
	var (
		where []string
		args  []any
	)
	add := func(clause string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}

	if f.ActiveOnly {
		where = append(where, "is_active = TRUE")
	}
	if f.Category != "" {
		add("category = $%d", f.Category)
	}
	if f.Status != "" {
		add("status = $%d", f.Status)
	}
	if f.Featured != nil {
		add("is_featured = $%d", *f.Featured)
	}
	if f.Demo != nil {
		add("is_demo = $%d", *f.Demo)
	}

	query := `SELECT ` + projectColumns + ` FROM projects`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY sort_order ASC, created_at DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var items []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindByID retrieves a project by its UUID regardless of active state.
// Returns nil if not found.
func (s *ProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	p, err := scanProject(s.db.QueryRow(
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project by id: %w", err)
	}
	return p, nil
}

// FindBySlug retrieves an active project by its slug. Used by public
// callers; disabled projects are invisible here.
func (s *ProjectStore) FindBySlug(slug string) (*models.Project, error) {
	p, err := scanProject(s.db.QueryRow(
		`SELECT `+projectColumns+` FROM projects WHERE slug = $1 AND is_active = TRUE`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project by slug: %w", err)
	}
	return p, nil
}

// Create inserts a new project and returns it with generated fields.
// A duplicate slug surfaces as a unique violation for the handler to map.
func (s *ProjectStore) Create(p *models.Project) (*models.Project, error) {
	created, err := scanProject(s.db.QueryRow(`
		INSERT INTO projects (title, slug, description, technologies, status, category,
			github_url, live_url, image_url, challenges, solutions, results,
			is_featured, is_flagship, is_demo, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING `+projectColumns,
		p.Title, p.Slug, p.Description, jsonList(p.Technologies), p.Status, p.Category,
		p.GithubURL, p.LiveURL, p.ImageURL, p.Challenges, p.Solutions, p.Results,
		p.IsFeatured, p.IsFlagship, p.IsDemo, p.IsActive, p.SortOrder,
	))
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return created, nil
}

// Update modifies an existing project.
func (s *ProjectStore) Update(p *models.Project) error {
	_, err := s.db.Exec(`
		UPDATE projects SET
			title = $1, slug = $2, description = $3, technologies = $4,
			status = $5, category = $6, github_url = $7, live_url = $8,
			image_url = $9, challenges = $10, solutions = $11, results = $12,
			is_featured = $13, is_flagship = $14, is_demo = $15, is_active = $16,
			sort_order = $17, updated_at = NOW()
		WHERE id = $18
	`, p.Title, p.Slug, p.Description, jsonList(p.Technologies),
		p.Status, p.Category, p.GithubURL, p.LiveURL,
		p.ImageURL, p.Challenges, p.Solutions, p.Results,
		p.IsFeatured, p.IsFlagship, p.IsDemo, p.IsActive, p.SortOrder, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// Delete removes a project by ID.
func (s *ProjectStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
