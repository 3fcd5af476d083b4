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

// BlogCategoryStore handles blog category database operations.
type BlogCategoryStore struct {
	db *sql.DB
}

// NewBlogCategoryStore creates a new BlogCategoryStore.
func NewBlogCategoryStore(db *sql.DB) *BlogCategoryStore {
	return &BlogCategoryStore{db: db}
}

const categoryColumns = `id, name, slug, description, sort_order, created_at, updated_at`

func scanCategory(row interface{ Scan(...any) error }) (*models.BlogCategory, error) {
	c := &models.BlogCategory{}
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List returns every category ordered by sort order then name.
func (s *BlogCategoryStore) List() ([]models.BlogCategory, error) {
	rows, err := s.db.Query(`SELECT ` + categoryColumns + ` FROM blog_categories ORDER BY sort_order ASC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var items []models.BlogCategory
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindByID retrieves a category by UUID. Returns nil if not found.
func (s *BlogCategoryStore) FindByID(id uuid.UUID) (*models.BlogCategory, error) {
	c, err := scanCategory(s.db.QueryRow(
		`SELECT `+categoryColumns+` FROM blog_categories WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by id: %w", err)
	}
	return c, nil
}

// FindBySlug retrieves a category by slug. Returns nil if not found.
func (s *BlogCategoryStore) FindBySlug(slug string) (*models.BlogCategory, error) {
	c, err := scanCategory(s.db.QueryRow(
		`SELECT `+categoryColumns+` FROM blog_categories WHERE slug = $1`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by slug: %w", err)
	}
	return c, nil
}

// Create inserts a new category.
func (s *BlogCategoryStore) Create(c *models.BlogCategory) (*models.BlogCategory, error) {
	created, err := scanCategory(s.db.QueryRow(`
		INSERT INTO blog_categories (name, slug, description, sort_order)
		VALUES ($1, $2, $3, $4)
		RETURNING `+categoryColumns,
		c.Name, c.Slug, c.Description, c.SortOrder,
	))
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return created, nil
}

// Update modifies an existing category.
func (s *BlogCategoryStore) Update(c *models.BlogCategory) error {
	_, err := s.db.Exec(`
		UPDATE blog_categories SET
			name = $1, slug = $2, description = $3, sort_order = $4, updated_at = NOW()
		WHERE id = $5
	`, c.Name, c.Slug, c.Description, c.SortOrder, c.ID)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete removes a category by ID. Posts referencing it block the delete
// via the foreign key; the handler maps that to a conflict response.
func (s *BlogCategoryStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM blog_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
