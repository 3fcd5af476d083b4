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

// PortfolioStore handles portfolio section and page database operations.
type PortfolioStore struct {
	db *sql.DB
}

// NewPortfolioStore creates a new PortfolioStore.
func NewPortfolioStore(db *sql.DB) *PortfolioStore {
	return &PortfolioStore{db: db}
}

const sectionColumns = `id, name, type, content, is_visible, sort_order, created_at, updated_at`

func scanSection(row interface{ Scan(...any) error }) (*models.PortfolioSection, error) {
	sec := &models.PortfolioSection{}
	err := row.Scan(
		&sec.ID, &sec.Name, &sec.Type, &sec.Content, &sec.IsVisible,
		&sec.SortOrder, &sec.CreatedAt, &sec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return sec, nil
}

// ListSections returns sections in display order. Public callers set
// visibleOnly; the admin editor sees everything.
func (s *PortfolioStore) ListSections(visibleOnly bool) ([]models.PortfolioSection, error) {
	query := `SELECT ` + sectionColumns + ` FROM portfolio_sections`
	if visibleOnly {
		query += ` WHERE is_visible = TRUE`
	}
	query += ` ORDER BY sort_order ASC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer rows.Close()

	var items []models.PortfolioSection
	for rows.Next() {
		sec, err := scanSection(rows)
		if err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		items = append(items, *sec)
	}
	return items, rows.Err()
}

// FindSectionByID retrieves a section by UUID. Returns nil if not found.
func (s *PortfolioStore) FindSectionByID(id uuid.UUID) (*models.PortfolioSection, error) {
	sec, err := scanSection(s.db.QueryRow(
		`SELECT `+sectionColumns+` FROM portfolio_sections WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find section by id: %w", err)
	}
	return sec, nil
}

// CreateSection inserts a new section.
func (s *PortfolioStore) CreateSection(sec *models.PortfolioSection) (*models.PortfolioSection, error) {
	created, err := scanSection(s.db.QueryRow(`
		INSERT INTO portfolio_sections (name, type, content, is_visible, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+sectionColumns,
		sec.Name, sec.Type, []byte(sec.Content), sec.IsVisible, sec.SortOrder,
	))
	if err != nil {
		return nil, fmt.Errorf("create section: %w", err)
	}
	return created, nil
}

// UpdateSection modifies an existing section.
func (s *PortfolioStore) UpdateSection(sec *models.PortfolioSection) error {
	_, err := s.db.Exec(`
		UPDATE portfolio_sections SET
			name = $1, type = $2, content = $3, is_visible = $4,
			sort_order = $5, updated_at = NOW()
		WHERE id = $6
	`, sec.Name, sec.Type, []byte(sec.Content), sec.IsVisible, sec.SortOrder, sec.ID)
	if err != nil {
		return fmt.Errorf("update section: %w", err)
	}
	return nil
}

// DeleteSection removes a section.
func (s *PortfolioStore) DeleteSection(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM portfolio_sections WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete section: %w", err)
	}
	return nil
}

const pageColumns = `id, title, slug, content, is_homepage, is_published, created_at, updated_at`

func scanPage(row interface{ Scan(...any) error }) (*models.PortfolioPage, error) {
	pg := &models.PortfolioPage{}
	err := row.Scan(
		&pg.ID, &pg.Title, &pg.Slug, &pg.Content, &pg.IsHomepage,
		&pg.IsPublished, &pg.CreatedAt, &pg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return pg, nil
}

// ListPages returns all pages, homepage first.
func (s *PortfolioStore) ListPages() ([]models.PortfolioPage, error) {
	rows, err := s.db.Query(`
		SELECT ` + pageColumns + ` FROM portfolio_pages
		ORDER BY is_homepage DESC, title ASC`)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	defer rows.Close()

	var items []models.PortfolioPage
	for rows.Next() {
		pg, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		items = append(items, *pg)
	}
	return items, rows.Err()
}

// FindPageByID retrieves a page by UUID regardless of publish state.
// Returns nil if not found.
func (s *PortfolioStore) FindPageByID(id uuid.UUID) (*models.PortfolioPage, error) {
	pg, err := scanPage(s.db.QueryRow(
		`SELECT `+pageColumns+` FROM portfolio_pages WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find page by id: %w", err)
	}
	return pg, nil
}

// FindPageBySlug retrieves a published page by slug. Returns nil if not found.
func (s *PortfolioStore) FindPageBySlug(slug string) (*models.PortfolioPage, error) {
	pg, err := scanPage(s.db.QueryRow(
		`SELECT `+pageColumns+` FROM portfolio_pages WHERE slug = $1 AND is_published = TRUE`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find page by slug: %w", err)
	}
	return pg, nil
}

// FindHomepage returns the page flagged as homepage, or nil if none is set.
func (s *PortfolioStore) FindHomepage() (*models.PortfolioPage, error) {
	pg, err := scanPage(s.db.QueryRow(
		`SELECT ` + pageColumns + ` FROM portfolio_pages WHERE is_homepage = TRUE AND is_published = TRUE`))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find homepage: %w", err)
	}
	return pg, nil
}

// CreatePage inserts a new page. The homepage flag is never set at
// creation; use SetHomepage so the exclusivity invariant holds.
func (s *PortfolioStore) CreatePage(pg *models.PortfolioPage) (*models.PortfolioPage, error) {
	created, err := scanPage(s.db.QueryRow(`
		INSERT INTO portfolio_pages (title, slug, content, is_published)
		VALUES ($1, $2, $3, $4)
		RETURNING `+pageColumns,
		pg.Title, pg.Slug, []byte(pg.Content), pg.IsPublished,
	))
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	return created, nil
}

// UpdatePage modifies an existing page. The homepage flag is managed
// exclusively through SetHomepage.
func (s *PortfolioStore) UpdatePage(pg *models.PortfolioPage) error {
	_, err := s.db.Exec(`
		UPDATE portfolio_pages SET
			title = $1, slug = $2, content = $3, is_published = $4, updated_at = NOW()
		WHERE id = $5
	`, pg.Title, pg.Slug, []byte(pg.Content), pg.IsPublished, pg.ID)
	if err != nil {
		return fmt.Errorf("update page: %w", err)
	}
	return nil
}

// SetHomepage flags one page as the homepage. The clear and the set run
// in a single transaction so two concurrent calls cannot leave two pages
// flagged; the last committed transaction wins.
func (s *PortfolioStore) SetHomepage(id uuid.UUID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("set homepage begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE portfolio_pages SET is_homepage = FALSE WHERE is_homepage = TRUE`); err != nil {
		return fmt.Errorf("set homepage clear: %w", err)
	}

	res, err := tx.Exec(`UPDATE portfolio_pages SET is_homepage = TRUE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("set homepage: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}

	return tx.Commit()
}

// DeletePage removes a page.
func (s *PortfolioStore) DeletePage(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM portfolio_pages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	return nil
}
