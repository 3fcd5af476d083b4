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

// BlogSeriesStore handles blog series database operations. Post counts
// and total reading time are derived from member posts at query time.
type BlogSeriesStore struct {
	db *sql.DB
}

// NewBlogSeriesStore creates a new BlogSeriesStore.
func NewBlogSeriesStore(db *sql.DB) *BlogSeriesStore {
	return &BlogSeriesStore{db: db}
}

// seriesSelect joins each series with its published member posts to derive
// post_count and an estimated total reading time (200 words per minute,
// minimum one minute per post).
const seriesSelect = `
	SELECT s.id, s.name, s.slug, s.description, s.cover_image_url, s.sort_order,
	       COUNT(p.id) AS post_count,
	       COALESCE(SUM(GREATEST(1, CEIL(array_length(regexp_split_to_array(p.content, '\s+'), 1) / 200.0))), 0)::int AS total_reading_time,
	       s.created_at, s.updated_at
	FROM blog_series s
	LEFT JOIN blog_posts p ON p.series_id = s.id AND p.status = 'PUBLISHED'`

const seriesGroup = ` GROUP BY s.id`

func scanSeries(row interface{ Scan(...any) error }) (*models.BlogSeries, error) {
	sr := &models.BlogSeries{}
	err := row.Scan(
		&sr.ID, &sr.Name, &sr.Slug, &sr.Description, &sr.CoverImageURL, &sr.SortOrder,
		&sr.PostCount, &sr.TotalReadingTime, &sr.CreatedAt, &sr.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return sr, nil
}

// ListPaginated returns one page of series ordered by sort order then name.
func (s *BlogSeriesStore) ListPaginated(p PageParams) ([]models.BlogSeries, PageMeta, error) {
	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM blog_series`).Scan(&total); err != nil {
		return nil, PageMeta{}, fmt.Errorf("count series: %w", err)
	}

	rows, err := s.db.Query(
		seriesSelect+seriesGroup+` ORDER BY s.sort_order ASC, s.name ASC LIMIT $1 OFFSET $2`,
		p.Limit, p.Offset())
	if err != nil {
		return nil, PageMeta{}, fmt.Errorf("list series: %w", err)
	}
	defer rows.Close()

	var items []models.BlogSeries
	for rows.Next() {
		sr, err := scanSeries(rows)
		if err != nil {
			return nil, PageMeta{}, fmt.Errorf("scan series: %w", err)
		}
		items = append(items, *sr)
	}
	return items, NewPageMeta(p, total), rows.Err()
}

// FindByID retrieves a series by UUID with derived aggregates.
// Returns nil if not found.
func (s *BlogSeriesStore) FindByID(id uuid.UUID) (*models.BlogSeries, error) {
	sr, err := scanSeries(s.db.QueryRow(seriesSelect+` WHERE s.id = $1`+seriesGroup, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find series by id: %w", err)
	}
	return sr, nil
}

// FindBySlug retrieves a series by slug with derived aggregates.
// Returns nil if not found.
func (s *BlogSeriesStore) FindBySlug(slug string) (*models.BlogSeries, error) {
	sr, err := scanSeries(s.db.QueryRow(seriesSelect+` WHERE s.slug = $1`+seriesGroup, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find series by slug: %w", err)
	}
	return sr, nil
}

// Create inserts a new series.
func (s *BlogSeriesStore) Create(sr *models.BlogSeries) (*models.BlogSeries, error) {
	var id uuid.UUID
	err := s.db.QueryRow(`
		INSERT INTO blog_series (name, slug, description, cover_image_url, sort_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, sr.Name, sr.Slug, sr.Description, sr.CoverImageURL, sr.SortOrder).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("create series: %w", err)
	}
	return s.FindByID(id)
}

// Update modifies an existing series.
func (s *BlogSeriesStore) Update(sr *models.BlogSeries) error {
	_, err := s.db.Exec(`
		UPDATE blog_series SET
			name = $1, slug = $2, description = $3, cover_image_url = $4,
			sort_order = $5, updated_at = NOW()
		WHERE id = $6
	`, sr.Name, sr.Slug, sr.Description, sr.CoverImageURL, sr.SortOrder, sr.ID)
	if err != nil {
		return fmt.Errorf("update series: %w", err)
	}
	return nil
}

// Delete removes a series. A series that still has member posts (in any
// status) cannot be deleted; the count and delete run in one transaction
// so a concurrent post assignment cannot slip between them.
func (s *BlogSeriesStore) Delete(id uuid.UUID) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("delete series begin: %w", err)
	}
	defer tx.Rollback()

	var postCount int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM blog_posts WHERE series_id = $1`, id).Scan(&postCount); err != nil {
		return fmt.Errorf("delete series count posts: %w", err)
	}
	if postCount > 0 {
		return ErrSeriesHasPosts
	}

	if _, err := tx.Exec(`DELETE FROM blog_series WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete series: %w", err)
	}
	return tx.Commit()
}
