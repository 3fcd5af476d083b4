// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"devfolio/internal/models"
)

// BlogPostStore handles all blog post database operations.
type BlogPostStore struct {
	db *sql.DB
}

// NewBlogPostStore creates a new BlogPostStore with the given database connection.
func NewBlogPostStore(db *sql.DB) *BlogPostStore {
	return &BlogPostStore{db: db}
}

const postColumns = `id, title, slug, content, excerpt, tags, status,
	category_id, series_id, series_order, author_id, views, likes,
	published_at, created_at, updated_at`

func scanPost(row interface{ Scan(...any) error }) (*models.BlogPost, error) {
	p := &models.BlogPost{}
	var tags []byte
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt, &tags, &p.Status,
		&p.CategoryID, &p.SeriesID, &p.SeriesOrder, &p.AuthorID, &p.Views, &p.Likes,
		&p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Tags = scanList(tags)
	return p, nil
}

// buildPostFilter turns a PostFilter into a WHERE clause and argument list.
// Clauses are added conditionally; the same predicate set feeds both the
// count query and the bounded page query.
func buildPostFilter(f models.PostFilter) (string, []any) {
	var (
		where []string
		args  []any
	)
	add := func(clause string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}

	if f.PublishedOnly {
		where = append(where, "status = 'PUBLISHED'")
	} else if f.Status != "" {
		add("status = $%d", f.Status)
	}
	if f.CategoryID != nil {
		add("category_id = $%d", *f.CategoryID)
	}
	if f.SeriesID != nil {
		add("series_id = $%d", *f.SeriesID)
	}
	if f.Tag != "" {
		tag, _ := json.Marshal([]string{f.Tag})
		add("tags @> $%d", tag)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		args = append(args, pattern)
		n := len(args)
		where = append(where, fmt.Sprintf(
			"(title ILIKE $%d OR excerpt ILIKE $%d OR content ILIKE $%d)", n, n, n))
	}

	if len(where) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(where, " AND "), args
}

// ListPaginated returns one page of posts matching the filter, newest
// first (by published date for public listings, creation date otherwise),
// along with the pagination envelope.
func (s *BlogPostStore) ListPaginated(f models.PostFilter, p PageParams) ([]models.BlogPost, PageMeta, error) {
	whereClause, args := buildPostFilter(f)

	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM blog_posts`+whereClause, args...).Scan(&total); err != nil {
		return nil, PageMeta{}, fmt.Errorf("count posts: %w", err)
	}

	order := " ORDER BY created_at DESC"
	if f.PublishedOnly {
		order = " ORDER BY published_at DESC NULLS LAST"
	}

	args = append(args, p.Limit, p.Offset())
	query := `SELECT ` + postColumns + ` FROM blog_posts` + whereClause + order +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, PageMeta{}, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var items []models.BlogPost
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, PageMeta{}, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, *post)
	}
	return items, NewPageMeta(p, total), rows.Err()
}

// ListPublished returns up to limit published posts, newest first; a
// limit of 0 returns all of them. Used by the feed and sitemap
// generators.
func (s *BlogPostStore) ListPublished(limit int) ([]models.BlogPost, error) {
	rows, err := s.db.Query(`
		SELECT `+postColumns+` FROM blog_posts
		WHERE status = 'PUBLISHED'
		ORDER BY published_at DESC NULLS LAST
		LIMIT NULLIF($1, 0)
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list published posts: %w", err)
	}
	defer rows.Close()

	var items []models.BlogPost
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, *post)
	}
	return items, rows.Err()
}

// ListBySeries returns all published posts in a series ordered by their
// position within it.
func (s *BlogPostStore) ListBySeries(seriesID uuid.UUID) ([]models.BlogPost, error) {
	rows, err := s.db.Query(`
		SELECT `+postColumns+` FROM blog_posts
		WHERE series_id = $1 AND status = 'PUBLISHED'
		ORDER BY series_order ASC NULLS LAST, published_at ASC
	`, seriesID)
	if err != nil {
		return nil, fmt.Errorf("list posts by series: %w", err)
	}
	defer rows.Close()

	var items []models.BlogPost
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, *post)
	}
	return items, rows.Err()
}

// FindByID retrieves a post by its UUID regardless of status. Returns nil
// if not found.
func (s *BlogPostStore) FindByID(id uuid.UUID) (*models.BlogPost, error) {
	p, err := scanPost(s.db.QueryRow(
		`SELECT `+postColumns+` FROM blog_posts WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	return p, nil
}

// FindBySlug retrieves a published post by its slug. Drafts are invisible
// here; admin callers go through FindByID.
func (s *BlogPostStore) FindBySlug(slug string) (*models.BlogPost, error) {
	p, err := scanPost(s.db.QueryRow(
		`SELECT `+postColumns+` FROM blog_posts WHERE slug = $1 AND status = 'PUBLISHED'`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by slug: %w", err)
	}
	return p, nil
}

// Create inserts a new post. When created directly in PUBLISHED status,
// published_at is stamped by the database in the same statement.
func (s *BlogPostStore) Create(p *models.BlogPost) (*models.BlogPost, error) {
	created, err := scanPost(s.db.QueryRow(`
		INSERT INTO blog_posts (title, slug, content, excerpt, tags, status,
			category_id, series_id, series_order, author_id, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			CASE WHEN $6 = 'PUBLISHED' THEN NOW() END)
		RETURNING `+postColumns,
		p.Title, p.Slug, p.Content, p.Excerpt, jsonList(p.Tags), p.Status,
		p.CategoryID, p.SeriesID, p.SeriesOrder, p.AuthorID,
	))
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return created, nil
}

// Update modifies an existing post. published_at is set exactly once, on
// the first transition into PUBLISHED: the COALESCE keeps any existing
// timestamp through later updates, and a move back to DRAFT leaves it
// untouched.
func (s *BlogPostStore) Update(p *models.BlogPost) (*models.BlogPost, error) {
	updated, err := scanPost(s.db.QueryRow(`
		UPDATE blog_posts SET
			title = $1, slug = $2, content = $3, excerpt = $4, tags = $5,
			status = $6, category_id = $7, series_id = $8, series_order = $9,
			published_at = CASE WHEN $6 = 'PUBLISHED' THEN COALESCE(published_at, NOW())
			               ELSE published_at END,
			updated_at = NOW()
		WHERE id = $10
		RETURNING `+postColumns,
		p.Title, p.Slug, p.Content, p.Excerpt, jsonList(p.Tags),
		p.Status, p.CategoryID, p.SeriesID, p.SeriesOrder, p.ID,
	))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return updated, nil
}

// Delete removes a post by ID. Comments cascade at the database level.
func (s *BlogPostStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

// IncrementViews bumps the view counter for a published post.
func (s *BlogPostStore) IncrementViews(id uuid.UUID) error {
	_, err := s.db.Exec(`
		UPDATE blog_posts SET views = views + 1 WHERE id = $1 AND status = 'PUBLISHED'
	`, id)
	if err != nil {
		return fmt.Errorf("increment post views: %w", err)
	}
	return nil
}

// IncrementLikes bumps the like counter for a published post and returns
// the new total, or -1 when the post does not exist or is not published.
// There is no per-visitor dedup; rate limiting at the edge is the only guard.
func (s *BlogPostStore) IncrementLikes(id uuid.UUID) (int, error) {
	var likes int
	err := s.db.QueryRow(`
		UPDATE blog_posts SET likes = likes + 1
		WHERE id = $1 AND status = 'PUBLISHED'
		RETURNING likes
	`, id).Scan(&likes)
	if err == sql.ErrNoRows {
		return -1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("increment post likes: %w", err)
	}
	return likes, nil
}
