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

// BlogCommentStore handles blog comment database operations.
type BlogCommentStore struct {
	db *sql.DB
}

// NewBlogCommentStore creates a new BlogCommentStore.
func NewBlogCommentStore(db *sql.DB) *BlogCommentStore {
	return &BlogCommentStore{db: db}
}

const commentColumns = `id, post_id, author, email, website, content, is_approved, likes, created_at`

func scanComment(row interface{ Scan(...any) error }) (*models.BlogComment, error) {
	c := &models.BlogComment{}
	err := row.Scan(
		&c.ID, &c.PostID, &c.Author, &c.Email, &c.Website, &c.Content,
		&c.IsApproved, &c.Likes, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListApprovedByPost returns approved comments for a post, oldest first.
// This is the only comment listing public callers ever see.
func (s *BlogCommentStore) ListApprovedByPost(postID uuid.UUID) ([]models.BlogComment, error) {
	rows, err := s.db.Query(`
		SELECT `+commentColumns+` FROM blog_comments
		WHERE post_id = $1 AND is_approved = TRUE
		ORDER BY created_at ASC
	`, postID)
	if err != nil {
		return nil, fmt.Errorf("list approved comments: %w", err)
	}
	defer rows.Close()

	var items []models.BlogComment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// ListPaginated returns one page of comments for the admin moderation
// queue, newest first. approved filters by moderation state when non-nil.
func (s *BlogCommentStore) ListPaginated(approved *bool, p PageParams) ([]models.BlogComment, PageMeta, error) {
	where := ""
	var args []any
	if approved != nil {
		where = " WHERE is_approved = $1"
		args = append(args, *approved)
	}

	var total int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM blog_comments`+where, args...).Scan(&total); err != nil {
		return nil, PageMeta{}, fmt.Errorf("count comments: %w", err)
	}

	args = append(args, p.Limit, p.Offset())
	query := fmt.Sprintf(`SELECT %s FROM blog_comments%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		commentColumns, where, len(args)-1, len(args))

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, PageMeta{}, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var items []models.BlogComment
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, PageMeta{}, fmt.Errorf("scan comment: %w", err)
		}
		items = append(items, *c)
	}
	return items, NewPageMeta(p, total), rows.Err()
}

// FindByID retrieves a comment by UUID. Returns nil if not found.
func (s *BlogCommentStore) FindByID(id uuid.UUID) (*models.BlogComment, error) {
	c, err := scanComment(s.db.QueryRow(
		`SELECT `+commentColumns+` FROM blog_comments WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find comment by id: %w", err)
	}
	return c, nil
}

// Create inserts a new comment with the moderation verdict already decided
// by the spam screen.
func (s *BlogCommentStore) Create(c *models.BlogComment) (*models.BlogComment, error) {
	created, err := scanComment(s.db.QueryRow(`
		INSERT INTO blog_comments (post_id, author, email, website, content, is_approved)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+commentColumns,
		c.PostID, c.Author, c.Email, c.Website, c.Content, c.IsApproved,
	))
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return created, nil
}

// SetApproved flips the moderation state. Both directions are reversible;
// only Delete is terminal.
func (s *BlogCommentStore) SetApproved(id uuid.UUID, approved bool) error {
	_, err := s.db.Exec(`UPDATE blog_comments SET is_approved = $1 WHERE id = $2`, approved, id)
	if err != nil {
		return fmt.Errorf("set comment approved: %w", err)
	}
	return nil
}

// Delete removes a comment permanently.
func (s *BlogCommentStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM blog_comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

// IncrementLikes bumps the like counter for an already-approved comment
// and returns the new total. Returns -1 when the comment does not exist
// or is not approved.
func (s *BlogCommentStore) IncrementLikes(id uuid.UUID) (int, error) {
	var likes int
	err := s.db.QueryRow(`
		UPDATE blog_comments SET likes = likes + 1
		WHERE id = $1 AND is_approved = TRUE
		RETURNING likes
	`, id).Scan(&likes)
	if err == sql.ErrNoRows {
		return -1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("increment comment likes: %w", err)
	}
	return likes, nil
}
