// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PostStatus represents the publishing state of a blog post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "DRAFT"
	PostStatusPublished PostStatus = "PUBLISHED"
)

// wordsPerMinute is the reading speed used for estimated reading time.
const wordsPerMinute = 200

// BlogPost represents a single article. Drafts are invisible to public
// callers; PublishedAt is set exactly once, on the first transition to
// PUBLISHED.
type BlogPost struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"`
	Excerpt     *string    `json:"excerpt,omitempty"`
	Tags        []string   `json:"tags"`
	Status      PostStatus `json:"status"`
	CategoryID  uuid.UUID  `json:"category_id"`
	SeriesID    *uuid.UUID `json:"series_id,omitempty"`
	SeriesOrder *int       `json:"series_order,omitempty"`
	AuthorID    uuid.UUID  `json:"author_id"`
	Views       int        `json:"views"`
	Likes       int        `json:"likes"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsPublished returns true if the post is publicly visible.
func (p *BlogPost) IsPublished() bool {
	return p.Status == PostStatusPublished
}

// ReadingTime estimates reading time in whole minutes, minimum 1.
func (p *BlogPost) ReadingTime() int {
	words := len(strings.Fields(p.Content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// BlogCategory is a named grouping for posts.
type BlogCategory struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BlogSeries is an ordered grouping of posts sharing a theme. PostCount
// and TotalReadingTime are derived at query time, never stored.
type BlogSeries struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	Description      *string   `json:"description,omitempty"`
	CoverImageURL    *string   `json:"cover_image_url,omitempty"`
	SortOrder        int       `json:"sort_order"`
	PostCount        int       `json:"post_count"`
	TotalReadingTime int       `json:"total_reading_time"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// BlogComment is a reader comment on a post. The moderation pipeline sets
// IsApproved at creation; admins can flip it either way afterwards.
type BlogComment struct {
	ID         uuid.UUID `json:"id"`
	PostID     uuid.UUID `json:"post_id"`
	Author     string    `json:"author"`
	Email      string    `json:"-"` // Never exposed publicly
	Website    *string   `json:"website,omitempty"`
	Content    string    `json:"content"`
	IsApproved bool      `json:"is_approved"`
	Likes      int       `json:"likes"`
	CreatedAt  time.Time `json:"created_at"`
}

// PostFilter narrows blog post list queries. Zero values mean "no filter".
type PostFilter struct {
	Status        PostStatus
	CategoryID    *uuid.UUID
	SeriesID      *uuid.UUID
	Tag           string
	Search        string // free text across title/excerpt/content
	PublishedOnly bool   // public callers always set this
}
