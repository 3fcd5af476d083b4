// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SectionType identifies what kind of content block a section holds.
type SectionType string

const (
	SectionTypeHero     SectionType = "hero"
	SectionTypeAbout    SectionType = "about"
	SectionTypeProjects SectionType = "projects"
	SectionTypeSkills   SectionType = "skills"
	SectionTypeBlog     SectionType = "blog"
	SectionTypeContact  SectionType = "contact"
	SectionTypeCustom   SectionType = "custom"
)

// PortfolioSection is a named, orderable content block. Content is a
// free-form JSON payload whose shape depends on Type.
type PortfolioSection struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Type      SectionType     `json:"type"`
	Content   json.RawMessage `json:"content"`
	IsVisible bool            `json:"is_visible"`
	SortOrder int             `json:"sort_order"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// PortfolioPage is a standalone page built from a JSON content payload.
// At most one page has IsHomepage set; SetHomepage enforces this in a
// single transaction.
type PortfolioPage struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Content     json.RawMessage `json:"content"`
	IsHomepage  bool            `json:"is_homepage"`
	IsPublished bool            `json:"is_published"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
