// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// pagination.go holds the shared page/limit arithmetic used by every
// paginated list query (blog posts, series, courses, admin comments).
package store

// Default and maximum page sizes for list endpoints.
const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// PageParams carries normalized pagination input. Construct via NewPageParams.
type PageParams struct {
	Page  int
	Limit int
}

// NewPageParams clamps raw page/limit values to sane bounds: page is
// 1-based (default 1), limit defaults to DefaultPageLimit and is capped
// at MaxPageLimit.
func NewPageParams(page, limit int) PageParams {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return PageParams{Page: page, Limit: limit}
}

// Offset returns the number of rows to skip for the current page.
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageMeta describes the pagination envelope returned alongside list items.
type PageMeta struct {
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	TotalCount      int  `json:"total_count"`
	TotalPages      int  `json:"total_pages"`
	HasNextPage     bool `json:"has_next_page"`
	HasPreviousPage bool `json:"has_previous_page"`
}

// NewPageMeta computes the envelope for a total row count.
func NewPageMeta(p PageParams, totalCount int) PageMeta {
	totalPages := (totalCount + p.Limit - 1) / p.Limit
	return PageMeta{
		Page:            p.Page,
		Limit:           p.Limit,
		TotalCount:      totalCount,
		TotalPages:      totalPages,
		HasNextPage:     p.Page < totalPages,
		HasPreviousPage: p.Page > 1,
	}
}
