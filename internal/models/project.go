// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectStatus represents the development state of a project.
type ProjectStatus string

const (
	ProjectStatusPlanned    ProjectStatus = "planned"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusArchived   ProjectStatus = "archived"
)

// ProjectCategory groups projects for the public showcase.
type ProjectCategory string

const (
	ProjectCategoryFullStack ProjectCategory = "fullstack"
	ProjectCategoryFrontend  ProjectCategory = "frontend"
	ProjectCategoryBackend   ProjectCategory = "backend"
	ProjectCategoryOther     ProjectCategory = "other"
)

// Project represents a portfolio project. Inactive projects are hidden
// from all public endpoints but remain editable in the admin area.
type Project struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	Slug         string          `json:"slug"`
	Description  string          `json:"description"`
	Technologies []string        `json:"technologies"`
	Status       ProjectStatus   `json:"status"`
	Category     ProjectCategory `json:"category"`
	GithubURL    *string         `json:"github_url,omitempty"`
	LiveURL      *string         `json:"live_url,omitempty"`
	ImageURL     *string         `json:"image_url,omitempty"`
	Challenges   *string         `json:"challenges,omitempty"`
	Solutions    *string         `json:"solutions,omitempty"`
	Results      *string         `json:"results,omitempty"`
	IsFeatured   bool            `json:"is_featured"`
	IsFlagship   bool            `json:"is_flagship"`
	IsDemo       bool            `json:"is_demo"`
	IsActive     bool            `json:"is_active"`
	SortOrder    int             `json:"sort_order"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ProjectFilter narrows project list queries. Zero values mean "no filter".
type ProjectFilter struct {
	Category   ProjectCategory
	Status     ProjectStatus
	Featured   *bool
	Demo       *bool
	ActiveOnly bool // public callers always set this
}
