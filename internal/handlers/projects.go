// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"devfolio/internal/models"
	"devfolio/internal/slug"
	"devfolio/internal/store"
)

// Projects groups the portfolio project HTTP handlers.
type Projects struct {
	projects *store.ProjectStore
}

// NewProjects creates a new Projects handler group.
func NewProjects(projects *store.ProjectStore) *Projects {
	return &Projects{projects: projects}
}

// List returns public projects. Supports ?category=, ?status= and
// ?featured=true filters; only active projects are visible here.
func (h *Projects) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := models.ProjectFilter{
		Category:   models.ProjectCategory(q.Get("category")),
		Status:     models.ProjectStatus(q.Get("status")),
		ActiveOnly: true,
	}
	if q.Get("featured") == "true" {
		featured := true
		f.Featured = &featured
	}

	items, err := h.projects.List(f)
	if err != nil {
		slog.Error("list projects failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

// AdminList returns every project regardless of active flag.
func (h *Projects) AdminList(w http.ResponseWriter, r *http.Request) {
	items, err := h.projects.List(models.ProjectFilter{})
	if err != nil {
		slog.Error("list projects failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

// Get resolves a project by ID or slug. The slug path only finds active
// projects; admins fetching by ID see everything.
func (h *Projects) Get(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")

	var (
		project *models.Project
		err     error
	)
	if id, ok := ParseRef(ref); ok {
		project, err = h.projects.FindByID(id)
		// An inactive project found by ID stays hidden on the public route.
		if project != nil && !project.IsActive {
			project = nil
		}
	} else {
		project, err = h.projects.FindBySlug(ref)
	}
	if err != nil {
		slog.Error("find project failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if project == nil {
		respondError(w, http.StatusNotFound, "project not found")
		return
	}
	respondJSON(w, http.StatusOK, project)
}

// AdminGet resolves a project by ID without visibility filtering.
func (h *Projects) AdminGet(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid project id")
		return
	}
	project, err := h.projects.FindByID(id)
	if err != nil {
		slog.Error("find project failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if project == nil {
		respondError(w, http.StatusNotFound, "project not found")
		return
	}
	respondJSON(w, http.StatusOK, project)
}

// Create adds a new project. An empty slug is derived from the title; a
// colliding derived slug is retried once with a random suffix, while an
// explicit slug collision is reported as a conflict.
func (h *Projects) Create(w http.ResponseWriter, r *http.Request) {
	var p models.Project
	if err := decodeJSON(r, &p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if p.Title == "" {
		respondError(w, http.StatusBadRequest, "title is required")
		return
	}

	derived := p.Slug == ""
	if derived {
		p.Slug = slug.Generate(p.Title)
	}

	created, err := h.projects.Create(&p)
	if derived && store.IsUniqueViolation(err) {
		p.Slug = slug.WithSuffix(p.Slug)
		created, err = h.projects.Create(&p)
	}
	if store.IsUniqueViolation(err) {
		respondError(w, http.StatusConflict, "slug already in use")
		return
	}
	if err != nil {
		slog.Error("create project failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// Update replaces a project's fields.
func (h *Projects) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid project id")
		return
	}

	existing, err := h.projects.FindByID(id)
	if err != nil {
		slog.Error("find project failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if existing == nil {
		respondError(w, http.StatusNotFound, "project not found")
		return
	}

	var p models.Project
	if err := decodeJSON(r, &p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p.ID = id
	if p.Slug == "" {
		p.Slug = existing.Slug
	}

	if err := h.projects.Update(&p); err != nil {
		if store.IsUniqueViolation(err) {
			respondError(w, http.StatusConflict, "slug already in use")
			return
		}
		slog.Error("update project failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	updated, err := h.projects.FindByID(id)
	if err != nil || updated == nil {
		slog.Error("reload project failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// Delete removes a project permanently.
func (h *Projects) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid project id")
		return
	}
	if err := h.projects.Delete(id); err != nil {
		slog.Error("delete project failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
