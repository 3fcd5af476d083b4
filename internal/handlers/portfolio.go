// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"devfolio/internal/models"
	"devfolio/internal/slug"
	"devfolio/internal/store"
)

// Portfolio groups the portfolio section and page HTTP handlers.
type Portfolio struct {
	portfolio *store.PortfolioStore
}

// NewPortfolio creates a new Portfolio handler group.
func NewPortfolio(portfolio *store.PortfolioStore) *Portfolio {
	return &Portfolio{portfolio: portfolio}
}

// ListSections returns the visible sections in display order.
func (h *Portfolio) ListSections(w http.ResponseWriter, r *http.Request) {
	items, err := h.portfolio.ListSections(true)
	if err != nil {
		slog.Error("list sections failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

// AdminListSections returns all sections including hidden ones.
func (h *Portfolio) AdminListSections(w http.ResponseWriter, r *http.Request) {
	items, err := h.portfolio.ListSections(false)
	if err != nil {
		slog.Error("list sections failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

// CreateSection adds a content section.
func (h *Portfolio) CreateSection(w http.ResponseWriter, r *http.Request) {
	var sec models.PortfolioSection
	if err := decodeJSON(r, &sec); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if sec.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if sec.Type == "" {
		sec.Type = models.SectionTypeCustom
	}
	if len(sec.Content) == 0 {
		sec.Content = []byte("{}")
	}

	created, err := h.portfolio.CreateSection(&sec)
	if err != nil {
		slog.Error("create section failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdateSection modifies an existing section.
func (h *Portfolio) UpdateSection(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid section id")
		return
	}

	existing, err := h.portfolio.FindSectionByID(id)
	if err != nil {
		slog.Error("find section failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if existing == nil {
		respondError(w, http.StatusNotFound, "section not found")
		return
	}

	var sec models.PortfolioSection
	if err := decodeJSON(r, &sec); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	sec.ID = id
	if sec.Type == "" {
		sec.Type = existing.Type
	}
	if len(sec.Content) == 0 {
		sec.Content = existing.Content
	}

	if err := h.portfolio.UpdateSection(&sec); err != nil {
		slog.Error("update section failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	updated, err := h.portfolio.FindSectionByID(id)
	if err != nil || updated == nil {
		slog.Error("reload section failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// DeleteSection removes a section.
func (h *Portfolio) DeleteSection(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid section id")
		return
	}
	if err := h.portfolio.DeleteSection(id); err != nil {
		slog.Error("delete section failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// Homepage returns the page flagged as homepage, if any is published.
func (h *Portfolio) Homepage(w http.ResponseWriter, r *http.Request) {
	pg, err := h.portfolio.FindHomepage()
	if err != nil {
		slog.Error("find homepage failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if pg == nil || !pg.IsPublished {
		respondError(w, http.StatusNotFound, "no homepage configured")
		return
	}
	respondJSON(w, http.StatusOK, pg)
}

// GetPage returns a published page by ID or slug. Unpublished pages stay
// hidden on this route regardless of how they are addressed.
func (h *Portfolio) GetPage(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")

	var (
		pg  *models.PortfolioPage
		err error
	)
	if id, ok := ParseRef(ref); ok {
		pg, err = h.portfolio.FindPageByID(id)
	} else {
		pg, err = h.portfolio.FindPageBySlug(ref)
	}
	if err != nil {
		slog.Error("find page failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if pg == nil || !pg.IsPublished {
		respondError(w, http.StatusNotFound, "page not found")
		return
	}
	respondJSON(w, http.StatusOK, pg)
}

// AdminListPages returns all pages regardless of publication state.
func (h *Portfolio) AdminListPages(w http.ResponseWriter, r *http.Request) {
	items, err := h.portfolio.ListPages()
	if err != nil {
		slog.Error("list pages failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

// AdminGetPage returns a single page by ID for editing.
func (h *Portfolio) AdminGetPage(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid page id")
		return
	}
	pg, err := h.portfolio.FindPageByID(id)
	if err != nil {
		slog.Error("find page failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if pg == nil {
		respondError(w, http.StatusNotFound, "page not found")
		return
	}
	respondJSON(w, http.StatusOK, pg)
}

// CreatePage adds a page. New pages never start as the homepage; promote
// one explicitly through SetHomepage.
func (h *Portfolio) CreatePage(w http.ResponseWriter, r *http.Request) {
	var pg models.PortfolioPage
	if err := decodeJSON(r, &pg); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if pg.Title == "" {
		respondError(w, http.StatusBadRequest, "title is required")
		return
	}
	if len(pg.Content) == 0 {
		pg.Content = []byte("{}")
	}

	derived := pg.Slug == ""
	if derived {
		pg.Slug = slug.Generate(pg.Title)
	}

	created, err := h.portfolio.CreatePage(&pg)
	if err != nil && store.IsUniqueViolation(err) && derived {
		pg.Slug = slug.WithSuffix(pg.Slug)
		created, err = h.portfolio.CreatePage(&pg)
	}
	if err != nil {
		if store.IsUniqueViolation(err) {
			respondError(w, http.StatusConflict, "slug already in use")
			return
		}
		slog.Error("create page failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// UpdatePage modifies an existing page. The homepage flag is not touched
// here.
func (h *Portfolio) UpdatePage(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid page id")
		return
	}

	existing, err := h.portfolio.FindPageByID(id)
	if err != nil {
		slog.Error("find page failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if existing == nil {
		respondError(w, http.StatusNotFound, "page not found")
		return
	}

	var pg models.PortfolioPage
	if err := decodeJSON(r, &pg); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	pg.ID = id
	if pg.Slug == "" {
		pg.Slug = existing.Slug
	}
	if len(pg.Content) == 0 {
		pg.Content = existing.Content
	}

	if err := h.portfolio.UpdatePage(&pg); err != nil {
		if store.IsUniqueViolation(err) {
			respondError(w, http.StatusConflict, "slug already in use")
			return
		}
		slog.Error("update page failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	updated, err := h.portfolio.FindPageByID(id)
	if err != nil || updated == nil {
		slog.Error("reload page failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// SetHomepage promotes one page to homepage, demoting any other in the
// same transaction.
func (h *Portfolio) SetHomepage(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid page id")
		return
	}

	if err := h.portfolio.SetHomepage(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusNotFound, "page not found")
			return
		}
		slog.Error("set homepage failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	pg, err := h.portfolio.FindPageByID(id)
	if err != nil || pg == nil {
		slog.Error("reload page failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, pg)
}

// DeletePage removes a page.
func (h *Portfolio) DeletePage(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid page id")
		return
	}
	if err := h.portfolio.DeletePage(id); err != nil {
		slog.Error("delete page failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
