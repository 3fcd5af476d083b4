// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"devfolio/internal/models"
	"devfolio/internal/slug"
	"devfolio/internal/store"
)

// BlogCategories groups the blog category HTTP handlers.
type BlogCategories struct {
	categories *store.BlogCategoryStore
}

// NewBlogCategories creates a new BlogCategories handler group.
func NewBlogCategories(categories *store.BlogCategoryStore) *BlogCategories {
	return &BlogCategories{categories: categories}
}

// List returns all categories ordered by sort order then name.
func (h *BlogCategories) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.categories.List()
	if err != nil {
		slog.Error("list categories failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

// Get returns a single category by ID or slug.
func (h *BlogCategories) Get(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")

	var (
		cat *models.BlogCategory
		err error
	)
	if id, ok := ParseRef(ref); ok {
		cat, err = h.categories.FindByID(id)
	} else {
		cat, err = h.categories.FindBySlug(ref)
	}
	if err != nil {
		slog.Error("find category failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if cat == nil {
		respondError(w, http.StatusNotFound, "category not found")
		return
	}
	respondJSON(w, http.StatusOK, cat)
}

// Create adds a new category, deriving the slug from the name when none
// is given.
func (h *BlogCategories) Create(w http.ResponseWriter, r *http.Request) {
	var cat models.BlogCategory
	if err := decodeJSON(r, &cat); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if cat.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	derived := cat.Slug == ""
	if derived {
		cat.Slug = slug.Generate(cat.Name)
	}

	created, err := h.categories.Create(&cat)
	if err != nil && store.IsUniqueViolation(err) && derived {
		cat.Slug = slug.WithSuffix(cat.Slug)
		created, err = h.categories.Create(&cat)
	}
	if err != nil {
		if store.IsUniqueViolation(err) {
			respondError(w, http.StatusConflict, "slug already in use")
			return
		}
		slog.Error("create category failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// Update modifies an existing category.
func (h *BlogCategories) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	existing, err := h.categories.FindByID(id)
	if err != nil {
		slog.Error("find category failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if existing == nil {
		respondError(w, http.StatusNotFound, "category not found")
		return
	}

	var cat models.BlogCategory
	if err := decodeJSON(r, &cat); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cat.ID = id
	if cat.Slug == "" {
		cat.Slug = existing.Slug
	}

	if err := h.categories.Update(&cat); err != nil {
		if store.IsUniqueViolation(err) {
			respondError(w, http.StatusConflict, "slug already in use")
			return
		}
		slog.Error("update category failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	updated, err := h.categories.FindByID(id)
	if err != nil || updated == nil {
		slog.Error("reload category failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// Delete removes a category. Posts keep a category via a foreign key, so
// the database refuses to delete one still in use.
func (h *BlogCategories) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid category id")
		return
	}
	if err := h.categories.Delete(id); err != nil {
		if store.IsForeignKeyViolation(err) {
			respondError(w, http.StatusConflict, "category still has posts")
			return
		}
		slog.Error("delete category failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// BlogSeriesHandlers groups the blog series HTTP handlers.
type BlogSeriesHandlers struct {
	series *store.BlogSeriesStore
	posts  *store.BlogPostStore
}

// NewBlogSeries creates a new BlogSeriesHandlers group.
func NewBlogSeries(series *store.BlogSeriesStore, posts *store.BlogPostStore) *BlogSeriesHandlers {
	return &BlogSeriesHandlers{series: series, posts: posts}
}

// List returns series with derived post counts and total reading time,
// paginated.
func (h *BlogSeriesHandlers) List(w http.ResponseWriter, r *http.Request) {
	items, meta, err := h.series.ListPaginated(parsePageParams(r))
	if err != nil {
		slog.Error("list series failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondList(w, items, meta)
}

// Get returns a single series by ID or slug.
func (h *BlogSeriesHandlers) Get(w http.ResponseWriter, r *http.Request) {
	sr := h.resolve(w, chi.URLParam(r, "ref"))
	if sr == nil {
		return
	}
	respondJSON(w, http.StatusOK, sr)
}

// Posts returns the published posts of a series in reading order.
func (h *BlogSeriesHandlers) Posts(w http.ResponseWriter, r *http.Request) {
	sr := h.resolve(w, chi.URLParam(r, "ref"))
	if sr == nil {
		return
	}

	posts, err := h.posts.ListBySeries(sr.ID)
	if err != nil {
		slog.Error("list series posts failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"series": sr, "items": posts})
}

func (h *BlogSeriesHandlers) resolve(w http.ResponseWriter, ref string) *models.BlogSeries {
	var (
		sr  *models.BlogSeries
		err error
	)
	if id, ok := ParseRef(ref); ok {
		sr, err = h.series.FindByID(id)
	} else {
		sr, err = h.series.FindBySlug(ref)
	}
	if err != nil {
		slog.Error("find series failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return nil
	}
	if sr == nil {
		respondError(w, http.StatusNotFound, "series not found")
		return nil
	}
	return sr
}

// Create adds a new series.
func (h *BlogSeriesHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var sr models.BlogSeries
	if err := decodeJSON(r, &sr); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if sr.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	derived := sr.Slug == ""
	if derived {
		sr.Slug = slug.Generate(sr.Name)
	}

	created, err := h.series.Create(&sr)
	if err != nil && store.IsUniqueViolation(err) && derived {
		sr.Slug = slug.WithSuffix(sr.Slug)
		created, err = h.series.Create(&sr)
	}
	if err != nil {
		if store.IsUniqueViolation(err) {
			respondError(w, http.StatusConflict, "slug already in use")
			return
		}
		slog.Error("create series failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// Update modifies an existing series.
func (h *BlogSeriesHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid series id")
		return
	}

	existing, err := h.series.FindByID(id)
	if err != nil {
		slog.Error("find series failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if existing == nil {
		respondError(w, http.StatusNotFound, "series not found")
		return
	}

	var sr models.BlogSeries
	if err := decodeJSON(r, &sr); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	sr.ID = id
	if sr.Slug == "" {
		sr.Slug = existing.Slug
	}

	if err := h.series.Update(&sr); err != nil {
		if store.IsUniqueViolation(err) {
			respondError(w, http.StatusConflict, "slug already in use")
			return
		}
		slog.Error("update series failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	updated, err := h.series.FindByID(id)
	if err != nil || updated == nil {
		slog.Error("reload series failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// Delete removes a series. A series that still has member posts cannot
// be deleted; reassign or delete its posts first.
func (h *BlogSeriesHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid series id")
		return
	}
	if err := h.series.Delete(id); err != nil {
		if errors.Is(err, store.ErrSeriesHasPosts) {
			respondError(w, http.StatusConflict, "series still has posts")
			return
		}
		slog.Error("delete series failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
