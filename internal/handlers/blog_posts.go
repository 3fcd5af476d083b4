// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"devfolio/internal/cache"
	"devfolio/internal/markdown"
	"devfolio/internal/middleware"
	"devfolio/internal/models"
	"devfolio/internal/slug"
	"devfolio/internal/store"
)

// BlogPosts groups the blog post HTTP handlers.
type BlogPosts struct {
	posts     *store.BlogPostStore
	feedCache *cache.FeedCache
}

// NewBlogPosts creates a new BlogPosts handler group. feedCache may be
// nil when Valkey is not configured.
func NewBlogPosts(posts *store.BlogPostStore, feedCache *cache.FeedCache) *BlogPosts {
	return &BlogPosts{posts: posts, feedCache: feedCache}
}

// invalidateFeeds drops cached RSS/sitemap documents after any change
// that affects published content.
func (h *BlogPosts) invalidateFeeds(r *http.Request) {
	if h.feedCache != nil {
		h.feedCache.Invalidate(r.Context())
	}
}

// postView is a BlogPost response enriched with derived fields.
type postView struct {
	models.BlogPost
	ReadingTime int    `json:"reading_time"`
	ContentHTML string `json:"content_html,omitempty"`
}

// List returns published posts, newest first. Filters: ?category= (id),
// ?series= (id), ?tag=, ?q= free text; paginated.
func (h *BlogPosts) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := models.PostFilter{
		Tag:           q.Get("tag"),
		Search:        q.Get("q"),
		PublishedOnly: true,
	}
	if id, err := uuid.Parse(q.Get("category")); err == nil {
		f.CategoryID = &id
	}
	if id, err := uuid.Parse(q.Get("series")); err == nil {
		f.SeriesID = &id
	}

	items, meta, err := h.posts.ListPaginated(f, parsePageParams(r))
	if err != nil {
		slog.Error("list posts failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	views := make([]postView, 0, len(items))
	for i := range items {
		views = append(views, postView{BlogPost: items[i], ReadingTime: items[i].ReadingTime()})
	}
	respondList(w, views, meta)
}

// Get resolves a published post by ID or slug and bumps its view counter.
// The response carries the Markdown source and the rendered HTML.
func (h *BlogPosts) Get(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")

	var (
		post *models.BlogPost
		err  error
	)
	if id, ok := ParseRef(ref); ok {
		post, err = h.posts.FindByID(id)
		if post != nil && !post.IsPublished() {
			post = nil
		}
	} else {
		post, err = h.posts.FindBySlug(ref)
	}
	if err != nil {
		slog.Error("find post failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if post == nil {
		respondError(w, http.StatusNotFound, "post not found")
		return
	}

	// View counting is best effort; a failed bump never fails the read.
	if err := h.posts.IncrementViews(post.ID); err != nil {
		slog.Warn("increment views failed", "post", post.ID, "error", err)
	} else {
		post.Views++
	}

	html, err := markdown.ToHTML(post.Content)
	if err != nil {
		slog.Warn("markdown render failed", "post", post.ID, "error", err)
	}

	respondJSON(w, http.StatusOK, postView{
		BlogPost:    *post,
		ReadingTime: post.ReadingTime(),
		ContentHTML: html,
	})
}

// Like bumps the like counter on a published post and returns the new
// count. There is no per-visitor idempotency; rate limiting is the only
// guard against abuse.
func (h *BlogPosts) Like(w http.ResponseWriter, r *http.Request) {
	ref := chi.URLParam(r, "ref")

	id, ok := ParseRef(ref)
	if !ok {
		post, err := h.posts.FindBySlug(ref)
		if err != nil {
			slog.Error("find post failed", "error", err)
			respondError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		if post == nil {
			respondError(w, http.StatusNotFound, "post not found")
			return
		}
		id = post.ID
	}

	likes, err := h.posts.IncrementLikes(id)
	if err != nil {
		slog.Error("increment likes failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if likes < 0 {
		respondError(w, http.StatusNotFound, "post not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"likes": likes})
}

// AdminList returns posts of any status with the full filter set:
// ?status=, ?category=, ?series=, ?tag=, ?q=; paginated.
func (h *BlogPosts) AdminList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := models.PostFilter{
		Status: models.PostStatus(q.Get("status")),
		Tag:    q.Get("tag"),
		Search: q.Get("q"),
	}
	if id, err := uuid.Parse(q.Get("category")); err == nil {
		f.CategoryID = &id
	}
	if id, err := uuid.Parse(q.Get("series")); err == nil {
		f.SeriesID = &id
	}

	items, meta, err := h.posts.ListPaginated(f, parsePageParams(r))
	if err != nil {
		slog.Error("list posts failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondList(w, items, meta)
}

// AdminGet fetches any post by ID, drafts included.
func (h *BlogPosts) AdminGet(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid post id")
		return
	}
	post, err := h.posts.FindByID(id)
	if err != nil {
		slog.Error("find post failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if post == nil {
		respondError(w, http.StatusNotFound, "post not found")
		return
	}
	respondJSON(w, http.StatusOK, post)
}

// Create adds a new post. Creating directly with status PUBLISHED stamps
// published_at; drafts stay unstamped until their first publish.
func (h *BlogPosts) Create(w http.ResponseWriter, r *http.Request) {
	var p models.BlogPost
	if err := decodeJSON(r, &p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if p.Title == "" {
		respondError(w, http.StatusBadRequest, "title is required")
		return
	}
	if p.CategoryID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "category is required")
		return
	}
	if p.Status == "" {
		p.Status = models.PostStatusDraft
	}
	if sess := middleware.SessionFromCtx(r.Context()); sess != nil {
		p.AuthorID = sess.UserID
	}

	derived := p.Slug == ""
	if derived {
		p.Slug = slug.Generate(p.Title)
	}

	created, err := h.posts.Create(&p)
	if derived && store.IsUniqueViolation(err) {
		p.Slug = slug.WithSuffix(p.Slug)
		created, err = h.posts.Create(&p)
	}
	if store.IsUniqueViolation(err) {
		respondError(w, http.StatusConflict, "slug already in use")
		return
	}
	if err != nil {
		slog.Error("create post failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if created.IsPublished() {
		h.invalidateFeeds(r)
	}
	respondJSON(w, http.StatusCreated, created)
}

// Update replaces a post's fields. published_at is write-once: the first
// transition to PUBLISHED stamps it and later edits never move it.
func (h *BlogPosts) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	existing, err := h.posts.FindByID(id)
	if err != nil {
		slog.Error("find post failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if existing == nil {
		respondError(w, http.StatusNotFound, "post not found")
		return
	}

	var p models.BlogPost
	if err := decodeJSON(r, &p); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p.ID = id
	if p.Slug == "" {
		p.Slug = existing.Slug
	}
	if p.Status == "" {
		p.Status = existing.Status
	}
	if p.CategoryID == uuid.Nil {
		p.CategoryID = existing.CategoryID
	}

	updated, err := h.posts.Update(&p)
	if err != nil {
		if store.IsUniqueViolation(err) {
			respondError(w, http.StatusConflict, "slug already in use")
			return
		}
		slog.Error("update post failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if existing.IsPublished() || updated.IsPublished() {
		h.invalidateFeeds(r)
	}
	respondJSON(w, http.StatusOK, updated)
}

// Delete removes a post and its comments (FK cascade).
func (h *BlogPosts) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid post id")
		return
	}
	if err := h.posts.Delete(id); err != nil {
		slog.Error("delete post failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	h.invalidateFeeds(r)
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
