// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"devfolio/internal/mailer"
	"devfolio/internal/middleware"
	"devfolio/internal/models"
	"devfolio/internal/moderation"
	"devfolio/internal/store"
)

// Comments groups the blog comment HTTP handlers, public submission and
// admin moderation alike.
type Comments struct {
	comments *store.BlogCommentStore
	posts    *store.BlogPostStore
	mail     *mailer.Mailer
}

// NewComments creates a new Comments handler group.
func NewComments(comments *store.BlogCommentStore, posts *store.BlogPostStore, mail *mailer.Mailer) *Comments {
	return &Comments{comments: comments, posts: posts, mail: mail}
}

// resolvePublishedPost finds a published post by ID or slug, writing the
// error response itself when the post cannot be served.
func (h *Comments) resolvePublishedPost(w http.ResponseWriter, ref string) *models.BlogPost {
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
		return nil
	}
	if post == nil {
		respondError(w, http.StatusNotFound, "post not found")
		return nil
	}
	return post
}

// ListByPost returns the approved comments on a published post, oldest
// first.
func (h *Comments) ListByPost(w http.ResponseWriter, r *http.Request) {
	post := h.resolvePublishedPost(w, chi.URLParam(r, "ref"))
	if post == nil {
		return
	}

	items, err := h.comments.ListApprovedByPost(post.ID)
	if err != nil {
		slog.Error("list comments failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

// Create runs a submission through the moderation pipeline. Invalid
// submissions are rejected with the specific rule violated; submissions
// matching the spam denylist are stored but held for review.
func (h *Comments) Create(w http.ResponseWriter, r *http.Request) {
	post := h.resolvePublishedPost(w, chi.URLParam(r, "ref"))
	if post == nil {
		return
	}

	var req struct {
		Author  string  `json:"author"`
		Email   string  `json:"email"`
		Website *string `json:"website"`
		Content string  `json:"content"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sub := moderation.Submission{Author: req.Author, Email: req.Email, Content: req.Content}
	if msg := moderation.Validate(sub); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	comment := &models.BlogComment{
		PostID:     post.ID,
		Author:     req.Author,
		Email:      req.Email,
		Website:    req.Website,
		Content:    req.Content,
		IsApproved: !moderation.IsSpam(sub),
	}

	created, err := h.comments.Create(comment)
	if err != nil {
		slog.Error("create comment failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	// Held comments get an owner notification; a mail failure never
	// fails the submission.
	if !created.IsApproved {
		if err := h.mail.NotifyCommentPending(r.Context(), created.Author, post.Title); err != nil {
			slog.Warn("comment notification failed", "error", err)
		}
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"comment":  created,
		"approved": created.IsApproved,
	})
}

// Like bumps the like counter on an approved comment.
func (h *Comments) Like(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid comment id")
		return
	}

	likes, err := h.comments.IncrementLikes(id)
	if err != nil {
		slog.Error("increment comment likes failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if likes < 0 {
		respondError(w, http.StatusNotFound, "comment not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"likes": likes})
}

// AdminList returns all comments, optionally filtered by moderation
// state via ?approved=true|false; paginated, newest first.
func (h *Comments) AdminList(w http.ResponseWriter, r *http.Request) {
	var approved *bool
	switch r.URL.Query().Get("approved") {
	case "true":
		v := true
		approved = &v
	case "false":
		v := false
		approved = &v
	}

	items, meta, err := h.comments.ListPaginated(approved, parsePageParams(r))
	if err != nil {
		slog.Error("list comments failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondList(w, items, meta)
}

// Approve makes a comment publicly visible. Approval is reversible.
func (h *Comments) Approve(w http.ResponseWriter, r *http.Request) {
	h.setApproved(w, r, true)
}

// Reject hides a comment from the public site without deleting it.
func (h *Comments) Reject(w http.ResponseWriter, r *http.Request) {
	h.setApproved(w, r, false)
}

func (h *Comments) setApproved(w http.ResponseWriter, r *http.Request, approved bool) {
	id, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid comment id")
		return
	}

	comment, err := h.comments.FindByID(id)
	if err != nil {
		slog.Error("find comment failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if comment == nil {
		respondError(w, http.StatusNotFound, "comment not found")
		return
	}

	if err := h.comments.SetApproved(id, approved); err != nil {
		slog.Error("set comment approval failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	sess := middleware.SessionFromCtx(r.Context())
	if sess != nil {
		slog.Info("comment moderated", "comment", id, "approved", approved, "by", sess.Email)
	}

	comment.IsApproved = approved
	respondJSON(w, http.StatusOK, comment)
}

// Delete removes a comment permanently. Unlike rejection this cannot be
// undone.
func (h *Comments) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid comment id")
		return
	}
	if err := h.comments.Delete(id); err != nil {
		slog.Error("delete comment failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
