// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"devfolio/internal/models"
	"devfolio/internal/store"
)

// Skills groups the skill and skill progression HTTP handlers.
type Skills struct {
	skills *store.SkillStore
}

// NewSkills creates a new Skills handler group.
func NewSkills(skills *store.SkillStore) *Skills {
	return &Skills{skills: skills}
}

// List returns active skills grouped-ready, ordered by category then
// sort order.
func (h *Skills) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.skills.List(true)
	if err != nil {
		slog.Error("list skills failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

// AdminList returns all skills including inactive ones.
func (h *Skills) AdminList(w http.ResponseWriter, r *http.Request) {
	items, err := h.skills.List(false)
	if err != nil {
		slog.Error("list skills failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

// Create adds a new skill. Levels outside [0, 100] are rejected.
func (h *Skills) Create(w http.ResponseWriter, r *http.Request) {
	var sk models.Skill
	if err := decodeJSON(r, &sk); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if sk.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if sk.Level < 0 || sk.Level > 100 {
		respondError(w, http.StatusBadRequest, "level must be between 0 and 100")
		return
	}
	if sk.Category == "" {
		sk.Category = models.SkillCategoryTooling
	}

	created, err := h.skills.Create(&sk)
	if err != nil {
		if store.IsUniqueViolation(err) {
			respondError(w, http.StatusConflict, "skill name already in use")
			return
		}
		slog.Error("create skill failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// Update modifies an existing skill.
func (h *Skills) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid skill id")
		return
	}

	existing, err := h.skills.FindByID(id)
	if err != nil {
		slog.Error("find skill failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if existing == nil {
		respondError(w, http.StatusNotFound, "skill not found")
		return
	}

	var sk models.Skill
	if err := decodeJSON(r, &sk); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if sk.Level < 0 || sk.Level > 100 {
		respondError(w, http.StatusBadRequest, "level must be between 0 and 100")
		return
	}
	sk.ID = id
	if sk.Category == "" {
		sk.Category = existing.Category
	}

	if err := h.skills.Update(&sk); err != nil {
		if store.IsUniqueViolation(err) {
			respondError(w, http.StatusConflict, "skill name already in use")
			return
		}
		slog.Error("update skill failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	updated, err := h.skills.FindByID(id)
	if err != nil || updated == nil {
		slog.Error("reload skill failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// Delete removes a skill and its progressions.
func (h *Skills) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid skill id")
		return
	}
	if err := h.skills.Delete(id); err != nil {
		slog.Error("delete skill failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// ListProgressions returns the skill progressions of one program,
// selected via the required ?program= filter.
func (h *Skills) ListProgressions(w http.ResponseWriter, r *http.Request) {
	programID, err := uuid.Parse(r.URL.Query().Get("program"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "program filter is required")
		return
	}

	items, err := h.skills.ListProgressions(programID)
	if err != nil {
		slog.Error("list progressions failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

// UpsertProgression creates or replaces the progression for one
// skill × program pair.
func (h *Skills) UpsertProgression(w http.ResponseWriter, r *http.Request) {
	var pr models.SkillProgression
	if err := decodeJSON(r, &pr); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if pr.SkillID == uuid.Nil || pr.ProgramID == uuid.Nil {
		respondError(w, http.StatusBadRequest, "skill_id and program_id are required")
		return
	}
	if pr.CurrentLevel < 0 || pr.CurrentLevel > 100 || pr.TargetLevel < 0 || pr.TargetLevel > 100 {
		respondError(w, http.StatusBadRequest, "levels must be between 0 and 100")
		return
	}
	if pr.Track == "" {
		pr.Track = models.SkillTrackAcademic
	}

	saved, err := h.skills.UpsertProgression(&pr)
	if err != nil {
		slog.Error("upsert progression failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, saved)
}

// DeleteProgression removes one progression row.
func (h *Skills) DeleteProgression(w http.ResponseWriter, r *http.Request) {
	id, ok := ParseRef(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid progression id")
		return
	}
	if err := h.skills.DeleteProgression(id); err != nil {
		slog.Error("delete progression failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
