// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"devfolio/internal/models"
	"devfolio/internal/store"
)

// Settings groups the site settings HTTP handlers.
type Settings struct {
	settings *store.SiteSettingStore
}

// NewSettings creates a new Settings handler group.
func NewSettings(settings *store.SiteSettingStore) *Settings {
	return &Settings{settings: settings}
}

// Public returns the decoded values of public settings. The response is
// marked uncacheable so setting changes reach clients immediately.
func (h *Settings) Public(w http.ResponseWriter, r *http.Request) {
	values, err := h.settings.PublicMap()
	if err != nil {
		slog.Error("load public settings failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	respondJSON(w, http.StatusOK, values)
}

// AdminList returns every setting with its raw value and type tag.
func (h *Settings) AdminList(w http.ResponseWriter, r *http.Request) {
	items, err := h.settings.All()
	if err != nil {
		slog.Error("list settings failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"items": items})
}

func validSettingType(t models.SettingType) bool {
	switch t {
	case models.SettingTypeText, models.SettingTypeBoolean,
		models.SettingTypeNumber, models.SettingTypeJSON:
		return true
	}
	return false
}

// Upsert creates or replaces the setting named in the path.
func (h *Settings) Upsert(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		respondError(w, http.StatusBadRequest, "setting key is required")
		return
	}

	var st models.SiteSetting
	if err := decodeJSON(r, &st); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	st.Key = key
	if st.Type == "" {
		st.Type = models.SettingTypeText
	}
	if !validSettingType(st.Type) {
		respondError(w, http.StatusBadRequest, "unknown setting type")
		return
	}

	saved, err := h.settings.Upsert(&st)
	if err != nil {
		slog.Error("upsert setting failed", "key", key, "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, saved)
}

// Delete removes a setting by key.
func (h *Settings) Delete(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		respondError(w, http.StatusBadRequest, "setting key is required")
		return
	}
	if err := h.settings.Delete(key); err != nil {
		slog.Error("delete setting failed", "key", key, "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
