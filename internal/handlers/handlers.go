// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the devfolio API.
// Handlers are grouped by concern (auth, projects, blog, academics, ...)
// and receive their dependencies through the handler struct.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"devfolio/internal/store"
)

// maxJSONBody caps request bodies for JSON endpoints (1 MB).
const maxJSONBody = 1 << 20

// respondJSON writes v as a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON reads and decodes a JSON request body into dst. Unknown
// fields are rejected so typos in payloads surface as 400s.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	// A second decode must hit EOF, otherwise the body held trailing data.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// respondList is the standard shape for paginated collections.
type respondListBody struct {
	Items      any            `json:"items"`
	Pagination store.PageMeta `json:"pagination"`
}

func respondList(w http.ResponseWriter, items any, meta store.PageMeta) {
	respondJSON(w, http.StatusOK, respondListBody{Items: items, Pagination: meta})
}

// parsePageParams reads ?page= and ?limit= query parameters, falling back
// to the store defaults for missing or malformed values.
func parsePageParams(r *http.Request) store.PageParams {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	return store.NewPageParams(page, limit)
}
