// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http/httptest"
	"testing"
)

func TestExtensionFromType(t *testing.T) {
	tests := []struct {
		contentType string
		want        string
	}{
		{"image/jpeg", ".jpg"},
		{"image/png", ".png"},
		{"image/webp", ".webp"},
		{"image/gif", ".gif"},
		{"application/pdf", ""},
	}
	for _, tt := range tests {
		if got := extensionFromType(tt.contentType); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.contentType, got, tt.want)
		}
	}
}

func TestAllowedMediaTypes(t *testing.T) {
	for _, ct := range []string{"image/jpeg", "image/png", "image/webp", "image/gif"} {
		if !allowedMediaTypes[ct] {
			t.Errorf("%s should be accepted", ct)
		}
	}
	for _, ct := range []string{"image/svg+xml", "application/pdf", "text/html"} {
		if allowedMediaTypes[ct] {
			t.Errorf("%s must be rejected", ct)
		}
	}
	if thumbableTypes["image/gif"] {
		t.Error("gif must not be thumbnailed")
	}
}

func TestUploadWithoutStorage(t *testing.T) {
	h := NewMedia(nil, nil)
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/admin/media", nil)

	h.Upload(w, r)
	if w.Code != 503 {
		t.Errorf("status: got %d, want 503", w.Code)
	}
}
