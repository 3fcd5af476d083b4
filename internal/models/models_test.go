// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestUserRoles(t *testing.T) {
	admin := &User{Role: RoleAdmin}
	editor := &User{Role: RoleEditor}
	if !admin.IsAdmin() {
		t.Error("admin role not recognized")
	}
	if editor.IsAdmin() {
		t.Error("editor must not be admin")
	}
}

func TestUserNeeds2FASetup(t *testing.T) {
	fresh := &User{}
	if !fresh.Needs2FASetup() {
		t.Error("fresh user should need 2FA setup")
	}
	enrolled := &User{TOTPEnabled: true}
	if enrolled.Needs2FASetup() {
		t.Error("enrolled user should not need setup")
	}
}

func TestUserJSONHidesSecrets(t *testing.T) {
	secret := "JBSWY3DPEHPK3PXP"
	u := &User{Email: "a@b.c", PasswordHash: "$2a$10$hash", TOTPSecret: &secret}
	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "$2a$10$hash") || strings.Contains(string(data), secret) {
		t.Errorf("secrets leaked: %s", data)
	}
}

func TestBlogPostIsPublished(t *testing.T) {
	if (&BlogPost{Status: PostStatusDraft}).IsPublished() {
		t.Error("draft reported published")
	}
	if !(&BlogPost{Status: PostStatusPublished}).IsPublished() {
		t.Error("published post not reported")
	}
}

func TestBlogPostReadingTime(t *testing.T) {
	tests := []struct {
		name  string
		words int
		want  int
	}{
		{"empty", 0, 1},
		{"short", 50, 1},
		{"one page", 200, 1},
		{"just over", 201, 2},
		{"long", 1000, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &BlogPost{Content: strings.TrimSpace(strings.Repeat("word ", tt.words))}
			if got := p.ReadingTime(); got != tt.want {
				t.Errorf("%d words: got %d, want %d", tt.words, got, tt.want)
			}
		})
	}
}

func TestMediaFileHumanSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{512, "512 B"},
		{2048, "2 KB"},
		{3 * 1024 * 1024, "3.0 MB"},
		{int64(4.5 * 1024 * 1024), "4.5 MB"},
	}
	for _, tt := range tests {
		m := &MediaFile{SizeBytes: tt.size}
		if got := m.HumanSize(); got != tt.want {
			t.Errorf("%d bytes: got %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestSiteSettingValue(t *testing.T) {
	tests := []struct {
		name    string
		setting SiteSetting
		want    any
	}{
		{"text", SiteSetting{Type: SettingTypeText, RawValue: "hello"}, "hello"},
		{"boolean true", SiteSetting{Type: SettingTypeBoolean, RawValue: "true"}, true},
		{"boolean garbage falls back", SiteSetting{Type: SettingTypeBoolean, RawValue: "yep"}, "yep"},
		{"number", SiteSetting{Type: SettingTypeNumber, RawValue: "42.5"}, 42.5},
		{"number garbage falls back", SiteSetting{Type: SettingTypeNumber, RawValue: "many"}, "many"},
		{"json garbage falls back", SiteSetting{Type: SettingTypeJSON, RawValue: "{broken"}, "{broken"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.setting.Value(); got != tt.want {
				t.Errorf("got %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestSiteSettingValueJSON(t *testing.T) {
	s := SiteSetting{Type: SettingTypeJSON, RawValue: `{"links":["a","b"]}`}
	v, ok := s.Value().(map[string]any)
	if !ok {
		t.Fatalf("expected decoded object, got %T", s.Value())
	}
	links, ok := v["links"].([]any)
	if !ok || len(links) != 2 {
		t.Errorf("links: got %v", v["links"])
	}
}
