// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"devfolio/internal/models"
)

func TestSettingUpsert(t *testing.T) {
	db := testDB(t)
	s := NewSiteSettingStore(db)

	created, err := s.Upsert(&models.SiteSetting{
		Key: "test_site_title", RawValue: "Devfolio", Type: models.SettingTypeText, IsPublic: true,
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	t.Cleanup(func() { s.Delete("test_site_title") })

	if created.RawValue != "Devfolio" {
		t.Errorf("value: got %q", created.RawValue)
	}

	// Upsert on the same key updates in place.
	updated, err := s.Upsert(&models.SiteSetting{
		Key: "test_site_title", RawValue: "Devfolio v2", Type: models.SettingTypeText, IsPublic: true,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.RawValue != "Devfolio v2" {
		t.Errorf("updated value: got %q", updated.RawValue)
	}

	found, err := s.Find("test_site_title")
	if err != nil || found == nil {
		t.Fatalf("find: %v", err)
	}
	if found.RawValue != "Devfolio v2" {
		t.Errorf("found value: got %q", found.RawValue)
	}
}

func TestSettingPublicMap(t *testing.T) {
	db := testDB(t)
	s := NewSiteSettingStore(db)

	if _, err := s.Upsert(&models.SiteSetting{
		Key: "test_show_banner", RawValue: "true", Type: models.SettingTypeBoolean, IsPublic: true,
	}); err != nil {
		t.Fatalf("seed public: %v", err)
	}
	t.Cleanup(func() { s.Delete("test_show_banner") })

	if _, err := s.Upsert(&models.SiteSetting{
		Key: "test_secret_token", RawValue: "hunter2", Type: models.SettingTypeText, IsPublic: false,
	}); err != nil {
		t.Fatalf("seed private: %v", err)
	}
	t.Cleanup(func() { s.Delete("test_secret_token") })

	m, err := s.PublicMap()
	if err != nil {
		t.Fatalf("public map: %v", err)
	}
	if v, ok := m["test_show_banner"]; !ok || v != true {
		t.Errorf("test_show_banner: got %v (%T)", v, v)
	}
	if _, ok := m["test_secret_token"]; ok {
		t.Error("private setting leaked into public map")
	}
}

func TestSettingDelete(t *testing.T) {
	db := testDB(t)
	s := NewSiteSettingStore(db)

	if _, err := s.Upsert(&models.SiteSetting{
		Key: "test_ephemeral", RawValue: "1", Type: models.SettingTypeNumber, IsPublic: false,
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := s.Delete("test_ephemeral"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	found, err := s.Find("test_ephemeral")
	if err != nil {
		t.Fatalf("find after delete: %v", err)
	}
	if found != nil {
		t.Error("setting still present after delete")
	}
}
