// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"devfolio/internal/models"
)

// SiteSettingStore manages typed site configuration in the database.
// Values are stored as strings with a type tag and decoded once here,
// not re-parsed ad hoc by each caller.
type SiteSettingStore struct {
	db *sql.DB
}

// NewSiteSettingStore returns a new SiteSettingStore backed by the given database.
func NewSiteSettingStore(db *sql.DB) *SiteSettingStore {
	return &SiteSettingStore{db: db}
}

const settingColumns = `key, value, type, is_public, updated_at`

func scanSetting(row interface{ Scan(...any) error }) (*models.SiteSetting, error) {
	st := &models.SiteSetting{}
	err := row.Scan(&st.Key, &st.RawValue, &st.Type, &st.IsPublic, &st.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return st, nil
}

// All returns every setting ordered by key.
func (s *SiteSettingStore) All() ([]models.SiteSetting, error) {
	rows, err := s.db.Query(`SELECT ` + settingColumns + ` FROM site_settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var items []models.SiteSetting
	for rows.Next() {
		st, err := scanSetting(rows)
		if err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		items = append(items, *st)
	}
	return items, rows.Err()
}

// Find returns a single setting by key, or nil if it does not exist.
func (s *SiteSettingStore) Find(key string) (*models.SiteSetting, error) {
	st, err := scanSetting(s.db.QueryRow(
		`SELECT `+settingColumns+` FROM site_settings WHERE key = $1`, key))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find setting: %w", err)
	}
	return st, nil
}

// PublicMap returns only public settings, pre-decoded into a flat
// key → value map for the public settings endpoint.
func (s *SiteSettingStore) PublicMap() (models.SiteSettings, error) {
	rows, err := s.db.Query(`SELECT ` + settingColumns + ` FROM site_settings WHERE is_public = TRUE`)
	if err != nil {
		return nil, fmt.Errorf("list public settings: %w", err)
	}
	defer rows.Close()

	out := make(models.SiteSettings)
	for rows.Next() {
		st, err := scanSetting(rows)
		if err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		out[st.Key] = st.Value()
	}
	return out, rows.Err()
}

// Upsert creates or replaces a setting by key in a single statement.
func (s *SiteSettingStore) Upsert(st *models.SiteSetting) (*models.SiteSetting, error) {
	saved, err := scanSetting(s.db.QueryRow(`
		INSERT INTO site_settings (key, value, type, is_public)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, type = EXCLUDED.type,
		              is_public = EXCLUDED.is_public, updated_at = NOW()
		RETURNING `+settingColumns,
		st.Key, st.RawValue, st.Type, st.IsPublic,
	))
	if err != nil {
		return nil, fmt.Errorf("upsert setting: %w", err)
	}
	return saved, nil
}

// Delete removes a setting by key.
func (s *SiteSettingStore) Delete(key string) error {
	_, err := s.db.Exec(`DELETE FROM site_settings WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("delete setting: %w", err)
	}
	return nil
}
