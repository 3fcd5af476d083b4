// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"strconv"
	"time"
)

// SettingType tags how a setting's raw string value should be decoded.
type SettingType string

const (
	SettingTypeText    SettingType = "text"
	SettingTypeBoolean SettingType = "boolean"
	SettingTypeNumber  SettingType = "number"
	SettingTypeJSON    SettingType = "json"
)

// SiteSetting is a single configuration entry. RawValue is always stored
// as a string; Value() decodes it according to Type. Only entries with
// IsPublic set are exposed on the public settings endpoint.
type SiteSetting struct {
	Key       string      `json:"key"`
	RawValue  string      `json:"value"`
	Type      SettingType `json:"type"`
	IsPublic  bool        `json:"is_public"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Value decodes RawValue according to the declared type. A value that
// fails to parse falls back to the raw string rather than erroring, so a
// typo in the admin UI degrades instead of breaking the public site.
func (s *SiteSetting) Value() any {
	switch s.Type {
	case SettingTypeBoolean:
		if b, err := strconv.ParseBool(s.RawValue); err == nil {
			return b
		}
	case SettingTypeNumber:
		if f, err := strconv.ParseFloat(s.RawValue, 64); err == nil {
			return f
		}
	case SettingTypeJSON:
		var v any
		if err := json.Unmarshal([]byte(s.RawValue), &v); err == nil {
			return v
		}
	}
	return s.RawValue
}

// SiteSettings is a convenience map of decoded values keyed by setting key.
type SiteSettings map[string]any
