// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// SkillCategory groups skills for public display.
type SkillCategory string

const (
	SkillCategoryLanguage  SkillCategory = "language"
	SkillCategoryFramework SkillCategory = "framework"
	SkillCategoryDatabase  SkillCategory = "database"
	SkillCategoryTooling   SkillCategory = "tooling"
	SkillCategorySoft      SkillCategory = "soft"
)

// SkillTrack distinguishes academically-derived skills from hands-on ones.
type SkillTrack string

const (
	SkillTrackAcademic  SkillTrack = "academic"
	SkillTrackTechnical SkillTrack = "technical"
)

// Skill is a named capability with a 0-100 mastery level.
type Skill struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Category  SkillCategory `json:"category"`
	Level     int           `json:"level"` // 0-100
	Icon      *string       `json:"icon,omitempty"`
	IsActive  bool          `json:"is_active"`
	SortOrder int           `json:"sort_order"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// SkillProgression tracks current vs. target mastery of one skill within
// one academic program. YearTargets maps academic year → target level and
// is stored as JSONB.
type SkillProgression struct {
	ID           uuid.UUID   `json:"id"`
	SkillID      uuid.UUID   `json:"skill_id"`
	ProgramID    uuid.UUID   `json:"program_id"`
	Track        SkillTrack  `json:"track"`
	CurrentLevel int         `json:"current_level"` // 0-100
	TargetLevel  int         `json:"target_level"`  // 0-100
	YearTargets  map[int]int `json:"year_targets,omitempty"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
