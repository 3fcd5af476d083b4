// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"devfolio/internal/models"
)

// SkillStore handles skill and skill progression database operations.
type SkillStore struct {
	db *sql.DB
}

// NewSkillStore creates a new SkillStore.
func NewSkillStore(db *sql.DB) *SkillStore {
	return &SkillStore{db: db}
}

const skillColumns = `id, name, category, level, icon, is_active, sort_order, created_at, updated_at`

func scanSkill(row interface{ Scan(...any) error }) (*models.Skill, error) {
	sk := &models.Skill{}
	err := row.Scan(
		&sk.ID, &sk.Name, &sk.Category, &sk.Level, &sk.Icon,
		&sk.IsActive, &sk.SortOrder, &sk.CreatedAt, &sk.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return sk, nil
}

// List returns skills, optionally restricted to active ones, ordered by
// sort order then descending level.
func (s *SkillStore) List(activeOnly bool) ([]models.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY sort_order ASC, level DESC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()

	var items []models.Skill
	for rows.Next() {
		sk, err := scanSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		items = append(items, *sk)
	}
	return items, rows.Err()
}

// FindByID retrieves a skill by UUID. Returns nil if not found.
func (s *SkillStore) FindByID(id uuid.UUID) (*models.Skill, error) {
	sk, err := scanSkill(s.db.QueryRow(`SELECT `+skillColumns+` FROM skills WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find skill by id: %w", err)
	}
	return sk, nil
}

// Create inserts a new skill.
func (s *SkillStore) Create(sk *models.Skill) (*models.Skill, error) {
	created, err := scanSkill(s.db.QueryRow(`
		INSERT INTO skills (name, category, level, icon, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+skillColumns,
		sk.Name, sk.Category, sk.Level, sk.Icon, sk.IsActive, sk.SortOrder,
	))
	if err != nil {
		return nil, fmt.Errorf("create skill: %w", err)
	}
	return created, nil
}

// Update modifies an existing skill.
func (s *SkillStore) Update(sk *models.Skill) error {
	_, err := s.db.Exec(`
		UPDATE skills SET
			name = $1, category = $2, level = $3, icon = $4,
			is_active = $5, sort_order = $6, updated_at = NOW()
		WHERE id = $7
	`, sk.Name, sk.Category, sk.Level, sk.Icon, sk.IsActive, sk.SortOrder, sk.ID)
	if err != nil {
		return fmt.Errorf("update skill: %w", err)
	}
	return nil
}

// Delete removes a skill and its progressions (cascade).
func (s *SkillStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	return nil
}

// SetLevelByName updates the mastery level of the skill with the given
// exact name, clamped by the caller. Unknown names are ignored so scorer
// output can be applied wholesale.
func (s *SkillStore) SetLevelByName(name string, level int) error {
	_, err := s.db.Exec(`
		UPDATE skills SET level = $1, updated_at = NOW() WHERE name = $2
	`, level, name)
	if err != nil {
		return fmt.Errorf("set skill level: %w", err)
	}
	return nil
}

const progressionColumns = `id, skill_id, program_id, track, current_level, target_level, year_targets, updated_at`

func scanProgression(row interface{ Scan(...any) error }) (*models.SkillProgression, error) {
	pr := &models.SkillProgression{}
	var targets []byte
	err := row.Scan(
		&pr.ID, &pr.SkillID, &pr.ProgramID, &pr.Track,
		&pr.CurrentLevel, &pr.TargetLevel, &targets, &pr.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(targets) > 0 {
		_ = json.Unmarshal(targets, &pr.YearTargets)
	}
	return pr, nil
}

// ListProgressions returns all progressions for a program.
func (s *SkillStore) ListProgressions(programID uuid.UUID) ([]models.SkillProgression, error) {
	rows, err := s.db.Query(`
		SELECT `+progressionColumns+` FROM skill_progressions
		WHERE program_id = $1
		ORDER BY current_level DESC
	`, programID)
	if err != nil {
		return nil, fmt.Errorf("list progressions: %w", err)
	}
	defer rows.Close()

	var items []models.SkillProgression
	for rows.Next() {
		pr, err := scanProgression(rows)
		if err != nil {
			return nil, fmt.Errorf("scan progression: %w", err)
		}
		items = append(items, *pr)
	}
	return items, rows.Err()
}

// UpsertProgression creates or updates the progression for one
// skill × program pair in a single statement.
func (s *SkillStore) UpsertProgression(pr *models.SkillProgression) (*models.SkillProgression, error) {
	targets, err := json.Marshal(pr.YearTargets)
	if err != nil {
		return nil, fmt.Errorf("marshal year targets: %w", err)
	}

	saved, err := scanProgression(s.db.QueryRow(`
		INSERT INTO skill_progressions (skill_id, program_id, track, current_level, target_level, year_targets)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (skill_id, program_id)
		DO UPDATE SET track = EXCLUDED.track,
		              current_level = EXCLUDED.current_level,
		              target_level = EXCLUDED.target_level,
		              year_targets = EXCLUDED.year_targets,
		              updated_at = NOW()
		RETURNING `+progressionColumns,
		pr.SkillID, pr.ProgramID, pr.Track, pr.CurrentLevel, pr.TargetLevel, targets,
	))
	if err != nil {
		return nil, fmt.Errorf("upsert progression: %w", err)
	}
	return saved, nil
}

// SetCurrentLevelByName updates current_level on the progression whose
// skill has the given exact name, within one program. Used when applying
// recomputed scores.
func (s *SkillStore) SetCurrentLevelByName(programID uuid.UUID, name string, level int) error {
	res, err := s.db.Exec(`
		UPDATE skill_progressions sp SET current_level = $1, updated_at = NOW()
		FROM skills sk
		WHERE sp.skill_id = sk.id AND sp.program_id = $2 AND sk.name = $3
	`, level, programID, name)
	if err != nil {
		return fmt.Errorf("set progression level: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSkillNotFound
	}
	return nil
}

// DeleteProgression removes one progression row.
func (s *SkillStore) DeleteProgression(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM skill_progressions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete progression: %w", err)
	}
	return nil
}
