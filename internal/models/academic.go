// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// CourseStatus tracks where a course sits in the academic lifecycle.
type CourseStatus string

const (
	CourseStatusUpcoming   CourseStatus = "UPCOMING"
	CourseStatusInProgress CourseStatus = "IN_PROGRESS"
	CourseStatusCompleted  CourseStatus = "COMPLETED"
	CourseStatusDeferred   CourseStatus = "DEFERRED"
	CourseStatusWithdrawn  CourseStatus = "WITHDRAWN"
)

// AcademicProgram is a degree or certification a learner is enrolled in.
// CurrentYear drives the time bonus in the skill progression scorer.
type AcademicProgram struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Institution string     `json:"institution"`
	Description *string    `json:"description,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	CurrentYear int        `json:"current_year"`
	TotalYears  int        `json:"total_years"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Course belongs to one program and declares the list of skill names it
// delivers. Skills are matched by exact name; an empty list means the
// course contributes nothing to any skill score.
type Course struct {
	ID          uuid.UUID    `json:"id"`
	ProgramID   uuid.UUID    `json:"program_id"`
	Code        string       `json:"code"`
	Name        string       `json:"name"`
	Description *string      `json:"description,omitempty"`
	Status      CourseStatus `json:"status"`
	Grade       *string      `json:"grade,omitempty"` // letter grade, e.g. "A-"
	Credits     int          `json:"credits"`
	Year        int          `json:"year"`
	Semester    int          `json:"semester"`
	Skills      []string     `json:"skills"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// CourseAssessment is a single graded item within a course.
type CourseAssessment struct {
	ID        uuid.UUID  `json:"id"`
	CourseID  uuid.UUID  `json:"course_id"`
	Name      string     `json:"name"`
	Kind      string     `json:"kind"` // exam, assignment, project, quiz
	Weight    float64    `json:"weight"`
	Score     *float64   `json:"score,omitempty"`
	MaxScore  float64    `json:"max_score"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CourseFilter narrows course list queries.
type CourseFilter struct {
	ProgramID *uuid.UUID
	Status    CourseStatus
	Year      int // 0 means all years
}
