// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package scoring derives 0-100 skill mastery levels from a learner's
// course history. Each course contributes base points by status, scaled
// by a letter-grade multiplier, summed per skill name and clamped.
//
// Skills are keyed by exact name string. Courses that spell the same
// skill differently accumulate into separate scores; keeping names
// consistent is an authoring concern, not a scoring one.
package scoring

import (
	"math"
	"strings"

	"devfolio/internal/models"
)

// Base points contributed by a course depending on its status. A
// completed course carries full weight, one in progress half, and a
// course merely on the calendar counts as exposure only. Withdrawn
// courses contribute nothing.
const (
	PointsCompleted  = 30.0
	PointsInProgress = 15.0
	PointsPlanned    = 5.0
)

// yearBonusStep is the per-academic-year multiplier increment used by
// ComputeWithYearBonus, capped at maxBonusYears years.
const (
	yearBonusStep = 0.05
	maxBonusYears = 4
)

// statusPoints maps course status to base points.
func statusPoints(status models.CourseStatus) float64 {
	switch status {
	case models.CourseStatusCompleted:
		return PointsCompleted
	case models.CourseStatusInProgress:
		return PointsInProgress
	case models.CourseStatusUpcoming, models.CourseStatusDeferred:
		return PointsPlanned
	default: // WITHDRAWN and anything unknown
		return 0
	}
}

// gradeMultiplier scales a course's contribution by its letter grade.
// Plus/minus variants share their letter's multiplier; a missing or
// unrecognized grade is neutral.
func gradeMultiplier(grade *string) float64 {
	if grade == nil {
		return 1.0
	}
	g := strings.ToUpper(strings.TrimSpace(*grade))
	if g == "" {
		return 1.0
	}
	switch g[0] {
	case 'A':
		return 1.2
	case 'B':
		return 1.1
	case 'C':
		return 1.0
	case 'D':
		return 0.9
	default:
		return 1.0
	}
}

// Compute accumulates per-skill mastery scores across all courses.
// Contributions add up per exact skill name; each final score is clamped
// to [0, 100]. A course with no declared skills contributes nothing.
func Compute(courses []models.Course) map[string]int {
	raw := make(map[string]float64)
	for _, c := range courses {
		points := statusPoints(c.Status) * gradeMultiplier(c.Grade)
		if points == 0 {
			continue
		}
		for _, name := range c.Skills {
			raw[name] += points
		}
	}

	scores := make(map[string]int, len(raw))
	for name, v := range raw {
		scores[name] = clamp(v)
	}
	return scores
}

// ComputeWithYearBonus applies a small time-based bonus on top of Compute:
// scores are scaled by 1 + yearBonusStep × min(currentYear, maxBonusYears)
// and reclamped, reflecting general maturity gained per year of study.
func ComputeWithYearBonus(courses []models.Course, currentYear int) map[string]int {
	if currentYear < 0 {
		currentYear = 0
	}
	if currentYear > maxBonusYears {
		currentYear = maxBonusYears
	}
	bonus := 1 + yearBonusStep*float64(currentYear)

	raw := make(map[string]float64)
	for _, c := range courses {
		points := statusPoints(c.Status) * gradeMultiplier(c.Grade)
		if points == 0 {
			continue
		}
		for _, name := range c.Skills {
			raw[name] += points
		}
	}

	scores := make(map[string]int, len(raw))
	for name, v := range raw {
		scores[name] = clamp(v * bonus)
	}
	return scores
}

// clamp rounds and bounds a raw score to [0, 100].
func clamp(v float64) int {
	n := int(math.Round(v))
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
