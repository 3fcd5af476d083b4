// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package scoring

import (
	"testing"

	"devfolio/internal/models"
)

func grade(g string) *string { return &g }

func course(status models.CourseStatus, g *string, skills ...string) models.Course {
	return models.Course{Status: status, Grade: g, Skills: skills}
}

func TestComputeStatusWeights(t *testing.T) {
	scores := Compute([]models.Course{
		course(models.CourseStatusCompleted, nil, "Go"),
		course(models.CourseStatusInProgress, nil, "Rust"),
		course(models.CourseStatusUpcoming, nil, "Haskell"),
		course(models.CourseStatusDeferred, nil, "Prolog"),
		course(models.CourseStatusWithdrawn, nil, "COBOL"),
	})

	want := map[string]int{"Go": 30, "Rust": 15, "Haskell": 5, "Prolog": 5}
	for name, level := range want {
		if scores[name] != level {
			t.Errorf("%s: got %d, want %d", name, scores[name], level)
		}
	}
	if _, ok := scores["COBOL"]; ok {
		t.Error("withdrawn course should contribute nothing")
	}
}

func TestComputeGradeMultipliers(t *testing.T) {
	tests := []struct {
		grade *string
		want  int
	}{
		{grade("A"), 36},
		{grade("A+"), 36},
		{grade("a-"), 36},
		{grade("B"), 33},
		{grade("C"), 30},
		{grade("D"), 27},
		{grade("F"), 30},
		{grade(" "), 30},
		{nil, 30},
	}
	for _, tt := range tests {
		scores := Compute([]models.Course{course(models.CourseStatusCompleted, tt.grade, "Go")})
		if scores["Go"] != tt.want {
			g := "<nil>"
			if tt.grade != nil {
				g = *tt.grade
			}
			t.Errorf("grade %q: got %d, want %d", g, scores["Go"], tt.want)
		}
	}
}

func TestComputeAccumulatesAndClamps(t *testing.T) {
	var courses []models.Course
	for i := 0; i < 5; i++ {
		courses = append(courses, course(models.CourseStatusCompleted, nil, "Go"))
	}
	scores := Compute(courses)
	if scores["Go"] != 100 {
		t.Errorf("clamp: got %d, want 100", scores["Go"])
	}
}

func TestComputeExactNameKeys(t *testing.T) {
	scores := Compute([]models.Course{
		course(models.CourseStatusCompleted, nil, "Go"),
		course(models.CourseStatusCompleted, nil, "go"),
	})
	if len(scores) != 2 {
		t.Errorf("distinct spellings must stay distinct: %v", scores)
	}
}

func TestComputeNoSkills(t *testing.T) {
	scores := Compute([]models.Course{course(models.CourseStatusCompleted, nil)})
	if len(scores) != 0 {
		t.Errorf("expected empty map, got %v", scores)
	}
}

func TestComputeWithYearBonus(t *testing.T) {
	courses := []models.Course{course(models.CourseStatusCompleted, nil, "Go")}

	tests := []struct {
		year int
		want int
	}{
		{0, 30},
		{2, 33},  // 30 * 1.10
		{4, 36},  // 30 * 1.20
		{9, 36},  // capped at year 4
		{-1, 30}, // negative treated as zero
	}
	for _, tt := range tests {
		scores := ComputeWithYearBonus(courses, tt.year)
		if scores["Go"] != tt.want {
			t.Errorf("year %d: got %d, want %d", tt.year, scores["Go"], tt.want)
		}
	}
}
