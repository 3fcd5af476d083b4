// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"devfolio/internal/models"
)

func TestProjectCreateAndFind(t *testing.T) {
	db := testDB(t)
	s := NewProjectStore(db)

	created, err := s.Create(&models.Project{
		Title:        "Test Tracker",
		Slug:         "test-tracker",
		Description:  "A habit tracker.",
		Technologies: []string{"Go", "PostgreSQL"},
		Status:       models.ProjectStatusInProgress,
		Category:     models.ProjectCategoryFullStack,
		IsActive:     true,
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	cleanupRow(t, db, "projects", created.ID)

	if created.ID.String() == "" || created.CreatedAt.IsZero() {
		t.Error("expected generated id and created_at")
	}

	found, err := s.FindBySlug("test-tracker")
	if err != nil {
		t.Fatalf("find by slug: %v", err)
	}
	if found == nil {
		t.Fatal("expected project, got nil")
	}
	if found.Title != "Test Tracker" {
		t.Errorf("title: got %q", found.Title)
	}
	if len(found.Technologies) != 2 || found.Technologies[0] != "Go" {
		t.Errorf("technologies: got %v", found.Technologies)
	}

	byID, err := s.FindByID(created.ID)
	if err != nil || byID == nil {
		t.Fatalf("find by id: %v, %v", byID, err)
	}
}

func TestProjectFindMissing(t *testing.T) {
	db := testDB(t)
	s := NewProjectStore(db)

	p, err := s.FindBySlug("no-such-project-slug")
	if err != nil {
		t.Fatalf("find missing: %v", err)
	}
	if p != nil {
		t.Errorf("expected nil for missing project, got %+v", p)
	}
}

func TestProjectSlugUnique(t *testing.T) {
	db := testDB(t)
	s := NewProjectStore(db)

	first, err := s.Create(&models.Project{
		Title: "Dup", Slug: "dup-slug-project", Description: "one",
	})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	cleanupRow(t, db, "projects", first.ID)

	_, err = s.Create(&models.Project{
		Title: "Dup Two", Slug: "dup-slug-project", Description: "two",
	})
	if err == nil {
		t.Fatal("expected unique violation for duplicate slug")
	}
	if !IsUniqueViolation(err) {
		t.Errorf("expected unique violation, got %v", err)
	}
}

func TestProjectListFilters(t *testing.T) {
	db := testDB(t)
	s := NewProjectStore(db)

	active, err := s.Create(&models.Project{
		Title: "Active Web", Slug: "filter-active-web", Description: "x",
		Status: models.ProjectStatusCompleted, Category: models.ProjectCategoryFullStack,
		IsActive: true, IsFeatured: true,
	})
	if err != nil {
		t.Fatalf("create active: %v", err)
	}
	cleanupRow(t, db, "projects", active.ID)

	hidden, err := s.Create(&models.Project{
		Title: "Hidden", Slug: "filter-hidden", Description: "x",
		Status: models.ProjectStatusCompleted, Category: models.ProjectCategoryFullStack,
		IsActive: false,
	})
	if err != nil {
		t.Fatalf("create hidden: %v", err)
	}
	cleanupRow(t, db, "projects", hidden.ID)

	publicItems, err := s.List(models.ProjectFilter{ActiveOnly: true})
	if err != nil {
		t.Fatalf("list active: %v", err)
	}
	for _, p := range publicItems {
		if p.ID == hidden.ID {
			t.Error("inactive project leaked into ActiveOnly listing")
		}
	}

	featured := true
	featuredItems, err := s.List(models.ProjectFilter{ActiveOnly: true, Featured: &featured})
	if err != nil {
		t.Fatalf("list featured: %v", err)
	}
	seen := false
	for _, p := range featuredItems {
		if !p.IsFeatured {
			t.Errorf("non-featured project %q in featured listing", p.Slug)
		}
		if p.ID == active.ID {
			seen = true
		}
	}
	if !seen {
		t.Error("featured project missing from featured listing")
	}
}

func TestProjectUpdateAndDelete(t *testing.T) {
	db := testDB(t)
	s := NewProjectStore(db)

	p, err := s.Create(&models.Project{
		Title: "Before", Slug: "update-me-project", Description: "old",
		Status: models.ProjectStatusPlanned,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	cleanupRow(t, db, "projects", p.ID)

	p.Title = "After"
	p.Status = models.ProjectStatusCompleted
	p.Technologies = []string{"Go"}
	if err := s.Update(p); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := s.FindByID(p.ID)
	if err != nil || got == nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Title != "After" || got.Status != models.ProjectStatusCompleted {
		t.Errorf("update not applied: %+v", got)
	}

	if err := s.Delete(p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	gone, err := s.FindByID(p.ID)
	if err != nil {
		t.Fatalf("find after delete: %v", err)
	}
	if gone != nil {
		t.Error("project still present after delete")
	}
}

func TestProjectLinksOptional(t *testing.T) {
	db := testDB(t)
	s := NewProjectStore(db)

	created, err := s.Create(&models.Project{
		Title:        "Closed Source Tool",
		Slug:         "closed-source-tool",
		Description:  "Internal only, no public links.",
		Technologies: []string{"Go"},
		Status:       models.ProjectStatusCompleted,
		Category:     models.ProjectCategoryBackend,
		IsActive:     true,
	})
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	cleanupRow(t, db, "projects", created.ID)

	found, err := s.FindByID(created.ID)
	if err != nil || found == nil {
		t.Fatalf("find: %v", err)
	}
	if found.GithubURL != nil || found.LiveURL != nil || found.ImageURL != nil {
		t.Errorf("links: got %+v, want all unset", found)
	}
	if found.Challenges != nil || found.Solutions != nil || found.Results != nil {
		t.Errorf("case study fields: got %+v, want all unset", found)
	}

	repo := "https://github.test.local/closed-source-tool"
	found.GithubURL = &repo
	if err := s.Update(found); err != nil {
		t.Fatalf("update: %v", err)
	}
	reloaded, err := s.FindByID(created.ID)
	if err != nil || reloaded == nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.GithubURL == nil || *reloaded.GithubURL != repo {
		t.Errorf("github url: got %v", reloaded.GithubURL)
	}
	if reloaded.LiveURL != nil {
		t.Errorf("live url: got %q, want unset", *reloaded.LiveURL)
	}
}
