// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"devfolio/internal/database"
	"devfolio/internal/models"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with defaults matching docker-compose.yml.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "devfolio")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "devfolio")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testUser creates a throwaway author for rows with an author/uploader
// foreign key and removes it (cascading its rows) at cleanup.
func testUser(t *testing.T, db *sql.DB, email string) *models.User {
	t.Helper()

	u, err := NewUserStore(db).Create(email, "test-password-123", "Test Author", models.RoleAdmin)
	if err != nil {
		t.Fatalf("create test user: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM users WHERE id = $1", u.ID)
	})
	return u
}

// testCategory creates a blog category for post fixtures.
func testCategory(t *testing.T, db *sql.DB, slug string) *models.BlogCategory {
	t.Helper()

	c, err := NewBlogCategoryStore(db).Create(&models.BlogCategory{
		Name: "Category " + slug,
		Slug: slug,
	})
	if err != nil {
		t.Fatalf("create test category: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM blog_posts WHERE category_id = $1", c.ID)
		db.Exec("DELETE FROM blog_categories WHERE id = $1", c.ID)
	})
	return c
}

// testPost creates a blog post owned by a fresh user and category.
func testPost(t *testing.T, db *sql.DB, slug string, status models.PostStatus) *models.BlogPost {
	t.Helper()

	u := testUser(t, db, slug+"-author@test.local")
	c := testCategory(t, db, slug+"-cat")

	p, err := NewBlogPostStore(db).Create(&models.BlogPost{
		Title:      "Post " + slug,
		Slug:       slug,
		Content:    "Some body text for " + slug + ".",
		Status:     status,
		CategoryID: c.ID,
		AuthorID:   u.ID,
	})
	if err != nil {
		t.Fatalf("create test post: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM blog_posts WHERE id = $1", p.ID)
	})
	return p
}

// testProgram creates an academic program for course fixtures.
func testProgram(t *testing.T, db *sql.DB, name string) *models.AcademicProgram {
	t.Helper()

	p, err := NewAcademicStore(db).CreateProgram(&models.AcademicProgram{
		Name:        name,
		Institution: "Test University",
		CurrentYear: 2,
		TotalYears:  3,
		IsActive:    true,
	})
	if err != nil {
		t.Fatalf("create test program: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM academic_programs WHERE id = $1", p.ID)
	})
	return p
}

// cleanupRow registers deletion of one row keyed by UUID.
func cleanupRow(t *testing.T, db *sql.DB, table string, id uuid.UUID) {
	t.Helper()
	t.Cleanup(func() {
		db.Exec("DELETE FROM "+table+" WHERE id = $1", id)
	})
}
