package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"devfolio/internal/config"
)

// Seed populates the database with initial data on first start. It creates
// the admin user from config if no users exist, a default blog category,
// and the baseline public site settings. Safe to call on every boot.
func Seed(db *sql.DB, cfg *config.Config) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	// Insert the admin user. 2FA is not enabled — they must set it up
	// on first login.
	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, display_name, role, totp_enabled)
		VALUES ($1, $2, $3, $4, $5)
	`, cfg.AdminEmail, string(hash), "Admin", "admin", false)
	if err != nil {
		return fmt.Errorf("seed insert admin: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO blog_categories (name, slug, description)
		VALUES ('General', 'general', 'Uncategorized posts')
		ON CONFLICT (slug) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("seed default category: %w", err)
	}

	settings := []struct {
		key, value, kind string
		public           bool
	}{
		{"site_title", "devfolio", "text", true},
		{"site_description", "Personal portfolio and blog", "text", true},
		{"comments_enabled", "true", "boolean", true},
		{"posts_per_page", "10", "number", true},
		{"social_links", "{}", "json", true},
	}
	for _, s := range settings {
		_, err = db.Exec(`
			INSERT INTO site_settings (key, value, type, is_public)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (key) DO NOTHING
		`, s.key, s.value, s.kind, s.public)
		if err != nil {
			return fmt.Errorf("seed setting %s: %w", s.key, err)
		}
	}

	slog.Info("database seeded with admin user and defaults", "email", cfg.AdminEmail)

	return nil
}
