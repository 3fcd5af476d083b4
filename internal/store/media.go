// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"devfolio/internal/models"
)

// MediaStore handles media file metadata. The file bytes themselves live
// in object storage; rows here record what was uploaded and where.
type MediaStore struct {
	db *sql.DB
}

// NewMediaStore creates a new MediaStore.
func NewMediaStore(db *sql.DB) *MediaStore {
	return &MediaStore{db: db}
}

const mediaColumns = `id, filename, original_name, content_type, size_bytes,
	folder, key, thumb_key, uploader_id, created_at`

func scanMedia(row interface{ Scan(...any) error }) (*models.MediaFile, error) {
	m := &models.MediaFile{}
	err := row.Scan(
		&m.ID, &m.Filename, &m.OriginalName, &m.ContentType, &m.SizeBytes,
		&m.Folder, &m.Key, &m.ThumbKey, &m.UploaderID, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// List returns media files, newest first, bounded by limit/offset.
func (s *MediaStore) List(limit, offset int) ([]models.MediaFile, error) {
	rows, err := s.db.Query(`
		SELECT `+mediaColumns+` FROM media_files
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	defer rows.Close()

	var items []models.MediaFile
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, fmt.Errorf("scan media: %w", err)
		}
		items = append(items, *m)
	}
	return items, rows.Err()
}

// Create records an uploaded file's metadata.
func (s *MediaStore) Create(m *models.MediaFile) (*models.MediaFile, error) {
	created, err := scanMedia(s.db.QueryRow(`
		INSERT INTO media_files (filename, original_name, content_type, size_bytes,
			folder, key, thumb_key, uploader_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+mediaColumns,
		m.Filename, m.OriginalName, m.ContentType, m.SizeBytes,
		m.Folder, m.Key, m.ThumbKey, m.UploaderID,
	))
	if err != nil {
		return nil, fmt.Errorf("create media: %w", err)
	}
	return created, nil
}

// DeleteByKey removes the metadata row for a storage key and returns it
// for cleanup of the stored objects. Returns nil if no row matched.
func (s *MediaStore) DeleteByKey(key string) (*models.MediaFile, error) {
	deleted, err := scanMedia(s.db.QueryRow(`
		DELETE FROM media_files WHERE key = $1
		RETURNING `+mediaColumns, key))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete media by key: %w", err)
	}
	return deleted, nil
}

// FindByID retrieves a media row by UUID. Returns nil if not found.
func (s *MediaStore) FindByID(id uuid.UUID) (*models.MediaFile, error) {
	m, err := scanMedia(s.db.QueryRow(`SELECT `+mediaColumns+` FROM media_files WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find media by id: %w", err)
	}
	return m, nil
}
