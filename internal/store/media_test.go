// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"github.com/google/uuid"

	"devfolio/internal/models"
)

func TestMediaCreateAndFind(t *testing.T) {
	db := testDB(t)
	s := NewMediaStore(db)
	user := testUser(t, db, "media-owner")

	thumb := "media/2026/09/test-a_thumb.jpg"
	f, err := s.Create(&models.MediaFile{
		Filename: "test-a.png", OriginalName: "screenshot.png",
		ContentType: "image/png", SizeBytes: 2048,
		Folder: "media/2026/09", Key: "media/2026/09/test-a.png",
		ThumbKey: &thumb, UploaderID: user.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	cleanupRow(t, db, "media_files", f.ID)

	found, err := s.FindByID(f.ID)
	if err != nil || found == nil {
		t.Fatalf("find: %v", err)
	}
	if found.Key != f.Key || found.ThumbKey == nil || *found.ThumbKey != thumb {
		t.Errorf("round trip: %+v", found)
	}

	files, err := s.List(50, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	seen := false
	for _, mf := range files {
		if mf.ID == f.ID {
			seen = true
		}
	}
	if !seen {
		t.Error("created file not in listing")
	}
}

func TestMediaDeleteByKey(t *testing.T) {
	db := testDB(t)
	s := NewMediaStore(db)
	user := testUser(t, db, "media-deleter")

	f, err := s.Create(&models.MediaFile{
		Filename: "test-b.jpg", OriginalName: "photo.jpg",
		ContentType: "image/jpeg", SizeBytes: 4096,
		Folder: "media/2026/09", Key: "media/2026/09/test-b.jpg",
		UploaderID: user.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	deleted, err := s.DeleteByKey(f.Key)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted == nil || deleted.ID != f.ID {
		t.Fatalf("deleted row: %+v", deleted)
	}

	if found, err := s.FindByID(f.ID); err != nil || found != nil {
		t.Errorf("after delete: %+v, %v", found, err)
	}
}

func TestMediaDeleteByKeyMissing(t *testing.T) {
	db := testDB(t)
	s := NewMediaStore(db)

	deleted, err := s.DeleteByKey("media/none/" + uuid.NewString() + ".png")
	if err != nil {
		t.Fatalf("delete missing: %v", err)
	}
	if deleted != nil {
		t.Errorf("expected nil for unknown key, got %+v", deleted)
	}
}

func TestMediaWithoutThumbnail(t *testing.T) {
	db := testDB(t)
	s := NewMediaStore(db)
	user := testUser(t, db, "gif-owner")

	// Animated formats are stored without a generated thumbnail.
	f, err := s.Create(&models.MediaFile{
		Filename: "loop.gif", OriginalName: "loop.gif",
		ContentType: "image/gif", SizeBytes: 4096,
		Folder: "media/2026/09", Key: "media/2026/09/loop.gif",
		UploaderID: user.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	cleanupRow(t, db, "media_files", f.ID)

	found, err := s.FindByID(f.ID)
	if err != nil || found == nil {
		t.Fatalf("find: %v", err)
	}
	if found.ThumbKey != nil {
		t.Errorf("thumb key: got %q, want unset", *found.ThumbKey)
	}
}
