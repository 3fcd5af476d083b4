// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"devfolio/internal/models"
)

func TestCommentCreateAndApprovedListing(t *testing.T) {
	db := testDB(t)
	s := NewBlogCommentStore(db)

	post := testPost(t, db, "commented-post", models.PostStatusPublished)

	approved, err := s.Create(&models.BlogComment{
		PostID: post.ID, Author: "Ana", Email: "ana@test.local",
		Content: "Great write-up.", IsApproved: true,
	})
	if err != nil {
		t.Fatalf("create approved: %v", err)
	}

	held, err := s.Create(&models.BlogComment{
		PostID: post.ID, Author: "Bob", Email: "bob@test.local",
		Content: "Held for review.", IsApproved: false,
	})
	if err != nil {
		t.Fatalf("create held: %v", err)
	}

	items, err := s.ListApprovedByPost(post.ID)
	if err != nil {
		t.Fatalf("list approved: %v", err)
	}
	if len(items) != 1 || items[0].ID != approved.ID {
		t.Errorf("approved listing: got %d items", len(items))
	}
	for _, c := range items {
		if c.ID == held.ID {
			t.Error("held comment leaked into approved listing")
		}
	}
}

func TestCommentModerationFlip(t *testing.T) {
	db := testDB(t)
	s := NewBlogCommentStore(db)

	post := testPost(t, db, "moderated-post", models.PostStatusPublished)

	c, err := s.Create(&models.BlogComment{
		PostID: post.ID, Author: "Carol", Email: "carol@test.local",
		Content: "Pending.", IsApproved: false,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := s.SetApproved(c.ID, true); err != nil {
		t.Fatalf("approve: %v", err)
	}
	items, err := s.ListApprovedByPost(post.ID)
	if err != nil || len(items) != 1 {
		t.Fatalf("after approve: %d items, %v", len(items), err)
	}

	// Rejection is reversible hiding, not deletion.
	if err := s.SetApproved(c.ID, false); err != nil {
		t.Fatalf("reject: %v", err)
	}
	items, err = s.ListApprovedByPost(post.ID)
	if err != nil || len(items) != 0 {
		t.Fatalf("after reject: %d items, %v", len(items), err)
	}
	got, err := s.FindByID(c.ID)
	if err != nil || got == nil {
		t.Fatal("rejected comment should still exist")
	}
}

func TestCommentLikesRequireApproval(t *testing.T) {
	db := testDB(t)
	s := NewBlogCommentStore(db)

	post := testPost(t, db, "liked-comments", models.PostStatusPublished)

	held, err := s.Create(&models.BlogComment{
		PostID: post.ID, Author: "Dan", Email: "dan@test.local",
		Content: "Held.", IsApproved: false,
	})
	if err != nil {
		t.Fatalf("create held: %v", err)
	}

	likes, err := s.IncrementLikes(held.ID)
	if err != nil {
		t.Fatalf("like held: %v", err)
	}
	if likes != -1 {
		t.Errorf("liking a held comment: got %d, want -1", likes)
	}

	if err := s.SetApproved(held.ID, true); err != nil {
		t.Fatalf("approve: %v", err)
	}
	likes, err = s.IncrementLikes(held.ID)
	if err != nil {
		t.Fatalf("like approved: %v", err)
	}
	if likes != 1 {
		t.Errorf("likes: got %d, want 1", likes)
	}
}

func TestCommentPaginatedFilter(t *testing.T) {
	db := testDB(t)
	s := NewBlogCommentStore(db)

	post := testPost(t, db, "filtered-comments", models.PostStatusPublished)

	if _, err := s.Create(&models.BlogComment{
		PostID: post.ID, Author: "Eve", Email: "eve@test.local",
		Content: "ok", IsApproved: true,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Create(&models.BlogComment{
		PostID: post.ID, Author: "Mallory", Email: "mallory@test.local",
		Content: "held", IsApproved: false,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	pending := false
	items, meta, err := s.ListPaginated(&pending, NewPageParams(1, 50))
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if meta.TotalCount < 1 {
		t.Errorf("total count: got %d", meta.TotalCount)
	}
	for _, c := range items {
		if c.IsApproved {
			t.Error("approved comment in pending-only listing")
		}
	}
}

func TestCommentCascadeOnPostDelete(t *testing.T) {
	db := testDB(t)
	comments := NewBlogCommentStore(db)
	posts := NewBlogPostStore(db)

	post := testPost(t, db, "cascade-post", models.PostStatusPublished)
	c, err := comments.Create(&models.BlogComment{
		PostID: post.ID, Author: "Finn", Email: "finn@test.local",
		Content: "soon gone", IsApproved: true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := posts.Delete(post.ID); err != nil {
		t.Fatalf("delete post: %v", err)
	}
	gone, err := comments.FindByID(c.ID)
	if err != nil {
		t.Fatalf("find after cascade: %v", err)
	}
	if gone != nil {
		t.Error("comment survived post deletion")
	}
}

func TestCommentWebsiteOptional(t *testing.T) {
	db := testDB(t)
	s := NewBlogCommentStore(db)

	post := testPost(t, db, "website-optional-post", models.PostStatusPublished)

	// Most commenters leave the website field blank.
	anon, err := s.Create(&models.BlogComment{
		PostID: post.ID, Author: "Gia", Email: "gia@test.local",
		Content: "No link from me.", IsApproved: true,
	})
	if err != nil {
		t.Fatalf("create without website: %v", err)
	}

	site := "https://hugo.test.local"
	linked, err := s.Create(&models.BlogComment{
		PostID: post.ID, Author: "Hugo", Email: "hugo@test.local",
		Website: &site, Content: "With a link.", IsApproved: true,
	})
	if err != nil {
		t.Fatalf("create with website: %v", err)
	}

	got, err := s.FindByID(anon.ID)
	if err != nil || got == nil {
		t.Fatalf("find: %v", err)
	}
	if got.Website != nil {
		t.Errorf("website: got %q, want unset", *got.Website)
	}

	got, err = s.FindByID(linked.ID)
	if err != nil || got == nil {
		t.Fatalf("find: %v", err)
	}
	if got.Website == nil || *got.Website != site {
		t.Errorf("website: got %v, want %q", got.Website, site)
	}
}
