// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"devfolio/internal/models"
)

func TestPostPublishStampedOnCreate(t *testing.T) {
	db := testDB(t)

	p := testPost(t, db, "published-on-create", models.PostStatusPublished)
	if p.PublishedAt == nil {
		t.Fatal("expected published_at to be stamped on publish-at-create")
	}

	d := testPost(t, db, "draft-on-create", models.PostStatusDraft)
	if d.PublishedAt != nil {
		t.Errorf("draft got published_at %v", d.PublishedAt)
	}
}

func TestPostPublishedAtSetOnce(t *testing.T) {
	db := testDB(t)
	s := NewBlogPostStore(db)

	p := testPost(t, db, "publish-once", models.PostStatusDraft)

	p.Status = models.PostStatusPublished
	published, err := s.Update(p)
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if published.PublishedAt == nil {
		t.Fatal("expected published_at after first publish")
	}
	first := *published.PublishedAt

	// Unpublish then republish. The original timestamp must survive.
	published.Status = models.PostStatusDraft
	unpublished, err := s.Update(published)
	if err != nil {
		t.Fatalf("unpublish: %v", err)
	}
	if unpublished.PublishedAt == nil || !unpublished.PublishedAt.Equal(first) {
		t.Errorf("published_at changed on unpublish: %v", unpublished.PublishedAt)
	}

	unpublished.Status = models.PostStatusPublished
	republished, err := s.Update(unpublished)
	if err != nil {
		t.Fatalf("republish: %v", err)
	}
	if republished.PublishedAt == nil || !republished.PublishedAt.Equal(first) {
		t.Errorf("published_at changed on republish: got %v, want %v", republished.PublishedAt, first)
	}
}

func TestPostListPaginatedPublishedOnly(t *testing.T) {
	db := testDB(t)
	s := NewBlogPostStore(db)

	pub := testPost(t, db, "list-pub", models.PostStatusPublished)
	draft := testPost(t, db, "list-draft", models.PostStatusDraft)

	items, meta, err := s.ListPaginated(models.PostFilter{PublishedOnly: true}, NewPageParams(1, 100))
	if err != nil {
		t.Fatalf("list published: %v", err)
	}
	if meta.Page != 1 {
		t.Errorf("meta page: got %d", meta.Page)
	}

	var sawPub bool
	for _, p := range items {
		if p.ID == draft.ID {
			t.Error("draft leaked into published listing")
		}
		if p.ID == pub.ID {
			sawPub = true
		}
	}
	if !sawPub {
		t.Error("published post missing from listing")
	}
}

func TestPostSearchFilter(t *testing.T) {
	db := testDB(t)
	s := NewBlogPostStore(db)

	p := testPost(t, db, "search-target", models.PostStatusPublished)
	p.Content = "The quetzalcoatlus was the largest flying animal."
	if _, err := s.Update(p); err != nil {
		t.Fatalf("update content: %v", err)
	}

	items, _, err := s.ListPaginated(models.PostFilter{
		PublishedOnly: true,
		Search:        "quetzalcoatlus",
	}, NewPageParams(1, 10))
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(items) != 1 || items[0].ID != p.ID {
		t.Errorf("search results: got %d items", len(items))
	}
}

func TestPostIncrementViewsAndLikes(t *testing.T) {
	db := testDB(t)
	s := NewBlogPostStore(db)

	p := testPost(t, db, "counters", models.PostStatusPublished)

	if err := s.IncrementViews(p.ID); err != nil {
		t.Fatalf("increment views: %v", err)
	}
	likes, err := s.IncrementLikes(p.ID)
	if err != nil {
		t.Fatalf("increment likes: %v", err)
	}
	if likes != 1 {
		t.Errorf("likes: got %d, want 1", likes)
	}

	got, err := s.FindByID(p.ID)
	if err != nil || got == nil {
		t.Fatalf("reload: %v", err)
	}
	if got.Views != 1 || got.Likes != 1 {
		t.Errorf("counters: views=%d likes=%d", got.Views, got.Likes)
	}
}

func TestPostLikeDraftIneligible(t *testing.T) {
	db := testDB(t)
	s := NewBlogPostStore(db)

	d := testPost(t, db, "draft-like", models.PostStatusDraft)

	likes, err := s.IncrementLikes(d.ID)
	if err != nil {
		t.Fatalf("increment likes: %v", err)
	}
	if likes != -1 {
		t.Errorf("expected -1 for draft, got %d", likes)
	}
}

func TestPostListBySeriesOrder(t *testing.T) {
	db := testDB(t)
	posts := NewBlogPostStore(db)
	series := NewBlogSeriesStore(db)

	sr, err := series.Create(&models.BlogSeries{Name: "Ordered Series", Slug: "ordered-series"})
	if err != nil {
		t.Fatalf("create series: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM blog_posts WHERE series_id = $1", sr.ID)
		db.Exec("DELETE FROM blog_series WHERE id = $1", sr.ID)
	})

	second := testPost(t, db, "series-part-two", models.PostStatusPublished)
	first := testPost(t, db, "series-part-one", models.PostStatusPublished)
	draft := testPost(t, db, "series-part-draft", models.PostStatusDraft)

	for i, p := range []*models.BlogPost{second, first, draft} {
		order := []int{2, 1, 3}[i]
		p.SeriesID = &sr.ID
		p.SeriesOrder = &order
		if _, err := posts.Update(p); err != nil {
			t.Fatalf("assign series: %v", err)
		}
	}

	items, err := posts.ListBySeries(sr.ID)
	if err != nil {
		t.Fatalf("list by series: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 published posts in series, got %d", len(items))
	}
	if items[0].ID != first.ID || items[1].ID != second.ID {
		t.Errorf("series order wrong: %q then %q", items[0].Slug, items[1].Slug)
	}
}
