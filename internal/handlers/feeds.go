// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/feeds"

	"devfolio/internal/cache"
	"devfolio/internal/markdown"
	"devfolio/internal/store"
)

// feedPostLimit bounds how many posts the RSS feed carries.
const feedPostLimit = 20

// Feeds serves the RSS feed, the XML sitemap, and robots.txt. Rendered
// documents are cached in Valkey; any publish-affecting change
// invalidates them.
type Feeds struct {
	posts     *store.BlogPostStore
	portfolio *store.PortfolioStore
	settings  *store.SiteSettingStore
	feedCache *cache.FeedCache
	siteURL   string
}

// NewFeeds creates a new Feeds handler group. siteURL is the canonical
// site origin without a trailing slash.
func NewFeeds(posts *store.BlogPostStore, portfolio *store.PortfolioStore, settings *store.SiteSettingStore, fc *cache.FeedCache, siteURL string) *Feeds {
	return &Feeds{
		posts:     posts,
		portfolio: portfolio,
		settings:  settings,
		feedCache: fc,
		siteURL:   strings.TrimRight(siteURL, "/"),
	}
}

func (h *Feeds) settingText(key, fallback string) string {
	st, err := h.settings.Find(key)
	if err != nil || st == nil || st.RawValue == "" {
		return fallback
	}
	return st.RawValue
}

// RSS serves the blog feed as RSS 2.0.
func (h *Feeds) RSS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if doc, ok := h.feedCache.Get(ctx, cache.KeyRSS); ok {
		w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
		w.Write(doc)
		return
	}

	posts, err := h.posts.ListPublished(feedPostLimit)
	if err != nil {
		slog.Error("list published posts failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	feed := &feeds.Feed{
		Title:       h.settingText("site_title", "devfolio"),
		Link:        &feeds.Link{Href: h.siteURL},
		Description: h.settingText("site_description", ""),
		Updated:     time.Now().UTC(),
	}

	for _, p := range posts {
		item := &feeds.Item{
			Title: p.Title,
			Link:  &feeds.Link{Href: fmt.Sprintf("%s/blog/%s", h.siteURL, p.Slug)},
			Id:    fmt.Sprintf("%s/blog/%s", h.siteURL, p.Slug),
		}
		if p.PublishedAt != nil {
			item.Created = *p.PublishedAt
		}
		if p.Excerpt != nil {
			item.Description = *p.Excerpt
		}
		if body, err := markdown.ToHTML(p.Content); err == nil {
			item.Content = body
		}
		feed.Items = append(feed.Items, item)
	}

	doc, err := feed.ToRss()
	if err != nil {
		slog.Error("render rss failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.feedCache.Set(ctx, cache.KeyRSS, []byte(doc))
	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.Write([]byte(doc))
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type sitemapSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// Sitemap serves an XML sitemap covering the homepage, published posts,
// and published portfolio pages.
func (h *Feeds) Sitemap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if doc, ok := h.feedCache.Get(ctx, cache.KeySitemap); ok {
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		w.Write(doc)
		return
	}

	set := sitemapSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	set.URLs = append(set.URLs, sitemapURL{Loc: h.siteURL + "/"})

	posts, err := h.posts.ListPublished(0)
	if err != nil {
		slog.Error("list published posts failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	for _, p := range posts {
		u := sitemapURL{Loc: fmt.Sprintf("%s/blog/%s", h.siteURL, p.Slug)}
		if p.PublishedAt != nil {
			u.LastMod = p.UpdatedAt.Format("2006-01-02")
		}
		set.URLs = append(set.URLs, u)
	}

	pages, err := h.portfolio.ListPages()
	if err != nil {
		slog.Error("list pages failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	for _, pg := range pages {
		if !pg.IsPublished || pg.IsHomepage {
			continue
		}
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     fmt.Sprintf("%s/%s", h.siteURL, pg.Slug),
			LastMod: pg.UpdatedAt.Format("2006-01-02"),
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		slog.Error("render sitemap failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	doc := append([]byte(xml.Header), body...)

	h.feedCache.Set(ctx, cache.KeySitemap, doc)
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write(doc)
}

// Robots serves robots.txt, keeping crawlers out of the API and admin
// surfaces and pointing them at the sitemap.
func (h *Feeds) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "User-agent: *\nDisallow: /api/\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n", h.siteURL)
}
