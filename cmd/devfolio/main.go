// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the devfolio server. It loads
// configuration, connects to services, sets up routing, and starts the
// HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"devfolio/internal/cache"
	"devfolio/internal/config"
	"devfolio/internal/database"
	"devfolio/internal/handlers"
	"devfolio/internal/mailer"
	"devfolio/internal/middleware"
	"devfolio/internal/router"
	"devfolio/internal/session"
	"devfolio/internal/storage"
	"devfolio/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded", "env", cfg.Env, "addr", cfg.Addr())

	// PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Bootstrap the admin account and default settings (no-op when
	// users already exist).
	if err := database.Seed(db, cfg); err != nil {
		slog.Error("failed to seed database", "error", err)
		os.Exit(1)
	}

	// Valkey backs sessions and the feed cache.
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)
	feedCache := cache.NewFeedCache(valkeyClient, cache.DefaultFeedTTL)

	// Data stores.
	userStore := store.NewUserStore(db)
	projectStore := store.NewProjectStore(db)
	postStore := store.NewBlogPostStore(db)
	categoryStore := store.NewBlogCategoryStore(db)
	seriesStore := store.NewBlogSeriesStore(db)
	commentStore := store.NewBlogCommentStore(db)
	academicStore := store.NewAcademicStore(db)
	skillStore := store.NewSkillStore(db)
	portfolioStore := store.NewPortfolioStore(db)
	settingStore := store.NewSiteSettingStore(db)
	contactStore := store.NewContactStore(db)
	mediaStore := store.NewMediaStore(db)

	// S3-compatible object storage (optional — uploads disabled without it).
	storageClient, err := storage.New(
		cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
		cfg.S3Bucket, cfg.S3PublicURL,
	)
	if err != nil {
		slog.Error("failed to initialize object storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		slog.Info("object storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("object storage not configured — media uploads disabled")
	}

	// Outbound notifications (optional — nil mailer drops them).
	mail := mailer.New(cfg.ResendAPIKey, cfg.EmailFrom, cfg.EmailNotify)
	if mail == nil {
		slog.Warn("email notifications not configured")
	}

	h := router.Handlers{
		Auth:       handlers.NewAuth(sessionStore, userStore),
		Projects:   handlers.NewProjects(projectStore),
		Posts:      handlers.NewBlogPosts(postStore, feedCache),
		Categories: handlers.NewBlogCategories(categoryStore),
		Series:     handlers.NewBlogSeries(seriesStore, postStore),
		Comments:   handlers.NewComments(commentStore, postStore, mail),
		Academics:  handlers.NewAcademics(academicStore, skillStore),
		Skills:     handlers.NewSkills(skillStore),
		Portfolio:  handlers.NewPortfolio(portfolioStore),
		Settings:   handlers.NewSettings(settingStore),
		Contacts:   handlers.NewContacts(contactStore, mail),
		Media:      handlers.NewMedia(mediaStore, storageClient),
		Feeds:      handlers.NewFeeds(postStore, portfolioStore, settingStore, feedCache, cfg.SiteURL),
	}

	// Throttle unauthenticated writes per client IP.
	publicLimiter := middleware.NewRateLimiter(10, time.Minute)
	defer publicLimiter.Stop()

	r := router.New(sessionStore, h, publicLimiter, secureCookies)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
