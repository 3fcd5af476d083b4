// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains. Routes
// split into public JSON endpoints, the auth flow, and the admin API;
// only the admin API demands a fully verified session.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"devfolio/internal/handlers"
	"devfolio/internal/middleware"
	"devfolio/internal/session"
)

// Handlers collects the handler groups the router wires up.
type Handlers struct {
	Auth       *handlers.Auth
	Projects   *handlers.Projects
	Posts      *handlers.BlogPosts
	Categories *handlers.BlogCategories
	Series     *handlers.BlogSeriesHandlers
	Comments   *handlers.Comments
	Academics  *handlers.Academics
	Skills     *handlers.Skills
	Portfolio  *handlers.Portfolio
	Settings   *handlers.Settings
	Contacts   *handlers.Contacts
	Media      *handlers.Media
	Feeds      *handlers.Feeds
}

// New creates the configured chi router. publicLimiter throttles the
// unauthenticated write endpoints (comments, likes, contact forms);
// secureCookies controls the Secure flag on the CSRF cookie.
func New(sessionStore *session.Store, h Handlers, publicLimiter *middleware.RateLimiter, secureCookies bool) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	csrf := middleware.NewCSRF(secureCookies)
	throttled := publicLimiter.Middleware

	r.Get("/health", healthHandler)
	r.Get("/rss.xml", h.Feeds.RSS)
	r.Get("/sitemap.xml", h.Feeds.Sitemap)
	r.Get("/robots.txt", h.Feeds.Robots)

	r.Route("/api", func(r chi.Router) {
		// Auth flow. Login is throttled against credential stuffing;
		// the 2FA endpoints need a session but not a completed 2FA.
		r.Route("/auth", func(r chi.Router) {
			r.Use(csrf)
			r.With(throttled).Post("/login", h.Auth.Login)
			r.Post("/logout", h.Auth.Logout)
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAuth)
				r.Get("/me", h.Auth.Me)
				r.Post("/2fa/setup", h.Auth.TwoFASetup)
				r.Post("/2fa/verify", h.Auth.TwoFAVerify)
			})
		})

		// Public reads.
		r.Get("/projects", h.Projects.List)
		r.Get("/projects/{ref}", h.Projects.Get)

		r.Get("/posts", h.Posts.List)
		r.Get("/posts/{ref}", h.Posts.Get)
		r.With(throttled).Post("/posts/{ref}/like", h.Posts.Like)
		r.Get("/posts/{ref}/comments", h.Comments.ListByPost)
		r.With(throttled).Post("/posts/{ref}/comments", h.Comments.Create)
		r.With(throttled).Post("/comments/{id}/like", h.Comments.Like)

		r.Get("/categories", h.Categories.List)
		r.Get("/categories/{ref}", h.Categories.Get)
		r.Get("/series", h.Series.List)
		r.Get("/series/{ref}", h.Series.Get)
		r.Get("/series/{ref}/posts", h.Series.Posts)

		r.Get("/programs", h.Academics.ListPrograms)
		r.Get("/programs/{id}", h.Academics.GetProgram)
		r.Get("/courses", h.Academics.ListCourses)
		r.Get("/courses/{id}", h.Academics.GetCourse)
		r.Get("/courses/{id}/assessments", h.Academics.ListAssessments)
		r.Get("/skills", h.Skills.List)
		r.Get("/progressions", h.Skills.ListProgressions)

		r.Get("/sections", h.Portfolio.ListSections)
		r.Get("/homepage", h.Portfolio.Homepage)
		r.Get("/pages/{ref}", h.Portfolio.GetPage)
		r.Get("/settings", h.Settings.Public)

		// Public writes.
		r.With(throttled).Post("/contact", h.Contacts.SubmitMessage)
		r.With(throttled).Post("/demo-requests", h.Contacts.SubmitDemoRequest)

		// Admin API. Everything below needs a 2FA-verified admin
		// session and a CSRF token on writes.
		r.Route("/admin", func(r chi.Router) {
			r.Use(csrf)
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)
			r.Use(middleware.RequireAdmin)

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", h.Projects.AdminList)
				r.Post("/", h.Projects.Create)
				r.Get("/{id}", h.Projects.AdminGet)
				r.Put("/{id}", h.Projects.Update)
				r.Delete("/{id}", h.Projects.Delete)
			})

			r.Route("/posts", func(r chi.Router) {
				r.Get("/", h.Posts.AdminList)
				r.Post("/", h.Posts.Create)
				r.Get("/{id}", h.Posts.AdminGet)
				r.Put("/{id}", h.Posts.Update)
				r.Delete("/{id}", h.Posts.Delete)
			})

			r.Route("/comments", func(r chi.Router) {
				r.Get("/", h.Comments.AdminList)
				r.Put("/{id}/approve", h.Comments.Approve)
				r.Put("/{id}/reject", h.Comments.Reject)
				r.Delete("/{id}", h.Comments.Delete)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Post("/", h.Categories.Create)
				r.Put("/{id}", h.Categories.Update)
				r.Delete("/{id}", h.Categories.Delete)
			})

			r.Route("/series", func(r chi.Router) {
				r.Post("/", h.Series.Create)
				r.Put("/{id}", h.Series.Update)
				r.Delete("/{id}", h.Series.Delete)
			})

			r.Route("/programs", func(r chi.Router) {
				r.Post("/", h.Academics.CreateProgram)
				r.Put("/{id}", h.Academics.UpdateProgram)
				r.Delete("/{id}", h.Academics.DeleteProgram)
				r.Post("/{id}/recompute-skills", h.Academics.RecomputeSkills)
			})

			r.Route("/courses", func(r chi.Router) {
				r.Post("/", h.Academics.CreateCourse)
				r.Put("/{id}", h.Academics.UpdateCourse)
				r.Delete("/{id}", h.Academics.DeleteCourse)
				r.Post("/{id}/assessments", h.Academics.CreateAssessment)
			})

			r.Route("/assessments", func(r chi.Router) {
				r.Put("/{id}", h.Academics.UpdateAssessment)
				r.Delete("/{id}", h.Academics.DeleteAssessment)
			})

			r.Route("/skills", func(r chi.Router) {
				r.Get("/", h.Skills.AdminList)
				r.Post("/", h.Skills.Create)
				r.Put("/{id}", h.Skills.Update)
				r.Delete("/{id}", h.Skills.Delete)
			})

			r.Route("/progressions", func(r chi.Router) {
				r.Put("/", h.Skills.UpsertProgression)
				r.Delete("/{id}", h.Skills.DeleteProgression)
			})

			r.Route("/sections", func(r chi.Router) {
				r.Get("/", h.Portfolio.AdminListSections)
				r.Post("/", h.Portfolio.CreateSection)
				r.Put("/{id}", h.Portfolio.UpdateSection)
				r.Delete("/{id}", h.Portfolio.DeleteSection)
			})

			r.Route("/pages", func(r chi.Router) {
				r.Get("/", h.Portfolio.AdminListPages)
				r.Post("/", h.Portfolio.CreatePage)
				r.Get("/{id}", h.Portfolio.AdminGetPage)
				r.Put("/{id}", h.Portfolio.UpdatePage)
				r.Put("/{id}/homepage", h.Portfolio.SetHomepage)
				r.Delete("/{id}", h.Portfolio.DeletePage)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", h.Settings.AdminList)
				r.Put("/{key}", h.Settings.Upsert)
				r.Delete("/{key}", h.Settings.Delete)
			})

			r.Route("/contact-messages", func(r chi.Router) {
				r.Get("/", h.Contacts.AdminListMessages)
				r.Put("/{id}/read", h.Contacts.MarkMessageRead)
			})
			r.Get("/demo-requests", h.Contacts.AdminListDemoRequests)

			r.Route("/media", func(r chi.Router) {
				r.Get("/", h.Media.List)
				r.Post("/", h.Media.Upload)
				r.Delete("/", h.Media.Delete)
			})
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
