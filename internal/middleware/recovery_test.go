// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRecoverer(t *testing.T) {
	crash := func(v any) *httptest.ResponseRecorder {
		handler := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic(v)
		}))
		rr := httptest.NewRecorder()
		// Must not propagate the panic to the server loop.
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/posts/broken-slug", nil))
		return rr
	}

	t.Run("string panic becomes a 500", func(t *testing.T) {
		rr := crash("post renderer blew up")

		if rr.Code != http.StatusInternalServerError {
			t.Errorf("status: got %d, want 500", rr.Code)
		}
		if !strings.Contains(rr.Body.String(), "internal server error") {
			t.Errorf("body: got %q, want the generic error message", rr.Body.String())
		}
	})

	t.Run("error panic becomes a 500", func(t *testing.T) {
		if rr := crash(errors.New("nil store")); rr.Code != http.StatusInternalServerError {
			t.Errorf("status: got %d, want 500", rr.Code)
		}
	})

	t.Run("arbitrary value panic becomes a 500", func(t *testing.T) {
		if rr := crash(42); rr.Code != http.StatusInternalServerError {
			t.Errorf("status: got %d, want 500", rr.Code)
		}
	})
}

func TestRecovererNoPanic(t *testing.T) {
	t.Run("healthy handlers pass through", func(t *testing.T) {
		var called bool
		handler := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

		if !called {
			t.Error("next handler should have been called")
		}
		if rr.Code != http.StatusOK {
			t.Errorf("status: got %d, want 200", rr.Code)
		}
		if rr.Body.String() != `{"status":"ok"}` {
			t.Errorf("body: got %q", rr.Body.String())
		}
	})

	t.Run("response headers survive", func(t *testing.T) {
		handler := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/rss+xml")
			w.WriteHeader(http.StatusOK)
		}))

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/rss.xml", nil))

		if got := rr.Header().Get("Content-Type"); got != "application/rss+xml" {
			t.Errorf("Content-Type: got %q", got)
		}
	})

	t.Run("all methods pass through", func(t *testing.T) {
		methods := []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
		}

		for _, method := range methods {
			t.Run(method, func(t *testing.T) {
				handler := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusOK)
				}))

				rr := httptest.NewRecorder()
				handler.ServeHTTP(rr, httptest.NewRequest(method, "/api/admin/pages", nil))

				if rr.Code != http.StatusOK {
					t.Errorf("status: got %d, want 200", rr.Code)
				}
			})
		}
	})
}
