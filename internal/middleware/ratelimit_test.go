package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(3, 1*time.Second)
	defer rl.Stop()

	// A commenter gets three writes inside the window.
	for i := 0; i < 3; i++ {
		if !rl.allow("203.0.113.7") {
			t.Fatalf("comment %d should be allowed", i+1)
		}
	}
	if rl.allow("203.0.113.7") {
		t.Error("4th comment should be rate-limited")
	}

	// An unrelated visitor is not affected.
	if !rl.allow("198.51.100.23") {
		t.Error("other visitor should be allowed")
	}
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	rl := NewRateLimiter(2, 100*time.Millisecond)
	defer rl.Stop()

	rl.allow("203.0.113.7")
	rl.allow("203.0.113.7")
	if rl.allow("203.0.113.7") {
		t.Error("should be rate-limited")
	}

	time.Sleep(150 * time.Millisecond)

	if !rl.allow("203.0.113.7") {
		t.Error("should be allowed after window expires")
	}
}

func TestRateLimiterMiddleware(t *testing.T) {
	rl := NewRateLimiter(2, 1*time.Second)
	defer rl.Stop()

	handler := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	submit := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		req.RemoteAddr = "203.0.113.7:41000"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	// The first two contact form submissions go through.
	for i := 0; i < 2; i++ {
		if code := submit(); code != http.StatusCreated {
			t.Fatalf("submission %d: got status %d, want 201", i+1, code)
		}
	}

	if code := submit(); code != http.StatusTooManyRequests {
		t.Errorf("got status %d, want 429", code)
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		xff        string
		xri        string
		remoteAddr string
		want       string
	}{
		{
			name:       "x-forwarded-for single",
			xff:        "203.0.113.7",
			remoteAddr: "10.0.0.5:1234",
			want:       "203.0.113.7",
		},
		{
			name:       "x-forwarded-for proxy chain keeps origin",
			xff:        "203.0.113.7, 172.16.0.1, 10.0.0.5",
			remoteAddr: "10.0.0.5:1234",
			want:       "203.0.113.7",
		},
		{
			name:       "x-real-ip",
			xri:        "198.51.100.23",
			remoteAddr: "10.0.0.5:1234",
			want:       "198.51.100.23",
		},
		{
			name:       "remote addr only",
			remoteAddr: "203.0.113.7:1234",
			want:       "203.0.113.7",
		},
		{
			name:       "remote addr no port",
			remoteAddr: "203.0.113.7",
			want:       "203.0.113.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				req.Header.Set("X-Real-IP", tt.xri)
			}
			if got := clientIP(req); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRateLimiterCleanup(t *testing.T) {
	rl := NewRateLimiter(5, 50*time.Millisecond)
	defer rl.Stop()

	rl.allow("203.0.113.7")
	rl.allow("198.51.100.23")

	time.Sleep(100 * time.Millisecond)

	rl.cleanup()

	rl.mu.RLock()
	count := len(rl.clients)
	rl.mu.RUnlock()

	if count != 0 {
		t.Errorf("cleanup should drop expired visitors, got %d", count)
	}
}

func TestRateLimiterCleanupKeepsActiveVisitors(t *testing.T) {
	rl := NewRateLimiter(10, 200*time.Millisecond)
	defer rl.Stop()

	rl.allow("203.0.113.7")
	rl.allow("198.51.100.23")

	// Let the first visitor's timestamps age out, then refresh the second.
	time.Sleep(250 * time.Millisecond)
	rl.allow("198.51.100.23")

	rl.cleanup()

	rl.mu.RLock()
	_, staleExists := rl.clients["203.0.113.7"]
	_, activeExists := rl.clients["198.51.100.23"]
	rl.mu.RUnlock()

	if staleExists {
		t.Error("stale visitor should have been cleaned up")
	}
	if !activeExists {
		t.Error("active visitor should survive cleanup")
	}
}
