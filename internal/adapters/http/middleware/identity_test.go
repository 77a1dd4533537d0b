package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsamuelsen11/taskmaster/internal/adapters/http/middleware"
)

func TestIdentity_ParsesHeader(t *testing.T) {
	t.Parallel()

	var gotID int64
	handler := middleware.Identity()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotID = middleware.ActorIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/task-lists", http.NoBody)
	req.Header.Set("X-User-ID", "42")
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotID != 42 {
		t.Errorf("ActorIDFromContext = %d, want 42", gotID)
	}
}

func TestIdentity_RejectsMissingHeader(t *testing.T) {
	t.Parallel()

	called := false
	handler := middleware.Identity()(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		called = true
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/task-lists", http.NoBody)
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if called {
		t.Error("handler was called despite missing identity")
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want problem+json", ct)
	}
}

func TestIdentity_RejectsMalformedHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
	}{
		{"non-numeric", "alice"},
		{"zero", "0"},
		{"negative", "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := middleware.Identity()(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
				t.Error("handler was called despite malformed identity")
			}))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/v1/task-lists", http.NoBody)
			req.Header.Set("X-User-ID", tt.value)
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestActorIDFromContext_NotFound(t *testing.T) {
	t.Parallel()

	if got := middleware.ActorIDFromContext(context.Background()); got != 0 {
		t.Errorf("ActorIDFromContext on empty context = %d, want 0", got)
	}
}
