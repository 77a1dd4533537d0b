package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/taskmaster/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskmaster/internal/domain"
)

const headerUserID = "X-User-ID"

// actorIDKey is the context key for storing the authenticated user's ID.
type actorIDKey struct{}

// WithActorID returns a new context carrying the authenticated user's ID.
func WithActorID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, actorIDKey{}, id)
}

// ActorIDFromContext extracts the authenticated user's ID from the context.
// Returns 0 if no identity is stored.
func ActorIDFromContext(ctx context.Context) int64 {
	if id, ok := ctx.Value(actorIDKey{}).(int64); ok {
		return id
	}
	return 0
}

// Identity returns middleware that reads the caller's user ID from the
// X-User-ID header and stores it in the request context. Authentication
// itself happens upstream (gateway or reverse proxy); this service trusts
// the header but refuses requests that arrive without one.
//
// Requests with a missing or malformed header are rejected with 401 before
// reaching the handlers, so every handler can assume a valid actor ID.
func Identity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(headerUserID)
			if raw == "" {
				dto.WriteErrorResponse(w, r, fmt.Errorf("missing %s header: %w", headerUserID, domain.ErrUnauthenticated))
				return
			}

			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || id <= 0 {
				dto.WriteErrorResponse(w, r, fmt.Errorf("invalid %s header %q: %w", headerUserID, raw, domain.ErrUnauthenticated))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActorID(r.Context(), id)))
		})
	}
}
