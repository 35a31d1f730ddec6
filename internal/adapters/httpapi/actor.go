package httpapi

import (
	"context"
	"net/http"
	"strings"

	"retreat/internal/domain"
)

// ActorHeader carries the organizer id set by the upstream identity gate.
const ActorHeader = "X-Organizer-ID"

// actorContextKey is the context key for the acting organizer.
type actorContextKey struct{}

// WithActor stores the organizer id in context.
func WithActor(ctx context.Context, actor string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, actorContextKey{}, actor)
}

// ActorFromContext returns the organizer id stored in context.
func ActorFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(actorContextKey{}).(string)
	return value
}

// requireActor rejects requests without an organizer id.
func (h *Handler) requireActor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := strings.TrimSpace(r.Header.Get(ActorHeader))
		if actor == "" {
			h.writeError(w, r, domain.ErrUnauthenticated)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}
