package handler

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/google/uuid"

	"github.com/mystore/storefront/internal/domain"
	"github.com/mystore/storefront/internal/session"
)

type contextKey string

const (
	sessionContextKey   contextKey = "session"
	requestIDContextKey contextKey = "requestID"
)

const requestIDHeader = "X-Request-ID"

// SessionFromContext extracts the authenticated session from the request
// context. Returns nil when the request carries no valid session.
func SessionFromContext(ctx context.Context) *domain.Session {
	sess, _ := ctx.Value(sessionContextKey).(*domain.Session)
	return sess
}

// RequestIDFromContext extracts the request ID assigned by RequestID.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey).(string)
	return id
}

// WithSession resolves the session cookies before the handler runs and
// injects the session into the request context when it is valid. A token
// without a user snapshot (or the reverse) reads as logged out.
func WithSession(store *session.Store, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sess := store.Current(r); sess.Valid() {
			r = r.WithContext(context.WithValue(r.Context(), sessionContextKey, sess))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSession gates protected pages behind session presence. Requests
// without a valid session are redirected to the login page and the wrapped
// handler never runs.
func RequireSession(store *session.Store, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := store.Current(r)
		if !sess.Valid() {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestID assigns each request a UUID (or propagates an incoming one),
// echoes it in the response header, and logs the request.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		slog.Debug("http request", "method", r.Method, "path", r.URL.Path, "request_id", id)

		ctx := context.WithValue(r.Context(), requestIDContextKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SecurityHeaders sets the baseline response headers on every route.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// clientIP returns the remote address without the port, for rate limiting.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
