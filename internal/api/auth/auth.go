// Package auth provides the bearer-token middleware and the per-route
// authorization guards.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/moneyball/internal/api/respond"
	"github.com/albapepper/moneyball/internal/token"
)

type ctxKey int

const emailKey ctxKey = iota

// EmailFromContext returns the authenticated account email, if any.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(emailKey).(string)
	return email, ok && email != ""
}

// WithEmail returns ctx carrying an authenticated email. Exposed for
// handler tests.
func WithEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, emailKey, email)
}

// Middleware decodes the Authorization bearer token, when present and valid,
// and stores the embedded email in the request context. It never rejects a
// request: absent and malformed tokens are treated identically and rejection
// is left to the per-route guards.
func Middleware(issuer *token.Issuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			parts := strings.SplitN(header, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				if email, err := issuer.Verify(strings.TrimSpace(parts[1])); err == nil {
					r = r.WithContext(WithEmail(r.Context(), email))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// EnsureLoggedIn rejects requests with no authenticated identity.
func EnsureLoggedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := EmailFromContext(r.Context()); !ok {
			respond.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// EnsureCorrectUser rejects requests whose identity does not match the
// {email} path parameter. Callers may only act on their own account.
func EnsureCorrectUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := EmailFromContext(r.Context())
		if !ok || email != chi.URLParam(r, "email") {
			respond.WriteError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}
