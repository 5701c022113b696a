package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/hongminglow/warehouse-be/internal/models"
)

// SessionCookieName is the cookie that carries the signed session token.
const SessionCookieName = "authToken"

type ctxKey string

const principalCtxKey ctxKey = "principal"

// TokenParser verifies a session token and returns its principal.
type TokenParser interface {
	Parse(token string) (models.Principal, error)
}

// Session decodes the session cookie on every request. A valid token puts the
// principal in the request context; an invalid one is cleared. The request
// always continues: RequireAuth decides whether anonymous access is allowed.
func Session(tokens TokenParser, secure bool, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(SessionCookieName)
		if err == nil && c.Value != "" {
			p, err := tokens.Parse(c.Value)
			if err != nil {
				ClearSessionCookie(w, secure)
			} else {
				r = r.WithContext(WithPrincipal(r.Context(), p))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth redirects anonymous requests to the login page.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := PrincipalFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithPrincipal stores the authenticated principal in ctx.
func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey, p)
}

// PrincipalFromContext returns the principal set by Session, if any.
func PrincipalFromContext(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(principalCtxKey).(models.Principal)
	return p, ok
}

// SetSessionCookie writes the session token as an HTTP-only cookie.
func SetSessionCookie(w http.ResponseWriter, token string, ttl time.Duration, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie tells the browser to drop the session cookie.
func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
