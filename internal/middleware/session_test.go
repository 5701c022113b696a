package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hongminglow/warehouse-be/internal/models"
)

type stubParser struct {
	valid map[string]models.Principal
}

func (s stubParser) Parse(token string) (models.Principal, error) {
	if p, ok := s.valid[token]; ok {
		return p, nil
	}
	return models.Principal{}, errors.New("bad token")
}

func findCookie(res *http.Response, name string) *http.Cookie {
	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestSessionAttachesPrincipal(t *testing.T) {
	parser := stubParser{valid: map[string]models.Principal{"good": {ID: 5, Name: "Rina"}}}
	var seen models.Principal
	var ok bool
	h := Session(parser, false, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, ok = PrincipalFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "good"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if !ok || seen.ID != 5 {
		t.Fatalf("principal = %+v, %v", seen, ok)
	}
	if c := findCookie(rec.Result(), SessionCookieName); c != nil {
		t.Fatalf("valid session should not touch the cookie, got %+v", c)
	}
}

func TestSessionClearsInvalidCookieAndContinues(t *testing.T) {
	called := false
	h := Session(stubParser{}, true, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if _, ok := PrincipalFromContext(r.Context()); ok {
			t.Error("invalid token must not yield a principal")
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "expired"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if !called {
		t.Fatal("request should proceed after a bad token")
	}
	c := findCookie(rec.Result(), SessionCookieName)
	if c == nil || c.MaxAge >= 0 || c.Value != "" {
		t.Fatalf("cookie not cleared: %+v", c)
	}
	if !c.Secure || !c.HttpOnly {
		t.Fatalf("cleared cookie lost its flags: %+v", c)
	}
}

func TestSessionWithoutCookie(t *testing.T) {
	h := Session(stubParser{}, false, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := PrincipalFromContext(r.Context()); ok {
			t.Error("no cookie must mean no principal")
		}
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if len(rec.Result().Cookies()) != 0 {
		t.Fatal("no cookie should be written")
	}
}

func TestRequireAuth(t *testing.T) {
	h := RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/login" {
		t.Fatalf("anonymous: status %d location %q", rec.Code, rec.Header().Get("Location"))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithPrincipal(req.Context(), models.Principal{ID: 1}))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTeapot {
		t.Fatalf("authenticated: status %d", rec.Code)
	}
}

func TestSetSessionCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	SetSessionCookie(rec, "tok", 7*24*time.Hour, true)

	c := findCookie(rec.Result(), SessionCookieName)
	if c == nil {
		t.Fatal("cookie not set")
	}
	if c.Value != "tok" || !c.HttpOnly || !c.Secure || c.MaxAge != 604800 || c.Path != "/" {
		t.Fatalf("unexpected cookie %+v", c)
	}
}
