package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/hongminglow/warehouse-be/internal/auth"
	"github.com/hongminglow/warehouse-be/internal/config"
	"github.com/hongminglow/warehouse-be/internal/http/render"
	"github.com/hongminglow/warehouse-be/internal/middleware"
	"github.com/hongminglow/warehouse-be/internal/models/dto"
)

// Messages shown on the login and dashboard pages.
const (
	msgMissingFields  = "WhatsApp dan password harus diisi"
	msgBadCredentials = "Nomor WhatsApp atau password salah"
	msgLoginFailed    = "Terjadi kesalahan saat login. Silakan coba lagi."
	msgLoggedOut      = "Anda telah berhasil logout"
)

func welcomeMessage(name string) string {
	return "Selamat datang, " + name + "!"
}

// AuthHandler owns the login form, login submission and logout.
type AuthHandler struct {
	auth   *auth.Authenticator
	tokens *auth.TokenManager
	cfg    *config.Config
	views  *render.Renderer
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(authenticator *auth.Authenticator, tokens *auth.TokenManager, cfg *config.Config, views *render.Renderer) *AuthHandler {
	return &AuthHandler{auth: authenticator, tokens: tokens, cfg: cfg, views: views}
}

// Register attaches auth routes to the mux.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /login", h.handleLoginPage)
	mux.HandleFunc("POST /login", h.handleLogin)
	mux.HandleFunc("GET /logout", h.handleLogout)
}

func (h *AuthHandler) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.PrincipalFromContext(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	q := r.URL.Query()
	h.views.HTML(w, r, http.StatusOK, render.PageLogin, map[string]any{
		"Title":   "Login",
		"Error":   q.Get(queryError),
		"Success": q.Get(querySuccess),
	})
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, "/login", msgMissingFields)
		return
	}
	form := dto.LoginForm{
		WhatsApp: r.PostForm.Get("whatsapp"),
		Password: r.PostForm.Get("password"),
	}

	p, err := h.auth.Verify(r.Context(), form)
	switch {
	case err == nil:
	case errors.Is(err, auth.ErrMissingCredentials):
		redirectError(w, r, "/login", msgMissingFields)
		return
	case errors.Is(err, auth.ErrInvalidCredentials):
		log.Printf("login rejected: %v", err)
		redirectError(w, r, "/login", msgBadCredentials)
		return
	default:
		log.Printf("login failed: %v", err)
		redirectError(w, r, "/login", msgLoginFailed)
		return
	}

	token, err := h.tokens.Generate(p)
	if err != nil {
		log.Printf("login failed: issue session token: %v", err)
		redirectError(w, r, "/login", msgLoginFailed)
		return
	}
	middleware.SetSessionCookie(w, token, h.tokens.TTL(), h.cfg.Production())
	redirectSuccess(w, r, "/", welcomeMessage(p.Name))
}

func (h *AuthHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearSessionCookie(w, h.cfg.Production())
	redirectSuccess(w, r, "/login", msgLoggedOut)
}
