package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/hongminglow/warehouse-be/internal/auth"
	"github.com/hongminglow/warehouse-be/internal/config"
	"github.com/hongminglow/warehouse-be/internal/dashboard"
	"github.com/hongminglow/warehouse-be/internal/http/handlers"
	"github.com/hongminglow/warehouse-be/internal/http/render"
	"github.com/hongminglow/warehouse-be/internal/middleware"
	"github.com/hongminglow/warehouse-be/internal/storage"
)

// Store is everything the routes read from the database.
type Store interface {
	storage.AccountStore
	storage.DashboardStore
	Ping(ctx context.Context) error
}

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server.
func New(cfg config.Config, store Store) (*Server, error) {
	views, err := render.New()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.SessionTTL)

	mux := http.NewServeMux()
	handlers.NewHealthHandler(time.Now(), store).Register(mux)
	handlers.NewAuthHandler(auth.NewAuthenticator(store), tokens, &cfg, views).Register(mux)
	handlers.NewDashboardHandler(dashboard.NewAggregator(store), &cfg, views).Register(mux)
	handlers.NewNotFoundHandler(views).Register(mux)

	handler := middleware.Logging(middleware.Session(tokens, cfg.Production(), mux))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}, nil
}

// Handler exposes the full middleware chain, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.inner.Handler
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
