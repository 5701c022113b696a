package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/hongminglow/warehouse-be/internal/config"
	"github.com/hongminglow/warehouse-be/internal/http/render"
	"github.com/hongminglow/warehouse-be/internal/middleware"
	"github.com/hongminglow/warehouse-be/internal/models"
)

// DashboardBuilder assembles the dashboard view model.
type DashboardBuilder interface {
	Build(ctx context.Context) (models.Dashboard, error)
}

// DashboardHandler serves the authenticated home page.
type DashboardHandler struct {
	builder DashboardBuilder
	cfg     *config.Config
	views   *render.Renderer
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(builder DashboardBuilder, cfg *config.Config, views *render.Renderer) *DashboardHandler {
	return &DashboardHandler{builder: builder, cfg: cfg, views: views}
}

// Register attaches the dashboard route behind RequireAuth.
func (h *DashboardHandler) Register(mux *http.ServeMux) {
	mux.Handle("GET /{$}", middleware.RequireAuth(http.HandlerFunc(h.handle)))
}

func (h *DashboardHandler) handle(w http.ResponseWriter, r *http.Request) {
	d, err := h.builder.Build(r.Context())
	if err != nil {
		log.Printf("build dashboard failed: %v", err)
		data := map[string]any{"Title": "Error"}
		if !h.cfg.Production() {
			data["Detail"] = err.Error()
		}
		h.views.HTML(w, r, http.StatusInternalServerError, render.PageError, data)
		return
	}
	h.views.HTML(w, r, http.StatusOK, render.PageDashboard, map[string]any{
		"Title":     "Dashboard",
		"Dashboard": d,
		"Success":   r.URL.Query().Get(querySuccess),
	})
}
