package handlers

import (
	"net/http"

	"github.com/hongminglow/warehouse-be/internal/http/render"
)

// NotFoundHandler renders the 404 page for every unmatched path.
type NotFoundHandler struct {
	views *render.Renderer
}

// NewNotFoundHandler constructs the handler.
func NewNotFoundHandler(views *render.Renderer) *NotFoundHandler {
	return &NotFoundHandler{views: views}
}

// Register installs the handler as the mux catch-all.
func (h *NotFoundHandler) Register(mux *http.ServeMux) {
	mux.Handle("/", h)
}

func (h *NotFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.views.HTML(w, r, http.StatusNotFound, render.PageNotFound, map[string]any{"Title": "Tidak Ditemukan"})
}
