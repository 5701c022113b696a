package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/hongminglow/warehouse-be/internal/http/respond"
)

const healthPingTimeout = 2 * time.Second

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler returns uptime and database status.
type HealthHandler struct {
	startedAt time.Time
	db        Pinger
}

// NewHealthHandler creates a health endpoint handler.
func NewHealthHandler(startedAt time.Time, db Pinger) *HealthHandler {
	return &HealthHandler{startedAt: startedAt, db: db}
}

// Register wires the handler into a ServeMux.
func (h *HealthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.handle)
}

func (h *HealthHandler) handle(w http.ResponseWriter, r *http.Request) {
	uptime := time.Since(h.startedAt).Truncate(time.Second).String()

	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		log.Printf("health check failed: %v", err)
		respond.JSON(w, http.StatusServiceUnavailable, "database unreachable", map[string]string{
			"status":   "degraded",
			"uptime":   uptime,
			"database": "unreachable",
		})
		return
	}
	respond.JSON(w, http.StatusOK, "ok", map[string]string{
		"status":   "ok",
		"uptime":   uptime,
		"database": "ok",
	})
}
