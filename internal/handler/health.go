package handler

import (
	"net/http"

	"github.com/stocksense/stocksense/internal/models"
	"github.com/stocksense/stocksense/internal/store"
)

const version = "1.0.0"

// HealthHandler handles GET /health with a database connectivity check.
type HealthHandler struct {
	open store.Opener
}

func NewHealthHandler(open store.Opener) *HealthHandler {
	return &HealthHandler{open: open}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{"server": "ok"}
	overallStatus := "healthy"

	if h.open != nil {
		if db, err := h.open(); err != nil {
			checks["database"] = "unavailable: " + err.Error()
			overallStatus = "degraded"
		} else {
			db.Close()
			checks["database"] = "ok"
		}
	} else {
		checks["database"] = "disabled"
	}

	statusCode := http.StatusOK
	if overallStatus == "degraded" {
		statusCode = http.StatusServiceUnavailable
	}

	models.WriteJSON(w, statusCode, models.HealthResponse{
		Status:  overallStatus,
		Version: version,
		Checks:  checks,
	})
}
