package handler

import (
	"net/http"

	"github.com/stocksense/stocksense/internal/models"
	"github.com/stocksense/stocksense/internal/store"
)

// StatsHandler handles GET /api/v1/stats
type StatsHandler struct {
	stats *store.StatsService
}

func NewStatsHandler(stats *store.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.stats.Snapshot(r.Context())
	if err != nil {
		models.WriteError(w, http.StatusServiceUnavailable, "failed to load store stats: "+err.Error())
		return
	}
	models.WriteJSON(w, http.StatusOK, snapshot)
}
