package handler

import (
	"net/http"

	"bistro-api/internal/service"
	"bistro-api/pkg/logger"
)

// StatsHandler serves the admin reports
type StatsHandler struct {
	stats  service.StatsService
	logger *logger.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(stats service.StatsService, logger *logger.Logger) *StatsHandler {
	return &StatsHandler{
		stats:  stats,
		logger: logger,
	}
}

// Summary handles GET /admin-stats (admin only)
func (h *StatsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.stats.Summary(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// OrderRollup handles GET /order-stats (admin only)
func (h *StatsHandler) OrderRollup(w http.ResponseWriter, r *http.Request) {
	rollup, err := h.stats.OrderRollup(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, rollup)
}
