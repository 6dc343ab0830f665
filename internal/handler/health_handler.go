package handler

import (
	"context"
	"net/http"
	"time"

	"bistro-api/pkg/database"
	"bistro-api/pkg/logger"
	"bistro-api/pkg/redis"
)

// HealthHandler reports liveness of the service and its backends
type HealthHandler struct {
	db     *database.PostgresDB
	cache  *redis.Client
	logger *logger.Logger
}

// NewHealthHandler creates a new health handler. cache may be nil when the
// service runs without Redis.
func NewHealthHandler(db *database.PostgresDB, cache *redis.Client, logger *logger.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := map[string]string{}

	if err := h.db.Health(ctx); err != nil {
		h.logger.WithError(err).Error("Database health check failed")
		checks["database"] = "down"
		status = http.StatusServiceUnavailable
	} else {
		checks["database"] = "up"
	}

	if h.cache != nil {
		if err := h.cache.Health(ctx); err != nil {
			// A dead cache degrades latency, not correctness
			h.logger.WithError(err).Warn("Cache health check failed")
			checks["cache"] = "down"
		} else {
			checks["cache"] = "up"
		}
	}

	respondJSON(w, status, map[string]interface{}{
		"status":    http.StatusText(status),
		"service":   "bistro-api",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"checks":    checks,
	})
}
