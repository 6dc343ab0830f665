package handler

import (
	"net/http"

	"bistro-api/internal/repository"
	"bistro-api/pkg/logger"
)

// ReviewHandler serves the read-only review feed
type ReviewHandler struct {
	reviews repository.ReviewRepository
	logger  *logger.Logger
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviews repository.ReviewRepository, logger *logger.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviews: reviews,
		logger:  logger,
	}
}

// List handles GET /reviews (public)
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.List(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, reviews)
}
