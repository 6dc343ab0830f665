package handler

import (
	"encoding/json"
	"net/http"

	"bistro-api/internal/domain"
	"bistro-api/internal/middleware"
	"bistro-api/internal/service"
	"bistro-api/pkg/errors"
	"bistro-api/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// CartHandler handles cart item requests
type CartHandler struct {
	carts  service.CartService
	logger *logger.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts service.CartService, logger *logger.Logger) *CartHandler {
	return &CartHandler{
		carts:  carts,
		logger: logger,
	}
}

// Add handles POST /carts
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var item domain.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondError(w, h.logger, errors.NewValidationError("Invalid request body", nil))
		return
	}

	added, err := h.carts.Add(r.Context(), &item)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, added)
}

// List handles GET /carts?email=... and only serves the caller's own cart.
// A missing email filter yields an empty list rather than every cart in the
// store.
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		respondJSON(w, http.StatusOK, []domain.CartItem{})
		return
	}

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, h.logger, errors.NewAuthenticationError("Authentication required"))
		return
	}

	if claims.Email != email {
		respondError(w, h.logger, errors.NewAuthorizationError("Forbidden access"))
		return
	}

	items, err := h.carts.ListByOwner(r.Context(), email)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, items)
}

// Remove handles DELETE /carts/{id}. Removing an absent id is a zero-effect
// success.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	removed, err := h.carts.Remove(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]int64{"deleted": removed})
}
