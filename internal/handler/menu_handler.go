package handler

import (
	"encoding/json"
	"net/http"

	"bistro-api/internal/domain"
	"bistro-api/internal/service"
	"bistro-api/pkg/errors"
	"bistro-api/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// MenuHandler handles menu catalog requests
type MenuHandler struct {
	menu   service.MenuService
	logger *logger.Logger
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(menu service.MenuService, logger *logger.Logger) *MenuHandler {
	return &MenuHandler{
		menu:   menu,
		logger: logger,
	}
}

// List handles GET /menu (public)
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.menu.List(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, items)
}

// Create handles POST /menu (admin only)
func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondError(w, h.logger, errors.NewValidationError("Invalid request body", nil))
		return
	}

	created, err := h.menu.Create(r.Context(), &item)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// Delete handles DELETE /menu/{id} (admin only). Deleting an absent id is a
// zero-effect success.
func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	removed, err := h.menu.Delete(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]int64{"deleted": removed})
}
