package handler

import (
	"encoding/json"
	"net/http"

	"bistro-api/internal/middleware"
	"bistro-api/internal/service"
	"bistro-api/pkg/errors"
	"bistro-api/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// UserHandler handles user registration, listing and role operations
type UserHandler struct {
	users  service.UserService
	logger *logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(users service.UserService, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		users:  users,
		logger: logger,
	}
}

type registerUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Register handles POST /users. Registration is an idempotent
// upsert-by-email: posting an existing email reports "already exists" and
// leaves the stored record, including its role, untouched.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, errors.NewValidationError("Invalid request body", nil))
		return
	}

	user, created, err := h.users.Register(r.Context(), req.Email, req.Name)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	if !created {
		respondJSON(w, http.StatusOK, map[string]string{"message": "User already exists"})
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

// List handles GET /users (admin only)
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, users)
}

// CheckAdmin handles GET /users/admin/{email}. A valid token only entitles
// its own subject to ask: any other target email yields admin=false without
// touching the store, so one user cannot probe another's role.
func (h *UserHandler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respondError(w, h.logger, errors.NewAuthenticationError("Authentication required"))
		return
	}

	if claims.Email != email {
		respondJSON(w, http.StatusOK, map[string]bool{"admin": false})
		return
	}

	isAdmin, err := h.users.IsAdmin(r.Context(), email)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"admin": isAdmin})
}

// Promote handles PATCH /users/admin/{id} (admin only)
func (h *UserHandler) Promote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.users.Promote(r.Context(), id); err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"modified": 1})
}
