package handler

import (
	"encoding/json"
	"net/http"

	"bistro-api/internal/metrics"
	"bistro-api/internal/service"
	"bistro-api/pkg/errors"
	"bistro-api/pkg/logger"
)

// AuthHandler issues identity tokens
type AuthHandler struct {
	tokens    service.TokenService
	collector *metrics.Collector
	logger    *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(tokens service.TokenService, collector *metrics.Collector, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		tokens:    tokens,
		collector: collector,
		logger:    logger,
	}
}

type issueTokenRequest struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type issueTokenResponse struct {
	Token string `json:"token"`
}

// IssueToken handles POST /jwt. The endpoint is unauthenticated: a token
// only asserts its subject claims, every privilege check happens against the
// stored user record.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req issueTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, errors.NewValidationError("Invalid request body", nil))
		return
	}

	if req.Email == "" {
		respondError(w, h.logger, errors.NewValidationError("Email is required", nil))
		return
	}

	token, err := h.tokens.Issue(req.Email)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	h.collector.RecordTokenIssued()
	respondJSON(w, http.StatusOK, issueTokenResponse{Token: token})
}
