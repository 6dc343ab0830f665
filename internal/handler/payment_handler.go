package handler

import (
	"encoding/json"
	stderrors "errors"
	"math"
	"net/http"

	"bistro-api/internal/domain"
	"bistro-api/internal/metrics"
	"bistro-api/internal/middleware"
	"bistro-api/internal/service"
	"bistro-api/pkg/errors"
	"bistro-api/pkg/logger"
)

// PaymentHandler handles charge intents and checkout
type PaymentHandler struct {
	provider  service.PaymentProvider
	checkout  service.CheckoutService
	payments  service.PaymentQueryService
	collector *metrics.Collector
	logger    *logger.Logger
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(provider service.PaymentProvider, checkout service.CheckoutService, payments service.PaymentQueryService, collector *metrics.Collector, logger *logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		provider:  provider,
		checkout:  checkout,
		payments:  payments,
		collector: collector,
		logger:    logger,
	}
}

type createIntentRequest struct {
	Price float64 `json:"price"`
}

type createIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// CreateIntent handles POST /create-payment-intent. The price arrives in
// currency units and is converted to the provider's integer cents.
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req createIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, errors.NewValidationError("Invalid request body", nil))
		return
	}

	if req.Price <= 0 {
		respondError(w, h.logger, errors.NewValidationError("Price must be positive", nil))
		return
	}

	amountCents := int64(math.Round(req.Price * 100))

	clientSecret, err := h.provider.CreateIntent(r.Context(), amountCents)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, createIntentResponse{ClientSecret: clientSecret})
}

// Checkout handles POST /payments with exactly one response per request. A
// payer email that differs from the token subject is logged but accepted: the
// frontend submits the signed-in user's email and existing clients rely on
// the match not being enforced.
func (h *PaymentHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req domain.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, errors.NewValidationError("Invalid request body", nil))
		return
	}

	if claims, ok := middleware.ClaimsFromContext(r.Context()); ok && claims.Email != req.PayerEmail {
		h.logger.WithFields(map[string]interface{}{
			"subject": claims.Email,
			"payer":   req.PayerEmail,
		}).Warn("Checkout payer differs from token subject")
	}

	result, err := h.checkout.Checkout(r.Context(), &req)
	if err != nil {
		var appErr *errors.AppError
		if stderrors.As(err, &appErr) && appErr.Type == errors.ErrorTypePartialFailure {
			h.collector.RecordCheckout("partial_failure")
		} else {
			h.collector.RecordCheckout("failure")
		}
		respondError(w, h.logger, err)
		return
	}

	h.collector.RecordCheckout("success")
	respondJSON(w, http.StatusCreated, result)
}

// List handles GET /payments?email=... and only serves the caller's own
// payment history.
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		respondJSON(w, http.StatusOK, []domain.Payment{})
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

	history, err := h.payments.ListByPayer(r.Context(), email)
	if err != nil {
		respondError(w, h.logger, err)
		return
	}

	respondJSON(w, http.StatusOK, history)
}
