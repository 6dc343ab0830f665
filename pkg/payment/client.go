// Package payment talks to the card-payment provider's HTTP API. The backend
// only ever creates a charge intent and hands the client secret back to the
// frontend; confirmation happens on the client side against the provider.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bistro-api/pkg/errors"
	"bistro-api/pkg/logger"
)

const defaultAPIBase = "https://api.stripe.com"

// Client is an HTTP client for the payment provider's PaymentIntents API.
type Client struct {
	secretKey  string
	apiBase    string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewClient creates a new payment provider client. apiBase may be empty, in
// which case the provider's production endpoint is used.
func NewClient(secretKey, apiBase string, logger *logger.Logger) *Client {
	if apiBase == "" {
		apiBase = defaultAPIBase
	}
	return &Client{
		secretKey: secretKey,
		apiBase:   strings.TrimSuffix(apiBase, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// CreateIntent creates a charge intent for the given amount in the smallest
// currency unit and returns the client secret the frontend needs to confirm
// the charge. Failures are surfaced as external errors: the checkout path must
// never retry them automatically.
func (c *Client) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountCents, 10))
	form.Set("currency", "usd")
	form.Set("payment_method_types[]", "card")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.NewInternalError("Failed to create payment intent request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).Error("Payment provider request failed")
		return "", errors.NewExternalError("Payment provider unavailable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.WithFields(map[string]interface{}{
			"status_code": resp.StatusCode,
			"body":        string(body),
		}).Error("Payment provider returned error")
		return "", errors.NewExternalError(fmt.Sprintf("Payment provider returned status %d", resp.StatusCode), nil)
	}

	var intent struct {
		ID           string `json:"id"`
		ClientSecret string `json:"client_secret"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return "", errors.NewExternalError("Failed to decode payment provider response", err)
	}

	if intent.ClientSecret == "" {
		return "", errors.NewExternalError("Payment provider response missing client secret", nil)
	}

	c.logger.WithField("intent_id", intent.ID).Debug("Payment intent created")
	return intent.ClientSecret, nil
}
