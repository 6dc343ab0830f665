package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bistro-api/internal/service"
	"bistro-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_RejectsBadCredentials(t *testing.T) {
	tokens := service.NewTokenService("test-secret", time.Hour)

	expired := service.NewTokenService("test-secret", time.Millisecond)
	expiredToken, err := expired.Issue("alice@example.com")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	tests := []struct {
		name   string
		header string
	}{
		{name: "Missing header", header: ""},
		{name: "Wrong scheme", header: "Basic abc123"},
		{name: "Bearer without token", header: "Bearer "},
		{name: "Garbage token", header: "Bearer not-a-token"},
		{name: "Expired token", header: "Bearer " + expiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("handler must not run for a rejected request")
			})

			req := httptest.NewRequest(http.MethodGet, "/carts", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			Auth(tokens, logger.NewNop())(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "authentication")
		})
	}
}

func TestAuth_AttachesClaims(t *testing.T) {
	tokens := service.NewTokenService("test-secret", time.Hour)

	token, err := tokens.Issue("alice@example.com")
	require.NoError(t, err)

	var gotEmail string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		gotEmail = claims.Email
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/carts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	Auth(tokens, logger.NewNop())(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice@example.com", gotEmail)
}

func TestClaimsFromContext_AbsentClaims(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	claims, ok := ClaimsFromContext(req.Context())
	assert.False(t, ok)
	assert.Nil(t, claims)
}

func TestRequestID_SetsHeaderAndContext(t *testing.T) {
	var ctxID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID, _ = r.Context().Value(RequestIDContextKey).(string)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	RequestID(logger.NewNop())(next).ServeHTTP(rec, req)

	assert.NotEmpty(t, ctxID)
	assert.Equal(t, ctxID, rec.Header().Get("X-Request-ID"))
}
