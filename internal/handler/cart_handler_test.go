package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bistro-api/internal/domain"
	"bistro-api/internal/middleware"
	"bistro-api/internal/service"
	"bistro-api/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCartService struct {
	items map[string][]domain.CartItem
}

func (f *fakeCartService) Add(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	return item, nil
}

func (f *fakeCartService) ListByOwner(ctx context.Context, email string) ([]domain.CartItem, error) {
	items := f.items[email]
	if items == nil {
		items = []domain.CartItem{}
	}
	return items, nil
}

func (f *fakeCartService) Remove(ctx context.Context, id string) (int64, error) {
	return 0, nil
}

func setupCartRouter(t *testing.T, carts service.CartService) (*chi.Mux, string) {
	t.Helper()

	tokens := service.NewTokenService("test-secret", time.Hour)
	token, err := tokens.Issue("alice@example.com")
	require.NoError(t, err)

	h := NewCartHandler(carts, logger.NewNop())

	r := chi.NewRouter()
	r.Post("/carts", h.Add)
	r.Delete("/carts/{id}", h.Remove)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(tokens, logger.NewNop()))
		r.Get("/carts", h.List)
	})

	return r, token
}

func TestCartHandler_AddWithoutToken(t *testing.T) {
	router, _ := setupCartRouter(t, &fakeCartService{})

	body := strings.NewReader(`{"email":"alice@example.com","menuItemId":"m1","name":"Margherita Pizza","price":12.5}`)
	req := httptest.NewRequest(http.MethodPost, "/carts", body)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCartHandler_RemoveWithoutToken(t *testing.T) {
	router, _ := setupCartRouter(t, &fakeCartService{})

	req := httptest.NewRequest(http.MethodDelete, "/carts/c1", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_ListOwnCart(t *testing.T) {
	carts := &fakeCartService{items: map[string][]domain.CartItem{
		"alice@example.com": {
			{ID: "c1", OwnerEmail: "alice@example.com", Name: "Margherita Pizza", Price: 12.5},
		},
	}}
	router, token := setupCartRouter(t, carts)

	req := httptest.NewRequest(http.MethodGet, "/carts?email=alice@example.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var items []domain.CartItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "c1", items[0].ID)
}

func TestCartHandler_ListOtherCartIsForbidden(t *testing.T) {
	router, token := setupCartRouter(t, &fakeCartService{})

	req := httptest.NewRequest(http.MethodGet, "/carts?email=bob@example.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "authorization")
}

func TestCartHandler_ListWithoutEmailIsEmpty(t *testing.T) {
	carts := &fakeCartService{items: map[string][]domain.CartItem{
		"alice@example.com": {{ID: "c1"}},
	}}
	router, token := setupCartRouter(t, carts)

	req := httptest.NewRequest(http.MethodGet, "/carts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestCartHandler_ListWithoutTokenIsUnauthorized(t *testing.T) {
	router, _ := setupCartRouter(t, &fakeCartService{})

	req := httptest.NewRequest(http.MethodGet, "/carts?email=alice@example.com", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
