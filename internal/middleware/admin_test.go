package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"bistro-api/internal/domain"
	"bistro-api/pkg/logger"
	"github.com/stretchr/testify/assert"
)

// fakeUserService only implements the role lookup the admin gate needs
type fakeUserService struct {
	admins map[string]bool
	err    error
}

func (f *fakeUserService) Register(ctx context.Context, email, name string) (*domain.User, bool, error) {
	return nil, false, nil
}

func (f *fakeUserService) List(ctx context.Context) ([]domain.User, error) {
	return nil, nil
}

func (f *fakeUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.admins[email], nil
}

func (f *fakeUserService) Promote(ctx context.Context, id string) error {
	return nil
}

func requestWithClaims(email string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/admin-stats", nil)
	ctx := context.WithValue(req.Context(), ClaimsContextKey, &domain.Claims{Email: email})
	return req.WithContext(ctx)
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	users := &fakeUserService{admins: map[string]bool{"admin@example.com": true}}

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	RequireAdmin(users, logger.NewNop())(next).ServeHTTP(rec, requestWithClaims("admin@example.com"))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin_ForbidsNonAdmin(t *testing.T) {
	users := &fakeUserService{admins: map[string]bool{}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for a non-admin")
	})

	rec := httptest.NewRecorder()
	RequireAdmin(users, logger.NewNop())(next).ServeHTTP(rec, requestWithClaims("customer@example.com"))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "authorization")
}

func TestRequireAdmin_RejectsMissingClaims(t *testing.T) {
	users := &fakeUserService{admins: map[string]bool{"admin@example.com": true}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without verified claims")
	})

	req := httptest.NewRequest(http.MethodGet, "/admin-stats", nil)
	rec := httptest.NewRecorder()
	RequireAdmin(users, logger.NewNop())(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
