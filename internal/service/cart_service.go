package service

import (
	"context"

	"bistro-api/internal/domain"
	"bistro-api/internal/repository"
	"bistro-api/pkg/errors"
	"bistro-api/pkg/logger"
	"github.com/google/uuid"
)

type cartService struct {
	carts  repository.CartRepository
	logger *logger.Logger
}

// NewCartService creates the cart service
func NewCartService(carts repository.CartRepository, logger *logger.Logger) CartService {
	return &cartService{
		carts:  carts,
		logger: logger,
	}
}

// Add places an item in a cart
func (s *cartService) Add(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	if item.OwnerEmail == "" {
		return nil, errors.NewValidationError("Owner email is required", nil)
	}
	if item.MenuItemID == "" {
		return nil, errors.NewValidationError("Menu item id is required", nil)
	}

	item.ID = uuid.NewString()
	if err := s.carts.Add(ctx, item); err != nil {
		return nil, errors.NewInternalError("Failed to add cart item", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"cart_item_id": item.ID,
		"owner":        item.OwnerEmail,
	}).Debug("Cart item added")
	return item, nil
}

// ListByOwner retrieves the cart items owned by the given email
func (s *cartService) ListByOwner(ctx context.Context, email string) ([]domain.CartItem, error) {
	items, err := s.carts.ListByOwner(ctx, email)
	if err != nil {
		return nil, errors.NewInternalError("Failed to list cart items", err)
	}
	return items, nil
}

// Remove deletes one cart item. An absent id deletes zero rows and is still
// a success.
func (s *cartService) Remove(ctx context.Context, id string) (int64, error) {
	removed, err := s.carts.Delete(ctx, id)
	if err != nil {
		return 0, errors.NewInternalError("Failed to remove cart item", err)
	}
	return removed, nil
}
