package service

import (
	"context"

	"bistro-api/internal/domain"
	"bistro-api/internal/repository"
	"bistro-api/pkg/errors"
	"bistro-api/pkg/logger"
	"bistro-api/pkg/redis"
	"github.com/google/uuid"
)

type menuService struct {
	menu   repository.MenuRepository
	cache  *CacheService
	logger *logger.Logger
}

// NewMenuService creates the menu service. cache may be nil.
func NewMenuService(menu repository.MenuRepository, cache *CacheService, logger *logger.Logger) MenuService {
	return &menuService{
		menu:   menu,
		cache:  cache,
		logger: logger,
	}
}

// List retrieves the whole menu, cache-aside
func (s *menuService) List(ctx context.Context) ([]domain.MenuItem, error) {
	var cached []domain.MenuItem
	if s.cache.GetJSON(ctx, redis.KeyMenuAll, &cached) {
		return cached, nil
	}

	items, err := s.menu.List(ctx)
	if err != nil {
		return nil, errors.NewInternalError("Failed to list menu", err)
	}

	s.cache.SetJSONAsync(redis.KeyMenuAll, items, redis.TTLMenu)
	return items, nil
}

// Create adds a menu item and invalidates the cached list
func (s *menuService) Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	if item.Name == "" || item.Category == "" {
		return nil, errors.NewValidationError("Name and category are required", nil)
	}
	if item.Price < 0 {
		return nil, errors.NewValidationError("Price must not be negative", nil)
	}

	item.ID = uuid.NewString()
	if err := s.menu.Create(ctx, item); err != nil {
		return nil, errors.NewInternalError("Failed to create menu item", err)
	}

	s.cache.InvalidateMenu()
	s.logger.WithFields(map[string]interface{}{
		"menu_item_id": item.ID,
		"category":     item.Category,
	}).Info("Menu item created")
	return item, nil
}

// Delete removes a menu item. An absent id deletes zero rows and is still a
// success.
func (s *menuService) Delete(ctx context.Context, id string) (int64, error) {
	removed, err := s.menu.Delete(ctx, id)
	if err != nil {
		return 0, errors.NewInternalError("Failed to delete menu item", err)
	}

	if removed > 0 {
		s.cache.InvalidateMenu()
	}
	return removed, nil
}
