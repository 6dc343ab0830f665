package service

import (
	"context"
	"math"

	"bistro-api/internal/domain"
	"bistro-api/internal/repository"
	"bistro-api/pkg/errors"
	"bistro-api/pkg/logger"
	"bistro-api/pkg/redis"
)

type statsService struct {
	users    repository.UserRepository
	menu     repository.MenuRepository
	payments repository.PaymentRepository
	cache    *CacheService
	logger   *logger.Logger
}

// NewStatsService creates the statistics aggregator. cache may be nil.
func NewStatsService(users repository.UserRepository, menu repository.MenuRepository, payments repository.PaymentRepository, cache *CacheService, logger *logger.Logger) StatsService {
	return &statsService{
		users:    users,
		menu:     menu,
		payments: payments,
		cache:    cache,
		logger:   logger,
	}
}

// Summary returns collection counts plus total revenue. An empty payment set
// yields zero revenue, not an error.
func (s *statsService) Summary(ctx context.Context) (*domain.AdminStats, error) {
	var cached domain.AdminStats
	if s.cache.GetJSON(ctx, redis.KeyAdminStats, &cached) {
		return &cached, nil
	}

	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, errors.NewInternalError("Failed to count users", err)
	}

	products, err := s.menu.Count(ctx)
	if err != nil {
		return nil, errors.NewInternalError("Failed to count menu items", err)
	}

	orders, err := s.payments.Count(ctx)
	if err != nil {
		return nil, errors.NewInternalError("Failed to count payments", err)
	}

	revenue, err := s.payments.SumPrices(ctx)
	if err != nil {
		return nil, errors.NewInternalError("Failed to sum revenue", err)
	}

	stats := &domain.AdminStats{
		Users:    users,
		Products: products,
		Orders:   orders,
		Revenue:  revenue,
	}

	s.cache.SetJSONAsync(redis.KeyAdminStats, stats, redis.TTLAdminStats)
	return stats, nil
}

// OrderRollup flattens every payment's menu item references, resolves them
// against the menu and groups by category. A reference to a deleted menu
// item is silently dropped (inner-join semantics), never an error. Group
// order in the result is unspecified.
func (s *statsService) OrderRollup(ctx context.Context) ([]domain.CategoryStat, error) {
	var cached []domain.CategoryStat
	if s.cache.GetJSON(ctx, redis.KeyOrderStats, &cached) {
		return cached, nil
	}

	payments, err := s.payments.List(ctx)
	if err != nil {
		return nil, errors.NewInternalError("Failed to list payments", err)
	}

	// Collect the distinct menu item ids referenced by any payment.
	seen := make(map[string]struct{})
	var ids []string
	for _, p := range payments {
		for _, id := range p.MenuItemIDs {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}

	items, err := s.menu.GetByIDs(ctx, ids)
	if err != nil {
		return nil, errors.NewInternalError("Failed to resolve menu items", err)
	}

	byID := make(map[string]domain.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	type group struct {
		count int
		total float64
	}
	groups := make(map[string]*group)
	dropped := 0
	for _, p := range payments {
		for _, id := range p.MenuItemIDs {
			item, ok := byID[id]
			if !ok {
				dropped++
				continue
			}
			g := groups[item.Category]
			if g == nil {
				g = &group{}
				groups[item.Category] = g
			}
			g.count++
			g.total += item.Price
		}
	}

	if dropped > 0 {
		s.logger.WithField("dropped_refs", dropped).Debug("Order rollup skipped unresolved menu item references")
	}

	stats := make([]domain.CategoryStat, 0, len(groups))
	for category, g := range groups {
		stats = append(stats, domain.CategoryStat{
			Category:  category,
			ItemCount: g.count,
			Total:     roundCents(g.total),
		})
	}

	s.cache.SetJSONAsync(redis.KeyOrderStats, stats, redis.TTLOrderStats)
	return stats, nil
}

// roundCents rounds to 2 decimal places
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
