package service

import (
	"context"
	"testing"

	"bistro-api/internal/domain"
	"bistro-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_SummaryEmptyStore(t *testing.T) {
	svc := NewStatsService(&fakeUserRepo{}, &fakeMenuRepo{}, &fakePaymentRepo{}, nil, logger.NewNop())

	stats, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.Users)
	assert.Equal(t, int64(0), stats.Products)
	assert.Equal(t, int64(0), stats.Orders)
	assert.Equal(t, 0.0, stats.Revenue)
}

func TestStatsService_Summary(t *testing.T) {
	users := &fakeUserRepo{
		countFn: func(ctx context.Context) (int64, error) { return 12, nil },
	}
	menu := &fakeMenuRepo{
		countFn: func(ctx context.Context) (int64, error) { return 7, nil },
	}
	payments := &fakePaymentRepo{
		countFn:     func(ctx context.Context) (int64, error) { return 3, nil },
		sumPricesFn: func(ctx context.Context) (float64, error) { return 25.5, nil },
	}
	svc := NewStatsService(users, menu, payments, nil, logger.NewNop())

	stats, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(12), stats.Users)
	assert.Equal(t, int64(7), stats.Products)
	assert.Equal(t, int64(3), stats.Orders)
	assert.Equal(t, 25.5, stats.Revenue)
}

func TestStatsService_OrderRollupGroupsByCategory(t *testing.T) {
	menu := &fakeMenuRepo{
		getByIDsFn: func(ctx context.Context, ids []string) ([]domain.MenuItem, error) {
			return []domain.MenuItem{
				{ID: "m1", Category: "pizza", Price: 12.5},
				{ID: "m2", Category: "pizza", Price: 5.0},
				{ID: "m3", Category: "salad", Price: 6.0},
			}, nil
		},
	}
	payments := &fakePaymentRepo{
		listFn: func(ctx context.Context) ([]domain.Payment, error) {
			return []domain.Payment{
				{ID: "p1", MenuItemIDs: []string{"m1", "m3"}},
				{ID: "p2", MenuItemIDs: []string{"m2"}},
			}, nil
		},
	}
	svc := NewStatsService(&fakeUserRepo{}, menu, payments, nil, logger.NewNop())

	stats, err := svc.OrderRollup(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// Group order is unspecified, compare as a set
	byCategory := make(map[string]domain.CategoryStat)
	for _, s := range stats {
		byCategory[s.Category] = s
	}

	assert.Equal(t, 2, byCategory["pizza"].ItemCount)
	assert.Equal(t, 17.5, byCategory["pizza"].Total)
	assert.Equal(t, 1, byCategory["salad"].ItemCount)
	assert.Equal(t, 6.0, byCategory["salad"].Total)
}

func TestStatsService_OrderRollupDropsUnresolvedReferences(t *testing.T) {
	menu := &fakeMenuRepo{
		getByIDsFn: func(ctx context.Context, ids []string) ([]domain.MenuItem, error) {
			// "deleted" never resolves
			return []domain.MenuItem{
				{ID: "m1", Category: "pizza", Price: 10.0},
			}, nil
		},
	}
	payments := &fakePaymentRepo{
		listFn: func(ctx context.Context) ([]domain.Payment, error) {
			return []domain.Payment{
				{ID: "p1", MenuItemIDs: []string{"m1", "deleted"}},
			}, nil
		},
	}
	svc := NewStatsService(&fakeUserRepo{}, menu, payments, nil, logger.NewNop())

	stats, err := svc.OrderRollup(context.Background())
	require.NoError(t, err)
	require.Len(t, stats, 1)

	assert.Equal(t, "pizza", stats[0].Category)
	assert.Equal(t, 1, stats[0].ItemCount)
	assert.Equal(t, 10.0, stats[0].Total)
}

func TestStatsService_OrderRollupEmptyStore(t *testing.T) {
	svc := NewStatsService(&fakeUserRepo{}, &fakeMenuRepo{}, &fakePaymentRepo{}, nil, logger.NewNop())

	stats, err := svc.OrderRollup(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestRoundCents(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "Exact", input: 17.5, expected: 17.5},
		{name: "Float drift rounds down", input: 17.504999, expected: 17.5},
		{name: "Float drift rounds up", input: 17.505001, expected: 17.51},
		{name: "Zero", input: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, roundCents(tt.input))
		})
	}
}
