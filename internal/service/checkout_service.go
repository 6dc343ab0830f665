package service

import (
	"context"

	"bistro-api/internal/domain"
	"bistro-api/internal/repository"
	"bistro-api/pkg/errors"
	"bistro-api/pkg/logger"
	"github.com/google/uuid"
)

type checkoutService struct {
	payments repository.PaymentRepository
	carts    repository.CartRepository
	cache    *CacheService
	logger   *logger.Logger
}

// NewCheckoutService creates the checkout coordinator. cache may be nil.
func NewCheckoutService(payments repository.PaymentRepository, carts repository.CartRepository, cache *CacheService, logger *logger.Logger) CheckoutService {
	return &checkoutService{
		payments: payments,
		carts:    carts,
		cache:    cache,
		logger:   logger,
	}
}

// Checkout records the payment and then purges the referenced cart items.
// The ordering is the safety property: a crash between the two writes leaves
// a payment of record with stale cart items, which reconciliation can clean
// up. The inverse order would lose the purchase.
//
// The two writes are separate store operations and are not atomic together.
// If the insert fails nothing is deleted. If the purge fails after a
// successful insert, the recorded payment id is surfaced in a
// partial-failure error so the purge alone can be retried.
func (s *checkoutService) Checkout(ctx context.Context, req *domain.CheckoutRequest) (*domain.CheckoutResult, error) {
	if req.PayerEmail == "" {
		return nil, errors.NewValidationError("Payer email is required", nil)
	}
	if len(req.CartItemIDs) == 0 {
		return nil, errors.NewValidationError("Cart item ids are required", nil)
	}
	if req.Price <= 0 {
		return nil, errors.NewValidationError("Price must be positive", nil)
	}

	payment := &domain.Payment{
		ID:          uuid.NewString(),
		PayerEmail:  req.PayerEmail,
		Price:       req.Price,
		CartItemIDs: req.CartItemIDs,
		MenuItemIDs: req.MenuItemIDs,
		Status:      req.Status,
	}

	if err := s.payments.Create(ctx, payment); err != nil {
		s.logger.WithError(err).WithField("payer", req.PayerEmail).Error("Payment insert failed, aborting checkout")
		return nil, errors.NewInternalError("Failed to record payment", err)
	}

	removed, err := s.carts.DeleteByIDs(ctx, req.CartItemIDs)
	if err != nil {
		s.logger.WithError(err).WithFields(map[string]interface{}{
			"payment_id": payment.ID,
			"cart_items": len(req.CartItemIDs),
		}).Error("Cart purge failed after payment was recorded")
		return &domain.CheckoutResult{
				PaymentID:   payment.ID,
				CartCleared: false,
			}, errors.NewPartialFailureError(
				"Payment recorded but cart was not cleared",
				err,
				map[string]interface{}{"payment_id": payment.ID},
			)
	}

	s.cache.InvalidateStats()

	s.logger.WithFields(map[string]interface{}{
		"payment_id":    payment.ID,
		"payer":         payment.PayerEmail,
		"price":         payment.Price,
		"items_removed": removed,
	}).Info("Checkout completed")

	return &domain.CheckoutResult{
		PaymentID:    payment.ID,
		CartCleared:  true,
		ItemsRemoved: removed,
	}, nil
}
