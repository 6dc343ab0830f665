package service

import (
	"context"

	"bistro-api/internal/domain"
	"bistro-api/internal/repository"
	"bistro-api/pkg/errors"
)

type paymentQueryService struct {
	payments repository.PaymentRepository
}

// NewPaymentQueryService creates the payment history reader
func NewPaymentQueryService(payments repository.PaymentRepository) PaymentQueryService {
	return &paymentQueryService{payments: payments}
}

// ListByPayer retrieves one payer's payment records, newest first
func (s *paymentQueryService) ListByPayer(ctx context.Context, email string) ([]domain.Payment, error) {
	history, err := s.payments.ListByPayer(ctx, email)
	if err != nil {
		return nil, errors.NewInternalError("Failed to load payment history", err)
	}
	if history == nil {
		history = []domain.Payment{}
	}
	return history, nil
}
