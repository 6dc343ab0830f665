package repository

import (
	"context"
	"fmt"

	"bistro-api/internal/domain"
	"bistro-api/pkg/database"
)

type PostgresPaymentRepository struct {
	db *database.PostgresDB
}

func NewPaymentRepository(db *database.PostgresDB) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{db: db}
}

// Create inserts a payment record
func (r *PostgresPaymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	query := `
		INSERT INTO payments (id, payer_email, price, cart_item_ids, menu_item_ids, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		payment.ID,
		payment.PayerEmail,
		payment.Price,
		payment.CartItemIDs,
		payment.MenuItemIDs,
		payment.Status,
	).Scan(&payment.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	return nil
}

// List gets all payment records
func (r *PostgresPaymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	query := `
		SELECT id, payer_email, price, cart_item_ids, menu_item_ids, status, created_at
		FROM payments
		ORDER BY created_at DESC
	`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var payment domain.Payment
		err := rows.Scan(
			&payment.ID,
			&payment.PayerEmail,
			&payment.Price,
			&payment.CartItemIDs,
			&payment.MenuItemIDs,
			&payment.Status,
			&payment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return payments, nil
}

// ListByPayer gets the payment records of one payer, newest first
func (r *PostgresPaymentRepository) ListByPayer(ctx context.Context, email string) ([]domain.Payment, error) {
	query := `
		SELECT id, payer_email, price, cart_item_ids, menu_item_ids, status, created_at
		FROM payments
		WHERE payer_email = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Pool.Query(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments by payer: %w", err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var payment domain.Payment
		err := rows.Scan(
			&payment.ID,
			&payment.PayerEmail,
			&payment.Price,
			&payment.CartItemIDs,
			&payment.MenuItemIDs,
			&payment.Status,
			&payment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return payments, nil
}

// Count gets the total number of payment records
func (r *PostgresPaymentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM payments`

	err := r.db.Pool.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count payments: %w", err)
	}

	return count, nil
}

// SumPrices gets total revenue across all payments, zero when there are none
func (r *PostgresPaymentRepository) SumPrices(ctx context.Context) (float64, error) {
	var total float64
	query := `SELECT COALESCE(SUM(price), 0) FROM payments`

	err := r.db.Pool.QueryRow(ctx, query).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum payment prices: %w", err)
	}

	return total, nil
}
