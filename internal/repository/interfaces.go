package repository

import (
	"context"

	"bistro-api/internal/domain"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// GetByEmail retrieves a user by email; returns (nil, nil) when absent
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Create creates a new user
	Create(ctx context.Context, user *domain.User) error

	// List retrieves all users
	List(ctx context.Context) ([]domain.User, error)

	// PromoteToAdmin sets the admin role on the user with the given id and
	// reports whether a row was updated
	PromoteToAdmin(ctx context.Context, id string) (bool, error)

	// Count returns the number of users
	Count(ctx context.Context) (int64, error)
}

// MenuRepository defines the interface for menu catalog operations
type MenuRepository interface {
	// List retrieves the whole menu
	List(ctx context.Context) ([]domain.MenuItem, error)

	// GetByIDs retrieves the menu items whose ids are in the given set;
	// missing ids are simply absent from the result
	GetByIDs(ctx context.Context, ids []string) ([]domain.MenuItem, error)

	// Create adds a menu item
	Create(ctx context.Context, item *domain.MenuItem) error

	// Delete removes a menu item, returning the number of rows removed
	Delete(ctx context.Context, id string) (int64, error)

	// Count returns the number of menu items
	Count(ctx context.Context) (int64, error)
}

// ReviewRepository defines the interface for review reads
type ReviewRepository interface {
	// List retrieves all reviews
	List(ctx context.Context) ([]domain.Review, error)
}

// CartRepository defines the interface for cart item operations
type CartRepository interface {
	// Add inserts a cart item
	Add(ctx context.Context, item *domain.CartItem) error

	// ListByOwner retrieves the cart items owned by the given email
	ListByOwner(ctx context.Context, email string) ([]domain.CartItem, error)

	// Delete removes one cart item, returning the number of rows removed
	Delete(ctx context.Context, id string) (int64, error)

	// DeleteByIDs bulk-removes the cart items whose ids are in the given set
	DeleteByIDs(ctx context.Context, ids []string) (int64, error)
}

// PaymentRepository defines the interface for payment record operations.
// Payments are append-only: there is no update or delete.
type PaymentRepository interface {
	// Create inserts a payment record
	Create(ctx context.Context, payment *domain.Payment) error

	// List retrieves all payment records
	List(ctx context.Context) ([]domain.Payment, error)

	// ListByPayer retrieves the payment records of the given payer email,
	// newest first
	ListByPayer(ctx context.Context, email string) ([]domain.Payment, error)

	// Count returns the number of payment records
	Count(ctx context.Context) (int64, error)

	// SumPrices returns the sum of the price field across all payments,
	// zero for an empty set
	SumPrices(ctx context.Context) (float64, error)
}
