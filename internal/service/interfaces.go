package service

import (
	"context"

	"bistro-api/internal/domain"
)

// TokenService issues and verifies signed identity tokens. Both operations
// are pure cryptographic transforms over a process-wide secret.
type TokenService interface {
	// Issue signs identity claims for the given subject email
	Issue(email string) (string, error)

	// Verify checks signature and expiry and returns the original claims.
	// It fails closed: any tamper, malformation or expiry is an error.
	Verify(token string) (*domain.Claims, error)
}

// UserService manages user records and role checks
type UserService interface {
	// Register upserts a user by email. When the email already exists the
	// stored record is returned untouched and created is false.
	Register(ctx context.Context, email, name string) (user *domain.User, created bool, err error)

	// List retrieves all users
	List(ctx context.Context) ([]domain.User, error)

	// IsAdmin reports whether the user with the given email holds the admin
	// role. An absent user is not an admin.
	IsAdmin(ctx context.Context, email string) (bool, error)

	// Promote grants the admin role to the user with the given id
	Promote(ctx context.Context, id string) error
}

// MenuService manages the menu catalog
type MenuService interface {
	// List retrieves the whole menu
	List(ctx context.Context) ([]domain.MenuItem, error)

	// Create adds a menu item
	Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)

	// Delete removes a menu item; removing an absent id is a zero-effect
	// success
	Delete(ctx context.Context, id string) (int64, error)
}

// CartService manages cart items
type CartService interface {
	// Add places an item in a cart
	Add(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error)

	// ListByOwner retrieves the cart items owned by the given email
	ListByOwner(ctx context.Context, email string) ([]domain.CartItem, error)

	// Remove deletes one cart item; removing an absent id is a zero-effect
	// success
	Remove(ctx context.Context, id string) (int64, error)
}

// CheckoutService turns a confirmed charge into durable state
type CheckoutService interface {
	// Checkout records the payment and purges the referenced cart items, in
	// that order. See CheckoutResult for the partial-failure contract.
	Checkout(ctx context.Context, req *domain.CheckoutRequest) (*domain.CheckoutResult, error)
}

// StatsService computes the two admin reports
type StatsService interface {
	// Summary returns collection counts plus total revenue
	Summary(ctx context.Context) (*domain.AdminStats, error)

	// OrderRollup groups purchased menu items by category
	OrderRollup(ctx context.Context) ([]domain.CategoryStat, error)
}

// PaymentQueryService serves payment history reads
type PaymentQueryService interface {
	// ListByPayer retrieves the payment records of the given payer email,
	// newest first
	ListByPayer(ctx context.Context, email string) ([]domain.Payment, error)
}

// PaymentProvider creates charge intents with the external card processor
type PaymentProvider interface {
	// CreateIntent creates a charge intent for the amount in cents and
	// returns the client secret
	CreateIntent(ctx context.Context, amountCents int64) (string, error)
}
