package domain

import "time"

// Payment is the durable record of one completed checkout. Payments are
// written exactly once and never deleted; they are the audit trail the
// reporting aggregations run over.
type Payment struct {
	ID          string    `json:"id"`
	PayerEmail  string    `json:"email"`
	Price       float64   `json:"price"`
	CartItemIDs []string  `json:"cart_item_ids"`
	MenuItemIDs []string  `json:"menu_item_ids"`
	Status      string    `json:"status,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CheckoutRequest is the payload of POST /payments after the provider has
// confirmed the charge on the client side.
type CheckoutRequest struct {
	PayerEmail  string   `json:"email"`
	Price       float64  `json:"price"`
	CartItemIDs []string `json:"cart_item_ids"`
	MenuItemIDs []string `json:"menu_item_ids"`
	Status      string   `json:"status,omitempty"`
}

// CheckoutResult is the single response body of a checkout. CartCleared is
// false when the payment was recorded but the cart purge failed; callers can
// retry the purge without re-recording the payment.
type CheckoutResult struct {
	PaymentID    string `json:"payment_id"`
	CartCleared  bool   `json:"cart_cleared"`
	ItemsRemoved int64  `json:"items_removed"`
}
