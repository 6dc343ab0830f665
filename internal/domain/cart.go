package domain

// CartItem is one menu item placed in a user's cart. Cart items are destroyed
// individually on removal or in bulk when a checkout completes.
type CartItem struct {
	ID         string  `json:"id"`
	OwnerEmail string  `json:"email"`
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name,omitempty"`
	Image      string  `json:"image,omitempty"`
	Price      float64 `json:"price"`
}
