package domain

// MenuItem represents one dish on the menu.
type MenuItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Recipe   string  `json:"recipe,omitempty"`
	Image    string  `json:"image,omitempty"`
	Price    float64 `json:"price"`
}

// Review is a customer review, read-only in this backend.
type Review struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Details string  `json:"details"`
	Rating  float64 `json:"rating"`
}
