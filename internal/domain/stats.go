package domain

// AdminStats is the summary report: collection cardinalities plus total
// revenue across all payment records.
type AdminStats struct {
	Users    int64   `json:"users"`
	Products int64   `json:"products"`
	Orders   int64   `json:"orders"`
	Revenue  float64 `json:"revenue"`
}

// CategoryStat is one group of the order rollup: all purchased menu items of
// a category, counted and summed. Output order across categories is
// unspecified.
type CategoryStat struct {
	Category  string  `json:"category"`
	ItemCount int     `json:"itemCount"`
	Total     float64 `json:"total"`
}
