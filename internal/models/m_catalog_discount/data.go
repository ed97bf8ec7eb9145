package m_catalog_discount

import "time"

// Data represents the database model for the discounts table.
// A NULL product_ids column means the discount applies to all products;
// Spanner yields nil for a NULL ARRAY<STRING>.
type Data struct {
	DiscountID  string    `spanner:"discount_id"`
	Name        string    `spanner:"name"`
	Description string    `spanner:"description"`
	Percentage  float64   `spanner:"percentage"`
	Active      bool      `spanner:"active"`
	StartDate   time.Time `spanner:"start_date"`
	EndDate     time.Time `spanner:"end_date"`
	ProductIDs  []string  `spanner:"product_ids"`
	Position    int64     `spanner:"position"`
}
