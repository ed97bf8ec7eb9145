package m_cart_item

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the cart_items table.
type Data struct {
	SessionID     string             `spanner:"session_id"`
	ProductID     string             `spanner:"product_id"`
	Color         string             `spanner:"color"`
	Quantity      int64              `spanner:"quantity"`
	Customization spanner.NullString `spanner:"customization"`
	Position      int64              `spanner:"position"`
	AddedAt       time.Time          `spanner:"added_at"`
}
