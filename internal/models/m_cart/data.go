package m_cart

import "time"

// Data represents the database model for the carts table.
type Data struct {
	SessionID string    `spanner:"session_id"`
	CreatedAt time.Time `spanner:"created_at"`
	UpdatedAt time.Time `spanner:"updated_at"`
}
