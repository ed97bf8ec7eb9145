package m_cart_item

// Field name constants for the cart_items table.
// Primary key: (session_id, product_id, color), interleaved in carts.
const (
	TableName = "cart_items"

	SessionID     = "session_id"
	ProductID     = "product_id"
	Color         = "color"
	Quantity      = "quantity"
	Customization = "customization"
	Position      = "position"
	AddedAt       = "added_at"
)
