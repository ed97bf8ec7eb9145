package m_catalog_discount

// Field name constants for the discounts table.
const (
	TableName = "discounts"

	DiscountID  = "discount_id"
	Name        = "name"
	Description = "description"
	Percentage  = "percentage"
	Active      = "active"
	StartDate   = "start_date"
	EndDate     = "end_date"
	ProductIDs  = "product_ids"
	Position    = "position"
)
