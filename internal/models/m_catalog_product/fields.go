package m_catalog_product

// Field name constants for the products table.
const (
	TableName = "products"

	ProductID        = "product_id"
	Name             = "name"
	Description      = "description"
	Category         = "category"
	PriceNumerator   = "price_numerator"
	PriceDenominator = "price_denominator"
	Images           = "images"
	Colors           = "colors"
	Materials        = "materials"
	Dimensions       = "dimensions"
	Featured         = "featured"
	Position         = "position"
)
