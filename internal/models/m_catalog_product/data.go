package m_catalog_product

import "cloud.google.com/go/spanner"

// Data represents the database model for the products table.
type Data struct {
	ProductID        string             `spanner:"product_id"`
	Name             string             `spanner:"name"`
	Description      string             `spanner:"description"`
	Category         string             `spanner:"category"`
	PriceNumerator   int64              `spanner:"price_numerator"`
	PriceDenominator int64              `spanner:"price_denominator"`
	Images           []string           `spanner:"images"`
	Colors           []string           `spanner:"colors"`
	Materials        []string           `spanner:"materials"`
	Dimensions       spanner.NullString `spanner:"dimensions"`
	Featured         bool               `spanner:"featured"`
	Position         int64              `spanner:"position"`
}
