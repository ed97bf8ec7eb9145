package m_catalog_product

import "cloud.google.com/go/spanner"

// Model provides a facade for type-safe operations on the products table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// Columns returns all column names in read order.
func (m *Model) Columns() []string {
	return []string{
		ProductID,
		Name,
		Description,
		Category,
		PriceNumerator,
		PriceDenominator,
		Images,
		Colors,
		Materials,
		Dimensions,
		Featured,
		Position,
	}
}

// UpsertMut creates a Spanner mutation for inserting or updating a product row.
func (m *Model) UpsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		m.Columns(),
		[]interface{}{
			data.ProductID,
			data.Name,
			data.Description,
			data.Category,
			data.PriceNumerator,
			data.PriceDenominator,
			data.Images,
			data.Colors,
			data.Materials,
			data.Dimensions,
			data.Featured,
			data.Position,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a product row.
func (m *Model) DeleteMut(productID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{productID})
}
