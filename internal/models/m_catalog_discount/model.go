package m_catalog_discount

import "cloud.google.com/go/spanner"

// Model provides a facade for type-safe operations on the discounts table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// Columns returns all column names in read order.
func (m *Model) Columns() []string {
	return []string{
		DiscountID,
		Name,
		Description,
		Percentage,
		Active,
		StartDate,
		EndDate,
		ProductIDs,
		Position,
	}
}

// UpsertMut creates a Spanner mutation for inserting or updating a discount row.
func (m *Model) UpsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		m.Columns(),
		[]interface{}{
			data.DiscountID,
			data.Name,
			data.Description,
			data.Percentage,
			data.Active,
			data.StartDate,
			data.EndDate,
			data.ProductIDs,
			data.Position,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a discount row.
func (m *Model) DeleteMut(discountID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{discountID})
}
