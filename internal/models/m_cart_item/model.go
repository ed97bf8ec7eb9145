package m_cart_item

import "cloud.google.com/go/spanner"

// Model provides a facade for type-safe operations on the cart_items table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// Columns returns all column names in read order.
func (m *Model) Columns() []string {
	return []string{
		SessionID,
		ProductID,
		Color,
		Quantity,
		Customization,
		Position,
		AddedAt,
	}
}

// UpsertMut creates a Spanner mutation for writing a cart line row.
func (m *Model) UpsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		m.Columns(),
		[]interface{}{
			data.SessionID,
			data.ProductID,
			data.Color,
			data.Quantity,
			data.Customization,
			data.Position,
			data.AddedAt,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting one cart line row.
func (m *Model) DeleteMut(sessionID, productID, color string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{sessionID, productID, color})
}
