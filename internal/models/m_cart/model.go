package m_cart

import "cloud.google.com/go/spanner"

// Model provides a facade for type-safe operations on the carts table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// UpsertMut creates a Spanner mutation for writing the cart row.
// Timestamps come from the injected clock, not commit timestamps, so that
// created_at survives upserts.
func (m *Model) UpsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{SessionID, CreatedAt, UpdatedAt},
		[]interface{}{data.SessionID, data.CreatedAt, data.UpdatedAt},
	)
}

// DeleteMut creates a Spanner mutation for deleting a cart row. Interleaved
// cart_items rows are deleted with it (ON DELETE CASCADE).
func (m *Model) DeleteMut(sessionID string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{sessionID})
}
