package contracts

import "context"

// CatalogReadModel serves display-shaped catalog data with effective
// prices resolved at query time.
type CatalogReadModel interface {
	// ListProducts returns products in stored catalog order, optionally
	// filtered by category and featured flag.
	ListProducts(ctx context.Context, filter *ListFilter) ([]*ProductDTO, error)

	// GetProductByID returns a single product.
	// Returns domain.ErrProductNotFound if the product does not exist.
	GetProductByID(ctx context.Context, productID string) (*ProductDTO, error)
}
