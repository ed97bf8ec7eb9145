package list_products

import (
	"context"

	"github.com/CimeM/shellLeatherStore/internal/app/store/contracts"
)

// Request contains filtering parameters.
type Request struct {
	Category     string
	FeaturedOnly bool
}

// Query handles the list products query use case.
type Query struct {
	readModel contracts.CatalogReadModel
}

// NewQuery creates a new list products query.
func NewQuery(readModel contracts.CatalogReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves the catalog in stored order with filtering.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.ProductDTO, error) {
	filter := &contracts.ListFilter{
		Category:     req.Category,
		FeaturedOnly: req.FeaturedOnly,
	}

	return q.readModel.ListProducts(ctx, filter)
}
