// Package catalog holds the static, read-only set of products and discounts
// available to the store. It is built once at startup and never mutated.
package catalog

import (
	"time"

	"github.com/CimeM/shellLeatherStore/internal/app/store/domain"
)

// Catalog is the in-memory product and discount collection. Both slices keep
// their load order: discount precedence is "first match in catalog order".
type Catalog struct {
	products  []*domain.Product
	byID      map[string]*domain.Product
	discounts []*domain.Discount
}

// New builds a Catalog from already-validated products and discounts.
func New(products []*domain.Product, discounts []*domain.Discount) (*Catalog, error) {
	byID := make(map[string]*domain.Product, len(products))
	for _, p := range products {
		if _, exists := byID[p.ID()]; exists {
			return nil, domain.ErrDuplicateProduct
		}
		byID[p.ID()] = p
	}

	return &Catalog{
		products:  products,
		byID:      byID,
		discounts: discounts,
	}, nil
}

// Products returns all products in catalog order.
func (c *Catalog) Products() []*domain.Product {
	out := make([]*domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ProductByID returns the product with the given id, if present.
func (c *Catalog) ProductByID(id string) (*domain.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Discounts returns all discounts in catalog order.
func (c *Catalog) Discounts() []*domain.Discount {
	out := make([]*domain.Discount, len(c.discounts))
	copy(out, c.discounts)
	return out
}

// ActiveDiscountFor returns the first discount in catalog order that is
// active for the product at time now, or nil when none qualifies. At most
// one discount is surfaced per product per lookup; catalog order is the
// deterministic tie-break when several qualify.
func (c *Catalog) ActiveDiscountFor(productID string, now time.Time) *domain.Discount {
	for _, d := range c.discounts {
		if d.IsActiveFor(productID, now) {
			return d
		}
	}
	return nil
}
