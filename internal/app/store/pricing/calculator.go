// Package pricing computes effective prices and cart totals. It is a pure
// domain service over the catalog and wall-clock time: no state, no caching.
// A cart total is always recomputed from current lines and current discount
// applicability, because discounts are time-windowed and can change between
// additions and checkout.
package pricing

import (
	"time"

	"github.com/CimeM/shellLeatherStore/internal/app/store/catalog"
	"github.com/CimeM/shellLeatherStore/internal/app/store/domain"
)

// Calculator resolves effective prices against the catalog.
type Calculator struct {
	catalog *catalog.Catalog
}

// NewCalculator creates a new Calculator.
func NewCalculator(cat *catalog.Catalog) *Calculator {
	return &Calculator{catalog: cat}
}

// EffectivePrice returns a product's base price after applying the single
// qualifying discount, if any, at time now.
func (c *Calculator) EffectivePrice(productID string, now time.Time) (*domain.Money, error) {
	product, ok := c.catalog.ProductByID(productID)
	if !ok {
		return nil, domain.ErrProductNotFound
	}

	price := product.BasePrice()
	if discount := c.catalog.ActiveDiscountFor(productID, now); discount != nil {
		return discount.Apply(price), nil
	}
	return price, nil
}

// LineTotal returns quantity times the line's effective unit price at now.
func (c *Calculator) LineTotal(line *domain.Line, now time.Time) (*domain.Money, error) {
	unit, err := c.EffectivePrice(line.ProductID(), now)
	if err != nil {
		return nil, err
	}
	return unit.MultiplyInt(line.Quantity()), nil
}

// CartTotal returns the sum of all line extensions at now. An empty cart
// totals zero.
func (c *Calculator) CartTotal(cart *domain.Cart, now time.Time) (*domain.Money, error) {
	total := domain.Zero()
	for _, line := range cart.Lines() {
		lineTotal, err := c.LineTotal(line, now)
		if err != nil {
			return nil, err
		}
		total = total.Add(lineTotal)
	}
	return total, nil
}
