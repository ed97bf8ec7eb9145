// Package checkout builds transient order summaries from a cart. Summaries
// are derived values handed to an external mail-client handoff; they are
// never persisted. Dispatching the summary and clearing the cart afterwards
// are the surrounding application's responsibility.
package checkout

import (
	"time"

	"github.com/CimeM/shellLeatherStore/internal/app/store/catalog"
	"github.com/CimeM/shellLeatherStore/internal/app/store/domain"
	"github.com/CimeM/shellLeatherStore/internal/app/store/pricing"
)

// CustomerInfo carries the checkout form fields verbatim. Validation, if
// any, is a UI-layer concern.
type CustomerInfo struct {
	FullName            string
	Email               string
	Phone               string
	Address             string
	City                string
	PostalCode          string
	Country             string
	SpecialInstructions string
}

// SummaryLine is one cart line with its price resolved at composition time.
type SummaryLine struct {
	ProductID       string
	ProductName     string
	Color           string
	Quantity        int64
	Customization   string
	UnitPrice       *domain.Money
	LineTotal       *domain.Money
	DiscountName    string
	DiscountPercent float64
	Discounted      bool
}

// OrderSummary is the transient snapshot produced at checkout time.
type OrderSummary struct {
	Customer CustomerInfo
	Lines    []SummaryLine
	Total    *domain.Money
	PlacedAt time.Time
}

// Composer builds order summaries. It has no side effects.
type Composer struct {
	catalog *catalog.Catalog
	pricing *pricing.Calculator
}

// NewComposer creates a new Composer.
func NewComposer(cat *catalog.Catalog, calc *pricing.Calculator) *Composer {
	return &Composer{catalog: cat, pricing: calc}
}

// BuildSummary resolves every line's effective unit price at now, computes
// line extensions and the grand total, and attaches the customer fields.
func (c *Composer) BuildSummary(cart *domain.Cart, customer CustomerInfo, now time.Time) (*OrderSummary, error) {
	lines := make([]SummaryLine, 0, cart.Len())
	total := domain.Zero()

	for _, line := range cart.Lines() {
		product, ok := c.catalog.ProductByID(line.ProductID())
		if !ok {
			return nil, domain.ErrProductNotFound
		}

		unit, err := c.pricing.EffectivePrice(line.ProductID(), now)
		if err != nil {
			return nil, err
		}
		lineTotal := unit.MultiplyInt(line.Quantity())
		total = total.Add(lineTotal)

		summaryLine := SummaryLine{
			ProductID:     line.ProductID(),
			ProductName:   product.Name(),
			Color:         line.Color(),
			Quantity:      line.Quantity(),
			Customization: line.Customization(),
			UnitPrice:     unit,
			LineTotal:     lineTotal,
		}

		if discount := c.catalog.ActiveDiscountFor(line.ProductID(), now); discount != nil {
			summaryLine.DiscountName = discount.Name()
			summaryLine.DiscountPercent = discount.Percentage()
			summaryLine.Discounted = true
		}

		lines = append(lines, summaryLine)
	}

	return &OrderSummary{
		Customer: customer,
		Lines:    lines,
		Total:    total,
		PlacedAt: now,
	}, nil
}
