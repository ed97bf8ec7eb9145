package domain

import (
	"math/big"
	"time"
)

// Discount is a time-bound percentage discount, optionally restricted to a
// set of products. An absent product list means the discount applies to
// every product in the catalog.
type Discount struct {
	id          string
	name        string
	description string
	percentage  float64
	active      bool
	startDate   time.Time
	endDate     time.Time
	productIDs  map[string]struct{} // nil means all products
	multiplier  *big.Rat            // cached percentage/100
}

// NewDiscount creates a Discount with load-time validation.
// The activation window is inclusive on both ends.
func NewDiscount(
	id, name, description string,
	percentage float64,
	active bool,
	startDate, endDate time.Time,
	applicableProducts []string,
) (*Discount, error) {
	if percentage < 0 || percentage > 100 {
		return nil, ErrInvalidDiscountPercent
	}
	if endDate.Before(startDate) {
		return nil, ErrInvalidDiscountPeriod
	}

	var productIDs map[string]struct{}
	if applicableProducts != nil {
		productIDs = make(map[string]struct{}, len(applicableProducts))
		for _, id := range applicableProducts {
			productIDs[id] = struct{}{}
		}
	}

	percentRat := new(big.Rat).SetFloat64(percentage)
	multiplier := new(big.Rat).Quo(percentRat, big.NewRat(100, 1))

	return &Discount{
		id:          id,
		name:        name,
		description: description,
		percentage:  percentage,
		active:      active,
		startDate:   startDate,
		endDate:     endDate,
		productIDs:  productIDs,
		multiplier:  multiplier,
	}, nil
}

// Getters
func (d *Discount) ID() string           { return d.id }
func (d *Discount) Name() string         { return d.name }
func (d *Discount) Description() string  { return d.description }
func (d *Discount) Percentage() float64  { return d.percentage }
func (d *Discount) Active() bool         { return d.active }
func (d *Discount) StartDate() time.Time { return d.startDate }
func (d *Discount) EndDate() time.Time   { return d.endDate }

// Multiplier returns the cached percentage/100 factor.
func (d *Discount) Multiplier() *big.Rat {
	return new(big.Rat).Set(d.multiplier)
}

// AppliesTo reports whether the discount covers the given product.
func (d *Discount) AppliesTo(productID string) bool {
	if d.productIDs == nil {
		return true
	}
	_, ok := d.productIDs[productID]
	return ok
}

// IsActiveFor reports whether the discount applies to the product at time t:
// the active flag is set, t falls within [startDate, endDate] inclusive, and
// the product is covered.
func (d *Discount) IsActiveFor(productID string, t time.Time) bool {
	if !d.active {
		return false
	}
	if t.Before(d.startDate) || t.After(d.endDate) {
		return false
	}
	return d.AppliesTo(productID)
}

// Apply returns price - price*percentage/100. No rounding is performed;
// callers round for presentation only. The percentage was validated at
// construction, so the result is never negative for a non-negative price.
func (d *Discount) Apply(price *Money) *Money {
	return price.Subtract(price.MultiplyByRat(d.multiplier))
}
