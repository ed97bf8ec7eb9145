package domain

import (
	"fmt"
	"math/big"
)

// Money is a monetary amount in a single currency, backed by big.Rat so that
// discount arithmetic stays exact. Rounding happens only at presentation time.
type Money struct {
	rat *big.Rat
}

// NewMoney creates a Money from a numerator/denominator pair.
// Example: NewMoney(18900, 100) is 189.00.
func NewMoney(numerator, denominator int64) (*Money, error) {
	if denominator <= 0 {
		return nil, fmt.Errorf("money denominator must be positive, got %d", denominator)
	}
	return &Money{rat: big.NewRat(numerator, denominator)}, nil
}

// NewMoneyFromRat creates a Money from a big.Rat. A nil rat yields zero.
func NewMoneyFromRat(rat *big.Rat) *Money {
	if rat == nil {
		return &Money{rat: big.NewRat(0, 1)}
	}
	return &Money{rat: new(big.Rat).Set(rat)}
}

// Zero returns a zero amount.
func Zero() *Money {
	return &Money{rat: big.NewRat(0, 1)}
}

// Numerator returns the numerator, or an error when it does not fit in int64.
func (m *Money) Numerator() (int64, error) {
	if !m.rat.Num().IsInt64() {
		return 0, ErrMoneyOverflow
	}
	return m.rat.Num().Int64(), nil
}

// Denominator returns the denominator, or an error when it does not fit in int64.
func (m *Money) Denominator() (int64, error) {
	if !m.rat.Denom().IsInt64() {
		return 0, ErrMoneyOverflow
	}
	return m.rat.Denom().Int64(), nil
}

// IsSafeForStorage reports whether both numerator and denominator fit in int64.
func (m *Money) IsSafeForStorage() bool {
	return m.rat.Num().IsInt64() && m.rat.Denom().IsInt64()
}

// Normalize returns an equivalent amount in lowest terms (200/2 becomes 100/1).
// big.Rat keeps values normalized already; this returns an independent copy.
func (m *Money) Normalize() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}

// Add returns m + other.
func (m *Money) Add(other *Money) *Money {
	return &Money{rat: new(big.Rat).Add(m.rat, other.rat)}
}

// Subtract returns m - other.
func (m *Money) Subtract(other *Money) *Money {
	return &Money{rat: new(big.Rat).Sub(m.rat, other.rat)}
}

// MultiplyByRat returns m scaled by a rational factor.
func (m *Money) MultiplyByRat(rat *big.Rat) *Money {
	return &Money{rat: new(big.Rat).Mul(m.rat, rat)}
}

// MultiplyInt returns m scaled by an integer quantity.
func (m *Money) MultiplyInt(n int64) *Money {
	return m.MultiplyByRat(big.NewRat(n, 1))
}

// IsZero reports whether the amount is zero.
func (m *Money) IsZero() bool {
	return m.rat.Sign() == 0
}

// IsNegative reports whether the amount is below zero.
func (m *Money) IsNegative() bool {
	return m.rat.Sign() < 0
}

// Equals reports whether two amounts are equal.
func (m *Money) Equals(other *Money) bool {
	return m.rat.Cmp(other.rat) == 0
}

// Float64 returns an approximate float64 representation (display only).
func (m *Money) Float64() float64 {
	f, _ := m.rat.Float64()
	return f
}

// String renders the amount with two decimal places.
func (m *Money) String() string {
	return m.rat.FloatString(2)
}

// Copy returns a deep copy.
func (m *Money) Copy() *Money {
	return &Money{rat: new(big.Rat).Set(m.rat)}
}
