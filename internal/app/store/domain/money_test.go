package domain

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("valid money creation", func(t *testing.T) {
		m, err := NewMoney(85, 1)
		require.NoError(t, err)

		num, err := m.Numerator()
		require.NoError(t, err)
		assert.Equal(t, int64(85), num)

		denom, err := m.Denominator()
		require.NoError(t, err)
		assert.Equal(t, int64(1), denom)
	})

	t.Run("zero denominator returns error", func(t *testing.T) {
		_, err := NewMoney(100, 0)
		assert.Error(t, err)
	})

	t.Run("negative denominator returns error", func(t *testing.T) {
		_, err := NewMoney(100, -1)
		assert.Error(t, err)
	})

	t.Run("negative numerator allowed", func(t *testing.T) {
		m, err := NewMoney(-100, 1)
		require.NoError(t, err)
		assert.True(t, m.IsNegative())
	})
}

func TestMoney_Add(t *testing.T) {
	m1, _ := NewMoney(100, 1)
	m2, _ := NewMoney(50, 1)

	result := m1.Add(m2)
	assert.Equal(t, 150.0, result.Float64())
}

func TestMoney_Subtract(t *testing.T) {
	m1, _ := NewMoney(100, 1)
	m2, _ := NewMoney(30, 1)

	result := m1.Subtract(m2)
	assert.Equal(t, 70.0, result.Float64())
}

func TestMoney_MultiplyInt(t *testing.T) {
	m, _ := NewMoney(85, 1)

	result := m.MultiplyInt(2)
	assert.Equal(t, 170.0, result.Float64())
}

func TestMoney_MultiplyByRat(t *testing.T) {
	m, _ := NewMoney(100, 1)

	result := m.MultiplyByRat(big.NewRat(15, 100))
	assert.Equal(t, 15.0, result.Float64())
}

func TestMoney_Precision(t *testing.T) {
	// Exact arithmetic: summing thirds three times gives exactly the whole.
	third, _ := NewMoney(100, 3)
	sum := third.Add(third).Add(third)

	whole, _ := NewMoney(100, 1)
	assert.True(t, sum.Equals(whole))
}

func TestMoney_String(t *testing.T) {
	t.Run("whole amount renders two decimals", func(t *testing.T) {
		m, _ := NewMoney(85, 1)
		assert.Equal(t, "85.00", m.String())
	})

	t.Run("fractional amount rounds for display only", func(t *testing.T) {
		m, _ := NewMoney(100, 3)
		assert.Equal(t, "33.33", m.String())
	})
}

func TestMoney_Zero(t *testing.T) {
	z := Zero()
	assert.True(t, z.IsZero())
	assert.Equal(t, "0.00", z.String())
}

func TestMoney_Comparisons(t *testing.T) {
	m1, _ := NewMoney(100, 1)
	m2, _ := NewMoney(50, 1)
	m3, _ := NewMoney(200, 2)

	assert.True(t, m1.Equals(m3))
	assert.False(t, m1.Equals(m2))
	assert.False(t, m1.IsZero())
	assert.False(t, m1.IsNegative())
}

func TestMoney_Overflow(t *testing.T) {
	m := NewMoneyFromRat(new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), 80)))

	_, err := m.Numerator()
	assert.ErrorIs(t, err, ErrMoneyOverflow)
	assert.False(t, m.IsSafeForStorage())

	small, _ := NewMoney(math.MaxInt64, 1)
	assert.True(t, small.IsSafeForStorage())
}

func TestMoney_Copy(t *testing.T) {
	m1, _ := NewMoney(100, 1)
	m2 := m1.Copy()

	m2Added := m2.Add(m2)
	assert.Equal(t, 100.0, m1.Float64())
	assert.Equal(t, 200.0, m2Added.Float64())
}
