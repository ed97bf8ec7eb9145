package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CimeM/shellLeatherStore/internal/app/store/domain"
)

func mustProduct(t *testing.T, id string, price int64) *domain.Product {
	t.Helper()
	money, err := domain.NewMoney(price, 1)
	require.NoError(t, err)
	p, err := domain.NewProduct(id, "Product "+id, "", money, nil, "wallets", []string{"brown"}, nil, "", false)
	require.NoError(t, err)
	return p
}

func mustDiscount(t *testing.T, id string, pct float64, start, end time.Time, productIDs []string) *domain.Discount {
	t.Helper()
	d, err := domain.NewDiscount(id, "Discount "+id, "", pct, true, start, end, productIDs)
	require.NoError(t, err)
	return d
}

func TestNew(t *testing.T) {
	t.Run("builds lookup index", func(t *testing.T) {
		cat, err := New([]*domain.Product{mustProduct(t, "a", 10), mustProduct(t, "b", 20)}, nil)
		require.NoError(t, err)

		p, ok := cat.ProductByID("b")
		require.True(t, ok)
		assert.Equal(t, "b", p.ID())

		_, ok = cat.ProductByID("missing")
		assert.False(t, ok)
	})

	t.Run("duplicate product id is rejected", func(t *testing.T) {
		_, err := New([]*domain.Product{mustProduct(t, "a", 10), mustProduct(t, "a", 20)}, nil)
		assert.ErrorIs(t, err, domain.ErrDuplicateProduct)
	})

	t.Run("products keep load order", func(t *testing.T) {
		cat, err := New([]*domain.Product{
			mustProduct(t, "c", 10),
			mustProduct(t, "a", 20),
			mustProduct(t, "b", 30),
		}, nil)
		require.NoError(t, err)

		ids := make([]string, 0, 3)
		for _, p := range cat.Products() {
			ids = append(ids, p.ID())
		}
		assert.Equal(t, []string{"c", "a", "b"}, ids)
	})
}

func TestCatalog_ActiveDiscountFor(t *testing.T) {
	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	during := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)

	t.Run("returns nil when nothing qualifies", func(t *testing.T) {
		cat, _ := New([]*domain.Product{mustProduct(t, "a", 10)}, nil)
		assert.Nil(t, cat.ActiveDiscountFor("a", during))
	})

	t.Run("returns the qualifying discount", func(t *testing.T) {
		cat, _ := New(
			[]*domain.Product{mustProduct(t, "a", 10)},
			[]*domain.Discount{mustDiscount(t, "sale", 15, start, end, []string{"a"})},
		)

		d := cat.ActiveDiscountFor("a", during)
		require.NotNil(t, d)
		assert.Equal(t, "sale", d.ID())
	})

	t.Run("first discount in catalog order wins when several qualify", func(t *testing.T) {
		cat, _ := New(
			[]*domain.Product{mustProduct(t, "a", 10)},
			[]*domain.Discount{
				mustDiscount(t, "first", 10, start, end, nil),
				mustDiscount(t, "second", 50, start, end, []string{"a"}),
			},
		)

		d := cat.ActiveDiscountFor("a", during)
		require.NotNil(t, d)
		assert.Equal(t, "first", d.ID())
	})

	t.Run("expired discount is skipped in favor of a later one", func(t *testing.T) {
		cat, _ := New(
			[]*domain.Product{mustProduct(t, "a", 10)},
			[]*domain.Discount{
				mustDiscount(t, "spring", 20, start.AddDate(0, -3, 0), start.AddDate(0, 0, -1), nil),
				mustDiscount(t, "summer", 15, start, end, nil),
			},
		)

		d := cat.ActiveDiscountFor("a", during)
		require.NotNil(t, d)
		assert.Equal(t, "summer", d.ID())
	})
}
