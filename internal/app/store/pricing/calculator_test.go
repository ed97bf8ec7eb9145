package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CimeM/shellLeatherStore/internal/app/store/catalog"
	"github.com/CimeM/shellLeatherStore/internal/app/store/domain"
	"github.com/CimeM/shellLeatherStore/internal/pkg/clock"
)

var (
	saleStart  = time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	saleEnd    = time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)
	duringSale = time.Date(2026, 7, 15, 12, 0, 0, 0, time.UTC)
	afterSale  = time.Date(2026, 9, 15, 12, 0, 0, 0, time.UTC)
)

func buildCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	priceA, err := domain.NewMoney(85, 1)
	require.NoError(t, err)
	productA, err := domain.NewProduct("wallet", "Bifold Wallet", "", priceA, nil, "wallets", []string{"brown"}, nil, "", false)
	require.NoError(t, err)

	priceB, err := domain.NewMoney(50, 1)
	require.NoError(t, err)
	productB, err := domain.NewProduct("belt", "Classic Belt", "", priceB, nil, "belts", []string{"brown"}, nil, "", false)
	require.NoError(t, err)

	sale, err := domain.NewDiscount("summer", "Summer Sale", "", 20, true, saleStart, saleEnd, []string{"wallet"})
	require.NoError(t, err)

	cat, err := catalog.New([]*domain.Product{productA, productB}, []*domain.Discount{sale})
	require.NoError(t, err)
	return cat
}

func TestCalculator_EffectivePrice(t *testing.T) {
	calc := NewCalculator(buildCatalog(t))

	t.Run("base price when no discount applies", func(t *testing.T) {
		price, err := calc.EffectivePrice("belt", duringSale)
		require.NoError(t, err)
		assert.Equal(t, "50.00", price.String())
	})

	t.Run("discounted price inside the window", func(t *testing.T) {
		price, err := calc.EffectivePrice("wallet", duringSale)
		require.NoError(t, err)
		assert.Equal(t, "68.00", price.String())
	})

	t.Run("base price again after the window closes", func(t *testing.T) {
		price, err := calc.EffectivePrice("wallet", afterSale)
		require.NoError(t, err)
		assert.Equal(t, "85.00", price.String())
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := calc.EffectivePrice("ghost", duringSale)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})
}

func TestCalculator_CartTotal(t *testing.T) {
	cat := buildCatalog(t)
	calc := NewCalculator(cat)
	clk := clock.NewMockClock(duringSale)

	wallet, _ := cat.ProductByID("wallet")
	belt, _ := cat.ProductByID("belt")

	t.Run("empty cart totals zero", func(t *testing.T) {
		cart := domain.NewCart("s", clk.Now(), clk)
		total, err := calc.CartTotal(cart, clk.Now())
		require.NoError(t, err)
		assert.True(t, total.IsZero())
	})

	t.Run("sums line extensions", func(t *testing.T) {
		cart := domain.NewCart("s", clk.Now(), clk)
		require.NoError(t, cart.AddItem(wallet, "brown", 2, ""))
		require.NoError(t, cart.AddItem(belt, "brown", 1, ""))

		// 2 x 68 (discounted) + 1 x 50
		total, err := calc.CartTotal(cart, clk.Now())
		require.NoError(t, err)
		assert.Equal(t, "186.00", total.String())
	})

	t.Run("total changes when the discount window closes", func(t *testing.T) {
		cart := domain.NewCart("s", clk.Now(), clk)
		require.NoError(t, cart.AddItem(wallet, "brown", 2, ""))

		during, err := calc.CartTotal(cart, duringSale)
		require.NoError(t, err)
		assert.Equal(t, "136.00", during.String())

		after, err := calc.CartTotal(cart, afterSale)
		require.NoError(t, err)
		assert.Equal(t, "170.00", after.String())
	})

	t.Run("total drops to zero when the last line is removed", func(t *testing.T) {
		cart := domain.NewCart("s", clk.Now(), clk)
		require.NoError(t, cart.AddItem(wallet, "brown", 2, ""))
		cart.RemoveItem("wallet", "brown")

		total, err := calc.CartTotal(cart, clk.Now())
		require.NoError(t, err)
		assert.Equal(t, "0.00", total.String())
	})
}
