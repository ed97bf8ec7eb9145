package testutil

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"

	"github.com/CimeM/shellLeatherStore/internal/app/store/catalog"
	"github.com/CimeM/shellLeatherStore/internal/app/store/domain"
	"github.com/CimeM/shellLeatherStore/internal/models/m_catalog_discount"
	"github.com/CimeM/shellLeatherStore/internal/models/m_catalog_product"
)

// SeedTestProduct writes a product row directly to the database.
func SeedTestProduct(t *testing.T, client *spanner.Client, productID string, priceEuros int64, position int64) {
	t.Helper()

	ctx := context.Background()
	model := m_catalog_product.NewModel()
	data := &m_catalog_product.Data{
		ProductID:        productID,
		Name:             "Test " + productID,
		Description:      "Test product description",
		Category:         "wallets",
		PriceNumerator:   priceEuros,
		PriceDenominator: 1,
		Images:           []string{"/images/" + productID + ".jpg"},
		Colors:           []string{"brown", "black"},
		Materials:        []string{"full-grain leather"},
		Featured:         false,
		Position:         position,
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.UpsertMut(data)})
	require.NoError(t, err, "failed to seed test product")
}

// SeedTestDiscount writes a discount row directly to the database. A nil
// productIDs covers the whole catalog.
func SeedTestDiscount(t *testing.T, client *spanner.Client, discountID string, percentage float64, start, end time.Time, productIDs []string, position int64) {
	t.Helper()

	ctx := context.Background()
	model := m_catalog_discount.NewModel()
	data := &m_catalog_discount.Data{
		DiscountID:  discountID,
		Name:        "Test " + discountID,
		Description: "Test discount",
		Percentage:  percentage,
		Active:      true,
		StartDate:   start,
		EndDate:     end,
		ProductIDs:  productIDs,
		Position:    position,
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.UpsertMut(data)})
	require.NoError(t, err, "failed to seed test discount")
}

// NewTestProduct builds an in-memory product for unit tests.
func NewTestProduct(t *testing.T, id string, priceEuros int64, colors ...string) *domain.Product {
	t.Helper()

	if len(colors) == 0 {
		colors = []string{"brown"}
	}
	price, err := domain.NewMoney(priceEuros, 1)
	require.NoError(t, err)
	p, err := domain.NewProduct(id, "Test "+id, "Test product", price, nil, "wallets", colors, nil, "", false)
	require.NoError(t, err)
	return p
}

// NewTestCatalog builds an in-memory catalog for unit tests.
func NewTestCatalog(t *testing.T, products []*domain.Product, discounts []*domain.Discount) *catalog.Catalog {
	t.Helper()

	cat, err := catalog.New(products, discounts)
	require.NoError(t, err)
	return cat
}
