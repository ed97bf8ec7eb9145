//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CimeM/shellLeatherStore/internal/app/store/catalog"
	"github.com/CimeM/shellLeatherStore/tests/testutil"
)

func TestLoader_Load(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	testutil.SeedTestProduct(t, client, "wallet", 85, 0)
	testutil.SeedTestProduct(t, client, "belt", 95, 1)
	testutil.SeedTestProduct(t, client, "tote", 240, 2)

	start := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)
	testutil.SeedTestDiscount(t, client, "summer", 15, start, end, []string{"tote"}, 0)
	testutil.SeedTestDiscount(t, client, "opening", 10, start, end, nil, 1)

	cat, err := catalog.NewLoader(client).Load(context.Background())
	require.NoError(t, err)

	products := cat.Products()
	require.Len(t, products, 3)
	// Position column drives catalog order.
	assert.Equal(t, "wallet", products[0].ID())
	assert.Equal(t, "belt", products[1].ID())
	assert.Equal(t, "tote", products[2].ID())

	require.Len(t, cat.Discounts(), 2)

	// The tote matches both discounts; the earlier row wins.
	during := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)
	d := cat.ActiveDiscountFor("tote", during)
	require.NotNil(t, d)
	assert.Equal(t, 15.0, d.Percentage())

	// The wallet only matches the storewide discount.
	d = cat.ActiveDiscountFor("wallet", during)
	require.NotNil(t, d)
	assert.Equal(t, 10.0, d.Percentage())
}

func TestLoader_Load_EmptyCatalog(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	cat, err := catalog.NewLoader(client).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cat.Products())
	assert.Empty(t, cat.Discounts())
}
