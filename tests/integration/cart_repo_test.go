//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CimeM/shellLeatherStore/internal/app/store/domain"
	"github.com/CimeM/shellLeatherStore/internal/app/store/repo"
	"github.com/CimeM/shellLeatherStore/internal/pkg/clock"
	"github.com/CimeM/shellLeatherStore/tests/testutil"
)

func TestCartRepo_RoundTrip(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC))
	repository := repo.NewCartRepo(client, clk)

	wallet := testutil.NewTestProduct(t, "wallet", 85, "brown", "black")

	cart := domain.NewCart("session-rt", clk.Now(), clk)
	require.NoError(t, cart.AddItem(wallet, "brown", 2, "initials: MD"))
	require.NoError(t, cart.AddItem(wallet, "black", 1, ""))

	muts, err := repository.UpsertMuts(cart)
	require.NoError(t, err)
	require.NotEmpty(t, muts)
	_, err = client.Apply(ctx, muts)
	require.NoError(t, err)

	testutil.AssertRowCount(t, client, "carts", 1)
	testutil.AssertRowCount(t, client, "cart_items", 2)

	loaded, err := repository.GetBySession(ctx, "session-rt")
	require.NoError(t, err)
	require.Equal(t, 2, loaded.Len())
	assert.False(t, loaded.Changes().HasChanges())

	lines := loaded.Lines()
	assert.Equal(t, "brown", lines[0].Color())
	assert.Equal(t, int64(2), lines[0].Quantity())
	assert.Equal(t, "initials: MD", lines[0].Customization())
	assert.Equal(t, "black", lines[1].Color())
	assert.Equal(t, "", lines[1].Customization())
}

func TestCartRepo_GetBySession_NotFound(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	clk := clock.NewMockClock(time.Now())
	repository := repo.NewCartRepo(client, clk)

	_, err := repository.GetBySession(context.Background(), "nobody")
	assert.ErrorIs(t, err, domain.ErrCartNotFound)
}

func TestCartRepo_UpsertMuts_NoChanges(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	clk := clock.NewMockClock(time.Now())
	repository := repo.NewCartRepo(client, clk)

	wallet := testutil.NewTestProduct(t, "wallet", 85, "brown")
	cart := domain.NewCart("session-nc", clk.Now(), clk)
	require.NoError(t, cart.AddItem(wallet, "brown", 1, ""))

	muts, err := repository.UpsertMuts(cart)
	require.NoError(t, err)
	_, err = client.Apply(ctx, muts)
	require.NoError(t, err)
	cart.Changes().Reset()

	muts, err = repository.UpsertMuts(cart)
	require.NoError(t, err)
	assert.Nil(t, muts)
}

func TestCartRepo_RemovedLines(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	clk := clock.NewMockClock(time.Now())
	repository := repo.NewCartRepo(client, clk)

	wallet := testutil.NewTestProduct(t, "wallet", 85, "brown", "black")
	cart := domain.NewCart("session-rm", clk.Now(), clk)
	require.NoError(t, cart.AddItem(wallet, "brown", 1, ""))
	require.NoError(t, cart.AddItem(wallet, "black", 1, ""))

	muts, err := repository.UpsertMuts(cart)
	require.NoError(t, err)
	_, err = client.Apply(ctx, muts)
	require.NoError(t, err)
	cart.Changes().Reset()

	cart.RemoveItem("wallet", "brown")
	muts, err = repository.UpsertMuts(cart)
	require.NoError(t, err)
	_, err = client.Apply(ctx, muts)
	require.NoError(t, err)

	testutil.AssertRowCount(t, client, "cart_items", 1)

	loaded, err := repository.GetBySession(ctx, "session-rm")
	require.NoError(t, err)
	require.Equal(t, 1, loaded.Len())
	assert.Equal(t, "black", loaded.Lines()[0].Color())
}

func TestCartRepo_DeleteCascades(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	clk := clock.NewMockClock(time.Now())
	repository := repo.NewCartRepo(client, clk)

	wallet := testutil.NewTestProduct(t, "wallet", 85, "brown")
	cart := domain.NewCart("session-del", clk.Now(), clk)
	require.NoError(t, cart.AddItem(wallet, "brown", 3, ""))

	muts, err := repository.UpsertMuts(cart)
	require.NoError(t, err)
	_, err = client.Apply(ctx, muts)
	require.NoError(t, err)

	_, err = client.Apply(ctx, []*spanner.Mutation{repository.DeleteMut("session-del")})
	require.NoError(t, err)

	testutil.AssertRowCount(t, client, "carts", 0)
	testutil.AssertRowCount(t, client, "cart_items", 0)
}
