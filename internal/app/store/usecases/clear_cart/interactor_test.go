package clear_cart

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CimeM/shellLeatherStore/internal/app/store/domain"
	"github.com/CimeM/shellLeatherStore/internal/pkg/clock"
	"github.com/CimeM/shellLeatherStore/tests/testutil"
)

func setup(t *testing.T) (*Interactor, *testutil.FakeCartRepo, *testutil.FakeOutboxRepo, *testutil.FakeApplier, *clock.MockClock) {
	t.Helper()

	repo := testutil.NewFakeCartRepo()
	outbox := testutil.NewFakeOutboxRepo()
	applier := testutil.NewFakeApplier()
	clk := clock.NewMockClock(time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC))

	return NewInteractor(repo, outbox, applier, clk), repo, outbox, applier, clk
}

func TestInteractor_Execute(t *testing.T) {
	t.Run("clears every line", func(t *testing.T) {
		interactor, repo, outbox, applier, clk := setup(t)

		wallet := testutil.NewTestProduct(t, "wallet", 85, "brown")
		belt := testutil.NewTestProduct(t, "belt", 95, "black")
		seeded := domain.NewCart("s1", clk.Now(), clk)
		require.NoError(t, seeded.AddItem(wallet, "brown", 2, ""))
		require.NoError(t, seeded.AddItem(belt, "black", 1, ""))
		seeded.Changes().Reset()
		seeded.ClearEvents()
		repo.Put(seeded)

		cart, err := interactor.Execute(context.Background(), &Request{SessionID: "s1"})
		require.NoError(t, err)

		assert.True(t, cart.IsEmpty())
		require.Len(t, applier.Plans, 1)
		require.Len(t, outbox.Events, 1)
		assert.Equal(t, "cart.cleared", outbox.Events[0].EventType)
		assert.False(t, cart.Changes().HasChanges())
	})

	t.Run("clearing an empty cart emits nothing", func(t *testing.T) {
		interactor, repo, outbox, _, clk := setup(t)

		seeded := domain.NewCart("s1", clk.Now(), clk)
		seeded.Changes().Reset()
		repo.Put(seeded)

		cart, err := interactor.Execute(context.Background(), &Request{SessionID: "s1"})
		require.NoError(t, err)
		assert.True(t, cart.IsEmpty())
		assert.Empty(t, outbox.Events)
	})

	t.Run("missing cart returns an empty one", func(t *testing.T) {
		interactor, _, _, applier, _ := setup(t)

		cart, err := interactor.Execute(context.Background(), &Request{SessionID: "ghost"})
		require.NoError(t, err)
		assert.True(t, cart.IsEmpty())
		assert.Empty(t, applier.Plans)
	})
}
