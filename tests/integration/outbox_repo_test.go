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

func TestOutboxRepo_InsertMut(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC))
	repository := repo.NewOutboxRepo(client, clk)

	event := &domain.ItemAddedEvent{
		SessionID: "s1",
		ProductID: "wallet",
		Color:     "brown",
		Quantity:  2,
		AddedAt:   clk.Now(),
	}

	enriched := repository.EnrichEvent(event, `{"session_id":"s1"}`)
	assert.NotEmpty(t, enriched.EventID)
	assert.Equal(t, "cart.item.added", enriched.EventType)
	assert.Equal(t, "s1", enriched.AggregateID)
	assert.Equal(t, "pending", enriched.Status)

	_, err := client.Apply(ctx, []*spanner.Mutation{repository.InsertMut(enriched)})
	require.NoError(t, err)

	testutil.AssertRowCount(t, client, "outbox_events", 1)
}

func TestOutboxRepo_RelayLifecycle(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC))
	repository := repo.NewOutboxRepo(client, clk)

	first := repository.EnrichEvent(&domain.ItemAddedEvent{
		SessionID: "s1",
		ProductID: "wallet",
		Color:     "brown",
		Quantity:  1,
		AddedAt:   clk.Now(),
	}, `{"session_id":"s1"}`)

	clk.Advance(time.Minute)
	second := repository.EnrichEvent(&domain.CartClearedEvent{
		SessionID: "s2",
		ClearedAt: clk.Now(),
	}, `{"session_id":"s2"}`)

	_, err := client.Apply(ctx, []*spanner.Mutation{
		repository.InsertMut(first),
		repository.InsertMut(second),
	})
	require.NoError(t, err)

	// Oldest first, payload recovered as written.
	pending, err := repository.ListPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, first.EventID, pending[0].EventID)
	assert.Equal(t, `{"session_id":"s1"}`, pending[0].Payload)
	assert.Equal(t, second.EventID, pending[1].EventID)

	_, err = client.Apply(ctx, []*spanner.Mutation{
		repository.MarkCompletedMut(first.EventID, clk.Now()),
		repository.MarkFailedMut(second.EventID, clk.Now(), 5, "broker down"),
	})
	require.NoError(t, err)

	pending, err = repository.ListPending(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)

	testutil.AssertRowCount(t, client, "outbox_events", 2)
}
