package dispatch

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"go.uber.org/zap"

	"github.com/CimeM/shellLeatherStore/internal/app/store/contracts"
	"github.com/CimeM/shellLeatherStore/internal/pkg/clock"
	"github.com/CimeM/shellLeatherStore/internal/pkg/committer"
)

// EventPublisher delivers a single outbox event to the broker.
type EventPublisher interface {
	Publish(ctx context.Context, event *contracts.OutboxEvent) error
}

// Relay drains pending outbox events into the broker. A published event is
// marked completed; a publish failure increments the retry count, and an
// event that exhausts its retries is marked failed. Completed and failed
// rows age out through the cleanup job.
type Relay struct {
	outbox     contracts.OutboxRelay
	publisher  EventPublisher
	committer  committer.Applier
	clock      clock.Clock
	logger     *zap.Logger
	batchSize  int64
	maxRetries int64
}

// NewRelay creates a Relay.
func NewRelay(
	outbox contracts.OutboxRelay,
	publisher EventPublisher,
	comm committer.Applier,
	clk clock.Clock,
	logger *zap.Logger,
	batchSize, maxRetries int64,
) *Relay {
	return &Relay{
		outbox:     outbox,
		publisher:  publisher,
		committer:  comm,
		clock:      clk,
		logger:     logger,
		batchSize:  batchSize,
		maxRetries: maxRetries,
	}
}

// Run drains the outbox in batches until no pending events remain. It
// returns the number of events published.
func (r *Relay) Run(ctx context.Context) (int, error) {
	published := 0
	for {
		events, err := r.outbox.ListPending(ctx, r.batchSize)
		if err != nil {
			return published, fmt.Errorf("failed to list pending events: %w", err)
		}
		if len(events) == 0 {
			return published, nil
		}

		plan := committer.NewPlan()
		for _, event := range events {
			if err := r.publisher.Publish(ctx, event); err != nil {
				plan.Add(r.attemptFailedMut(event, err))
				continue
			}
			plan.Add(r.outbox.MarkCompletedMut(event.EventID, r.clock.Now()))
			published++
		}

		if err := r.committer.Apply(ctx, plan); err != nil {
			return published, fmt.Errorf("failed to commit relay batch: %w", err)
		}

		if int64(len(events)) < r.batchSize {
			return published, nil
		}
	}
}

func (r *Relay) attemptFailedMut(event *contracts.OutboxEvent, cause error) *spanner.Mutation {
	retries := event.RetryCount + 1
	if retries >= r.maxRetries {
		r.logger.Error("outbox event exhausted retries",
			zap.String("event_id", event.EventID),
			zap.String("event_type", event.EventType),
			zap.Int64("retries", retries),
			zap.Error(cause),
		)
		return r.outbox.MarkFailedMut(event.EventID, r.clock.Now(), retries, cause.Error())
	}

	r.logger.Warn("outbox publish failed",
		zap.String("event_id", event.EventID),
		zap.String("event_type", event.EventType),
		zap.Int64("retries", retries),
		zap.Error(cause),
	)
	return r.outbox.RetryMut(event.EventID, retries, cause.Error())
}
