package contracts

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/CimeM/shellLeatherStore/internal/app/store/domain"
)

// OutboxEvent is a serialized domain event queued for relay. Rows are
// transient: they carry event payloads only, the relay publishes them and
// marks them completed, and the cleanup job purges them after their
// retention window; order summaries are never stored.
type OutboxEvent struct {
	EventID     string
	EventType   string
	AggregateID string
	Payload     string
	Status      string
	RetryCount  int64
}

// OutboxRepository defines the interface for outbox persistence.
type OutboxRepository interface {
	// EnrichEvent wraps a domain event and its JSON payload into a pending
	// outbox event with a fresh id.
	EnrichEvent(event domain.DomainEvent, payload string) *OutboxEvent

	// InsertMut creates a mutation for inserting an outbox event.
	InsertMut(event *OutboxEvent) *spanner.Mutation
}

// OutboxRelay defines the interface the relay uses to drain pending events.
type OutboxRelay interface {
	// ListPending returns up to limit pending events, oldest first.
	ListPending(ctx context.Context, limit int64) ([]*OutboxEvent, error)

	// MarkCompletedMut creates a mutation marking an event as published.
	MarkCompletedMut(eventID string, processedAt time.Time) *spanner.Mutation

	// RetryMut creates a mutation recording a failed publish attempt while
	// keeping the event pending.
	RetryMut(eventID string, retryCount int64, reason string) *spanner.Mutation

	// MarkFailedMut creates a mutation marking an event as permanently
	// failed after exhausting its retries.
	MarkFailedMut(eventID string, failedAt time.Time, retryCount int64, reason string) *spanner.Mutation
}
