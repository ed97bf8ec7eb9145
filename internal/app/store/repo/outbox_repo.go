package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/CimeM/shellLeatherStore/internal/app/store/contracts"
	"github.com/CimeM/shellLeatherStore/internal/app/store/domain"
	"github.com/CimeM/shellLeatherStore/internal/models/m_outbox"
	"github.com/CimeM/shellLeatherStore/internal/pkg/clock"
)

// OutboxRepo implements OutboxRepository and OutboxRelay for Spanner.
type OutboxRepo struct {
	client *spanner.Client
	model  *m_outbox.Model
	clock  clock.Clock
}

// NewOutboxRepo creates a new OutboxRepo.
func NewOutboxRepo(client *spanner.Client, clk clock.Clock) *OutboxRepo {
	return &OutboxRepo{
		client: client,
		model:  m_outbox.NewModel(),
		clock:  clk,
	}
}

// EnrichEvent converts a domain event and its JSON payload into a pending
// outbox event.
func (r *OutboxRepo) EnrichEvent(event domain.DomainEvent, payload string) *contracts.OutboxEvent {
	return &contracts.OutboxEvent{
		EventID:     uuid.New().String(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		Payload:     payload,
		Status:      m_outbox.StatusPending,
	}
}

// InsertMut creates a mutation for inserting an outbox event.
func (r *OutboxRepo) InsertMut(event *contracts.OutboxEvent) *spanner.Mutation {
	payload := spanner.NullJSON{Value: event.Payload, Valid: event.Payload != ""}

	return r.model.InsertMut(&m_outbox.Data{
		EventID:     event.EventID,
		EventType:   event.EventType,
		AggregateID: event.AggregateID,
		Payload:     payload,
		Status:      event.Status,
		CreatedAt:   r.clock.Now(),
		RetryCount:  0,
	})
}

// ListPending returns up to limit pending events, oldest first.
func (r *OutboxRepo) ListPending(ctx context.Context, limit int64) ([]*contracts.OutboxEvent, error) {
	stmt := spanner.Statement{
		SQL: "SELECT event_id, event_type, aggregate_id, payload, status, " +
			"created_at, processed_at, retry_count, error_message " +
			"FROM outbox_events WHERE status = @status " +
			"ORDER BY created_at LIMIT @limit",
		Params: map[string]interface{}{
			"status": m_outbox.StatusPending,
			"limit":  limit,
		},
	}

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var events []*contracts.OutboxEvent
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read outbox events: %w", err)
		}

		var data m_outbox.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse outbox event: %w", err)
		}

		events = append(events, &contracts.OutboxEvent{
			EventID:     data.EventID,
			EventType:   data.EventType,
			AggregateID: data.AggregateID,
			Payload:     payloadString(data.Payload),
			Status:      data.Status,
			RetryCount:  data.RetryCount,
		})
	}

	return events, nil
}

// MarkCompletedMut creates a mutation marking an event as published.
func (r *OutboxRepo) MarkCompletedMut(eventID string, processedAt time.Time) *spanner.Mutation {
	return r.model.UpdateMut(eventID, map[string]interface{}{
		m_outbox.Status:      m_outbox.StatusCompleted,
		m_outbox.ProcessedAt: spanner.NullTime{Time: processedAt, Valid: true},
	})
}

// RetryMut creates a mutation recording a failed attempt on a still-pending
// event.
func (r *OutboxRepo) RetryMut(eventID string, retryCount int64, reason string) *spanner.Mutation {
	return r.model.UpdateMut(eventID, map[string]interface{}{
		m_outbox.RetryCount:   retryCount,
		m_outbox.ErrorMessage: spanner.NullString{StringVal: reason, Valid: reason != ""},
	})
}

// MarkFailedMut creates a mutation marking an event as permanently failed.
func (r *OutboxRepo) MarkFailedMut(eventID string, failedAt time.Time, retryCount int64, reason string) *spanner.Mutation {
	return r.model.UpdateMut(eventID, map[string]interface{}{
		m_outbox.Status:       m_outbox.StatusFailed,
		m_outbox.ProcessedAt:  spanner.NullTime{Time: failedAt, Valid: true},
		m_outbox.RetryCount:   retryCount,
		m_outbox.ErrorMessage: spanner.NullString{StringVal: reason, Valid: reason != ""},
	})
}

// payloadString recovers the JSON payload written by InsertMut.
func payloadString(payload spanner.NullJSON) string {
	if !payload.Valid {
		return ""
	}
	if s, ok := payload.Value.(string); ok {
		return s
	}
	raw, err := json.Marshal(payload.Value)
	if err != nil {
		return ""
	}
	return string(raw)
}

var (
	_ contracts.OutboxRepository = (*OutboxRepo)(nil)
	_ contracts.OutboxRelay      = (*OutboxRepo)(nil)
)
