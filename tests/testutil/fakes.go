package testutil

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/CimeM/shellLeatherStore/internal/app/store/contracts"
	"github.com/CimeM/shellLeatherStore/internal/app/store/domain"
	"github.com/CimeM/shellLeatherStore/internal/pkg/committer"
)

// FakeCartRepo is an in-memory CartRepository for unit tests. UpsertMuts
// stores the aggregate so later GetBySession calls see committed state,
// which stands in for the Spanner write without a database.
type FakeCartRepo struct {
	Carts map[string]*domain.Cart

	// GetErr, when set, is returned by every GetBySession call.
	GetErr error
}

// NewFakeCartRepo creates an empty in-memory cart repository.
func NewFakeCartRepo() *FakeCartRepo {
	return &FakeCartRepo{Carts: make(map[string]*domain.Cart)}
}

// Put stores a cart under its session.
func (f *FakeCartRepo) Put(cart *domain.Cart) {
	f.Carts[cart.SessionID()] = cart
}

// GetBySession returns the stored cart or domain.ErrCartNotFound.
func (f *FakeCartRepo) GetBySession(_ context.Context, sessionID string) (*domain.Cart, error) {
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	cart, ok := f.Carts[sessionID]
	if !ok {
		return nil, domain.ErrCartNotFound
	}
	return cart, nil
}

// UpsertMuts stores the cart and returns a placeholder mutation per change.
func (f *FakeCartRepo) UpsertMuts(cart *domain.Cart) ([]*spanner.Mutation, error) {
	if !cart.Changes().HasChanges() {
		return nil, nil
	}
	f.Carts[cart.SessionID()] = cart
	return []*spanner.Mutation{spanner.Delete("unused", spanner.Key{"placeholder"})}, nil
}

// DeleteMut drops the cart and returns a placeholder mutation.
func (f *FakeCartRepo) DeleteMut(sessionID string) *spanner.Mutation {
	delete(f.Carts, sessionID)
	return spanner.Delete("carts", spanner.Key{sessionID})
}

var _ contracts.CartRepository = (*FakeCartRepo)(nil)

// FakeOutboxRepo records enriched events instead of building real mutations.
// Relay marks apply to the stored events immediately, standing in for the
// Spanner update the mutations would perform.
type FakeOutboxRepo struct {
	Events []*contracts.OutboxEvent

	// ListErr, when set, is returned by every ListPending call.
	ListErr error
}

// NewFakeOutboxRepo creates an empty in-memory outbox repository.
func NewFakeOutboxRepo() *FakeOutboxRepo {
	return &FakeOutboxRepo{}
}

// EnrichEvent wraps the event like the real repository does.
func (f *FakeOutboxRepo) EnrichEvent(event domain.DomainEvent, payload string) *contracts.OutboxEvent {
	return &contracts.OutboxEvent{
		EventID:     uuid.New().String(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		Payload:     payload,
		Status:      "pending",
	}
}

// InsertMut records the event and returns a placeholder mutation.
func (f *FakeOutboxRepo) InsertMut(event *contracts.OutboxEvent) *spanner.Mutation {
	f.Events = append(f.Events, event)
	return spanner.Delete("unused", spanner.Key{event.EventID})
}

// ListPending returns up to limit stored events still marked pending.
func (f *FakeOutboxRepo) ListPending(_ context.Context, limit int64) ([]*contracts.OutboxEvent, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	var pending []*contracts.OutboxEvent
	for _, event := range f.Events {
		if event.Status != "pending" {
			continue
		}
		pending = append(pending, event)
		if int64(len(pending)) == limit {
			break
		}
	}
	return pending, nil
}

// MarkCompletedMut flips the stored event to completed.
func (f *FakeOutboxRepo) MarkCompletedMut(eventID string, _ time.Time) *spanner.Mutation {
	if event := f.find(eventID); event != nil {
		event.Status = "completed"
	}
	return spanner.Delete("unused", spanner.Key{eventID})
}

// RetryMut bumps the stored event's retry count, leaving it pending.
func (f *FakeOutboxRepo) RetryMut(eventID string, retryCount int64, _ string) *spanner.Mutation {
	if event := f.find(eventID); event != nil {
		event.RetryCount = retryCount
	}
	return spanner.Delete("unused", spanner.Key{eventID})
}

// MarkFailedMut flips the stored event to failed.
func (f *FakeOutboxRepo) MarkFailedMut(eventID string, _ time.Time, retryCount int64, _ string) *spanner.Mutation {
	if event := f.find(eventID); event != nil {
		event.Status = "failed"
		event.RetryCount = retryCount
	}
	return spanner.Delete("unused", spanner.Key{eventID})
}

func (f *FakeOutboxRepo) find(eventID string) *contracts.OutboxEvent {
	for _, event := range f.Events {
		if event.EventID == eventID {
			return event
		}
	}
	return nil
}

var (
	_ contracts.OutboxRepository = (*FakeOutboxRepo)(nil)
	_ contracts.OutboxRelay      = (*FakeOutboxRepo)(nil)
)

// FakeApplier records commit plans without touching Spanner.
type FakeApplier struct {
	Plans []*committer.CommitPlan

	// Err, when set, is returned by every Apply call.
	Err error
}

// NewFakeApplier creates a FakeApplier.
func NewFakeApplier() *FakeApplier {
	return &FakeApplier{}
}

// Apply records the plan.
func (f *FakeApplier) Apply(_ context.Context, plan *committer.CommitPlan) error {
	if f.Err != nil {
		return f.Err
	}
	f.Plans = append(f.Plans, plan)
	return nil
}

var _ committer.Applier = (*FakeApplier)(nil)
