package clear_cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/CimeM/shellLeatherStore/internal/app/store/contracts"
	"github.com/CimeM/shellLeatherStore/internal/app/store/domain"
	"github.com/CimeM/shellLeatherStore/internal/pkg/clock"
	"github.com/CimeM/shellLeatherStore/internal/pkg/committer"
)

// Request identifies the cart to empty.
type Request struct {
	SessionID string
}

// Interactor handles the clear cart use case.
type Interactor struct {
	repo       contracts.CartRepository
	outboxRepo contracts.OutboxRepository
	committer  committer.Applier
	clock      clock.Clock
}

// NewInteractor creates a new clear cart interactor.
func NewInteractor(
	repo contracts.CartRepository,
	outboxRepo contracts.OutboxRepository,
	comm committer.Applier,
	clk clock.Clock,
) *Interactor {
	return &Interactor{
		repo:       repo,
		outboxRepo: outboxRepo,
		committer:  comm,
		clock:      clk,
	}
}

// Execute removes every line from the cart. Clearing a missing or
// already empty cart is a no-op.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Cart, error) {
	cart, err := i.repo.GetBySession(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			return domain.NewCart(req.SessionID, i.clock.Now(), i.clock), nil
		}
		return nil, err
	}

	cart.Clear()

	plan := committer.NewPlan()

	muts, err := i.repo.UpsertMuts(cart)
	if err != nil {
		return nil, err
	}
	plan.AddMultiple(muts)

	for _, event := range cart.DomainEvents() {
		payload, err := serializeEvent(event)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize event: %w", err)
		}
		plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, payload)))
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	cart.Changes().Reset()
	cart.ClearEvents()

	return cart, nil
}

func serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
