package remove_item

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

// Request contains the line item key to remove.
type Request struct {
	SessionID string
	ProductID string
	Color     string
}

// Interactor handles the remove item use case.
type Interactor struct {
	repo       contracts.CartRepository
	outboxRepo contracts.OutboxRepository
	committer  committer.Applier
	clock      clock.Clock
}

// NewInteractor creates a new remove item interactor.
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

// Execute removes the matching line item. Removing an absent line, or any
// line from a session with no cart, is a no-op.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Cart, error) {
	cart, err := i.repo.GetBySession(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			// Removing from a session with no cart is a no-op.
			return domain.NewCart(req.SessionID, i.clock.Now(), i.clock), nil
		}
		return nil, err
	}

	cart.RemoveItem(req.ProductID, req.Color)

	plan := committer.NewPlan()

	muts, err := i.repo.UpsertMuts(cart)
	if err != nil {
		return nil, err
	}
	plan.AddMultiple(muts)

	for _, event := range cart.DomainEvents() {
		payload, err := json.Marshal(event)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize event: %w", err)
		}
		plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, string(payload))))
	}

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	cart.Changes().Reset()
	cart.ClearEvents()

	return cart, nil
}
