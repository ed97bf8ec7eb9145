package add_item

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/CimeM/shellLeatherStore/internal/app/store/catalog"
	"github.com/CimeM/shellLeatherStore/internal/app/store/contracts"
	"github.com/CimeM/shellLeatherStore/internal/app/store/domain"
	"github.com/CimeM/shellLeatherStore/internal/pkg/clock"
	"github.com/CimeM/shellLeatherStore/internal/pkg/committer"
)

// Request contains the data to add a line item to a session's cart.
type Request struct {
	SessionID     string
	ProductID     string
	Color         string
	Quantity      int64
	Customization string
}

// Interactor handles the add item use case.
type Interactor struct {
	catalog    *catalog.Catalog
	repo       contracts.CartRepository
	outboxRepo contracts.OutboxRepository
	committer  committer.Applier
	clock      clock.Clock
}

// NewInteractor creates a new add item interactor.
func NewInteractor(
	cat *catalog.Catalog,
	repo contracts.CartRepository,
	outboxRepo contracts.OutboxRepository,
	comm committer.Applier,
	clk clock.Clock,
) *Interactor {
	return &Interactor{
		catalog:    cat,
		repo:       repo,
		outboxRepo: outboxRepo,
		committer:  comm,
		clock:      clk,
	}
}

// Execute adds the item, merging quantity into an existing line with the
// same product+color key, and commits the cart and its outbox events
// atomically. Returns the mutated aggregate for the response view.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*domain.Cart, error) {
	product, ok := i.catalog.ProductByID(req.ProductID)
	if !ok {
		return nil, domain.ErrProductNotFound
	}

	cart, err := i.repo.GetBySession(ctx, req.SessionID)
	if err != nil {
		if !errors.Is(err, domain.ErrCartNotFound) {
			return nil, err
		}
		cart = domain.NewCart(req.SessionID, i.clock.Now(), i.clock)
	}

	if err := cart.AddItem(product, req.Color, req.Quantity, req.Customization); err != nil {
		return nil, err
	}

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
