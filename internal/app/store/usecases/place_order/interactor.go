package place_order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/CimeM/shellLeatherStore/internal/app/store/checkout"
	"github.com/CimeM/shellLeatherStore/internal/app/store/contracts"
	"github.com/CimeM/shellLeatherStore/internal/app/store/domain"
	"github.com/CimeM/shellLeatherStore/internal/dispatch"
	"github.com/CimeM/shellLeatherStore/internal/pkg/clock"
	"github.com/CimeM/shellLeatherStore/internal/pkg/committer"
)

// Request carries the session placing the order and the checkout form.
type Request struct {
	SessionID string
	Customer  checkout.CustomerInfo
}

// Result holds the transient order summary and the prebuilt mailto
// link handed back to the client. Neither is ever persisted.
type Result struct {
	Summary    *checkout.OrderSummary
	MailtoLink string
}

// Interactor handles the place order use case.
type Interactor struct {
	composer   *checkout.Composer
	repo       contracts.CartRepository
	outboxRepo contracts.OutboxRepository
	committer  committer.Applier
	dispatcher dispatch.Dispatcher
	clock      clock.Clock
	recipient  string
	logger     *zap.Logger
}

// NewInteractor creates a new place order interactor. recipient is the
// store inbox the mailto link addresses.
func NewInteractor(
	composer *checkout.Composer,
	repo contracts.CartRepository,
	outboxRepo contracts.OutboxRepository,
	comm committer.Applier,
	dispatcher dispatch.Dispatcher,
	clk clock.Clock,
	recipient string,
	logger *zap.Logger,
) *Interactor {
	return &Interactor{
		composer:   composer,
		repo:       repo,
		outboxRepo: outboxRepo,
		committer:  comm,
		dispatcher: dispatcher,
		clock:      clk,
		recipient:  recipient,
		logger:     logger,
	}
}

// Execute snapshots the cart into an order summary priced at the
// current instant, empties the cart, and hands the summary off for
// dispatch. Ordering an empty or missing cart fails with
// domain.ErrEmptyCart.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Result, error) {
	cart, err := i.repo.GetBySession(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			return nil, domain.ErrEmptyCart
		}
		return nil, err
	}

	now := i.clock.Now()
	summary, err := i.composer.BuildSummary(cart, req.Customer, now)
	if err != nil {
		return nil, err
	}
	if len(summary.Lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	link := checkout.MailtoLink(summary, i.recipient)

	if err := cart.PlaceOrder(summary.Total); err != nil {
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

	// Notification is best-effort. The order is already committed; a
	// broker outage must not surface as a checkout failure.
	if err := i.dispatcher.Dispatch(ctx, summary, link); err != nil {
		i.logger.Warn("order dispatch failed",
			zap.String("session_id", req.SessionID),
			zap.Error(err),
		)
	}

	return &Result{Summary: summary, MailtoLink: link}, nil
}

func serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
