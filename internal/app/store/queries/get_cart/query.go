package get_cart

import (
	"context"
	"errors"

	"github.com/CimeM/shellLeatherStore/internal/app/store/contracts"
	"github.com/CimeM/shellLeatherStore/internal/app/store/domain"
	"github.com/CimeM/shellLeatherStore/internal/pkg/clock"
)

// Request identifies the session whose cart to fetch.
type Request struct {
	SessionID string
}

// Query handles the get cart query use case.
type Query struct {
	repo  contracts.CartRepository
	clock clock.Clock
}

// NewQuery creates a new get cart query.
func NewQuery(repo contracts.CartRepository, clk clock.Clock) *Query {
	return &Query{
		repo:  repo,
		clock: clk,
	}
}

// Execute loads the session's cart. A session with no stored cart gets
// an empty one rather than an error.
func (q *Query) Execute(ctx context.Context, req *Request) (*domain.Cart, error) {
	cart, err := q.repo.GetBySession(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, domain.ErrCartNotFound) {
			return domain.NewCart(req.SessionID, q.clock.Now(), q.clock), nil
		}
		return nil, err
	}
	return cart, nil
}
