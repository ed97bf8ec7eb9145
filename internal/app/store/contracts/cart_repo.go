package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/CimeM/shellLeatherStore/internal/app/store/domain"
)

// CartRepository defines the interface for cart persistence.
// Repositories return mutations, they don't apply them: use cases collect
// them into a commit plan together with outbox events.
type CartRepository interface {
	// GetBySession reconstructs a session's cart, lines in stored insertion
	// order. Returns domain.ErrCartNotFound when the session has no cart.
	GetBySession(ctx context.Context, sessionID string) (*domain.Cart, error)

	// UpsertMuts returns the mutations for the cart row plus its changed
	// and removed lines, derived from the aggregate's change tracker.
	// Returns nil when nothing changed.
	UpsertMuts(cart *domain.Cart) ([]*spanner.Mutation, error)

	// DeleteMut returns a mutation deleting the cart row and all its lines.
	DeleteMut(sessionID string) *spanner.Mutation
}
