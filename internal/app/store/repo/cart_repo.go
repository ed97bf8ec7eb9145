package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/CimeM/shellLeatherStore/internal/app/store/contracts"
	"github.com/CimeM/shellLeatherStore/internal/app/store/domain"
	"github.com/CimeM/shellLeatherStore/internal/models/m_cart"
	"github.com/CimeM/shellLeatherStore/internal/models/m_cart_item"
	"github.com/CimeM/shellLeatherStore/internal/pkg/clock"
)

// CartRepo implements CartRepository for Spanner.
type CartRepo struct {
	client *spanner.Client
	carts  *m_cart.Model
	items  *m_cart_item.Model
	clock  clock.Clock
}

// NewCartRepo creates a new CartRepo.
func NewCartRepo(client *spanner.Client, clk clock.Clock) contracts.CartRepository {
	return &CartRepo{
		client: client,
		carts:  m_cart.NewModel(),
		items:  m_cart_item.NewModel(),
		clock:  clk,
	}
}

// GetBySession reconstructs a session's cart from the carts and cart_items
// tables, lines ordered by stored position.
func (r *CartRepo) GetBySession(ctx context.Context, sessionID string) (*domain.Cart, error) {
	row, err := r.client.Single().ReadRow(ctx, m_cart.TableName, spanner.Key{sessionID}, []string{
		m_cart.SessionID,
		m_cart.CreatedAt,
		m_cart.UpdatedAt,
	})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	var cartData m_cart.Data
	if err := row.ToStruct(&cartData); err != nil {
		return nil, fmt.Errorf("failed to parse cart: %w", err)
	}

	lines, err := r.readLines(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return domain.ReconstructCart(
		cartData.SessionID,
		lines,
		cartData.CreatedAt,
		cartData.UpdatedAt,
		r.clock,
	), nil
}

// UpsertMuts derives mutations from the aggregate's change tracker: the cart
// row when anything changed, an upsert per dirty line, a delete per removed
// line.
func (r *CartRepo) UpsertMuts(cart *domain.Cart) ([]*spanner.Mutation, error) {
	changes := cart.Changes()
	if !changes.HasChanges() {
		return nil, nil
	}

	muts := make([]*spanner.Mutation, 0, cart.Len()+2)

	muts = append(muts, r.carts.UpsertMut(&m_cart.Data{
		SessionID: cart.SessionID(),
		CreatedAt: cart.CreatedAt(),
		UpdatedAt: cart.UpdatedAt(),
	}))

	for _, key := range changes.RemovedKeys() {
		muts = append(muts, r.items.DeleteMut(cart.SessionID(), key.ProductID, key.Color))
	}

	for _, line := range cart.Lines() {
		if !changes.Dirty(line.Key()) {
			continue
		}
		muts = append(muts, r.items.UpsertMut(&m_cart_item.Data{
			SessionID: cart.SessionID(),
			ProductID: line.ProductID(),
			Color:     line.Color(),
			Quantity:  line.Quantity(),
			Customization: spanner.NullString{
				StringVal: line.Customization(),
				Valid:     line.Customization() != "",
			},
			Position: line.Position(),
			AddedAt:  line.AddedAt(),
		}))
	}

	return muts, nil
}

// DeleteMut deletes the cart row; interleaved lines cascade.
func (r *CartRepo) DeleteMut(sessionID string) *spanner.Mutation {
	return r.carts.DeleteMut(sessionID)
}

func (r *CartRepo) readLines(ctx context.Context, sessionID string) ([]*domain.Line, error) {
	stmt := spanner.Statement{
		SQL: "SELECT session_id, product_id, color, quantity, customization, " +
			"position, added_at " +
			"FROM cart_items WHERE session_id = @sessionID ORDER BY position",
		Params: map[string]interface{}{
			"sessionID": sessionID,
		},
	}

	iter := r.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var lines []*domain.Line
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate cart items: %w", err)
		}

		var data m_cart_item.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse cart item: %w", err)
		}

		customization := ""
		if data.Customization.Valid {
			customization = data.Customization.StringVal
		}

		lines = append(lines, domain.ReconstructLine(
			data.ProductID,
			data.Color,
			data.Quantity,
			customization,
			data.Position,
			data.AddedAt,
		))
	}

	return lines, nil
}
