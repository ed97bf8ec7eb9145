package domain

import (
	"time"

	"github.com/CimeM/shellLeatherStore/internal/pkg/clock"
)

// LineKey identifies a cart line. Adding the same product+color combination
// merges quantities instead of creating a second line.
type LineKey struct {
	ProductID string
	Color     string
}

// Line is one product+color pairing with a quantity inside a cart.
type Line struct {
	productID     string
	color         string
	quantity      int64
	customization string
	position      int64
	addedAt       time.Time
}

// ReconstructLine reconstitutes a Line from storage.
func ReconstructLine(productID, color string, quantity int64, customization string, position int64, addedAt time.Time) *Line {
	return &Line{
		productID:     productID,
		color:         color,
		quantity:      quantity,
		customization: customization,
		position:      position,
		addedAt:       addedAt,
	}
}

func (l *Line) ProductID() string     { return l.productID }
func (l *Line) Color() string         { return l.color }
func (l *Line) Quantity() int64       { return l.quantity }
func (l *Line) Customization() string { return l.customization }
func (l *Line) Position() int64       { return l.position }
func (l *Line) AddedAt() time.Time    { return l.addedAt }

// Key returns the line's identity within the cart.
func (l *Line) Key() LineKey {
	return LineKey{ProductID: l.productID, Color: l.color}
}

// Cart is the aggregate root for one shopping session. Lines keep insertion
// order for display. The cart never stores a total: totals are recomputed
// from current lines and current discount state whenever queried.
//
// One mutator at a time per cart instance; a session has a single writer.
type Cart struct {
	sessionID string
	lines     []*Line
	index     map[LineKey]*Line
	nextPos   int64
	createdAt time.Time
	updatedAt time.Time

	clock   clock.Clock
	changes *ChangeTracker
	events  []DomainEvent
}

// NewCart creates an empty cart for a session.
func NewCart(sessionID string, now time.Time, clk clock.Clock) *Cart {
	c := &Cart{
		sessionID: sessionID,
		index:     make(map[LineKey]*Line),
		createdAt: now,
		updatedAt: now,
		clock:     clk,
		changes:   NewChangeTracker(),
		events:    make([]DomainEvent, 0),
	}
	c.changes.MarkCartDirty()
	return c
}

// ReconstructCart reconstitutes a Cart from storage. Lines must already be
// in stored insertion order.
func ReconstructCart(sessionID string, lines []*Line, createdAt, updatedAt time.Time, clk clock.Clock) *Cart {
	c := &Cart{
		sessionID: sessionID,
		lines:     lines,
		index:     make(map[LineKey]*Line, len(lines)),
		createdAt: createdAt,
		updatedAt: updatedAt,
		clock:     clk,
		changes:   NewChangeTracker(),
		events:    make([]DomainEvent, 0),
	}
	for _, l := range lines {
		c.index[l.Key()] = l
		if l.position >= c.nextPos {
			c.nextPos = l.position + 1
		}
	}
	return c
}

// Getters
func (c *Cart) SessionID() string           { return c.sessionID }
func (c *Cart) CreatedAt() time.Time        { return c.createdAt }
func (c *Cart) UpdatedAt() time.Time        { return c.updatedAt }
func (c *Cart) Changes() *ChangeTracker     { return c.changes }
func (c *Cart) DomainEvents() []DomainEvent { return c.events }

// Lines returns the line items in insertion order.
func (c *Cart) Lines() []*Line {
	out := make([]*Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Line returns the line for a product+color pairing, if present.
func (c *Cart) Line(productID, color string) (*Line, bool) {
	l, ok := c.index[LineKey{ProductID: productID, Color: color}]
	return l, ok
}

// Len returns the number of line items.
func (c *Cart) Len() int { return len(c.lines) }

// IsEmpty reports whether the cart has no line items.
func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

// AddItem adds quantity of a product+color to the cart. An existing line
// with the same key has its quantity incremented; otherwise a new line is
// appended. The color must be one the product offers. A quantity below one
// is rejected rather than silently ignored.
func (c *Cart) AddItem(product *Product, color string, quantity int64, customization string) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if !product.HasColor(color) {
		return ErrColorNotOffered
	}

	now := c.clock.Now()
	key := LineKey{ProductID: product.ID(), Color: color}

	if line, ok := c.index[key]; ok {
		line.quantity += quantity
		if customization != "" {
			line.customization = customization
		}
	} else {
		line := &Line{
			productID:     product.ID(),
			color:         color,
			quantity:      quantity,
			customization: customization,
			position:      c.nextPos,
			addedAt:       now,
		}
		c.nextPos++
		c.lines = append(c.lines, line)
		c.index[key] = line
	}

	c.changes.MarkDirty(key)
	c.touch(now)

	c.recordEvent(&ItemAddedEvent{
		SessionID: c.sessionID,
		ProductID: product.ID(),
		Color:     color,
		Quantity:  quantity,
		AddedAt:   now,
	})

	return nil
}

// RemoveItem deletes the matching line item. Removing an absent line is a
// no-op, not an error.
func (c *Cart) RemoveItem(productID, color string) {
	key := LineKey{ProductID: productID, Color: color}
	if _, ok := c.index[key]; !ok {
		return
	}

	c.deleteLine(key)
	now := c.clock.Now()
	c.changes.MarkRemoved(key)
	c.touch(now)

	c.recordEvent(&ItemRemovedEvent{
		SessionID: c.sessionID,
		ProductID: productID,
		Color:     color,
		RemovedAt: now,
	})
}

// UpdateQuantity replaces a line's quantity. A quantity of zero or below
// behaves as RemoveItem. Updating an absent line is a no-op.
func (c *Cart) UpdateQuantity(productID, color string, quantity int64) {
	if quantity <= 0 {
		c.RemoveItem(productID, color)
		return
	}

	key := LineKey{ProductID: productID, Color: color}
	line, ok := c.index[key]
	if !ok {
		return
	}

	now := c.clock.Now()
	line.quantity = quantity
	c.changes.MarkDirty(key)
	c.touch(now)

	c.recordEvent(&QuantityUpdatedEvent{
		SessionID: c.sessionID,
		ProductID: productID,
		Color:     color,
		Quantity:  quantity,
		UpdatedAt: now,
	})
}

// Clear empties all line items.
func (c *Cart) Clear() {
	if c.IsEmpty() {
		return
	}

	now := c.clock.Now()
	c.clearLines()
	c.touch(now)

	c.recordEvent(&CartClearedEvent{
		SessionID: c.sessionID,
		ClearedAt: now,
	})
}

// PlaceOrder records checkout of a non-empty cart and empties it. The total
// is a display snapshot for the event payload; dispatching the summary is
// the caller's responsibility.
func (c *Cart) PlaceOrder(total *Money) error {
	if c.IsEmpty() {
		return ErrEmptyCart
	}

	now := c.clock.Now()
	itemCount := len(c.lines)
	c.clearLines()
	c.touch(now)

	c.recordEvent(&OrderPlacedEvent{
		SessionID: c.sessionID,
		ItemCount: itemCount,
		Total:     total.String(),
		PlacedAt:  now,
	})

	return nil
}

// ClearEvents drops all recorded domain events (called after publishing).
func (c *Cart) ClearEvents() {
	c.events = make([]DomainEvent, 0)
}

func (c *Cart) clearLines() {
	for key := range c.index {
		c.changes.MarkRemoved(key)
	}
	c.lines = nil
	c.index = make(map[LineKey]*Line)
}

func (c *Cart) deleteLine(key LineKey) {
	delete(c.index, key)
	for i, l := range c.lines {
		if l.Key() == key {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			break
		}
	}
}

func (c *Cart) touch(now time.Time) {
	c.updatedAt = now
}

func (c *Cart) recordEvent(event DomainEvent) {
	c.events = append(c.events, event)
}
