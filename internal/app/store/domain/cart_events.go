package domain

import "time"

// DomainEvent is the base interface for all domain events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// ItemAddedEvent is emitted when a line item is added or its quantity merged.
type ItemAddedEvent struct {
	SessionID string
	ProductID string
	Color     string
	Quantity  int64
	AddedAt   time.Time
}

func (e *ItemAddedEvent) EventType() string   { return "cart.item.added" }
func (e *ItemAddedEvent) AggregateID() string { return e.SessionID }

// ItemRemovedEvent is emitted when a line item is removed.
type ItemRemovedEvent struct {
	SessionID string
	ProductID string
	Color     string
	RemovedAt time.Time
}

func (e *ItemRemovedEvent) EventType() string   { return "cart.item.removed" }
func (e *ItemRemovedEvent) AggregateID() string { return e.SessionID }

// QuantityUpdatedEvent is emitted when a line's quantity is replaced.
type QuantityUpdatedEvent struct {
	SessionID string
	ProductID string
	Color     string
	Quantity  int64
	UpdatedAt time.Time
}

func (e *QuantityUpdatedEvent) EventType() string   { return "cart.quantity.updated" }
func (e *QuantityUpdatedEvent) AggregateID() string { return e.SessionID }

// CartClearedEvent is emitted when all lines are dropped.
type CartClearedEvent struct {
	SessionID string
	ClearedAt time.Time
}

func (e *CartClearedEvent) EventType() string   { return "cart.cleared" }
func (e *CartClearedEvent) AggregateID() string { return e.SessionID }

// OrderPlacedEvent is emitted when the cart is checked out.
// The total is a display-rounded snapshot; order summaries are never stored.
type OrderPlacedEvent struct {
	SessionID string
	ItemCount int
	Total     string
	PlacedAt  time.Time
}

func (e *OrderPlacedEvent) EventType() string   { return "cart.order.placed" }
func (e *OrderPlacedEvent) AggregateID() string { return e.SessionID }
