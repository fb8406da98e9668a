// Package ports defines the contracts between the warehouse core and its
// infrastructure: repositories, the unit of work, and the clock. These
// interfaces enable dependency inversion and testability; no process-wide
// database session exists anywhere in the core.
package ports

import (
	"context"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their line items and processing record.
type OrderRepository interface {
	// Add persists a new order aggregate with its items and processing record.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order's mutable state (status,
	// stock-committed flag, processing references). Line items are immutable
	// and are never written back.
	Update(ctx context.Context, aggregate *order.Order) error

	// UpdateStatusGuarded behaves like Update but only succeeds if the
	// persisted status still equals observed. The order's pre-transition
	// status acts as an optimistic concurrency token: a concurrent duplicate
	// transition that already moved the row makes this call fail with an
	// invalid-state error and zero effect.
	UpdateStatusGuarded(ctx context.Context, aggregate *order.Order, observed order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row for the remainder of
	// the transaction, serializing concurrent operations on the same order.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status,
	// oldest first.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)
}
