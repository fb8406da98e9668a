package ports

import (
	"context"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/scansession"
)

// ScanSessionRepository defines the persistence contract for scan sessions.
// Sessions are keyed by order id, held server-side so scan progress cannot
// be falsified by callers, and deleted once the order's stock is committed.
type ScanSessionRepository interface {
	// Add persists a newly opened scan session.
	Add(ctx context.Context, aggregate *scansession.ScanSession) error

	// GetForUpdate retrieves the session for an order and locks it for the
	// remainder of the transaction, serializing concurrent scans.
	GetForUpdate(ctx context.Context, orderID kernel.UUID) (*scansession.ScanSession, error)

	// Update persists the session's remaining multiset.
	Update(ctx context.Context, aggregate *scansession.ScanSession) error

	// Delete discards the session for an order.
	Delete(ctx context.Context, orderID kernel.UUID) error
}
