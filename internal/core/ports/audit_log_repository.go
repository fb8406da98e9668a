package ports

import (
	"context"

	"stockflow/internal/core/domain/model/audit"
	"stockflow/internal/core/domain/model/kernel"
)

// AuditLogRepository defines the persistence contract for status-change
// audit entries. Pure insert; entries are never updated or deleted.
type AuditLogRepository interface {
	// Append persists one audit entry.
	Append(ctx context.Context, entry *audit.Entry) error

	// ListByOrder retrieves all entries for an order in insertion order.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*audit.Entry, error)
}
