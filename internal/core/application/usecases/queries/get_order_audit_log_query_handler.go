package queries

import (
	"context"
	"time"

	"stockflow/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderAuditLogQueryHandler reads the append-only audit trail of an
// order, oldest change first.
type GetOrderAuditLogQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderAuditLogQueryHandler creates a handler for audit-log queries.
func NewGetOrderAuditLogQueryHandler(db *gorm.DB) GetOrderAuditLogQueryHandler {
	return GetOrderAuditLogQueryHandler{db: db}
}

// Handle returns the order's recorded status changes. An order with no
// administrator-driven transitions yields an empty slice, not an error.
func (h GetOrderAuditLogQueryHandler) Handle(
	ctx context.Context,
	query GetOrderAuditLogQuery,
) ([]AuditLogRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			old_status,
			new_status,
			actor_id,
			actor_name,
			changed_at
		FROM audit_entries
		WHERE order_id = ?
		ORDER BY changed_at, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]AuditLogRow, 0)

	for rows.Next() {
		var id uuid.UUID
		var oldStatus, newStatus int
		var actorID, actorName string
		var changedAt time.Time

		if err = rows.Scan(&id, &oldStatus, &newStatus, &actorID, &actorName, &changedAt); err != nil {
			return nil, err
		}

		entries = append(entries, AuditLogRow{
			ID:        id.String(),
			OldStatus: order.Status(oldStatus).String(),
			NewStatus: order.Status(newStatus).String(),
			ActorID:   actorID,
			ActorName: actorName,
			ChangedAt: changedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
