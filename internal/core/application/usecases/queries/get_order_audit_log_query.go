package queries

import (
	"errors"
	"time"

	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/pkg/guard"
)

var ErrGetOrderAuditLogQueryIsNotConstructed = errors.New(
	"GetOrderAuditLogQuery must be created via NewGetOrderAuditLogQuery constructor",
)

// GetOrderAuditLogQuery retrieves the status-change history of one order.
type GetOrderAuditLogQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderAuditLogQuery creates an audit-log query for an order.
func NewGetOrderAuditLogQuery(orderID kernel.UUID) (GetOrderAuditLogQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderAuditLogQuery{}, err
	}

	return GetOrderAuditLogQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderAuditLogQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderAuditLogQueryIsNotConstructed)
}

// OrderID returns the order whose history is requested.
func (q GetOrderAuditLogQuery) OrderID() kernel.UUID {
	return q.orderID
}

// AuditLogRow is one recorded status change.
type AuditLogRow struct {
	ID        string
	OldStatus string
	NewStatus string
	ActorID   string
	ActorName string
	ChangedAt time.Time
}
