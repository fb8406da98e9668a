// Package auditrepo persists the append-only audit trail of administrator
// status changes.
package auditrepo

import (
	"time"

	"stockflow/internal/core/domain/model/audit"
	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// AuditEntryDTO is the database shape of one recorded status change.
// Rows are inserted once and never updated or deleted.
type AuditEntryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	OldStatus int
	NewStatus int
	ActorID   string
	ActorName string
	ChangedAt time.Time
}

// TableName overrides GORM's default naming to use "audit_entries".
func (AuditEntryDTO) TableName() string {
	return "audit_entries"
}

func fromDomain(entry *audit.Entry) AuditEntryDTO {
	return AuditEntryDTO{
		ID:        entry.ID().Bytes(),
		OrderID:   entry.OrderID().Bytes(),
		OldStatus: int(entry.OldStatus()),
		NewStatus: int(entry.NewStatus()),
		ActorID:   entry.ActorID(),
		ActorName: entry.ActorName(),
		ChangedAt: entry.ChangedAt(),
	}
}

func toDomain(dto AuditEntryDTO) (*audit.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return audit.RestoreEntry(
		id,
		orderID,
		order.Status(dto.OldStatus),
		order.Status(dto.NewStatus),
		dto.ActorID,
		dto.ActorName,
		dto.ChangedAt,
	)
}
