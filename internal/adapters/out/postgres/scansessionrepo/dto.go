// Package scansessionrepo persists scan sessions: one row per in-progress
// order plus one child row per product with remaining unscanned units.
package scansessionrepo

import (
	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/core/domain/model/scansession"

	"github.com/google/uuid"
)

// ScanSessionDTO is the session row. It exists only while the order is
// between creation and stock commitment; the order id is the natural key.
type ScanSessionDTO struct {
	OrderID uuid.UUID           `gorm:"type:uuid;primaryKey"`
	Items   []ScanSessionItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "scan_sessions".
func (ScanSessionDTO) TableName() string {
	return "scan_sessions"
}

// ScanSessionItemDTO is the remaining unit count for one product.
type ScanSessionItemDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Remaining int
}

// TableName overrides GORM's default naming to use "scan_session_items".
func (ScanSessionItemDTO) TableName() string {
	return "scan_session_items"
}

func fromDomain(aggregate *scansession.ScanSession) ScanSessionDTO {
	remaining := aggregate.RemainingByProduct()
	items := make([]ScanSessionItemDTO, 0, len(remaining))
	for productID, count := range remaining {
		items = append(items, ScanSessionItemDTO{
			OrderID:   aggregate.OrderID().Bytes(),
			ProductID: productID.Bytes(),
			Remaining: count,
		})
	}

	return ScanSessionDTO{
		OrderID: aggregate.OrderID().Bytes(),
		Items:   items,
	}
}

func toDomain(dto ScanSessionDTO) (*scansession.ScanSession, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	remaining := make(map[kernel.UUID]int, len(dto.Items))
	for _, item := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(item.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		remaining[productID] = item.Remaining
	}

	return scansession.RestoreScanSession(orderID, remaining)
}
